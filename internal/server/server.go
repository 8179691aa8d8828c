package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"

	"github.com/diegok/solopong/internal/config"
	"github.com/diegok/solopong/internal/game"
	"github.com/diegok/solopong/internal/protocol"
)

// Server constants
const (
	MaxViewers       = 32
	handshakeTimeout = 5 * time.Second
	shutdownTimeout  = 2 * time.Second
	minAcceptBackoff = 5 * time.Millisecond
	maxAcceptBackoff = time.Second
)

// Server streams frames of the local match to read-only spectators over
// TCP (gob), WebSocket (JSON) and SSH (ANSI text).
type Server struct {
	cfg    *config.Config
	logger *log.Logger

	listener net.Listener
	httpSrv  *http.Server
	sshSrv   *ssh.Server

	mu       sync.RWMutex
	viewers  map[int]*Viewer
	pending  map[int]struct{}
	nextID   int
	last     *protocol.Frame
	rendered int
	done     chan struct{}
}

// NewServer creates a new server with the given configuration
func NewServer(cfg *config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{
		cfg:     cfg,
		logger:  logger.WithPrefix("spectate"),
		viewers: make(map[int]*Viewer),
		pending: make(map[int]struct{}),
		nextID:  1,
		done:    make(chan struct{}),
	}
}

// Start opens every configured transport
func (s *Server) Start() error {
	if s.cfg.SpectatePort != 0 {
		addr := fmt.Sprintf(":%d", s.cfg.SpectatePort)
		listener, err := net.Listen("tcp", addr)
		if err != nil {
			return fmt.Errorf("failed to start spectator server: %w", err)
		}
		s.listener = listener
		s.logger.Info("tcp spectators enabled", "addr", listener.Addr().String())
		go s.acceptLoop()
	}

	if s.cfg.WSAddr != "" {
		if err := s.startWebSocket(s.cfg.WSAddr); err != nil {
			s.Stop()
			return err
		}
	}

	if s.cfg.SSHAddr != "" {
		if err := s.startSSH(s.cfg.SSHAddr, s.cfg.SSHHostKey); err != nil {
			s.Stop()
			return err
		}
	}

	return nil
}

// Addr returns the TCP spectator address, or nil when disabled
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.mu.Lock()
	select {
	case <-s.done:
		s.mu.Unlock()
		return
	default:
		close(s.done)
	}
	viewers := make([]*Viewer, 0, len(s.viewers))
	for _, v := range s.viewers {
		viewers = append(viewers, v)
	}
	s.viewers = make(map[int]*Viewer)
	s.mu.Unlock()

	if s.listener != nil {
		s.listener.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.httpSrv != nil {
		if err := s.httpSrv.Shutdown(ctx); err != nil {
			s.logger.Warn("websocket shutdown", "err", err)
		}
	}

	for _, v := range viewers {
		v.Close()
	}

	if s.sshSrv != nil {
		if err := s.sshSrv.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Warn("ssh shutdown", "err", err)
		}
	}
}

// Render implements the frame driver's render sink. Every FrameEvery-th
// snapshot is broadcast to all viewers.
func (s *Server) Render(snap game.Snapshot) {
	frame := protocol.FrameFromSnapshot(snap)

	s.mu.Lock()
	s.rendered++
	send := s.rendered%s.frameEvery() == 0
	s.last = &frame
	s.mu.Unlock()

	if send {
		s.broadcast(frame)
	}
}

func (s *Server) frameEvery() int {
	if s.cfg.FrameEvery < 1 {
		return 1
	}
	return s.cfg.FrameEvery
}

// ViewerCount returns the number of connected spectators
func (s *Server) ViewerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.viewers)
}

// broadcast sends a frame to all connected viewers
func (s *Server) broadcast(frame protocol.Frame) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.viewers {
		v.Send(frame)
	}
}

// reserveID allocates a viewer ID, or fails when the server is full or
// stopped. Reserved IDs count against MaxViewers until addViewer or
// releaseID is called for them.
func (s *Server) reserveID() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	select {
	case <-s.done:
		return 0, errors.New("server stopped")
	default:
	}

	if len(s.viewers)+len(s.pending) >= MaxViewers {
		return 0, fmt.Errorf("too many spectators (max %d)", MaxViewers)
	}

	id := s.nextID
	s.nextID++
	s.pending[id] = struct{}{}
	return id, nil
}

// releaseID frees a reservation whose handshake failed
func (s *Server) releaseID(id int) {
	s.mu.Lock()
	delete(s.pending, id)
	s.mu.Unlock()
}

// addViewer registers a viewer, starts its writer and primes it with the
// latest frame
func (s *Server) addViewer(v *Viewer) {
	s.mu.Lock()
	delete(s.pending, v.ID)
	select {
	case <-s.done:
		s.mu.Unlock()
		v.StartWriter(nil)
		v.Close()
		return
	default:
	}
	s.viewers[v.ID] = v
	last := s.last
	count := len(s.viewers)
	s.mu.Unlock()

	v.StartWriter(func() { s.removeViewer(v.ID) })
	if last != nil {
		v.Send(*last)
	}

	s.logger.Info("viewer joined", "id", v.ID, "name", v.Name, "kind", v.Kind, "viewers", count)
}

// removeViewer removes a viewer from the server
func (s *Server) removeViewer(id int) {
	s.mu.Lock()
	v, exists := s.viewers[id]
	if exists {
		delete(s.viewers, id)
	}
	count := len(s.viewers)
	s.mu.Unlock()

	if !exists {
		return
	}

	v.Close()
	s.logger.Info("viewer left", "id", id, "kind", v.Kind, "viewers", count)
}

func (s *Server) fieldSize() (float64, float64) {
	return s.cfg.Tuning.FieldWidth, s.cfg.Tuning.FieldHeight
}

// acceptLoop accepts incoming TCP connections. Failed accepts are retried
// with exponential backoff until the server stops.
func (s *Server) acceptLoop() {
	var backoff time.Duration
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if backoff == 0 {
				backoff = minAcceptBackoff
			} else {
				backoff *= 2
			}
			if backoff > maxAcceptBackoff {
				backoff = maxAcceptBackoff
			}

			select {
			case <-s.done:
				return
			default:
			}
			s.logger.Warn("accept failed", "err", err, "retry", backoff)

			select {
			case <-s.done:
				return
			case <-time.After(backoff):
			}
			continue
		}
		backoff = 0

		go s.handleConnection(conn)
	}
}

// handleConnection runs the Hello/Welcome handshake and then waits for
// the viewer to go away
func (s *Server) handleConnection(conn net.Conn) {
	codec := protocol.NewCodec(conn)

	conn.SetReadDeadline(time.Now().Add(handshakeTimeout))
	msg, err := codec.Expect(protocol.MsgHello)
	if err != nil {
		conn.Close()
		return
	}
	conn.SetReadDeadline(time.Time{})

	hello, ok := msg.Payload.(protocol.Hello)
	if !ok {
		conn.Close()
		return
	}

	id, err := s.reserveID()
	if err != nil {
		codec.Send(protocol.MsgWelcome, protocol.Welcome{Accepted: false, Reason: err.Error()})
		conn.Close()
		return
	}

	name := hello.ViewerName
	if name == "" {
		name = fmt.Sprintf("Viewer%d", id)
	}

	fieldW, fieldH := s.fieldSize()
	err = codec.Send(protocol.MsgWelcome, protocol.Welcome{
		ViewerID:    id,
		Accepted:    true,
		FieldWidth:  fieldW,
		FieldHeight: fieldH,
	})
	if err != nil {
		s.releaseID(id)
		conn.Close()
		return
	}

	v := NewViewer(id, name, KindTCP,
		func(f protocol.Frame) error {
			return codec.Send(protocol.MsgFrame, f)
		},
		func() {
			codec.Send(protocol.MsgGoodbye, protocol.Goodbye{Reason: "match closed"})
		},
		conn.Close,
	)
	s.addViewer(v)

	// Viewers only ever send a Goodbye; any read result ends the session.
	codec.Decode()
	s.removeViewer(id)
}
