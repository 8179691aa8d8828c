package server

import (
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/diegok/solopong/internal/protocol"
	"github.com/diegok/solopong/internal/ui"
)

const ctrlC = 3

func (s *Server) startSSH(addr, hostKeyPath string) error {
	srv, err := wish.NewServer(
		wish.WithAddress(addr),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			s.spectatorMiddleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(s.logger),
		),
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to create ssh server: %w", err)
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to start ssh server: %w", err)
	}
	s.sshSrv = srv

	s.logger.Info("ssh spectators enabled", "addr", ln.Addr().String())
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("ssh server", "err", err)
		}
	}()
	return nil
}

// spectatorMiddleware streams the match as ANSI text to an SSH terminal
func (s *Server) spectatorMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		id, err := s.reserveID()
		if err != nil {
			fmt.Fprintf(sess, "Sorry: %v\r\n", err)
			return
		}

		size := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				size.update(win.Width, win.Height)
			}
		}()

		io.WriteString(sess, ui.ANSIBegin())

		v := NewViewer(id, sess.User(), KindSSH,
			func(f protocol.Frame) error {
				cols, rows := size.get()
				_, err := io.WriteString(sess, ui.ANSIFrame(f.Snapshot(), cols, rows))
				return err
			},
			func() {
				io.WriteString(sess, ui.ANSIEnd())
			},
			sess.Close,
		)
		s.addViewer(v)

		buf := make([]byte, 32)
	read:
		for {
			n, err := sess.Read(buf)
			for _, b := range buf[:n] {
				if b == 'q' || b == 'Q' || b == ctrlC {
					break read
				}
			}
			if err != nil {
				break
			}
		}

		s.removeViewer(id)
		<-v.Exited()
		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (t *sizeTracker) update(width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.width = width
	t.height = height
}

func (t *sizeTracker) get() (int, int) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.width, t.height
}
