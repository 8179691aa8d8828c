package server

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/diegok/solopong/internal/protocol"
)

const wsWriteTimeout = time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// wsMessage is the JSON envelope sent to browser spectators
type wsMessage struct {
	Type        string          `json:"type"`
	ViewerID    int             `json:"viewerId,omitempty"`
	FieldWidth  float64         `json:"fieldWidth,omitempty"`
	FieldHeight float64         `json:"fieldHeight,omitempty"`
	Message     string          `json:"message,omitempty"`
	Frame       *protocol.Frame `json:"frame,omitempty"`
}

func (s *Server) startWebSocket(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to start websocket server: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	s.httpSrv = &http.Server{Handler: mux}

	s.logger.Info("websocket spectators enabled", "addr", ln.Addr().String())
	go func() {
		if err := s.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("websocket server", "err", err)
		}
	}()
	return nil
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "err", err)
		return
	}

	id, err := s.reserveID()
	if err != nil {
		conn.WriteJSON(wsMessage{Type: "error", Message: err.Error()})
		conn.Close()
		return
	}

	fieldW, fieldH := s.fieldSize()
	if err := conn.WriteJSON(wsMessage{
		Type:        "welcome",
		ViewerID:    id,
		FieldWidth:  fieldW,
		FieldHeight: fieldH,
	}); err != nil {
		s.releaseID(id)
		conn.Close()
		return
	}

	v := NewViewer(id, r.RemoteAddr, KindWebSocket,
		func(f protocol.Frame) error {
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			return conn.WriteJSON(wsMessage{Type: "frame", Frame: &f})
		},
		func() {
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "match closed"),
				time.Now().Add(wsWriteTimeout))
		},
		conn.Close,
	)
	s.addViewer(v)

	// Browser input is ignored; reading keeps control frames flowing and
	// notices when the page goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	s.removeViewer(id)
}
