package client

import (
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/diegok/solopong/internal/protocol"
)

const (
	channelBufferSize = 16
	connectTimeout    = 5 * time.Second
)

// Client watches a solopong match over the TCP spectator feed.
type Client struct {
	Name        string
	ViewerID    int
	FieldWidth  float64
	FieldHeight float64
	conn        net.Conn
	codec       *protocol.Codec
	mu          sync.Mutex
	connected   bool
	Frames      chan protocol.Frame
	Goodbye     chan string
	Error       chan error
	done        chan struct{}
}

// NewClient creates a new client with the given viewer name.
func NewClient(name string) *Client {
	return &Client{
		Name:    name,
		Frames:  make(chan protocol.Frame, channelBufferSize),
		Goodbye: make(chan string, 1),
		Error:   make(chan error, channelBufferSize),
		done:    make(chan struct{}),
	}
}

// Connect dials the spectator feed at addr and performs the handshake.
func (c *Client) Connect(addr string) error {
	conn, err := net.DialTimeout("tcp", addr, connectTimeout)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	return c.Attach(conn)
}

// Attach runs the Hello/Welcome handshake over an established connection
// and starts receiving frames. The connection is closed on failure.
func (c *Client) Attach(conn net.Conn) error {
	c.conn = conn
	c.codec = protocol.NewCodec(conn)

	if err := c.codec.Send(protocol.MsgHello, protocol.Hello{ViewerName: c.Name}); err != nil {
		c.conn.Close()
		return fmt.Errorf("failed to send hello: %w", err)
	}

	c.conn.SetReadDeadline(time.Now().Add(connectTimeout))

	msg, err := c.codec.Expect(protocol.MsgWelcome)
	if err != nil {
		c.conn.Close()
		return fmt.Errorf("failed to receive welcome: %w", err)
	}

	c.conn.SetReadDeadline(time.Time{})

	welcome, ok := msg.Payload.(protocol.Welcome)
	if !ok {
		c.conn.Close()
		return fmt.Errorf("invalid welcome payload")
	}

	if !welcome.Accepted {
		c.conn.Close()
		return fmt.Errorf("spectating rejected: %s", welcome.Reason)
	}

	c.ViewerID = welcome.ViewerID
	c.FieldWidth = welcome.FieldWidth
	c.FieldHeight = welcome.FieldHeight
	c.mu.Lock()
	c.connected = true
	c.mu.Unlock()

	go c.receiveLoop()

	return nil
}

// Close tells the server we are leaving and closes the connection.
func (c *Client) Close() {
	c.mu.Lock()
	wasConnected := c.connected
	c.connected = false
	c.mu.Unlock()

	if wasConnected {
		close(c.done)
		c.conn.SetWriteDeadline(time.Now().Add(100 * time.Millisecond))
		c.codec.Send(protocol.MsgGoodbye, protocol.Goodbye{Reason: "viewer left"})
	}
	if c.conn != nil {
		c.conn.Close()
	}
}

// IsConnected returns true if the client is connected to the server.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// receiveLoop continuously reads messages from the server and dispatches them.
func (c *Client) receiveLoop() {
	defer func() {
		c.mu.Lock()
		c.connected = false
		c.mu.Unlock()
	}()

	for {
		msg, err := c.codec.Decode()
		if err != nil {
			select {
			case <-c.done:
			default:
				select {
				case c.Error <- fmt.Errorf("receive error: %w", err):
				default:
				}
			}
			return
		}

		if msg.Type == protocol.MsgGoodbye {
			reason := ""
			if bye, ok := msg.Payload.(protocol.Goodbye); ok {
				reason = bye.Reason
			}
			select {
			case c.Goodbye <- reason:
			default:
			}
			return
		}

		c.dispatchMessage(msg)
	}
}

// dispatchMessage routes a message to the appropriate channel.
func (c *Client) dispatchMessage(msg *protocol.Message) {
	if msg.Type != protocol.MsgFrame {
		return
	}
	frame, ok := msg.Payload.(protocol.Frame)
	if !ok {
		return
	}
	for {
		select {
		case c.Frames <- frame:
			return
		default:
		}
		// Drop old frame if channel is full
		select {
		case <-c.Frames:
		default:
		}
	}
}
