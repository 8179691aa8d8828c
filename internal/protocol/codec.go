package protocol

import (
	"encoding/gob"
	"fmt"
	"io"
	"sync"
)

// UnexpectedMessageError is returned by Expect when the peer sent a
// different message than the one the exchange calls for.
type UnexpectedMessageError struct {
	Want MessageType
	Got  MessageType
}

func (e *UnexpectedMessageError) Error() string {
	return fmt.Sprintf("expected message type %d, got %d", e.Want, e.Got)
}

// Codec frames spectator messages over a gob stream. Encoding is
// serialized so a writer goroutine and a closing reader may share it;
// decoding must stay on one goroutine.
type Codec struct {
	mu  sync.Mutex
	enc *gob.Encoder
	dec *gob.Decoder
}

// NewCodec creates a codec for the given read/writer
func NewCodec(rw io.ReadWriter) *Codec {
	return &Codec{
		enc: gob.NewEncoder(rw),
		dec: gob.NewDecoder(rw),
	}
}

// Encode writes a message
func (c *Codec) Encode(msg *Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enc.Encode(msg)
}

// Send wraps payload in a message of the given type and writes it
func (c *Codec) Send(t MessageType, payload interface{}) error {
	return c.Encode(&Message{Type: t, Payload: payload})
}

// Decode reads a message
func (c *Codec) Decode() (*Message, error) {
	var msg Message
	if err := c.dec.Decode(&msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Expect reads the next message and fails unless it has type t
func (c *Codec) Expect(t MessageType) (*Message, error) {
	msg, err := c.Decode()
	if err != nil {
		return nil, err
	}
	if msg.Type != t {
		return nil, &UnexpectedMessageError{Want: t, Got: msg.Type}
	}
	return msg, nil
}
