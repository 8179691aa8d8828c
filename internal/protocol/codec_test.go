package protocol

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestCodec_EncodeDecodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	codec := NewCodec(&buf)

	original := &Message{
		Type: MsgFrame,
		Payload: Frame{
			Tick: 42,
			Ball: BoxState{X: 10.5, Y: 20.3, W: 16, H: 16},
		},
	}

	if err := codec.Encode(original); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	decoded, err := codec.Decode()
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if decoded.Type != original.Type {
		t.Errorf("type mismatch: got %v, want %v", decoded.Type, original.Type)
	}

	frame, ok := decoded.Payload.(Frame)
	if !ok {
		t.Fatalf("payload type mismatch")
	}

	if frame.Tick != 42 {
		t.Errorf("tick mismatch: got %d, want 42", frame.Tick)
	}
	if frame.Ball.X != 10.5 {
		t.Errorf("ball X mismatch: got %f, want 10.5", frame.Ball.X)
	}
}

func TestCodec_SendExpect(t *testing.T) {
	var buf bytes.Buffer
	codec := NewCodec(&buf)

	if err := codec.Send(MsgGoodbye, Goodbye{Reason: "bye"}); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	msg, err := codec.Expect(MsgGoodbye)
	if err != nil {
		t.Fatalf("expect failed: %v", err)
	}
	if bye, ok := msg.Payload.(Goodbye); !ok || bye.Reason != "bye" {
		t.Errorf("expected goodbye 'bye', got %+v", msg.Payload)
	}
}

func TestCodec_ExpectWrongType(t *testing.T) {
	var buf bytes.Buffer
	codec := NewCodec(&buf)

	codec.Send(MsgFrame, Frame{Tick: 1})

	_, err := codec.Expect(MsgWelcome)
	var unexpected *UnexpectedMessageError
	if !errors.As(err, &unexpected) {
		t.Fatalf("expected UnexpectedMessageError, got %v", err)
	}
	if unexpected.Want != MsgWelcome || unexpected.Got != MsgFrame {
		t.Errorf("unexpected error fields %+v", unexpected)
	}
}

func TestCodec_DecodeEOF(t *testing.T) {
	codec := NewCodec(&bytes.Buffer{})
	if _, err := codec.Decode(); !errors.Is(err, io.EOF) {
		t.Errorf("expected EOF on empty stream, got %v", err)
	}
}
