package client

import (
	"net"
	"strings"
	"testing"
	"time"

	"github.com/diegok/solopong/internal/protocol"
)

// fakeServer answers the handshake on conn. The returned channel is closed
// once the welcome has been written.
func fakeServer(t *testing.T, conn net.Conn, welcome protocol.Welcome) (*protocol.Codec, <-chan struct{}) {
	t.Helper()
	codec := protocol.NewCodec(conn)
	done := make(chan struct{})
	go func() {
		defer close(done)
		msg, err := codec.Decode()
		if err != nil || msg.Type != protocol.MsgHello {
			conn.Close()
			return
		}
		codec.Encode(&protocol.Message{Type: protocol.MsgWelcome, Payload: welcome})
	}()
	return codec, done
}

func TestClient_AttachAccepted(t *testing.T) {
	local, remote := net.Pipe()
	defer remote.Close()
	srv, handshook := fakeServer(t, remote, protocol.Welcome{ViewerID: 4, Accepted: true, FieldWidth: 480, FieldHeight: 320})

	c := NewClient("bob")
	if err := c.Attach(local); err != nil {
		t.Fatalf("expected attach to succeed, got %v", err)
	}
	defer c.Close()

	if c.ViewerID != 4 || c.FieldWidth != 480 || c.FieldHeight != 320 {
		t.Errorf("unexpected welcome values: id=%d field=%vx%v", c.ViewerID, c.FieldWidth, c.FieldHeight)
	}
	if !c.IsConnected() {
		t.Error("expected client to be connected")
	}

	<-handshook
	srv.Encode(&protocol.Message{Type: protocol.MsgFrame, Payload: protocol.Frame{Tick: 12}})
	select {
	case f := <-c.Frames:
		if f.Tick != 12 {
			t.Errorf("expected tick 12, got %d", f.Tick)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for frame")
	}

	srv.Encode(&protocol.Message{Type: protocol.MsgGoodbye, Payload: protocol.Goodbye{Reason: "match closed"}})
	select {
	case reason := <-c.Goodbye:
		if reason != "match closed" {
			t.Errorf("unexpected goodbye reason %q", reason)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for goodbye")
	}
}

func TestClient_AttachRejected(t *testing.T) {
	local, remote := net.Pipe()
	defer remote.Close()
	fakeServer(t, remote, protocol.Welcome{Accepted: false, Reason: "too many spectators"})

	c := NewClient("bob")
	err := c.Attach(local)
	if err == nil {
		t.Fatal("expected attach to fail")
	}
	if !strings.Contains(err.Error(), "too many spectators") {
		t.Errorf("expected rejection reason in error, got %v", err)
	}
	if c.IsConnected() {
		t.Error("expected rejected client to stay disconnected")
	}
}

func TestClient_DropsOldestFrame(t *testing.T) {
	c := NewClient("bob")
	for tick := 1; tick <= channelBufferSize+3; tick++ {
		c.dispatchMessage(&protocol.Message{Type: protocol.MsgFrame, Payload: protocol.Frame{Tick: tick}})
	}

	if len(c.Frames) != channelBufferSize {
		t.Fatalf("expected %d buffered frames, got %d", channelBufferSize, len(c.Frames))
	}
	if f := <-c.Frames; f.Tick != 4 {
		t.Errorf("expected oldest buffered tick 4, got %d", f.Tick)
	}
}

func TestClient_ReceiveErrorReported(t *testing.T) {
	local, remote := net.Pipe()
	_, handshook := fakeServer(t, remote, protocol.Welcome{ViewerID: 1, Accepted: true})

	c := NewClient("bob")
	if err := c.Attach(local); err != nil {
		t.Fatalf("expected attach to succeed, got %v", err)
	}

	<-handshook
	remote.Close()
	select {
	case err := <-c.Error:
		if err == nil {
			t.Error("expected non-nil error")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for receive error")
	}
}
