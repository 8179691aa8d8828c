package server

import (
	"sync"

	"github.com/diegok/solopong/internal/protocol"
)

const sendBufferSize = 8

// Viewer kinds
const (
	KindTCP       = "tcp"
	KindWebSocket = "websocket"
	KindSSH       = "ssh"
)

// Viewer is a connected spectator. Frames are queued and written by a
// dedicated goroutine so a slow viewer never stalls the frame driver.
type Viewer struct {
	ID   int
	Name string
	Kind string

	write    func(protocol.Frame) error
	farewell func()
	closeFn  func() error

	sendCh chan protocol.Frame
	done   chan struct{}
	exited chan struct{}
	once   sync.Once
}

// NewViewer creates a viewer. write sends one frame; farewell (optional)
// runs before closeFn when the viewer shuts down.
func NewViewer(id int, name, kind string, write func(protocol.Frame) error, farewell func(), closeFn func() error) *Viewer {
	return &Viewer{
		ID:       id,
		Name:     name,
		Kind:     kind,
		write:    write,
		farewell: farewell,
		closeFn:  closeFn,
		sendCh:   make(chan protocol.Frame, sendBufferSize),
		done:     make(chan struct{}),
		exited:   make(chan struct{}),
	}
}

// StartWriter starts the goroutine that writes frames to the connection.
// onError is called once if a write fails.
func (v *Viewer) StartWriter(onError func()) {
	go func() {
		defer close(v.exited)
		defer v.shutdown()

		for {
			select {
			case <-v.done:
				return
			case frame := <-v.sendCh:
				if err := v.write(frame); err != nil {
					if onError != nil {
						onError()
					}
					return
				}
			}
		}
	}()
}

func (v *Viewer) shutdown() {
	if v.farewell != nil {
		v.farewell()
	}
	if v.closeFn != nil {
		v.closeFn()
	}
}

// Send queues a frame (non-blocking). When the queue is full the oldest
// frame is dropped; spectators only care about the latest state.
func (v *Viewer) Send(frame protocol.Frame) {
	for {
		select {
		case v.sendCh <- frame:
			return
		default:
		}
		select {
		case <-v.sendCh:
		default:
		}
	}
}

// Close stops the writer, which then says goodbye and closes the connection
func (v *Viewer) Close() {
	v.once.Do(func() {
		close(v.done)
	})
}

// Done is closed once Close has been called
func (v *Viewer) Done() <-chan struct{} {
	return v.done
}

// Exited is closed once the writer has finished shutting down
func (v *Viewer) Exited() <-chan struct{} {
	return v.exited
}
