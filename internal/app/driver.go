package app

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/diegok/solopong/internal/game"
)

const (
	inputBufferSize = 64
	clockPeriod     = time.Second
)

// InputKind identifies a host input message
type InputKind int

const (
	InputPointer InputKind = iota
	InputStart
	InputRestart
)

// Input is a message from the host to the driver. Y is only used by
// InputPointer and is in field coordinates.
type Input struct {
	Kind InputKind
	Y    float64
}

// RenderSink receives one snapshot per tick. Implementations must not
// retain or mutate driver state.
type RenderSink interface {
	Render(game.Snapshot)
}

// SinkFunc adapts a function to RenderSink
type SinkFunc func(game.Snapshot)

func (f SinkFunc) Render(s game.Snapshot) {
	f(s)
}

// Fanout renders to every sink in order
type Fanout []RenderSink

func (f Fanout) Render(s game.Snapshot) {
	for _, sink := range f {
		sink.Render(s)
	}
}

// Driver runs the frame loop. All inputs are queued and applied on the
// driver goroutine, and any input queued before a tick is applied before
// that tick's simulation step.
type Driver struct {
	ctrl     *Controller
	sink     RenderSink
	inputs   chan Input
	interval time.Duration
	now      func() time.Time
	clock    *time.Ticker
	logger   *log.Logger
}

// NewDriver creates a driver ticking tickRate times per second
func NewDriver(ctrl *Controller, sink RenderSink, tickRate int, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if tickRate < 1 || tickRate > game.MaxTickRate {
		tickRate = game.DefaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	if interval <= 0 {
		interval = time.Second / game.DefaultTickRate
	}
	return &Driver{
		ctrl:     ctrl,
		sink:     sink,
		inputs:   make(chan Input, inputBufferSize),
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Send queues an input. It blocks while the queue is full and gives up
// when ctx is done.
func (d *Driver) Send(ctx context.Context, in Input) bool {
	select {
	case d.inputs <- in:
		return true
	case <-ctx.Done():
		return false
	}
}

// Tick applies pending input, advances the simulation and renders
func (d *Driver) Tick() {
	d.drain()
	d.ctrl.Step()
	d.sink.Render(d.ctrl.Snapshot())
}

// Run drives the match until ctx is done
func (d *Driver) Run(ctx context.Context) error {
	frames := time.NewTicker(d.interval)
	defer frames.Stop()
	defer d.stopClock()

	d.logger.Info("frame driver started", "interval", d.interval, "gated", d.ctrl.Gated())

	for {
		var clockC <-chan time.Time
		if d.clock != nil {
			clockC = d.clock.C
		}

		select {
		case <-ctx.Done():
			d.logger.Info("frame driver stopped", "ticks", d.ctrl.State().Tick)
			return nil

		case in := <-d.inputs:
			d.apply(in)

		case <-frames.C:
			d.Tick()

		case now := <-clockC:
			d.ctrl.RefreshElapsed(now)
		}
	}
}

// drain applies every input queued so far without blocking
func (d *Driver) drain() {
	for {
		select {
		case in := <-d.inputs:
			d.apply(in)
		default:
			return
		}
	}
}

func (d *Driver) apply(in Input) {
	switch in.Kind {
	case InputPointer:
		d.ctrl.ReportPointerY(in.Y)

	case InputStart:
		if d.ctrl.Start(d.now()) {
			d.startClock()
			d.logger.Info("session started")
		}

	case InputRestart:
		if d.ctrl.Restart() {
			d.stopClock()
			d.logger.Info("session restarted")
		}
	}
}

// startClock arms the once-per-second elapsed display refresh
func (d *Driver) startClock() {
	d.stopClock()
	d.clock = time.NewTicker(clockPeriod)
}

func (d *Driver) stopClock() {
	if d.clock != nil {
		d.clock.Stop()
		d.clock = nil
	}
}
