package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/solopong/internal/client"
	"github.com/diegok/solopong/internal/config"
	"github.com/diegok/solopong/internal/ui"
)

// Watcher renders a remote match received over the spectator feed.
type Watcher struct {
	cfg      *config.WatchConfig
	screen   *ui.Screen
	renderer *ui.Renderer
	client   *client.Client
}

// NewWatcher creates a spectator for the given configuration
func NewWatcher(cfg *config.WatchConfig) *Watcher {
	return &Watcher{cfg: cfg}
}

// Run connects to the match and renders frames until quit or the match ends
func (w *Watcher) Run() error {
	logger, logCloser, err := NewLogger(w.cfg.LogPath, "info")
	if err != nil {
		return err
	}
	defer logCloser.Close()

	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	w.screen = screen
	w.renderer = ui.NewRenderer(screen)
	defer w.cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w.renderer.RenderConnecting(w.cfg.Addr)

	name := w.cfg.ViewerName
	if name == "" {
		name = "viewer"
	}
	w.client = client.NewClient(name)
	if err := w.client.Connect(w.cfg.Addr); err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	logger.Info("watching", "addr", w.cfg.Addr, "viewer", w.client.ViewerID)

	return w.mainLoop(ctx)
}

func (w *Watcher) mainLoop(ctx context.Context) error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := w.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if key, ok := ev.(*tcell.EventKey); ok && ui.IsQuitKey(key.Key(), key.Rune()) {
				return nil
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				w.screen.Clear()
			}

		case frame := <-w.client.Frames:
			w.renderer.Render(frame.Snapshot())

		case reason := <-w.client.Goodbye:
			w.renderer.RenderError(fmt.Sprintf("match ended: %s", reason))
			w.waitKey(ctx, events)
			return nil

		case err := <-w.client.Error:
			w.renderer.RenderError(err.Error())
			w.waitKey(ctx, events)
			return err
		}
	}
}

// waitKey blocks until any key is pressed or ctx is done
func (w *Watcher) waitKey(ctx context.Context, events <-chan tcell.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if _, ok := ev.(*tcell.EventKey); ok {
				return
			}
		}
	}
}

func (w *Watcher) cleanup() {
	if w.client != nil {
		w.client.Close()
	}
	if w.screen != nil {
		w.screen.Fini()
	}
}
