package app

import (
	"context"
	"fmt"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/solopong/internal/audio"
	"github.com/diegok/solopong/internal/config"
	"github.com/diegok/solopong/internal/game"
	"github.com/diegok/solopong/internal/server"
	"github.com/diegok/solopong/internal/ui"
)

// App is the main application controller. It owns the terminal, translates
// terminal events into driver inputs and tears everything down on exit.
type App struct {
	cfg      *config.Config
	logger   *log.Logger
	screen   *ui.Screen
	renderer *ui.Renderer
	player   *audio.Player
	server   *server.Server
	driver   *Driver

	// Last pointer position in field units; keys nudge it
	pointerY float64
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:      cfg,
		pointerY: cfg.Tuning.FieldHeight / 2,
	}
}

// Run is the main entry point for the application.
// It initializes the screen, sets up signal handling, and plays until quit.
func (a *App) Run() error {
	logger, logCloser, err := NewLogger(a.cfg.LogPath, a.cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logCloser.Close()
	a.logger = logger

	// Game works without sound
	a.player = audio.NewPlayer(a.cfg.Mute)
	if err := a.player.Init(); err != nil {
		a.logger.Warn("audio disabled", "err", err)
	}

	screen, err := ui.InitScreen()
	if err != nil {
		a.player.Close()
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	runErr := a.play(ctx, cancel)

	a.cleanup()

	return runErr
}

// play wires the match to its sinks and runs the frame driver until ctx is done
func (a *App) play(ctx context.Context, quit context.CancelFunc) error {
	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ctrl := NewController(a.cfg.Tuning, a.cfg.Gated, rand.New(rand.NewSource(seed)), a.player)

	sinks := Fanout{a.renderer}
	if a.cfg.Spectating() {
		a.server = server.NewServer(a.cfg, a.logger)
		if err := a.server.Start(); err != nil {
			return fmt.Errorf("failed to start spectator feed: %w", err)
		}
		sinks = append(sinks, a.server)
	}

	a.driver = NewDriver(ctrl, sinks, a.cfg.Tuning.TickRate, a.logger)
	a.logger.Info("match ready", "gated", a.cfg.Gated, "seed", seed)

	go a.pollEvents(ctx, quit)

	return a.driver.Run(ctx)
}

// pollEvents forwards terminal events until the screen is finalized
func (a *App) pollEvents(ctx context.Context, quit context.CancelFunc) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		if a.handleEvent(ctx, ev) {
			quit()
			return
		}
	}
}

// handleEvent processes keyboard, mouse and resize events.
// Returns true if the application should quit.
func (a *App) handleEvent(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key, r := ev.Key(), ev.Rune()
		switch {
		case ui.IsQuitKey(key, r):
			return true
		case ui.IsStartKey(key, r):
			a.driver.Send(ctx, Input{Kind: InputStart})
		case ui.IsRestartKey(key, r):
			a.driver.Send(ctx, Input{Kind: InputRestart})
		default:
			if nudge := ui.KeyToNudge(key, r); nudge != 0 {
				a.movePointer(ctx, a.pointerY+nudge)
			}
		}

	case *tcell.EventMouse:
		_, row := ev.Position()
		l := a.renderer.Layout(a.cfg.Tuning.FieldWidth, a.cfg.Tuning.FieldHeight)
		a.movePointer(ctx, l.FieldY(row))

	case *tcell.EventResize:
		a.screen.Clear()
	}

	return false
}

func (a *App) movePointer(ctx context.Context, y float64) {
	a.pointerY = game.Clamp(y, 0, a.cfg.Tuning.FieldHeight)
	a.driver.Send(ctx, Input{Kind: InputPointer, Y: a.pointerY})
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	if a.server != nil {
		a.server.Stop()
	}

	if a.player != nil {
		a.player.Close()
	}

	if a.screen != nil {
		a.screen.Fini()
	}
}
