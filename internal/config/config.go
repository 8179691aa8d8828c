package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/diegok/solopong/internal/game"
)

// Default values for configuration
const (
	DefaultSpectatePort = 0
	DefaultFrameEvery   = 2
	DefaultLogLevel     = "info"
)

// Environment variables consulted when the matching flag is not given
const (
	EnvConfig = "SOLOPONG_CONFIG"
	EnvLog    = "SOLOPONG_LOG"
)

// Config holds the application configuration
type Config struct {
	Gated        bool
	ConfigPath   string
	LogPath      string
	LogLevel     string
	Mute         bool
	Seed         int64
	SpectatePort int
	WSAddr       string
	SSHAddr      string
	SSHHostKey   string
	FrameEvery   int
	Tuning       game.Tuning
}

// Spectating reports whether any spectator transport is enabled
func (c *Config) Spectating() bool {
	return c.SpectatePort != 0 || c.WSAddr != "" || c.SSHAddr != ""
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("solopong", flag.ContinueOnError)

	gated := fs.Bool("gated", false, "wait for a start command and show a timer")
	cfgPath := fs.String("config", GetEnv(EnvConfig, ""), "TOML tuning file")
	logPath := fs.String("log", GetEnv(EnvLog, ""), "log file (default: discard)")
	logLevel := fs.String("log-level", DefaultLogLevel, "log level (debug, info, warn, error)")
	mute := fs.Bool("mute", false, "disable sound")
	seed := fs.Int64("seed", 0, "random seed (0 = time based)")
	spectatePort := fs.Int("spectate-port", DefaultSpectatePort, "TCP spectator port (0 = off)")
	wsAddr := fs.String("ws-addr", "", "WebSocket spectator address, e.g. :8080")
	sshAddr := fs.String("ssh-addr", "", "SSH spectator address, e.g. :2222")
	sshKey := fs.String("ssh-host-key", ".ssh/solopong_ed25519", "SSH host key path")
	frameEvery := fs.Int("frame-every", DefaultFrameEvery, "send a spectator frame every N ticks (>=1)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Validate port range
	if *spectatePort < 0 || *spectatePort > 65535 {
		return nil, fmt.Errorf("spectate port must be between 0 and 65535, got %d", *spectatePort)
	}

	if *frameEvery < 1 {
		return nil, fmt.Errorf("frame-every must be at least 1, got %d", *frameEvery)
	}

	if *sshAddr != "" && *sshKey == "" {
		return nil, errors.New("--ssh-addr requires --ssh-host-key")
	}

	tuning, err := LoadTuning(*cfgPath)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Gated:        *gated,
		ConfigPath:   *cfgPath,
		LogPath:      *logPath,
		LogLevel:     *logLevel,
		Mute:         *mute,
		Seed:         *seed,
		SpectatePort: *spectatePort,
		WSAddr:       *wsAddr,
		SSHAddr:      *sshAddr,
		SSHHostKey:   *sshKey,
		FrameEvery:   *frameEvery,
		Tuning:       tuning,
	}

	return cfg, nil
}

// LoadTuning reads a TOML tuning file over the defaults. An empty path
// returns the defaults.
func LoadTuning(path string) (game.Tuning, error) {
	tuning := game.DefaultTuning()
	if path == "" {
		return tuning, nil
	}

	md, err := toml.DecodeFile(path, &tuning)
	if err != nil {
		return game.Tuning{}, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return game.Tuning{}, fmt.Errorf("unknown tuning key %q", undecoded[0].String())
	}

	if err := tuning.Validate(); err != nil {
		return game.Tuning{}, fmt.Errorf("invalid tuning file %s: %w", path, err)
	}
	return tuning, nil
}
