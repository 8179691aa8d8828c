package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
)

// DefaultWatchPort is assumed when --join has no port
const DefaultWatchPort = 5555

// WatchConfig holds the spectator client configuration
type WatchConfig struct {
	Addr       string
	ViewerName string
	LogPath    string
}

// ParseWatchArgs parses pong-watch command line arguments
func ParseWatchArgs(args []string) (*WatchConfig, error) {
	fs := flag.NewFlagSet("pong-watch", flag.ContinueOnError)

	join := fs.String("join", "", "host (or host:port) of a solopong match")
	port := fs.Int("port", DefaultWatchPort, "spectator port used when --join has none (1-65535)")
	name := fs.String("name", "", "viewer name")
	logPath := fs.String("log", GetEnv(EnvLog, ""), "log file (default: discard)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *join == "" {
		return nil, errors.New("must specify --join")
	}

	if *port < 1 || *port > 65535 {
		return nil, fmt.Errorf("port must be between 1 and 65535, got %d", *port)
	}

	addr := *join
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, strconv.Itoa(*port))
	}

	return &WatchConfig{
		Addr:       addr,
		ViewerName: *name,
		LogPath:    *logPath,
	}, nil
}
