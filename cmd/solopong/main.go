package main

import (
	"fmt"
	"net"
	"os"

	"golang.org/x/term"

	"github.com/diegok/solopong/internal/app"
	"github.com/diegok/solopong/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: solopong needs an interactive terminal")
		os.Exit(1)
	}

	if cfg.SpectatePort != 0 {
		showSpectatorInfo(cfg.SpectatePort)
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  solopong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --gated               Wait for ENTER/SPACE to serve and show a timer")
	fmt.Fprintln(os.Stderr, "  --config <file>       TOML tuning file (env SOLOPONG_CONFIG)")
	fmt.Fprintln(os.Stderr, "  --log <file>          Log file (env SOLOPONG_LOG)")
	fmt.Fprintln(os.Stderr, "  --log-level <level>   debug, info, warn or error (default: info)")
	fmt.Fprintln(os.Stderr, "  --mute                Disable sound")
	fmt.Fprintln(os.Stderr, "  --seed <n>            Random seed (default: time based)")
	fmt.Fprintln(os.Stderr, "  --spectate-port <n>   TCP spectator port (default: off)")
	fmt.Fprintln(os.Stderr, "  --ws-addr <addr>      WebSocket spectator address")
	fmt.Fprintln(os.Stderr, "  --ssh-addr <addr>     SSH spectator address")
	fmt.Fprintln(os.Stderr, "  --ssh-host-key <file> SSH host key")
	fmt.Fprintln(os.Stderr, "  --frame-every <n>     Send spectators every Nth frame (default: 2)")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  solopong")
	fmt.Fprintln(os.Stderr, "  solopong --gated --config tuning.toml")
	fmt.Fprintln(os.Stderr, "  solopong --spectate-port 5555 --ws-addr :8080")
}

func showSpectatorInfo(port int) {
	fmt.Printf("Spectators can watch on port %d using:\n", port)
	fmt.Println("")

	addrs, err := net.InterfaceAddrs()
	if err == nil {
		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}

			ip := ipNet.IP
			if ip.IsLoopback() || ip.To4() == nil {
				continue
			}

			fmt.Printf("  pong-watch --join %s:%d\n", ip.String(), port)
		}
	}

	fmt.Printf("  pong-watch --join localhost:%d  (same machine)\n", port)
	fmt.Println("")
}
