package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/diegok/solopong/internal/app"
	"github.com/diegok/solopong/internal/config"
)

func main() {
	cfg, err := config.ParseWatchArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: pong-watch needs an interactive terminal")
		os.Exit(1)
	}

	if err := app.NewWatcher(cfg).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pong-watch --join <address> [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --port <port>   Spectator port when the address has none (default: 5555)")
	fmt.Fprintln(os.Stderr, "  --name <name>   Viewer name")
	fmt.Fprintln(os.Stderr, "  --log <file>    Log file")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  pong-watch --join 192.168.1.100")
	fmt.Fprintln(os.Stderr, "  pong-watch --join localhost:5555 --name Ana")
}
