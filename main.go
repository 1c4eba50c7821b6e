package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, sigChan))
}

// run plays the game until a signal arrives and returns the exit code.
// Frames go to stdout, everything else to stderr.
func run(args []string, stdout, stderr io.Writer, sigs <-chan os.Signal) int {
	flags := flag.NewFlagSet("lifegame", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "path to a JSON config file")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	config, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "Error loading configuration:", err)
		return 1
	}

	grid, renderer, stats := initializeGame(config, stdout)
	displayGameInfo(stderr, config, grid)

	err = runGame(context.Background(), sigs, grid, renderer, stats, config.FrameRate)
	fmt.Fprintln(stderr, "\nShutting down...")
	displaySummary(stderr, stats)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}
