package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/ryym/lifegame/model"
	"github.com/ryym/lifegame/utils"
)

// errShutdown stops the game loop when a signal arrives
var errShutdown = errors.New("shutdown requested")

// loadConfig returns the defaults unless a config file was given
func loadConfig(path string) (utils.Config, error) {
	if path == "" {
		return utils.DefaultConfig(), nil
	}
	return utils.LoadConfig(path)
}

// newRandSource seeds a generator, falling back to the clock for seed 0
func newRandSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer) (
	*model.Grid,
	*model.TerminalRenderer,
	*utils.Stats,
) {
	grid := model.NewGrid(config.Rows, config.Cols, newRandSource(config.Seed))
	renderer := model.NewTerminalRenderer(out, model.NewFramePool())
	stats := utils.NewStats()

	return grid, renderer, stats
}

// displayGameInfo shows the initial game information
func displayGameInfo(w io.Writer, config utils.Config, grid *model.Grid) {
	fmt.Fprintf(w, "Grid: %dx%d | Frame rate: %v | Initial living cells: %d\n",
		grid.Rows(), grid.Cols(), config.FrameRate, grid.CountLivingCells())
	fmt.Fprintln(w, "Press Ctrl+C to exit")
}

// runGame advances and draws the grid once per frameRate. It returns nil
// when a signal arrives on sigs or ctx is done, and the renderer's error if
// drawing fails.
func runGame(
	ctx context.Context,
	sigs <-chan os.Signal,
	grid *model.Grid,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
	frameRate time.Duration,
) error {
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		select {
		case <-ctx.Done():
			return nil
		case <-sigs:
			return errShutdown
		}
	})

	eg.Go(func() error {
		ticker := time.NewTicker(frameRate)
		defer ticker.Stop()

		// The first frame is measured as if it followed a full tick
		lastFrameTime := time.Now().Add(-frameRate)
		for {
			grid.Update()
			if err := renderer.Display(grid); err != nil {
				return err
			}

			frameStart := time.Now()
			stats.Update(grid.Generation(), grid.CountLivingCells(), frameStart.Sub(lastFrameTime))
			lastFrameTime = frameStart

			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		}
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, errShutdown) {
		return err
	}
	return nil
}

// displaySummary shows the final stats of a run
func displaySummary(w io.Writer, stats *utils.Stats) {
	fmt.Fprintf(w, "Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, stats.Runtime().Seconds())
	fmt.Fprintf(w, "Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
