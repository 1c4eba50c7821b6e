package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	Rows      int           `json:"rows"`
	Cols      int           `json:"cols"`
	FrameRate time.Duration `json:"frame_rate"`
	Seed      uint64        `json:"seed"` // 0 seeds from the clock
}

// DefaultConfig returns a 30x90 grid redrawn once a second
func DefaultConfig() Config {
	return Config{
		Rows:      30,
		Cols:      90,
		FrameRate: time.Second,
	}
}

// LoadConfig loads configuration from a JSON file over the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects dimensions and frame rates the driver cannot run with
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return errors.Errorf("grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	}
	if c.FrameRate <= 0 {
		return errors.Errorf("frame rate must be positive, got %v", c.FrameRate)
	}
	return nil
}
