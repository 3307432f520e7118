package app

import (
	"errors"
	"fmt"

	"github.com/vk/seatfinder/internal/report"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath  string // one pass per line, "-" for stdin
	LayoutPath string // optional HCL layout
	Format     string

	LogFormat   string
	LogLevel    string
	WorkerCount int
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if _, err := report.New(cfg.Format); err != nil {
		return nil, err
	}
	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("WorkerCount must be at least 1, got %d", cfg.WorkerCount)
	}
	return &cfg, nil
}
