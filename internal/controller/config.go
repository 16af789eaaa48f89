package controller

import (
	"fmt"

	"github.com/caio/go-fenwickviz"
)

var DefaultConfig = Config{
	Len:                 16,
	MaxLen:              64,
	MinValue:            -100,
	MaxValue:            100,
	Seed:                0,
	ClearResultOnUpdate: false,
}

type Config struct {
	// Len is the initial array length.
	Len int
	// MaxLen caps Resize, keeping the drawing legible.
	MaxLen int
	// MinValue and MaxValue bound the values drawn by Randomize.
	MinValue int64
	MaxValue int64
	// Seed makes Randomize reproducible. Zero uses the global generator.
	Seed                int64
	ClearResultOnUpdate bool
}

func (cfg Config) Validate() error {
	if cfg.MaxLen < 1 {
		return fmt.Errorf("max length %d must be >= 1", cfg.MaxLen)
	}
	if cfg.Len < 1 || cfg.Len > cfg.MaxLen {
		return fmt.Errorf("length %d must be between 1 and %d", cfg.Len, cfg.MaxLen)
	}
	if cfg.MinValue > cfg.MaxValue {
		return fmt.Errorf("min value %d is greater than max value %d", cfg.MinValue, cfg.MaxValue)
	}
	if cfg.MinValue < -fenwickviz.MaxValue || cfg.MaxValue > fenwickviz.MaxValue {
		return fmt.Errorf("value range [%d, %d] exceeds ±%d", cfg.MinValue, cfg.MaxValue, fenwickviz.MaxValue)
	}
	return nil
}

func (cfg Config) engineOptions() []fenwickviz.Option {
	var options []fenwickviz.Option
	if cfg.Seed != 0 {
		options = append(options, fenwickviz.LocalRandomNumberGenerator(cfg.Seed))
	}
	if cfg.ClearResultOnUpdate {
		options = append(options, fenwickviz.ClearResultOnUpdate())
	}
	return options
}
