package app

import (
	"flag"
	"runtime"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Pattern string
	Level   int
	Scale   float64
	TPS     int
	Seed    int64
	Workers int
	Mute    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Pattern: "A", Scale: 1, TPS: 30, Seed: 42, Workers: runtime.NumCPU()}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern to show (A, B, C or D)")
	fs.IntVar(&c.Level, "level", c.Level, "initial unfolding level (0-4)")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "initial window scale relative to the buffer")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for particle placement")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used for escape-time regeneration")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable the level-change chime")
}
