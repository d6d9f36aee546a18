package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Pattern string
	Size    int
	Scale   int
	TPS     int
	Seed    int64
	Density float64
}

// NewConfig returns a Config populated with sensible defaults: the
// classic glider-gun demo on a 60-cell board.
func NewConfig() *Config {
	return &Config{Pattern: "gosper-gun", Size: 60, Scale: 5, TPS: 20, Seed: 42, Density: 0.3}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern to start from")
	fs.IntVar(&c.Size, "size", c.Size, "grid side length in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomized patterns")
	fs.Float64Var(&c.Density, "density", c.Density, "alive density for randomized patterns")
}
