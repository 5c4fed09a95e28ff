package app

import (
	"flag"
	"time"

	"recallgrid/internal/game"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Rows        int
	Cols        int
	Tile        int
	TPS         int
	Seed        int64
	MemorizeSec float64
	FeedbackSec float64
	Points      int
	Debug       bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rows:        3,
		Cols:        3,
		Tile:        72,
		TPS:         60,
		Seed:        42,
		MemorizeSec: 5,
		FeedbackSec: 3,
		Points:      10,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "board rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "board columns")
	fs.IntVar(&c.Tile, "tile", c.Tile, "tile size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for shuffling and cue selection")
	fs.Float64Var(&c.MemorizeSec, "memorize", c.MemorizeSec, "memorize phase duration in seconds")
	fs.Float64Var(&c.FeedbackSec, "feedback", c.FeedbackSec, "feedback phase duration in seconds")
	fs.IntVar(&c.Points, "points", c.Points, "points awarded per correct selection")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")
}

// GameConfig translates the flags into a session configuration over the
// built-in symbol deck.
func (c *Config) GameConfig() game.Config {
	cfg := game.DefaultConfig()
	cfg.Rows = c.Rows
	cfg.Cols = c.Cols
	cfg.MemorizeFor = time.Duration(c.MemorizeSec * float64(time.Second))
	cfg.FeedbackFor = time.Duration(c.FeedbackSec * float64(time.Second))
	cfg.PointsPerCorrect = c.Points
	cfg.Seed = c.Seed
	return cfg
}
