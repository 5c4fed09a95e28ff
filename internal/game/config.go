package game

import (
	"fmt"
	"time"
)

// Config holds the tunables for one game session.
type Config struct {
	Rows int
	Cols int

	// MemorizeFor is how long the populated board stays visible before the
	// symbols are hidden and a cue is picked.
	MemorizeFor time.Duration
	// FeedbackFor is how long the correct/wrong reveal stays on screen before
	// the next round begins.
	FeedbackFor time.Duration

	PointsPerCorrect int

	Seed int64
	Pool []Symbol
}

// DefaultConfig returns the standard 3x3 game over the built-in deck.
func DefaultConfig() Config {
	return Config{
		Rows:             3,
		Cols:             3,
		MemorizeFor:      5 * time.Second,
		FeedbackFor:      3 * time.Second,
		PointsPerCorrect: 10,
		Seed:             42,
		Pool:             DefaultPool(),
	}
}

// Validate checks the configuration once at setup. Any violation is a fatal
// configuration error; the caller disables the game rather than retrying.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("board %dx%d is empty", c.Rows, c.Cols)
	}
	if c.MemorizeFor <= 0 {
		return fmt.Errorf("memorize duration %v must be positive", c.MemorizeFor)
	}
	if c.FeedbackFor <= 0 {
		return fmt.Errorf("feedback duration %v must be positive", c.FeedbackFor)
	}
	if c.PointsPerCorrect <= 0 {
		return fmt.Errorf("points per correct %d must be positive", c.PointsPerCorrect)
	}
	if err := ValidatePool(c.Pool, c.Rows*c.Cols); err != nil {
		return err
	}
	return nil
}
