package core

import "time"

// Countdown tracks a single phase deadline checked by the cooperative game
// loop. It never fires on its own; the loop polls Expired each tick.
type Countdown struct {
	deadline time.Time
	armed    bool
}

// Arm schedules the countdown to expire d after now.
func (c *Countdown) Arm(now time.Time, d time.Duration) {
	c.deadline = now.Add(d)
	c.armed = true
}

// Disarm clears any pending deadline.
func (c *Countdown) Disarm() {
	c.armed = false
	c.deadline = time.Time{}
}

// Armed reports whether a deadline is pending.
func (c *Countdown) Armed() bool { return c.armed }

// Expired reports whether the armed deadline has been reached.
func (c *Countdown) Expired(now time.Time) bool {
	return c.armed && !now.Before(c.deadline)
}

// Token identifies one round generation. Input callbacks and timer expiries
// carry the token of the round they were produced against; events with a
// stale token are dropped instead of acting on a round that no longer exists.
type Token uint64

// TokenSource hands out monotonically increasing round tokens.
type TokenSource struct {
	current Token
}

// Next invalidates the current token and returns a fresh one.
func (ts *TokenSource) Next() Token {
	ts.current++
	return ts.current
}

// Current returns the most recently issued token.
func (ts *TokenSource) Current() Token { return ts.current }
