package game

import (
	"testing"
	"time"

	"recallgrid/internal/bci"
	"recallgrid/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingDisplay captures the commands the session issues so tests can
// assert on presentation effects without a GUI.
type recordingDisplay struct {
	symbols map[int]Symbol
	visible map[int]bool
	active  map[int]bool
	cue     Symbol
	hasCue  bool
	status  string
	score   int
}

func newRecordingDisplay() *recordingDisplay {
	return &recordingDisplay{
		symbols: make(map[int]Symbol),
		visible: make(map[int]bool),
		active:  make(map[int]bool),
	}
}

func (d *recordingDisplay) ShowSymbol(cell int, sym Symbol) {
	d.symbols[cell] = sym
	d.visible[cell] = true
}

func (d *recordingDisplay) HideSymbol(cell int) { d.visible[cell] = false }

func (d *recordingDisplay) SetInteractable(cell int, on bool) { d.active[cell] = on }
func (d *recordingDisplay) ShowCue(sym Symbol) {
	d.cue = sym
	d.hasCue = true
}
func (d *recordingDisplay) ClearCue() {
	d.cue = Symbol{}
	d.hasCue = false
}
func (d *recordingDisplay) SetStatus(text string) { d.status = text }
func (d *recordingDisplay) SetScore(points int)   { d.score = points }

func (d *recordingDisplay) anyVisible() bool {
	for _, v := range d.visible {
		if v {
			return true
		}
	}
	return false
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.MemorizeFor = 5 * time.Second
	cfg.FeedbackFor = 3 * time.Second
	return cfg
}

func startedSession(t *testing.T) (*Session, *recordingDisplay, *bci.Registry, time.Time) {
	t.Helper()
	disp := newRecordingDisplay()
	reg := bci.NewRegistry()
	sess, err := NewSession(testConfig(), disp, reg, nil)
	require.NoError(t, err)

	base := time.Unix(10_000, 0)
	sess.Start(base)
	return sess, disp, reg, base
}

// toRecall drives a freshly started session through the memorize countdown.
func toRecall(sess *Session, base time.Time) time.Time {
	now := base.Add(6 * time.Second)
	sess.Advance(now)
	return now
}

func TestAssignmentIsDistinctAndFromPool(t *testing.T) {
	sess, disp, reg, _ := startedSession(t)

	require.Equal(t, PhaseMemorize, sess.Phase())
	require.Len(t, disp.symbols, 9)

	poolNames := make(map[string]bool)
	for _, sym := range DefaultPool() {
		poolNames[sym.Name] = true
	}
	seen := make(map[string]bool)
	for cell := 0; cell < 9; cell++ {
		sym, ok := disp.symbols[cell]
		require.True(t, ok, "cell %d never populated", cell)
		require.True(t, poolNames[sym.Name], "symbol %q not in pool", sym.Name)
		require.False(t, seen[sym.Name], "symbol %q assigned twice", sym.Name)
		seen[sym.Name] = true
		assert.True(t, disp.visible[cell])
		assert.False(t, disp.active[cell])
	}

	stims := reg.Snapshot()
	require.Len(t, stims, 9)
	for i, st := range stims {
		assert.Equal(t, i, st.ID)
		assert.Equal(t, disp.symbols[i].Name, st.Target)
		assert.NotEmpty(t, st.OnState)
		assert.NotEmpty(t, st.OffState)
	}
}

func TestSameSeedSameAssignment(t *testing.T) {
	_, first, _, _ := startedSession(t)
	_, second, _, _ := startedSession(t)
	assert.Equal(t, first.symbols, second.symbols)
}

func TestMemorizeHoldsUntilDeadline(t *testing.T) {
	sess, disp, _, base := startedSession(t)

	sess.Advance(base.Add(4 * time.Second))
	assert.Equal(t, PhaseMemorize, sess.Phase())
	assert.False(t, disp.hasCue)

	sess.Advance(base.Add(5 * time.Second))
	assert.Equal(t, PhaseRecall, sess.Phase())
}

func TestRecallHidesSymbolsAndShowsCue(t *testing.T) {
	sess, disp, _, base := startedSession(t)
	toRecall(sess, base)

	require.Equal(t, PhaseRecall, sess.Phase())
	assert.False(t, disp.anyVisible())
	for cell := 0; cell < 9; cell++ {
		assert.True(t, disp.active[cell], "cell %d should accept selections", cell)
	}

	target := sess.TargetCell()
	require.True(t, sess.Board().Contains(target))
	require.True(t, disp.hasCue)
	assert.Equal(t, disp.symbols[target], disp.cue)
	assert.Equal(t, sess.Cue(), disp.cue)
}

func TestCorrectSelectionScores(t *testing.T) {
	sess, disp, _, base := startedSession(t)
	now := toRecall(sess, base)

	target := sess.TargetCell()
	sess.HandleSelection(now, SelectionEvent{Cell: target, Round: sess.Round()})

	assert.Equal(t, PhaseFeedback, sess.Phase())
	assert.Equal(t, 10, sess.Score())
	assert.Equal(t, 10, disp.score)
	assert.Equal(t, "Correct", disp.status)
	for cell := 0; cell < 9; cell++ {
		assert.True(t, disp.visible[cell])
		assert.False(t, disp.active[cell])
	}
}

func TestWrongSelectionRevealsTruth(t *testing.T) {
	sess, disp, _, base := startedSession(t)
	now := toRecall(sess, base)

	target := sess.TargetCell()
	wrong := (target + 1) % 9
	trueSymbols := make(map[int]Symbol, len(disp.symbols))
	for cell, sym := range disp.symbols {
		trueSymbols[cell] = sym
	}

	sess.HandleSelection(now, SelectionEvent{Cell: wrong, Round: sess.Round()})

	assert.Equal(t, PhaseFeedback, sess.Phase())
	assert.Zero(t, sess.Score())
	assert.Equal(t, "Wrong", disp.status)
	assert.True(t, disp.visible[wrong])
	assert.True(t, disp.visible[target])
	assert.Equal(t, trueSymbols[wrong], disp.symbols[wrong])
	assert.Equal(t, trueSymbols[target], disp.symbols[target])
}

func TestSelectionIgnoredOutsideRecall(t *testing.T) {
	sess, disp, _, base := startedSession(t)

	// During memorize: no score, no transition, symbols untouched.
	sess.HandleSelection(base, SelectionEvent{Cell: 0, Round: sess.Round()})
	assert.Equal(t, PhaseMemorize, sess.Phase())
	assert.Zero(t, sess.Score())

	now := toRecall(sess, base)
	target := sess.TargetCell()
	sess.HandleSelection(now, SelectionEvent{Cell: target, Round: sess.Round()})
	require.Equal(t, PhaseFeedback, sess.Phase())
	require.Equal(t, 10, sess.Score())

	// Duplicate callback during feedback is a no-op.
	sess.HandleSelection(now, SelectionEvent{Cell: target, Round: sess.Round()})
	assert.Equal(t, PhaseFeedback, sess.Phase())
	assert.Equal(t, 10, sess.Score())
	assert.Equal(t, "Correct", disp.status)
}

func TestSelectionIgnoredOutOfRange(t *testing.T) {
	sess, _, _, base := startedSession(t)
	now := toRecall(sess, base)

	sess.HandleSelection(now, SelectionEvent{Cell: -1, Round: sess.Round()})
	sess.HandleSelection(now, SelectionEvent{Cell: 9, Round: sess.Round()})
	assert.Equal(t, PhaseRecall, sess.Phase())
	assert.Zero(t, sess.Score())
}

func TestStaleRoundSelectionDropped(t *testing.T) {
	sess, _, _, base := startedSession(t)
	now := toRecall(sess, base)
	stale := sess.Round()

	// Restart abandons the round mid-recall; the old token must stop acting.
	sess.Restart(now)
	now = toRecall(sess, now)
	require.Equal(t, PhaseRecall, sess.Phase())
	require.NotEqual(t, stale, sess.Round())

	sess.HandleSelection(now, SelectionEvent{Cell: sess.TargetCell(), Round: stale})
	assert.Equal(t, PhaseRecall, sess.Phase())
	assert.Zero(t, sess.Score())
}

func TestFeedbackLoopsToNextRound(t *testing.T) {
	sess, disp, reg, base := startedSession(t)
	now := toRecall(sess, base)
	firstRound := sess.Round()

	sess.HandleSelection(now, SelectionEvent{Cell: sess.TargetCell(), Round: sess.Round()})
	require.Equal(t, PhaseFeedback, sess.Phase())

	sess.Advance(now.Add(2 * time.Second))
	assert.Equal(t, PhaseFeedback, sess.Phase())

	sess.Advance(now.Add(3 * time.Second))
	assert.Equal(t, PhaseMemorize, sess.Phase())
	assert.NotEqual(t, firstRound, sess.Round())
	// Score persists across rounds within a session.
	assert.Equal(t, 10, sess.Score())
	assert.Equal(t, -1, sess.TargetCell())
	assert.False(t, disp.hasCue)
	assert.Equal(t, 9, reg.Len())
}

func TestRestartResetsScore(t *testing.T) {
	sess, disp, _, base := startedSession(t)
	now := toRecall(sess, base)

	sess.HandleSelection(now, SelectionEvent{Cell: sess.TargetCell(), Round: sess.Round()})
	require.Equal(t, 10, sess.Score())

	sess.Restart(now)
	assert.Zero(t, sess.Score())
	assert.Zero(t, disp.score)
	assert.Equal(t, PhaseMemorize, sess.Phase())
}

func TestNewSessionValidation(t *testing.T) {
	disp := newRecordingDisplay()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero rows", func(c *Config) { c.Rows = 0 }},
		{"zero cols", func(c *Config) { c.Cols = 0 }},
		{"pool too small", func(c *Config) { c.Pool = c.Pool[:8] }},
		{"duplicate symbol", func(c *Config) { c.Pool[1] = c.Pool[0] }},
		{"memorize duration", func(c *Config) { c.MemorizeFor = 0 }},
		{"feedback duration", func(c *Config) { c.FeedbackFor = -time.Second }},
		{"points", func(c *Config) { c.PointsPerCorrect = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Pool = append([]Symbol(nil), cfg.Pool...)
			tc.mutate(&cfg)
			_, err := NewSession(cfg, disp, nil, nil)
			assert.Error(t, err)
		})
	}

	t.Run("nil display", func(t *testing.T) {
		_, err := NewSession(testConfig(), nil, nil, nil)
		assert.Error(t, err)
	})

	t.Run("nil registry is allowed", func(t *testing.T) {
		sess, err := NewSession(testConfig(), disp, nil, nil)
		require.NoError(t, err)
		sess.Start(time.Unix(0, 0))
		assert.Equal(t, PhaseMemorize, sess.Phase())
	})
}

func TestTokensAdvancePerRound(t *testing.T) {
	sess, _, _, base := startedSession(t)
	first := sess.Round()
	require.NotEqual(t, core.Token(0), first)

	now := toRecall(sess, base)
	sess.HandleSelection(now, SelectionEvent{Cell: sess.TargetCell(), Round: sess.Round()})
	sess.Advance(now.Add(3 * time.Second))
	assert.Equal(t, first+1, sess.Round())
}
