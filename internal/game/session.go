package game

import (
	"fmt"
	"time"

	"recallgrid/internal/bci"
	"recallgrid/internal/core"

	"go.uber.org/zap"
)

// Phase enumerates the states of one round.
type Phase int

const (
	// PhaseInitializing builds the board and the symbol assignment.
	PhaseInitializing Phase = iota
	// PhaseMemorize shows all symbols for a fixed duration.
	PhaseMemorize
	// PhaseRecall hides the symbols and waits for one selection.
	PhaseRecall
	// PhaseFeedback reveals the outcome for a fixed duration.
	PhaseFeedback
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhaseMemorize:
		return "memorize"
	case PhaseRecall:
		return "recall"
	case PhaseFeedback:
		return "feedback"
	default:
		return "unknown"
	}
}

// Session owns all mutable game state: the running score and the current
// round's assignment, cue and countdown. Rounds loop indefinitely; per-round
// data is rebuilt at every round start and the score persists until Restart.
//
// The session is single-threaded: Advance and HandleSelection must be called
// from the same loop goroutine.
type Session struct {
	cfg   Config
	board core.Board
	rng   *core.RNG
	disp  Display
	stims *bci.Registry
	log   *zap.Logger

	phase     Phase
	countdown core.Countdown
	tokens    core.TokenSource
	token     core.Token

	assignment []Symbol
	target     int
	cue        Symbol
	score      int
}

var _ SelectionHandler = (*Session)(nil)

// NewSession validates cfg and builds a session driving disp. The stimulus
// registry may be nil when no flash controller is attached; a nil logger
// falls back to a no-op logger. A validation failure disables the game.
func NewSession(cfg Config, disp Display, stims *bci.Registry, log *zap.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session config: %w", err)
	}
	if disp == nil {
		return nil, fmt.Errorf("session config: display is required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		cfg:    cfg,
		board:  core.NewBoard(cfg.Rows, cfg.Cols),
		rng:    core.NewRNG(cfg.Seed),
		disp:   disp,
		stims:  stims,
		log:    log,
		target: -1,
	}, nil
}

// Board returns the board geometry.
func (s *Session) Board() core.Board { return s.board }

// Phase returns the current round phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the accumulated session score.
func (s *Session) Score() int { return s.score }

// Round returns the token of the current round. Input sources tag their
// selection events with it.
func (s *Session) Round() core.Token { return s.token }

// TargetCell returns the cue's cell id, or -1 before a cue is picked.
func (s *Session) TargetCell() int { return s.target }

// Cue returns the symbol the player must relocate. Zero before Recall.
func (s *Session) Cue() Symbol { return s.cue }

// Start begins the first round.
func (s *Session) Start(now time.Time) {
	s.beginRound(now)
}

// Restart zeroes the score and begins a fresh round. Bumping the round token
// cancels any in-flight waits: late timer expiries and selection callbacks
// from the abandoned round no longer match and are dropped.
func (s *Session) Restart(now time.Time) {
	s.score = 0
	s.beginRound(now)
}

func (s *Session) beginRound(now time.Time) {
	s.token = s.tokens.Next()
	s.phase = PhaseInitializing
	s.countdown.Disarm()
	s.target = -1
	s.cue = Symbol{}

	pool := make([]Symbol, len(s.cfg.Pool))
	copy(pool, s.cfg.Pool)
	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	s.assignment = pool[:s.board.Cells():s.board.Cells()]

	s.registerStimuli()

	s.disp.ClearCue()
	s.disp.SetScore(s.score)
	s.disp.SetStatus("Memorize the symbols")
	for id, sym := range s.assignment {
		s.disp.ShowSymbol(id, sym)
		s.disp.SetInteractable(id, false)
	}

	s.countdown.Arm(now, s.cfg.MemorizeFor)
	s.phase = PhaseMemorize
	s.log.Debug("round started",
		zap.Uint64("round", uint64(s.token)),
		zap.Int("cells", s.board.Cells()))
}

// registerStimuli pushes one flash-stimulus descriptor per populated cell
// into the externally owned registry. One-way: no response is expected.
func (s *Session) registerStimuli() {
	if s.stims == nil {
		return
	}
	s.stims.Reset()
	for id, sym := range s.assignment {
		s.stims.Add(bci.Stimulus{
			ID:       id,
			Target:   sym.Name,
			OnState:  "flash",
			OffState: "rest",
			Rotate:   false,
		})
	}
}

// Advance drives the timed transitions. The loop calls it every tick; it
// does nothing until the armed countdown expires.
func (s *Session) Advance(now time.Time) {
	if !s.countdown.Expired(now) {
		return
	}
	s.countdown.Disarm()
	switch s.phase {
	case PhaseMemorize:
		s.enterRecall()
	case PhaseFeedback:
		s.beginRound(now)
	}
}

func (s *Session) enterRecall() {
	s.target = s.rng.IntN(s.board.Cells())
	s.cue = s.assignment[s.target]

	for id := range s.assignment {
		s.disp.HideSymbol(id)
		s.disp.SetInteractable(id, true)
	}
	s.disp.ShowCue(s.cue)
	s.disp.SetStatus("Where was this symbol?")

	s.phase = PhaseRecall
	s.log.Debug("cue picked",
		zap.Uint64("round", uint64(s.token)),
		zap.Int("target", s.target),
		zap.String("symbol", s.cue.Name))
}

// HandleSelection consumes one selection event. Events outside Recall, from
// a stale round, or naming an invalid cell are ignored; duplicate callbacks
// after the transition to Feedback fall out the same way.
func (s *Session) HandleSelection(now time.Time, ev SelectionEvent) {
	if s.phase != PhaseRecall || ev.Round != s.token {
		return
	}
	if !s.board.Contains(ev.Cell) {
		return
	}

	correct := ev.Cell == s.target
	if correct {
		s.score += s.cfg.PointsPerCorrect
		s.disp.SetScore(s.score)
		s.disp.SetStatus("Correct")
	} else {
		s.disp.SetStatus("Wrong")
	}

	for id, sym := range s.assignment {
		s.disp.ShowSymbol(id, sym)
		s.disp.SetInteractable(id, false)
	}

	s.countdown.Arm(now, s.cfg.FeedbackFor)
	s.phase = PhaseFeedback
	s.log.Info("selection",
		zap.Uint64("round", uint64(s.token)),
		zap.Int("cell", ev.Cell),
		zap.Int("target", s.target),
		zap.Bool("correct", correct),
		zap.Int("score", s.score))
}
