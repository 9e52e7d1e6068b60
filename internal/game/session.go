// Package game implements the outfit challenge: timed rounds in which a
// player dresses an avatar from their closet to match a random challenge.
package game

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/thryft-app/thryft/internal/errors"
	"github.com/thryft-app/thryft/internal/models"
)

const (
	DefaultTotalRounds   = 5
	DefaultRoundDuration = 30 // seconds
	DefaultTickInterval  = time.Second
)

// Session errors. All are preconditions: the session is left unchanged.
var (
	ErrNotStarted      = errors.Precondition("game has not started")
	ErrGameOver        = errors.Precondition("game is over")
	ErrRoundNotRunning = errors.Precondition("round is not running")
	ErrRoundInProgress = errors.Precondition("round is still running")
	ErrMissingRequired = errors.Precondition("you need a top, bottoms, and shoes")
	ErrUnknownBackdrop = errors.Validation("unknown background")
)

// EventType names a session event pushed to listeners
type EventType string

const (
	EventRoundStarted EventType = "round_started"
	EventTick         EventType = "tick"
	EventRoundExpired EventType = "round_expired"
	EventGameOver     EventType = "game_over"
	// EventState follows changes that do not move the game along: equip,
	// clear, background and end.
	EventState EventType = "game_state"
)

// Event is emitted after every change to a session, including timer ticks
type Event struct {
	Type  EventType `json:"type"`
	State State     `json:"state"`
	// Points is set when the event follows a submission
	Points *int `json:"points,omitempty"`
}

// Listener receives session events one at a time, in the order the changes
// happened. It is called without the state lock held but blocks the next
// change that emits, so it must return promptly and must not call back into
// the session synchronously.
type Listener func(Event)

// Options configures a Session. Zero fields take the package defaults.
type Options struct {
	Challenges    []models.Challenge
	TotalRounds   int
	RoundDuration int // seconds
	TickInterval  time.Duration
	// ManualTicks disables the timer goroutine; the caller drives Tick.
	ManualTicks bool
	Rand        *rand.Rand
	Listener    Listener
}

// State is a point-in-time copy of a session
type State struct {
	Started         bool              `json:"started"`
	Over            bool              `json:"over"`
	Running         bool              `json:"running"`
	Round           int               `json:"round"`
	TotalRounds     int               `json:"total_rounds"`
	TimeRemaining   int               `json:"time_remaining"`
	Score           int               `json:"score"`
	LastRoundPoints *int              `json:"last_round_points"`
	Challenge       *models.Challenge `json:"challenge"`
	Background      string            `json:"background"`
	Equipment       Equipment         `json:"equipped"`
	HasEquipped     bool              `json:"has_equipped"`
}

// Session is one player's play-through. It is safe for concurrent use by
// request handlers and its own timer.
type Session struct {
	// emitMu is taken before mu and held until the listener returns
	emitMu sync.Mutex
	mu     sync.Mutex
	opts   Options

	started         bool
	over            bool
	running         bool
	round           int
	timeRemaining   int
	score           int
	lastRoundPoints *int
	challenge       *models.Challenge
	background      string
	equipment       Equipment

	timer      *countdown
	generation uint64
}

// NewSession creates an idle session
func NewSession(opts Options) *Session {
	if len(opts.Challenges) == 0 {
		opts.Challenges = Challenges()
	}
	if opts.TotalRounds <= 0 {
		opts.TotalRounds = DefaultTotalRounds
	}
	if opts.RoundDuration <= 0 {
		opts.RoundDuration = DefaultRoundDuration
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}

	s := &Session{opts: opts}
	s.resetLocked()
	return s
}

// Start begins a new play-through at round 1 with a zero score. It may be
// called from any state, which is how "play again" works.
func (s *Session) Start() State {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	s.stopTimerLocked()
	s.started = true
	s.over = false
	s.score = 0
	s.round = 1
	s.startRoundLocked()
	st := s.snapshotLocked()
	s.mu.Unlock()

	s.emit(Event{Type: EventRoundStarted, State: st})
	return st
}

// StartRound restarts the current round: equipment cleared, clock reset,
// last result cleared, new random challenge, timer running.
func (s *Session) StartRound() (State, error) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return State{}, ErrNotStarted
	}
	if s.over {
		s.mu.Unlock()
		return State{}, ErrGameOver
	}
	s.startRoundLocked()
	st := s.snapshotLocked()
	s.mu.Unlock()

	s.emit(Event{Type: EventRoundStarted, State: st})
	return st, nil
}

// End stops the timer and returns the session to its pre-game defaults.
// It is idempotent.
func (s *Session) End() State {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	s.stopTimerLocked()
	s.resetLocked()
	st := s.snapshotLocked()
	s.mu.Unlock()

	s.emit(Event{Type: EventState, State: st})
	return st
}

// Close ends the session and waits for its timer goroutine to exit. It
// emits nothing and must not be called from the listener.
func (s *Session) Close() {
	s.mu.Lock()
	t := s.timer
	s.stopTimerLocked()
	s.resetLocked()
	s.mu.Unlock()

	t.wait()
}

// Equip wears item in the slot for its category. Items whose category has
// no slot are ignored and ok is false.
func (s *Session) Equip(item models.ClosetItem) (slot Slot, ok bool) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	slot, ok = s.equipment.Equip(item)
	st := s.snapshotLocked()
	s.mu.Unlock()

	if ok {
		s.emit(Event{Type: EventState, State: st})
	}
	return slot, ok
}

// Clear empties every slot
func (s *Session) Clear() {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	s.equipment.Clear()
	st := s.snapshotLocked()
	s.mu.Unlock()

	s.emit(Event{Type: EventState, State: st})
}

// HasAnyEquipped reports whether any slot is occupied
func (s *Session) HasAnyEquipped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.equipment.HasAny()
}

// SetBackground changes the scene the outfit is staged on
func (s *Session) SetBackground(bg string) error {
	if !IsBackground(bg) {
		return ErrUnknownBackdrop
	}
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	s.background = bg
	st := s.snapshotLocked()
	s.mu.Unlock()

	s.emit(Event{Type: EventState, State: st})
	return nil
}

// Submit scores the current outfit against the round's challenge. On
// success the round ends and either the next round starts or, after the
// final round, the game is over. The returned points are the round result;
// a freshly started round shows no last result. On error nothing changes.
func (s *Session) Submit() (int, State, error) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return 0, State{}, ErrNotStarted
	}
	if s.over {
		s.mu.Unlock()
		return 0, State{}, ErrGameOver
	}
	if !s.running {
		s.mu.Unlock()
		return 0, State{}, ErrRoundNotRunning
	}
	if !s.equipment.HasRequired() {
		s.mu.Unlock()
		return 0, State{}, ErrMissingRequired
	}

	pts := Score(s.equipment, *s.challenge, s.timeRemaining)
	s.score += pts
	s.lastRoundPoints = &pts
	s.running = false
	s.stopTimerLocked()

	ev := s.finishRoundLocked()
	st := s.snapshotLocked()
	s.mu.Unlock()

	s.emit(Event{Type: ev, State: st, Points: &pts})
	return pts, st, nil
}

// Advance moves past a round that expired without a submission
func (s *Session) Advance() (State, error) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	switch {
	case !s.started:
		s.mu.Unlock()
		return State{}, ErrNotStarted
	case s.over:
		s.mu.Unlock()
		return State{}, ErrGameOver
	case s.running:
		s.mu.Unlock()
		return State{}, ErrRoundInProgress
	}

	ev := s.finishRoundLocked()
	st := s.snapshotLocked()
	s.mu.Unlock()

	s.emit(Event{Type: ev, State: st})
	return st, nil
}

// Tick advances the clock of the current round by one second. The timer
// goroutine calls it; with ManualTicks the caller does.
func (s *Session) Tick() {
	s.mu.Lock()
	gen := s.generation
	s.mu.Unlock()
	s.tick(gen)
}

// State returns a snapshot of the session
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// tick waits its turn behind any change being delivered, so a tick that
// lost the race to a submit or end sees the new generation and is dropped.
func (s *Session) tick(generation uint64) bool {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	if generation != s.generation || !s.running {
		s.mu.Unlock()
		return false
	}

	s.timeRemaining--
	ev := EventTick
	if s.timeRemaining <= 0 {
		s.timeRemaining = 0
		s.running = false
		zero := 0
		s.lastRoundPoints = &zero
		s.stopTimerLocked()
		ev = EventRoundExpired
	}
	st := s.snapshotLocked()
	s.mu.Unlock()

	s.emit(Event{Type: ev, State: st})
	return ev == EventTick
}

// finishRoundLocked either ends the game or starts the next round
func (s *Session) finishRoundLocked() EventType {
	if s.round >= s.opts.TotalRounds {
		s.over = true
		return EventGameOver
	}
	s.round++
	s.startRoundLocked()
	return EventRoundStarted
}

func (s *Session) startRoundLocked() {
	s.stopTimerLocked()
	s.equipment.Clear()
	s.timeRemaining = s.opts.RoundDuration
	s.lastRoundPoints = nil
	s.challenge = s.pickChallenge()
	s.running = true

	if !s.opts.ManualTicks {
		s.timer = startCountdown(s.opts.TickInterval, s.generation, s.tick)
	}
}

// stopTimerLocked cancels the running timer and invalidates any tick that
// is already waiting for the lock.
func (s *Session) stopTimerLocked() {
	s.generation++
	s.timer.stop()
	s.timer = nil
}

func (s *Session) resetLocked() {
	s.started = false
	s.over = false
	s.running = false
	s.round = 1
	s.timeRemaining = s.opts.RoundDuration
	s.score = 0
	s.lastRoundPoints = nil
	s.challenge = nil
	s.background = DefaultBackground()
	s.equipment.Clear()
}

func (s *Session) pickChallenge() *models.Challenge {
	n := len(s.opts.Challenges)
	var i int
	if s.opts.Rand != nil {
		i = s.opts.Rand.IntN(n)
	} else {
		i = rand.IntN(n)
	}
	c := s.opts.Challenges[i]
	return &c
}

func (s *Session) snapshotLocked() State {
	st := State{
		Started:       s.started,
		Over:          s.over,
		Running:       s.running,
		Round:         s.round,
		TotalRounds:   s.opts.TotalRounds,
		TimeRemaining: s.timeRemaining,
		Score:         s.score,
		Background:    s.background,
		Equipment:     s.equipment,
		HasEquipped:   s.equipment.HasAny(),
	}
	if s.lastRoundPoints != nil {
		p := *s.lastRoundPoints
		st.LastRoundPoints = &p
	}
	if s.challenge != nil {
		c := *s.challenge
		st.Challenge = &c
	}
	return st
}

func (s *Session) emit(ev Event) {
	if s.opts.Listener != nil {
		s.opts.Listener(ev)
	}
}
