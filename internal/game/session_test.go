package game

import (
	stderrors "errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/thryft-app/thryft/internal/models"
)

func newManualSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(Options{
		Challenges:  []models.Challenge{streetChallenge},
		ManualTicks: true,
	})
	t.Cleanup(s.Close)
	return s
}

func wearRequired(s *Session) {
	s.Equip(item("tee", CategoryTops))
	s.Equip(item("jeans", CategoryBottoms))
	s.Equip(item("boots", CategoryShoes))
}

func tickN(s *Session, n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}

func TestNewSession_Defaults(t *testing.T) {
	s := NewSession(Options{ManualTicks: true})
	st := s.State()

	if st.Started || st.Over || st.Running {
		t.Errorf("expected idle session, got %+v", st)
	}
	if st.TotalRounds != DefaultTotalRounds || st.TimeRemaining != DefaultRoundDuration {
		t.Errorf("unexpected defaults: %+v", st)
	}
	if st.Background != DefaultBackground() {
		t.Errorf("expected default background, got %q", st.Background)
	}
}

func TestStart_ResetsAndBeginsRoundOne(t *testing.T) {
	s := newManualSession(t)
	st := s.Start()

	if !st.Started || !st.Running || st.Over {
		t.Fatalf("expected running session, got %+v", st)
	}
	if st.Round != 1 || st.Score != 0 || st.TimeRemaining != 30 {
		t.Errorf("unexpected start state: %+v", st)
	}
	if st.Challenge == nil || st.Challenge.ID != "street" {
		t.Errorf("expected street challenge, got %+v", st.Challenge)
	}
	if st.LastRoundPoints != nil {
		t.Errorf("expected no last round points, got %d", *st.LastRoundPoints)
	}
}

func TestStartRound_PicksFromCatalogWithSeededRand(t *testing.T) {
	s := NewSession(Options{ManualTicks: true, Rand: rand.New(rand.NewPCG(1, 2))})
	defer s.Close()

	seen := map[string]bool{}
	s.Start()
	for i := 0; i < 20; i++ {
		st, err := s.StartRound()
		if err != nil {
			t.Fatalf("StartRound: %v", err)
		}
		if _, ok := FindChallenge(st.Challenge.ID); !ok {
			t.Fatalf("challenge %q not in catalog", st.Challenge.ID)
		}
		seen[st.Challenge.ID] = true
	}
	if len(seen) < 2 {
		t.Errorf("expected random selection across rounds, saw %v", seen)
	}
}

func TestStartRound_ClearsEquipmentAndClock(t *testing.T) {
	s := newManualSession(t)
	s.Start()
	wearRequired(s)
	tickN(s, 5)

	st, err := s.StartRound()
	if err != nil {
		t.Fatalf("StartRound: %v", err)
	}
	if st.HasEquipped || st.TimeRemaining != 30 || !st.Running {
		t.Errorf("expected fresh round, got %+v", st)
	}
}

func TestStartRound_RequiresStartedGame(t *testing.T) {
	s := newManualSession(t)
	if _, err := s.StartRound(); !stderrors.Is(err, ErrNotStarted) {
		t.Errorf("expected ErrNotStarted, got %v", err)
	}
}

func TestSubmit_ScoresAndAdvances(t *testing.T) {
	s := newManualSession(t)
	s.Start()
	wearRequired(s)
	s.Equip(item("ring", CategoryAccessories))
	tickN(s, 10)

	pts, st, err := s.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if pts != 28 {
		t.Errorf("expected 28 points, got %d", pts)
	}
	if st.Score != 28 {
		t.Errorf("expected score 28, got %d", st.Score)
	}
	if st.LastRoundPoints != nil {
		t.Errorf("expected new round to clear last result, got %d", *st.LastRoundPoints)
	}
	if st.Round != 2 || !st.Running || st.HasEquipped || st.TimeRemaining != 30 {
		t.Errorf("expected round 2 to start fresh, got %+v", st)
	}
}

func TestSubmit_EventCarriesPoints(t *testing.T) {
	rec := newEventRecorder()
	s := NewSession(Options{
		Challenges:  []models.Challenge{streetChallenge},
		ManualTicks: true,
		Listener:    rec.listen,
	})
	defer s.Close()
	s.Start()
	wearRequired(s)

	pts, _, err := s.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	rec.mu.Lock()
	last := rec.events[len(rec.events)-1]
	rec.mu.Unlock()
	if last.Type != EventRoundStarted {
		t.Fatalf("expected round_started, got %s", last.Type)
	}
	if last.Points == nil || *last.Points != pts {
		t.Errorf("expected event points %d, got %v", pts, last.Points)
	}
}

func TestSubmit_MissingRequiredLeavesStateUnchanged(t *testing.T) {
	s := newManualSession(t)
	s.Start()
	s.Equip(item("tee", CategoryTops))
	s.Equip(item("jeans", CategoryBottoms))
	before := s.State()

	_, _, err := s.Submit()
	if !stderrors.Is(err, ErrMissingRequired) {
		t.Fatalf("expected ErrMissingRequired, got %v", err)
	}

	after := s.State()
	if after.Score != before.Score || after.Round != before.Round || !after.Running {
		t.Errorf("expected unchanged state, before %+v after %+v", before, after)
	}
	if !after.HasEquipped {
		t.Error("expected equipment to be kept")
	}
}

func TestSubmit_EachRequiredSlotIsMandatory(t *testing.T) {
	required := []models.ClosetItem{
		item("tee", CategoryTops),
		item("jeans", CategoryBottoms),
		item("boots", CategoryShoes),
	}

	for skip := range required {
		s := newManualSession(t)
		s.Start()
		for i, it := range required {
			if i != skip {
				s.Equip(it)
			}
		}
		s.Equip(item("ring", CategoryAccessories))

		if _, _, err := s.Submit(); !stderrors.Is(err, ErrMissingRequired) {
			t.Errorf("missing %s: expected ErrMissingRequired, got %v", required[skip].Category, err)
		}
		if s.State().Score != 0 {
			t.Errorf("missing %s: score changed", required[skip].Category)
		}
	}
}

func TestSubmit_FiveRoundsEndsGame(t *testing.T) {
	s := newManualSession(t)
	s.Start()

	total := 0
	var st State
	for round := 1; round <= DefaultTotalRounds; round++ {
		wearRequired(s)
		tickN(s, round)

		var pts int
		var err error
		pts, st, err = s.Submit()
		if err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		total += pts
	}

	if !st.Over || st.Running {
		t.Fatalf("expected game over, got %+v", st)
	}
	if st.Score != total {
		t.Errorf("expected final score %d, got %d", total, st.Score)
	}
	if st.Round != DefaultTotalRounds {
		t.Errorf("expected round to stay at %d, got %d", DefaultTotalRounds, st.Round)
	}
	if !st.HasEquipped {
		t.Error("expected final outfit to stay equipped for saving")
	}

	if _, _, err := s.Submit(); !stderrors.Is(err, ErrGameOver) {
		t.Errorf("expected ErrGameOver, got %v", err)
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	s := newManualSession(t)
	s.Start()

	last := 0
	for i := 0; i < DefaultTotalRounds; i++ {
		wearRequired(s)
		tickN(s, 30)
		if sc := s.State().Score; sc < last {
			t.Fatalf("score decreased from %d to %d", last, sc)
		}
		if _, err := s.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}
}

func TestTick_ExpiryStopsRoundWithZeroPoints(t *testing.T) {
	s := newManualSession(t)
	s.Start()
	wearRequired(s)

	tickN(s, 29)
	if st := s.State(); !st.Running || st.TimeRemaining != 1 {
		t.Fatalf("expected 1s left, got %+v", st)
	}

	s.Tick()
	st := s.State()
	if st.Running || st.TimeRemaining != 0 {
		t.Fatalf("expected round to stop at zero, got %+v", st)
	}
	if st.LastRoundPoints == nil || *st.LastRoundPoints != 0 {
		t.Errorf("expected zero last round points, got %v", st.LastRoundPoints)
	}
	if st.Score != 0 || st.Round != 1 {
		t.Errorf("expected score and round unchanged, got %+v", st)
	}

	s.Tick()
	if s.State().TimeRemaining != 0 {
		t.Error("expected ticks after expiry to be ignored")
	}

	if _, _, err := s.Submit(); !stderrors.Is(err, ErrRoundNotRunning) {
		t.Errorf("expected ErrRoundNotRunning, got %v", err)
	}
}

func TestAdvance(t *testing.T) {
	s := newManualSession(t)
	s.Start()

	if _, err := s.Advance(); !stderrors.Is(err, ErrRoundInProgress) {
		t.Fatalf("expected ErrRoundInProgress, got %v", err)
	}

	tickN(s, 30)
	st, err := s.Advance()
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if st.Round != 2 || !st.Running {
		t.Errorf("expected round 2 running, got %+v", st)
	}
	if st.LastRoundPoints != nil {
		t.Errorf("expected new round to clear last result, got %d", *st.LastRoundPoints)
	}
}

func TestAdvance_AfterLastRoundEndsGame(t *testing.T) {
	s := NewSession(Options{Challenges: []models.Challenge{streetChallenge}, TotalRounds: 1, ManualTicks: true})
	defer s.Close()
	s.Start()
	tickN(s, 30)

	st, err := s.Advance()
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if !st.Over {
		t.Errorf("expected game over, got %+v", st)
	}
}

func TestEnd_IsIdempotentAndResets(t *testing.T) {
	s := newManualSession(t)
	s.End()

	s.Start()
	wearRequired(s)
	if err := s.SetBackground("park"); err != nil {
		t.Fatalf("SetBackground: %v", err)
	}
	s.Submit()

	for i := 0; i < 2; i++ {
		st := s.End()
		if st.Started || st.Running || st.Over || st.Score != 0 || st.Round != 1 || st.HasEquipped {
			t.Errorf("expected defaults after End, got %+v", st)
		}
		if st.Background != DefaultBackground() {
			t.Errorf("expected background reset, got %q", st.Background)
		}
	}
}

func TestClearAndHasAnyEquipped(t *testing.T) {
	s := newManualSession(t)
	s.Start()
	wearRequired(s)
	if !s.HasAnyEquipped() {
		t.Fatal("expected items equipped")
	}
	s.Clear()
	if s.HasAnyEquipped() {
		t.Error("expected HasAnyEquipped false after Clear")
	}
}

func TestEquip_UnknownCategoryIsNoop(t *testing.T) {
	s := newManualSession(t)
	if _, ok := s.Equip(item("tote", "Bags")); ok {
		t.Error("expected no slot for Bags")
	}
	if s.HasAnyEquipped() {
		t.Error("expected nothing equipped")
	}
}

func TestSetBackground_RejectsUnknown(t *testing.T) {
	s := newManualSession(t)
	if err := s.SetBackground("moon"); !stderrors.Is(err, ErrUnknownBackdrop) {
		t.Errorf("expected ErrUnknownBackdrop, got %v", err)
	}
}

// eventRecorder collects events from the timer goroutine
type eventRecorder struct {
	mu     sync.Mutex
	events []Event
	notify chan EventType
}

func newEventRecorder() *eventRecorder {
	return &eventRecorder{notify: make(chan EventType, 256)}
}

func (r *eventRecorder) listen(ev Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
	select {
	case r.notify <- ev.Type:
	default:
	}
}

func (r *eventRecorder) count(typ EventType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, ev := range r.events {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

func TestTimer_ExpiresRound(t *testing.T) {
	rec := newEventRecorder()
	s := NewSession(Options{
		Challenges:    []models.Challenge{streetChallenge},
		RoundDuration: 3,
		TickInterval:  5 * time.Millisecond,
		Listener:      rec.listen,
	})
	defer s.Close()
	s.Start()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case typ := <-rec.notify:
			if typ != EventRoundExpired {
				continue
			}
			st := s.State()
			if st.Running || st.TimeRemaining != 0 || st.Score != 0 {
				t.Errorf("unexpected state after expiry: %+v", st)
			}
			if n := rec.count(EventTick); n != 2 {
				t.Errorf("expected 2 ticks before expiry, got %d", n)
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for round to expire")
		}
	}
}

func TestTimer_CancelledOnEnd(t *testing.T) {
	rec := newEventRecorder()
	s := NewSession(Options{
		RoundDuration: 1000,
		TickInterval:  2 * time.Millisecond,
		Listener:      rec.listen,
	})
	defer s.Close()

	s.Start()
	time.Sleep(20 * time.Millisecond)
	s.End()

	before := rec.count(EventTick)
	time.Sleep(40 * time.Millisecond)

	if after := rec.count(EventTick); after != before {
		t.Errorf("expected no ticks after End, got %d more", after-before)
	}
	rec.mu.Lock()
	last := rec.events[len(rec.events)-1]
	rec.mu.Unlock()
	if last.Type != EventState || last.State.Started {
		t.Errorf("expected the reset state to be the last event, got %s %+v", last.Type, last.State)
	}
	if st := s.State(); st.TimeRemaining != 1000 || st.Running {
		t.Errorf("expected reset clock, got %+v", st)
	}
}

func TestTimer_CancelledOnSubmit(t *testing.T) {
	s := NewSession(Options{
		Challenges:    []models.Challenge{streetChallenge},
		TotalRounds:   1,
		RoundDuration: 1000,
		TickInterval:  2 * time.Millisecond,
	})
	defer s.Close()

	s.Start()
	wearRequired(s)
	time.Sleep(10 * time.Millisecond)

	_, st, err := s.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	time.Sleep(20 * time.Millisecond)

	if got := s.State().TimeRemaining; got != st.TimeRemaining {
		t.Errorf("expected clock frozen at %d after submit, got %d", st.TimeRemaining, got)
	}
}

func TestTimer_StaleGenerationIgnored(t *testing.T) {
	s := newManualSession(t)
	s.Start()

	s.mu.Lock()
	stale := s.generation
	s.mu.Unlock()

	s.StartRound()
	if s.tick(stale) {
		t.Error("expected stale tick to stop")
	}
	if st := s.State(); st.TimeRemaining != 30 {
		t.Errorf("expected stale tick to be ignored, got %d", st.TimeRemaining)
	}
}

func TestEvents_TickDeliveredBeforeNextRound(t *testing.T) {
	blocked := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	rec := newEventRecorder()
	s := NewSession(Options{
		Challenges:  []models.Challenge{streetChallenge},
		ManualTicks: true,
		Listener: func(ev Event) {
			if ev.Type == EventTick {
				once.Do(func() {
					close(blocked)
					<-release
				})
			}
			rec.listen(ev)
		},
	})
	defer s.Close()
	s.Start()
	wearRequired(s)

	go s.Tick()
	<-blocked

	submitted := make(chan error, 1)
	go func() {
		_, _, err := s.Submit()
		submitted <- err
	}()

	select {
	case err := <-submitted:
		t.Fatalf("submit returned while a tick was being delivered: %v", err)
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	if err := <-submitted; err != nil {
		t.Fatalf("Submit: %v", err)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	n := len(rec.events)
	if n < 2 {
		t.Fatalf("expected at least 2 events, got %d", n)
	}
	tick, next := rec.events[n-2], rec.events[n-1]
	if tick.Type != EventTick || tick.State.Round != 1 {
		t.Errorf("expected round 1 tick first, got %s round=%d", tick.Type, tick.State.Round)
	}
	if next.Type != EventRoundStarted || next.State.Round != 2 {
		t.Errorf("expected round 2 start last, got %s round=%d", next.Type, next.State.Round)
	}
}

func TestEvents_NoTickAfterRoundChange(t *testing.T) {
	rec := newEventRecorder()
	s := NewSession(Options{
		Challenges:    []models.Challenge{streetChallenge},
		RoundDuration: 1000,
		TickInterval:  time.Millisecond,
		Listener:      rec.listen,
	})
	defer s.Close()

	s.Start()
	for i := 0; i < 3; i++ {
		wearRequired(s)
		time.Sleep(5 * time.Millisecond)
		if _, _, err := s.Submit(); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	s.End()

	rec.mu.Lock()
	defer rec.mu.Unlock()
	round, started := 0, false
	for i, ev := range rec.events {
		switch ev.Type {
		case EventRoundStarted:
			round, started = ev.State.Round, true
		case EventTick:
			if !started || ev.State.Round != round {
				t.Fatalf("event %d: tick for round %d delivered during round %d", i, ev.State.Round, round)
			}
		case EventState:
			if !ev.State.Started {
				started = false
			}
		}
	}
}

func TestEvents_StateChangesAreEmitted(t *testing.T) {
	rec := newEventRecorder()
	s := NewSession(Options{ManualTicks: true, Listener: rec.listen})
	defer s.Close()

	s.Equip(item("tee", CategoryTops))
	s.Equip(item("tote", "Bags"))
	s.Clear()
	s.SetBackground("park")
	s.SetBackground("moon")
	s.End()

	if n := rec.count(EventState); n != 4 {
		t.Errorf("expected 4 state events, got %d", n)
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if bg := rec.events[2].State.Background; bg != "park" {
		t.Errorf("expected background event to carry park, got %q", bg)
	}
}
