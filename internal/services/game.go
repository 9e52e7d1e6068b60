package services

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/thryft-app/thryft/internal/game"
	"github.com/thryft-app/thryft/internal/logger"
	"github.com/thryft-app/thryft/internal/models"
	"github.com/thryft-app/thryft/internal/repository"
)

// GameConfig tunes every session the service creates. Zero fields take the
// game package defaults.
type GameConfig struct {
	TotalRounds   int
	RoundDuration int // seconds
	TickInterval  time.Duration
	ManualTicks   bool
	// Rand is shared by every session; set it only with a single player.
	Rand *rand.Rand
}

// EquipResult reports what an equip request did
type EquipResult struct {
	Equipped bool       `json:"equipped"`
	Slot     string     `json:"slot,omitempty"`
	State    game.State `json:"state"`
}

// SubmitResult is a scored round
type SubmitResult struct {
	Points int        `json:"points"`
	State  game.State `json:"state"`
}

// GameService owns one game session per user. Session events are pushed to
// that user's connections through the broadcaster.
type GameService struct {
	log     logger.Logger
	closet  repository.ClosetRepository
	outfits OutfitServicer
	cfg     GameConfig

	mu          sync.Mutex
	sessions    map[string]*game.Session
	broadcaster Broadcaster
}

// NewGameService creates a new GameService
func NewGameService(log logger.Logger, closet repository.ClosetRepository, outfits OutfitServicer, cfg GameConfig) *GameService {
	return &GameService{
		log:      log,
		closet:   closet,
		outfits:  outfits,
		cfg:      cfg,
		sessions: make(map[string]*game.Session),
	}
}

// SetBroadcaster sets the broadcaster for sending session events to clients
func (s *GameService) SetBroadcaster(b Broadcaster) {
	s.mu.Lock()
	s.broadcaster = b
	s.mu.Unlock()
}

// State returns the user's current session snapshot
func (s *GameService) State(ctx context.Context, userID string) game.State {
	return s.session(userID).State()
}

// Start begins a new game. The player needs at least one closet item.
func (s *GameService) Start(ctx context.Context, userID string) (game.State, error) {
	n, err := s.closet.CountClosetItems(ctx, userID)
	if err != nil {
		return game.State{}, err
	}
	if n == 0 {
		return game.State{}, ErrEmptyCloset
	}

	st := s.session(userID).Start()
	s.log.Info("Game started", "user_id", userID, "challenge", st.Challenge.ID)
	return st, nil
}

// Equip wears a closet item by ID. Empty or unknown IDs and items whose
// category has no slot are ignored.
func (s *GameService) Equip(ctx context.Context, userID, itemID string) (*EquipResult, error) {
	sess := s.session(userID)
	res := &EquipResult{}

	itemID = strings.TrimSpace(itemID)
	if itemID != "" {
		item, err := s.closet.GetClosetItem(ctx, userID, itemID)
		switch {
		case err == repository.ErrNotFound:
			s.log.Debug("Ignoring equip of unknown item", "user_id", userID, "item_id", itemID)
		case err != nil:
			return nil, err
		default:
			if slot, ok := sess.Equip(*item); ok {
				res.Equipped = true
				res.Slot = slot.String()
			}
		}
	}

	res.State = sess.State()
	return res, nil
}

// Clear empties every slot
func (s *GameService) Clear(ctx context.Context, userID string) game.State {
	sess := s.session(userID)
	sess.Clear()
	return sess.State()
}

// SetBackground changes the scene
func (s *GameService) SetBackground(ctx context.Context, userID, background string) (game.State, error) {
	sess := s.session(userID)
	if err := sess.SetBackground(background); err != nil {
		return game.State{}, err
	}
	return sess.State(), nil
}

// Submit scores the current outfit
func (s *GameService) Submit(ctx context.Context, userID string) (*SubmitResult, error) {
	pts, st, err := s.session(userID).Submit()
	if err != nil {
		return nil, err
	}
	s.log.Info("Round submitted", "user_id", userID, "round", st.Round, "points", pts, "score", st.Score)
	return &SubmitResult{Points: pts, State: st}, nil
}

// Advance moves on from an expired round
func (s *GameService) Advance(ctx context.Context, userID string) (game.State, error) {
	return s.session(userID).Advance()
}

// Save stores the equipped look as a named outfit
func (s *GameService) Save(ctx context.Context, userID string) (*models.Outfit, error) {
	st := s.session(userID).State()
	if !st.HasEquipped {
		return nil, ErrNothingEquipped
	}

	look := GameLook{
		Equipment:  st.Equipment,
		Background: st.Background,
		Round:      st.Round,
	}
	if st.Challenge != nil {
		look.ChallengeID = st.Challenge.ID
	}
	return s.outfits.SaveGameOutfit(ctx, userID, look)
}

// End stops the game and resets the session
func (s *GameService) End(ctx context.Context, userID string) game.State {
	st := s.session(userID).End()
	s.log.Debug("Game ended", "user_id", userID)
	return st
}

// Close stops every session timer and waits for them to exit
func (s *GameService) Close() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*game.Session)
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.Close()
	}
}

// session returns the user's session, creating an idle one on first use
func (s *GameService) session(userID string) *game.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[userID]; ok {
		return sess
	}

	sess := game.NewSession(game.Options{
		TotalRounds:   s.cfg.TotalRounds,
		RoundDuration: s.cfg.RoundDuration,
		TickInterval:  s.cfg.TickInterval,
		ManualTicks:   s.cfg.ManualTicks,
		Rand:          s.cfg.Rand,
		Listener:      func(ev game.Event) { s.onEvent(userID, ev) },
	})
	s.sessions[userID] = sess
	return sess
}

func (s *GameService) onEvent(userID string, ev game.Event) {
	switch ev.Type {
	case game.EventRoundExpired:
		s.log.Info("Round expired", "user_id", userID, "round", ev.State.Round)
	case game.EventGameOver:
		s.log.Info("Game over", "user_id", userID, "score", ev.State.Score)
	}
	s.send(userID, models.WSMessage{Type: string(ev.Type), Payload: ev})
}

func (s *GameService) send(userID string, msg models.WSMessage) {
	s.mu.Lock()
	b := s.broadcaster
	s.mu.Unlock()
	if b != nil {
		b.SendToUser(userID, msg)
	}
}
