package services_test

import (
	"sync"
	"testing"

	"github.com/thryft-app/thryft/internal/auth"
	"github.com/thryft-app/thryft/internal/logger"
	"github.com/thryft-app/thryft/internal/models"
	"github.com/thryft-app/thryft/internal/repository"
	"github.com/thryft-app/thryft/internal/services"
	"github.com/thryft-app/thryft/internal/testutil"
)

// recordingBroadcaster captures every message sent to a user
type recordingBroadcaster struct {
	mu   sync.Mutex
	sent map[string][]models.WSMessage
}

func newRecordingBroadcaster() *recordingBroadcaster {
	return &recordingBroadcaster{sent: make(map[string][]models.WSMessage)}
}

func (b *recordingBroadcaster) SendToUser(userID string, msg models.WSMessage) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent[userID] = append(b.sent[userID], msg)
}

func (b *recordingBroadcaster) types(userID string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, 0, len(b.sent[userID]))
	for _, m := range b.sent[userID] {
		out = append(out, m.Type)
	}
	return out
}

type fixture struct {
	repo    *repository.Repository
	account *services.AccountService
	closet  *services.ClosetService
	outfits *services.OutfitService
	game    *services.GameService
	bcast   *recordingBroadcaster
}

// setupServices wires every service against a fresh in-memory database with
// a manually ticked game.
func setupServices(t *testing.T) *fixture {
	t.Helper()
	repo := testutil.NewTestRepository(t)
	log := logger.Discard()
	bcast := newRecordingBroadcaster()

	closet := services.NewClosetService(log, repo)
	closet.SetBroadcaster(bcast)
	outfits := services.NewOutfitService(log, repo, "http://thryft.local:8080")
	gameSvc := services.NewGameService(log, repo, outfits, services.GameConfig{ManualTicks: true})
	gameSvc.SetBroadcaster(bcast)
	t.Cleanup(gameSvc.Close)

	return &fixture{
		repo:    repo,
		account: services.NewAccountService(log, repo, auth.New()),
		closet:  closet,
		outfits: outfits,
		game:    gameSvc,
		bcast:   bcast,
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
