package testutil

import (
	"context"
	"testing"

	"github.com/thryft-app/thryft/internal/models"
	"github.com/thryft-app/thryft/internal/repository"
)

// NewTestRepository creates a new in-memory repository for testing.
// Each call creates a fresh database with all migrations applied.
func NewTestRepository(t *testing.T) *repository.Repository {
	t.Helper()

	repo, err := repository.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test repository: %v", err)
	}

	t.Cleanup(func() { repo.Close() })

	return repo
}

// CreateUser adds an account with a placeholder password hash
func CreateUser(t *testing.T, repo repository.UserRepository, username string) *models.User {
	t.Helper()

	u, err := repo.CreateUser(context.Background(), username, username, "x")
	if err != nil {
		t.Fatalf("failed to create user %q: %v", username, err)
	}
	return u
}

// SeedCloset gives the user one item for each of the named categories and
// returns them in the same order.
func SeedCloset(t *testing.T, repo repository.ClosetRepository, userID string, categories ...string) []models.ClosetItem {
	t.Helper()

	items := make([]models.ClosetItem, 0, len(categories))
	for _, cat := range categories {
		it, err := repo.CreateClosetItem(context.Background(), userID, models.ClosetItem{
			Name:     cat + " item",
			Category: cat,
			Image:    "https://img.example/" + cat,
		})
		if err != nil {
			t.Fatalf("failed to seed %s: %v", cat, err)
		}
		items = append(items, *it)
	}
	return items
}
