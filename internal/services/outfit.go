package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/skip2/go-qrcode"

	"github.com/thryft-app/thryft/internal/errors"
	"github.com/thryft-app/thryft/internal/game"
	"github.com/thryft-app/thryft/internal/logger"
	"github.com/thryft-app/thryft/internal/models"
	"github.com/thryft-app/thryft/internal/repository"
)

// MaxOutfitTags caps the tags on one saved outfit
const MaxOutfitTags = 20

// OutfitService persists looks built in the game
type OutfitService struct {
	log     logger.Logger
	repo    repository.OutfitRepository
	baseURL string
}

// NewOutfitService creates a new OutfitService. baseURL is the public
// address share codes point at.
func NewOutfitService(log logger.Logger, repo repository.OutfitRepository, baseURL string) *OutfitService {
	return &OutfitService{log: log, repo: repo, baseURL: baseURL}
}

// GameLook is what the game hands over when the player saves
type GameLook struct {
	Equipment   game.Equipment
	Background  string
	Round       int
	ChallengeID string
}

// GameOutfitName is the name given to outfits saved from round n
func GameOutfitName(round int) string {
	return fmt.Sprintf("Game Outfit • Round %d", round)
}

// SaveGameOutfit stores the equipped items, in slot order, with the scene
// and round they were styled for. Store errors are returned as-is.
func (s *OutfitService) SaveGameOutfit(ctx context.Context, userID string, look GameLook) (*models.Outfit, error) {
	if !look.Equipment.HasAny() {
		return nil, ErrNothingEquipped
	}

	outfit, err := s.repo.CreateOutfit(ctx, userID, models.Outfit{
		Items:       look.Equipment.ItemIDs(),
		Background:  look.Background,
		Name:        GameOutfitName(look.Round),
		ChallengeID: look.ChallengeID,
	})
	if err != nil {
		s.log.Error("Failed to save outfit", "user_id", userID, "error", err)
		return nil, err
	}

	s.log.Info("Outfit saved", "user_id", userID, "outfit_id", outfit.ID, "items", len(outfit.Items))
	return outfit, nil
}

// OutfitQuery filters and orders the saved outfit listing
type OutfitQuery struct {
	Sort string // one of the Sort* modes; empty means newest
	Tag  string // empty or "All" for every outfit
}

// ListOutfits returns the user's saved outfits filtered and sorted by q
func (s *OutfitService) ListOutfits(ctx context.Context, userID string, q OutfitQuery) ([]models.Outfit, error) {
	if !validSort(q.Sort) {
		return nil, ErrInvalidSort
	}
	outfits, err := s.repo.ListOutfits(ctx, userID)
	if err != nil {
		return nil, err
	}

	tag := strings.TrimSpace(q.Tag)
	if tag != "" && tag != "All" {
		outfits = slices.DeleteFunc(outfits, func(o models.Outfit) bool {
			return !slices.Contains(o.Tags, tag)
		})
	}

	sortByMode(outfits, q.Sort,
		func(o models.Outfit) string { return o.Name },
		func(o models.Outfit) time.Time { return o.CreatedAt })
	return outfits, nil
}

// Rename gives a saved outfit a new name
func (s *OutfitService) Rename(ctx context.Context, userID, id, name string) (*models.Outfit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrOutfitNameRequired
	}
	return s.update(ctx, userID, id, func(o *models.Outfit) { o.Name = name })
}

// SetTags replaces the tags of a saved outfit. Tags are trimmed, empty ones
// dropped and repeats kept once, first spelling wins.
func (s *OutfitService) SetTags(ctx context.Context, userID, id string, tags []string) (*models.Outfit, error) {
	clean := normalizeTags(tags)
	if len(clean) > MaxOutfitTags {
		return nil, ErrTooManyTags
	}
	return s.update(ctx, userID, id, func(o *models.Outfit) { o.Tags = clean })
}

// Delete removes a saved outfit
func (s *OutfitService) Delete(ctx context.Context, userID, id string) error {
	err := s.repo.DeleteOutfit(ctx, userID, id)
	if err == repository.ErrNotFound {
		return ErrOutfitNotFound
	}
	if err != nil {
		return err
	}
	s.log.Info("Outfit deleted", "user_id", userID, "outfit_id", id)
	return nil
}

func (s *OutfitService) update(ctx context.Context, userID, id string, change func(*models.Outfit)) (*models.Outfit, error) {
	outfit, err := s.repo.GetOutfit(ctx, userID, id)
	if err == repository.ErrNotFound {
		return nil, ErrOutfitNotFound
	}
	if err != nil {
		return nil, err
	}

	change(outfit)
	err = s.repo.UpdateOutfit(ctx, userID, *outfit)
	if err == repository.ErrNotFound {
		return nil, ErrOutfitNotFound
	}
	if err != nil {
		return nil, err
	}

	s.log.Debug("Outfit updated", "user_id", userID, "outfit_id", id)
	return outfit, nil
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if slices.ContainsFunc(out, func(have string) bool { return strings.EqualFold(have, t) }) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// ShareQR renders a PNG QR code linking to a saved outfit
func (s *OutfitService) ShareQR(ctx context.Context, userID, id string) ([]byte, error) {
	outfit, err := s.repo.GetOutfit(ctx, userID, id)
	if err == repository.ErrNotFound {
		return nil, ErrOutfitNotFound
	}
	if err != nil {
		return nil, err
	}
	if s.baseURL == "" {
		return nil, errors.Precondition("base URL not configured")
	}

	shareURL := fmt.Sprintf("%s/outfits/%s", strings.TrimSuffix(s.baseURL, "/"), outfit.ID)
	return qrcode.Encode(shareURL, qrcode.Medium, 256)
}
