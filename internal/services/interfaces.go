package services

import (
	"context"

	"github.com/thryft-app/thryft/internal/game"
	"github.com/thryft-app/thryft/internal/models"
)

// Broadcaster delivers a message to every live connection of one user
type Broadcaster interface {
	SendToUser(userID string, msg models.WSMessage)
}

// AccountServicer defines the interface for account operations
type AccountServicer interface {
	Register(ctx context.Context, username, password, name string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, *models.User, error)
	Logout(token string)
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// ClosetServicer defines the interface for wardrobe operations
type ClosetServicer interface {
	ListItems(ctx context.Context, userID string, q ClosetQuery) ([]models.ClosetItem, error)
	AddItem(ctx context.Context, userID string, item NewClosetItem) (*models.ClosetItem, error)
	DeleteItem(ctx context.Context, userID, id string) error
	ListCategories(ctx context.Context, userID string) ([]models.Category, error)
	CreateCategory(ctx context.Context, userID string, cat NewCategory) (*models.Category, error)
	DeleteCategory(ctx context.Context, userID, id, reassignTo string) (int, error)
	Stats(ctx context.Context, userID string) (*ClosetStats, error)
}

// OutfitServicer defines the interface for saved outfit operations
type OutfitServicer interface {
	SaveGameOutfit(ctx context.Context, userID string, look GameLook) (*models.Outfit, error)
	ListOutfits(ctx context.Context, userID string, q OutfitQuery) ([]models.Outfit, error)
	Rename(ctx context.Context, userID, id, name string) (*models.Outfit, error)
	SetTags(ctx context.Context, userID, id string, tags []string) (*models.Outfit, error)
	Delete(ctx context.Context, userID, id string) error
	ShareQR(ctx context.Context, userID, id string) ([]byte, error)
}

// GameServicer defines the interface for outfit challenge operations
type GameServicer interface {
	State(ctx context.Context, userID string) game.State
	Start(ctx context.Context, userID string) (game.State, error)
	Equip(ctx context.Context, userID, itemID string) (*EquipResult, error)
	Clear(ctx context.Context, userID string) game.State
	SetBackground(ctx context.Context, userID, background string) (game.State, error)
	Submit(ctx context.Context, userID string) (*SubmitResult, error)
	Advance(ctx context.Context, userID string) (game.State, error)
	Save(ctx context.Context, userID string) (*models.Outfit, error)
	End(ctx context.Context, userID string) game.State
}

// Ensure concrete types implement interfaces
var (
	_ AccountServicer = (*AccountService)(nil)
	_ ClosetServicer  = (*ClosetService)(nil)
	_ OutfitServicer  = (*OutfitService)(nil)
	_ GameServicer    = (*GameService)(nil)
)
