package repository

import (
	"context"

	"github.com/thryft-app/thryft/internal/models"
)

// UserRepository defines identity data operations
type UserRepository interface {
	CreateUser(ctx context.Context, username, name, passwordHash string) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// ClosetRepository defines wardrobe data operations. Every call is scoped
// to the owning user.
type ClosetRepository interface {
	ListClosetItems(ctx context.Context, userID string) ([]models.ClosetItem, error)
	GetClosetItem(ctx context.Context, userID, id string) (*models.ClosetItem, error)
	CreateClosetItem(ctx context.Context, userID string, item models.ClosetItem) (*models.ClosetItem, error)
	DeleteClosetItem(ctx context.Context, userID, id string) error
	CountClosetItems(ctx context.Context, userID string) (int, error)
}

// CategoryRepository defines custom category data operations
type CategoryRepository interface {
	ListCustomCategories(ctx context.Context, userID string) ([]models.Category, error)
	GetCustomCategory(ctx context.Context, userID, id string) (*models.Category, error)
	CreateCustomCategory(ctx context.Context, userID string, cat models.Category) (*models.Category, error)
	DeleteCustomCategory(ctx context.Context, userID, id, reassignTo string) (int, error)
}

// OutfitRepository defines saved outfit data operations
type OutfitRepository interface {
	CreateOutfit(ctx context.Context, userID string, outfit models.Outfit) (*models.Outfit, error)
	GetOutfit(ctx context.Context, userID, id string) (*models.Outfit, error)
	ListOutfits(ctx context.Context, userID string) ([]models.Outfit, error)
	UpdateOutfit(ctx context.Context, userID string, outfit models.Outfit) error
	DeleteOutfit(ctx context.Context, userID, id string) error
}

// HealthRepository reports whether the store is reachable
type HealthRepository interface {
	Ping(ctx context.Context) error
}

// FullRepository combines all repository interfaces
type FullRepository interface {
	HealthRepository
	UserRepository
	ClosetRepository
	CategoryRepository
	OutfitRepository
}

// Ensure Repository implements all interfaces
var _ FullRepository = (*Repository)(nil)
