package mock

import (
	"context"

	"github.com/thryft-app/thryft/internal/models"
	"github.com/thryft-app/thryft/internal/repository"
)

// Repository wraps a real repository and allows injecting errors for testing.
// This provides a flexible way to test error paths without complex database manipulation.
//
// Usage:
//
//	realRepo := testutil.NewTestRepository(t)
//	mockRepo := mock.NewRepository(realRepo)
//	mockRepo.CountClosetItemsError = errors.New("database error")
//	svc := services.NewGameService(log, mockRepo, outfits, services.GameConfig{})
//	_, err := svc.Start(ctx, userID)
//	// err will now contain the injected error
type Repository struct {
	repository.FullRepository

	// ===== User Errors =====
	CreateUserError        error
	GetUserError           error
	GetUserByUsernameError error

	// ===== Closet Errors =====
	ListClosetItemsError  error
	GetClosetItemError    error
	CreateClosetItemError error
	DeleteClosetItemError error
	CountClosetItemsError error

	// ===== Category Errors =====
	ListCustomCategoriesError error
	GetCustomCategoryError    error
	CreateCustomCategoryError error
	DeleteCustomCategoryError error

	// ===== Outfit Errors =====
	CreateOutfitError error
	GetOutfitError    error
	ListOutfitsError  error
	UpdateOutfitError error
	DeleteOutfitError error

	PingError error
}

// NewRepository creates a mock repository wrapping a real one
func NewRepository(real repository.FullRepository) *Repository {
	return &Repository{
		FullRepository: real,
	}
}

// ===== User Methods =====

func (m *Repository) CreateUser(ctx context.Context, username, name, passwordHash string) (*models.User, error) {
	if m.CreateUserError != nil {
		return nil, m.CreateUserError
	}
	return m.FullRepository.CreateUser(ctx, username, name, passwordHash)
}

func (m *Repository) GetUser(ctx context.Context, id string) (*models.User, error) {
	if m.GetUserError != nil {
		return nil, m.GetUserError
	}
	return m.FullRepository.GetUser(ctx, id)
}

func (m *Repository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.GetUserByUsernameError != nil {
		return nil, m.GetUserByUsernameError
	}
	return m.FullRepository.GetUserByUsername(ctx, username)
}

// ===== Closet Methods =====

func (m *Repository) ListClosetItems(ctx context.Context, userID string) ([]models.ClosetItem, error) {
	if m.ListClosetItemsError != nil {
		return nil, m.ListClosetItemsError
	}
	return m.FullRepository.ListClosetItems(ctx, userID)
}

func (m *Repository) GetClosetItem(ctx context.Context, userID, id string) (*models.ClosetItem, error) {
	if m.GetClosetItemError != nil {
		return nil, m.GetClosetItemError
	}
	return m.FullRepository.GetClosetItem(ctx, userID, id)
}

func (m *Repository) CreateClosetItem(ctx context.Context, userID string, item models.ClosetItem) (*models.ClosetItem, error) {
	if m.CreateClosetItemError != nil {
		return nil, m.CreateClosetItemError
	}
	return m.FullRepository.CreateClosetItem(ctx, userID, item)
}

func (m *Repository) DeleteClosetItem(ctx context.Context, userID, id string) error {
	if m.DeleteClosetItemError != nil {
		return m.DeleteClosetItemError
	}
	return m.FullRepository.DeleteClosetItem(ctx, userID, id)
}

func (m *Repository) CountClosetItems(ctx context.Context, userID string) (int, error) {
	if m.CountClosetItemsError != nil {
		return 0, m.CountClosetItemsError
	}
	return m.FullRepository.CountClosetItems(ctx, userID)
}

// ===== Category Methods =====

func (m *Repository) ListCustomCategories(ctx context.Context, userID string) ([]models.Category, error) {
	if m.ListCustomCategoriesError != nil {
		return nil, m.ListCustomCategoriesError
	}
	return m.FullRepository.ListCustomCategories(ctx, userID)
}

func (m *Repository) GetCustomCategory(ctx context.Context, userID, id string) (*models.Category, error) {
	if m.GetCustomCategoryError != nil {
		return nil, m.GetCustomCategoryError
	}
	return m.FullRepository.GetCustomCategory(ctx, userID, id)
}

func (m *Repository) CreateCustomCategory(ctx context.Context, userID string, cat models.Category) (*models.Category, error) {
	if m.CreateCustomCategoryError != nil {
		return nil, m.CreateCustomCategoryError
	}
	return m.FullRepository.CreateCustomCategory(ctx, userID, cat)
}

func (m *Repository) DeleteCustomCategory(ctx context.Context, userID, id, reassignTo string) (int, error) {
	if m.DeleteCustomCategoryError != nil {
		return 0, m.DeleteCustomCategoryError
	}
	return m.FullRepository.DeleteCustomCategory(ctx, userID, id, reassignTo)
}

// ===== Outfit Methods =====

func (m *Repository) CreateOutfit(ctx context.Context, userID string, outfit models.Outfit) (*models.Outfit, error) {
	if m.CreateOutfitError != nil {
		return nil, m.CreateOutfitError
	}
	return m.FullRepository.CreateOutfit(ctx, userID, outfit)
}

func (m *Repository) GetOutfit(ctx context.Context, userID, id string) (*models.Outfit, error) {
	if m.GetOutfitError != nil {
		return nil, m.GetOutfitError
	}
	return m.FullRepository.GetOutfit(ctx, userID, id)
}

func (m *Repository) ListOutfits(ctx context.Context, userID string) ([]models.Outfit, error) {
	if m.ListOutfitsError != nil {
		return nil, m.ListOutfitsError
	}
	return m.FullRepository.ListOutfits(ctx, userID)
}

func (m *Repository) UpdateOutfit(ctx context.Context, userID string, outfit models.Outfit) error {
	if m.UpdateOutfitError != nil {
		return m.UpdateOutfitError
	}
	return m.FullRepository.UpdateOutfit(ctx, userID, outfit)
}

func (m *Repository) DeleteOutfit(ctx context.Context, userID, id string) error {
	if m.DeleteOutfitError != nil {
		return m.DeleteOutfitError
	}
	return m.FullRepository.DeleteOutfit(ctx, userID, id)
}

func (m *Repository) Ping(ctx context.Context) error {
	if m.PingError != nil {
		return m.PingError
	}
	return m.FullRepository.Ping(ctx)
}
