package services

import (
	"context"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/thryft-app/thryft/internal/game"
	"github.com/thryft-app/thryft/internal/logger"
	"github.com/thryft-app/thryft/internal/models"
	"github.com/thryft-app/thryft/internal/repository"
)

// Sort modes for closet items and saved outfits
const (
	SortNewest = "newest"
	SortOldest = "oldest"
	SortAZ     = "az"
	SortZA     = "za"
)

// reserved names are closet views, not categories
var reservedCategories = []string{"All", "Saved Outfits"}

// ClosetServiceRepository defines the repository methods needed by ClosetService
type ClosetServiceRepository interface {
	repository.ClosetRepository
	repository.CategoryRepository
}

// ClosetService handles wardrobe business logic
type ClosetService struct {
	log         logger.Logger
	repo        ClosetServiceRepository
	broadcaster Broadcaster
}

// NewClosetService creates a new ClosetService
func NewClosetService(log logger.Logger, repo ClosetServiceRepository) *ClosetService {
	return &ClosetService{log: log, repo: repo}
}

// SetBroadcaster sets the broadcaster for pushing closet changes to clients
func (s *ClosetService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// ClosetQuery filters and orders a closet listing
type ClosetQuery struct {
	Category string // empty or "All" for every category
	Search   string // case-insensitive name substring
	Sort     string // one of the Sort* modes; empty means newest
}

// NewClosetItem is the input for adding an item
type NewClosetItem struct {
	Name     string
	Category string
	Image    string
}

// NewCategory is the input for creating a custom category
type NewCategory struct {
	Name  string
	Color string
	Icon  string
}

// ListItems returns the user's items filtered and sorted by q
func (s *ClosetService) ListItems(ctx context.Context, userID string, q ClosetQuery) ([]models.ClosetItem, error) {
	if !validSort(q.Sort) {
		return nil, ErrInvalidSort
	}

	items, err := s.repo.ListClosetItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	filtered := items[:0]
	for _, it := range items {
		if q.Category != "" && q.Category != "All" && it.Category != q.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(it.Name), search) {
			continue
		}
		filtered = append(filtered, it)
	}

	sortByMode(filtered, q.Sort, itemName, itemCreated)
	return filtered, nil
}

// AddItem validates and stores a new item, then notifies the user's clients
func (s *ClosetService) AddItem(ctx context.Context, userID string, in NewClosetItem) (*models.ClosetItem, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Image = strings.TrimSpace(in.Image)
	in.Category = strings.TrimSpace(in.Category)
	if in.Name == "" {
		return nil, ErrItemNameRequired
	}
	if in.Image == "" {
		return nil, ErrItemImageRequired
	}
	if in.Category == "" {
		in.Category = game.CategoryTops
	}

	known, err := s.isCategory(ctx, userID, in.Category)
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, ErrUnknownCategory
	}

	item, err := s.repo.CreateClosetItem(ctx, userID, models.ClosetItem{
		Name:     in.Name,
		Category: in.Category,
		Image:    in.Image,
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug("Closet item added", "user_id", userID, "item_id", item.ID, "category", item.Category)
	s.notify(userID, "added", item)
	return item, nil
}

// DeleteItem removes an item from the user's closet
func (s *ClosetService) DeleteItem(ctx context.Context, userID, id string) error {
	err := s.repo.DeleteClosetItem(ctx, userID, id)
	if err == repository.ErrNotFound {
		return ErrItemNotFound
	}
	if err != nil {
		return err
	}
	s.notify(userID, "deleted", map[string]string{"id": id})
	return nil
}

// ListCategories returns the base categories followed by the user's own,
// sorted by name.
func (s *ClosetService) ListCategories(ctx context.Context, userID string) ([]models.Category, error) {
	custom, err := s.repo.ListCustomCategories(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(custom, func(i, j int) bool {
		return strings.ToLower(custom[i].Name) < strings.ToLower(custom[j].Name)
	})

	base := game.BaseCategories()
	cats := make([]models.Category, 0, len(base)+len(custom))
	for _, name := range base {
		cats = append(cats, models.Category{Name: name})
	}
	return append(cats, custom...), nil
}

// CreateCategory adds a custom category. Its name may not shadow a base
// category or a closet view.
func (s *ClosetService) CreateCategory(ctx context.Context, userID string, in NewCategory) (*models.Category, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, ErrCategoryName
	}
	for _, name := range append(game.BaseCategories(), reservedCategories...) {
		if strings.EqualFold(name, in.Name) {
			return nil, ErrCategoryExists
		}
	}

	cat, err := s.repo.CreateCustomCategory(ctx, userID, models.Category{
		Name:  in.Name,
		Color: strings.TrimSpace(in.Color),
		Icon:  strings.TrimSpace(in.Icon),
	})
	if err == repository.ErrDuplicate {
		return nil, ErrCategoryExists
	}
	if err != nil {
		return nil, err
	}

	s.log.Info("Category created", "user_id", userID, "category", cat.Name)
	return cat, nil
}

// DeleteCategory removes a custom category. Items filed under it move to
// reassignTo, which is required when any exist. It returns how many moved.
func (s *ClosetService) DeleteCategory(ctx context.Context, userID, id, reassignTo string) (int, error) {
	cat, err := s.repo.GetCustomCategory(ctx, userID, id)
	if err == repository.ErrNotFound {
		return 0, ErrCategoryNotFound
	}
	if err != nil {
		return 0, err
	}

	reassignTo = strings.TrimSpace(reassignTo)
	if reassignTo == "" {
		inUse, err := s.categoryInUse(ctx, userID, cat.Name)
		if err != nil {
			return 0, err
		}
		if inUse {
			return 0, ErrReassignRequired
		}
	} else {
		if reassignTo == cat.Name {
			return 0, ErrInvalidReassign
		}
		known, err := s.isCategory(ctx, userID, reassignTo)
		if err != nil {
			return 0, err
		}
		if !known {
			return 0, ErrInvalidReassign
		}
	}

	moved, err := s.repo.DeleteCustomCategory(ctx, userID, id, reassignTo)
	if err == repository.ErrNotFound {
		return 0, ErrCategoryNotFound
	}
	if err != nil {
		return 0, err
	}

	s.log.Info("Category deleted", "user_id", userID, "category", cat.Name, "moved", moved, "to", reassignTo)
	if moved > 0 {
		s.notify(userID, "reassigned", map[string]any{"from": cat.Name, "to": reassignTo, "moved": moved})
	}
	return moved, nil
}

// ClosetStats summarizes a closet
type ClosetStats struct {
	TotalItems       int            `json:"total_items"`
	Categories       map[string]int `json:"categories"`
	MostUsedCategory string         `json:"most_used_category,omitempty"`
}

// Stats counts the user's items per category. Ties for the most used
// category go to the name that sorts first.
func (s *ClosetService) Stats(ctx context.Context, userID string) (*ClosetStats, error) {
	items, err := s.repo.ListClosetItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &ClosetStats{TotalItems: len(items), Categories: make(map[string]int)}
	for _, it := range items {
		stats.Categories[it.Category]++
	}
	best := 0
	for name, n := range stats.Categories {
		if n > best || (n == best && name < stats.MostUsedCategory) {
			stats.MostUsedCategory, best = name, n
		}
	}
	return stats, nil
}

func (s *ClosetService) isCategory(ctx context.Context, userID, name string) (bool, error) {
	for _, base := range game.BaseCategories() {
		if base == name {
			return true, nil
		}
	}
	custom, err := s.repo.ListCustomCategories(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, c := range custom {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *ClosetService) categoryInUse(ctx context.Context, userID, name string) (bool, error) {
	items, err := s.repo.ListClosetItems(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, it := range items {
		if it.Category == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *ClosetService) notify(userID, action string, data any) {
	if s.broadcaster == nil {
		return
	}
	s.broadcaster.SendToUser(userID, models.WSMessage{
		Type:    "closet_updated",
		Payload: map[string]any{"action": action, "data": data},
	})
}

func itemName(it models.ClosetItem) string { return it.Name }
func itemCreated(it models.ClosetItem) time.Time { return it.CreatedAt }

func validSort(mode string) bool {
	switch mode {
	case "", SortNewest, SortOldest, SortAZ, SortZA:
		return true
	}
	return false
}

// sortByMode orders items in place. Input arrives newest first from the
// store, which also settles ties between equal timestamps.
func sortByMode[T any](items []T, mode string, name func(T) string, created func(T) time.Time) {
	switch mode {
	case SortOldest:
		slices.Reverse(items)
		slices.SortStableFunc(items, func(a, b T) int { return created(a).Compare(created(b)) })
	case SortAZ:
		slices.SortStableFunc(items, func(a, b T) int {
			return strings.Compare(strings.ToLower(name(a)), strings.ToLower(name(b)))
		})
	case SortZA:
		slices.SortStableFunc(items, func(a, b T) int {
			return strings.Compare(strings.ToLower(name(b)), strings.ToLower(name(a)))
		})
	default:
		slices.SortStableFunc(items, func(a, b T) int { return created(b).Compare(created(a)) })
	}
}
