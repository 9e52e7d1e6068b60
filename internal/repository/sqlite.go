package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/thryft-app/thryft/internal/models"
)

// Repository provides data access methods
type Repository struct {
	db *sql.DB
}

// New creates a new Repository
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign key constraints
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}

	// SQLite works best with a single connection; it also keeps
	// ":memory:" databases alive across calls.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	repo := &Repository{db: db}

	if err := repo.migrate(); err != nil {
		return nil, err
	}

	return repo, nil
}

// DB returns the underlying database connection
func (r *Repository) DB() *sql.DB {
	return r.db
}

// Close closes the database connection
func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping checks if the database connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// migrate runs database migrations
func (r *Repository) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS closet_items (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL,
			image TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL,
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS custom_categories (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			name TEXT NOT NULL,
			color TEXT NOT NULL DEFAULT '',
			icon TEXT NOT NULL DEFAULT '',
			UNIQUE(user_id, name),
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS outfits (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			name TEXT NOT NULL,
			background TEXT NOT NULL,
			challenge_id TEXT NOT NULL DEFAULT '',
			items TEXT NOT NULL DEFAULT '[]',
			tags TEXT NOT NULL DEFAULT '[]',
			created_at DATETIME NOT NULL,
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_closet_items_user ON closet_items(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_outfits_user ON outfits(user_id)`,
	}

	additionalMigrations := []string{
		`ALTER TABLE outfits ADD COLUMN tags TEXT NOT NULL DEFAULT '[]'`, // JSON array of tags
	}

	for _, m := range migrations {
		if _, err := r.db.Exec(m); err != nil {
			return err
		}
	}

	for _, m := range additionalMigrations {
		r.db.Exec(m) // Ignore errors - columns may already exist
	}
	return nil
}

// ===== Users =====

// CreateUser stores a new account. Usernames are unique.
func (r *Repository) CreateUser(ctx context.Context, username, name, passwordHash string) (*models.User, error) {
	u := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, name, password_hash, created_at) VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Name, u.PasswordHash, u.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

// GetUser retrieves a user by ID
func (r *Repository) GetUser(ctx context.Context, id string) (*models.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx,
		`SELECT id, username, name, password_hash, created_at FROM users WHERE id = ?`, id))
}

// GetUserByUsername retrieves a user by login name
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx,
		`SELECT id, username, name, password_hash, created_at FROM users WHERE username = ?`, username))
}

func (r *Repository) scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ===== Closet =====

// ListClosetItems returns a user's items, newest first
func (r *Repository) ListClosetItems(ctx context.Context, userID string) ([]models.ClosetItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, category, image, created_at
		FROM closet_items
		WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.ClosetItem{}
	for rows.Next() {
		var it models.ClosetItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.Image, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetClosetItem retrieves one of a user's items
func (r *Repository) GetClosetItem(ctx context.Context, userID, id string) (*models.ClosetItem, error) {
	var it models.ClosetItem
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, category, image, created_at FROM closet_items WHERE user_id = ? AND id = ?`,
		userID, id).Scan(&it.ID, &it.Name, &it.Category, &it.Image, &it.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// CreateClosetItem adds an item to a user's closet and returns it with its
// assigned ID and timestamp.
func (r *Repository) CreateClosetItem(ctx context.Context, userID string, item models.ClosetItem) (*models.ClosetItem, error) {
	item.ID = uuid.NewString()
	item.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO closet_items (id, user_id, name, category, image, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		item.ID, userID, item.Name, item.Category, item.Image, item.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

// DeleteClosetItem removes one of a user's items
func (r *Repository) DeleteClosetItem(ctx context.Context, userID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM closet_items WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// CountClosetItems returns how many items a user owns
func (r *Repository) CountClosetItems(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM closet_items WHERE user_id = ?`, userID).Scan(&n)
	return n, err
}

// ===== Custom categories =====

// ListCustomCategories returns a user's own categories in creation order
func (r *Repository) ListCustomCategories(ctx context.Context, userID string) ([]models.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, color, icon FROM custom_categories WHERE user_id = ? ORDER BY rowid`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cats := []models.Category{}
	for rows.Next() {
		c := models.Category{Custom: true}
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &c.Icon); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// GetCustomCategory retrieves one of a user's categories
func (r *Repository) GetCustomCategory(ctx context.Context, userID, id string) (*models.Category, error) {
	c := models.Category{Custom: true}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, color, icon FROM custom_categories WHERE user_id = ? AND id = ?`,
		userID, id).Scan(&c.ID, &c.Name, &c.Color, &c.Icon)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCustomCategory stores a user category. Names are unique per user.
func (r *Repository) CreateCustomCategory(ctx context.Context, userID string, cat models.Category) (*models.Category, error) {
	cat.ID = uuid.NewString()
	cat.Custom = true
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO custom_categories (id, user_id, name, color, icon) VALUES (?, ?, ?, ?, ?)`,
		cat.ID, userID, cat.Name, cat.Color, cat.Icon)
	if err != nil {
		return nil, translate(err)
	}
	return &cat, nil
}

// DeleteCustomCategory removes a user category, first moving every item
// filed under it to reassignTo. Both happen in one transaction. It returns
// how many items were moved.
func (r *Repository) DeleteCustomCategory(ctx context.Context, userID, id, reassignTo string) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var name string
	err = tx.QueryRowContext(ctx,
		`SELECT name FROM custom_categories WHERE user_id = ? AND id = ?`, userID, id).Scan(&name)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE closet_items SET category = ? WHERE user_id = ? AND category = ?`, reassignTo, userID, name)
	if err != nil {
		return 0, err
	}
	moved, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM custom_categories WHERE user_id = ? AND id = ?`, userID, id); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return int(moved), nil
}

// ===== Outfits =====

const outfitColumns = `id, name, background, challenge_id, items, tags, created_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanOutfit(row rowScanner) (*models.Outfit, error) {
	var o models.Outfit
	var items, tags string
	if err := row.Scan(&o.ID, &o.Name, &o.Background, &o.ChallengeID, &items, &tags, &o.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(items), &o.Items); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(tags), &o.Tags); err != nil {
		return nil, err
	}
	return &o, nil
}

func marshalList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	return string(b), err
}

// CreateOutfit stores a saved outfit. Item IDs and tags are kept as JSON arrays.
func (r *Repository) CreateOutfit(ctx context.Context, userID string, outfit models.Outfit) (*models.Outfit, error) {
	if outfit.Items == nil {
		outfit.Items = []string{}
	}
	if outfit.Tags == nil {
		outfit.Tags = []string{}
	}
	items, err := marshalList(outfit.Items)
	if err != nil {
		return nil, err
	}
	tags, err := marshalList(outfit.Tags)
	if err != nil {
		return nil, err
	}

	outfit.ID = uuid.NewString()
	outfit.CreatedAt = time.Now().UTC()
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO outfits (id, user_id, name, background, challenge_id, items, tags, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, outfit.ID, userID, outfit.Name, outfit.Background, outfit.ChallengeID, items, tags, outfit.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &outfit, nil
}

// GetOutfit retrieves one of a user's saved outfits
func (r *Repository) GetOutfit(ctx context.Context, userID, id string) (*models.Outfit, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+outfitColumns+`
		FROM outfits WHERE user_id = ? AND id = ?
	`, userID, id)
	o, err := scanOutfit(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return o, err
}

// ListOutfits returns a user's saved outfits, newest first
func (r *Repository) ListOutfits(ctx context.Context, userID string) ([]models.Outfit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+outfitColumns+`
		FROM outfits
		WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	outfits := []models.Outfit{}
	for rows.Next() {
		o, err := scanOutfit(rows)
		if err != nil {
			return nil, err
		}
		outfits = append(outfits, *o)
	}
	return outfits, rows.Err()
}

// UpdateOutfit rewrites the name and tags of a saved outfit. The items,
// background and challenge of a saved look never change.
func (r *Repository) UpdateOutfit(ctx context.Context, userID string, outfit models.Outfit) error {
	tags, err := marshalList(outfit.Tags)
	if err != nil {
		return err
	}
	result, err := r.db.ExecContext(ctx, `
		UPDATE outfits SET name = ?, tags = ? WHERE user_id = ? AND id = ?
	`, outfit.Name, tags, userID, outfit.ID)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// DeleteOutfit removes a saved outfit
func (r *Repository) DeleteOutfit(ctx context.Context, userID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM outfits WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
