package models

import "time"

// User is an account in the identity store
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// ClosetItem is a single wardrobe piece owned by a user
type ClosetItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

// Category is a closet category. Base categories are built in; custom ones
// belong to a single user and can be deleted with their items reassigned.
type Category struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Color  string `json:"color,omitempty"`
	Icon   string `json:"icon,omitempty"`
	Custom bool   `json:"custom"`
}

// Challenge is a styling prompt scored by the game
type Challenge struct {
	ID                 string   `json:"id"`
	Label              string   `json:"label"`
	Description        string   `json:"description"`
	RequiredCategories []string `json:"required_categories"`
	BonusCategories    []string `json:"bonus_categories"`
}

// Outfit is a saved look. Items holds closet item ids.
type Outfit struct {
	ID          string    `json:"id"`
	Items       []string  `json:"items"`
	Background  string    `json:"background"`
	Name        string    `json:"name"`
	ChallengeID string    `json:"challenge_id,omitempty"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}
