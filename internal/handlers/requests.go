package handlers

// RegisterRequest represents a request to create an account
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest represents a request to sign in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ClosetItemCreateRequest represents a request to add a closet item
type ClosetItemCreateRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

// CategoryCreateRequest represents a request to create a custom category
type CategoryCreateRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// EquipRequest represents a request to wear a closet item
type EquipRequest struct {
	ItemID string `json:"item_id"`
}

// BackgroundRequest represents a request to change the scene
type BackgroundRequest struct {
	Background string `json:"background"`
}

// OutfitUpdateRequest renames or retags a saved outfit. Absent fields are
// left alone; an empty tags list clears them.
type OutfitUpdateRequest struct {
	Name *string   `json:"name"`
	Tags *[]string `json:"tags"`
}
