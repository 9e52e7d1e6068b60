package handlers

import "github.com/thryft-app/thryft/internal/models"

// LoginResponse is the response for a successful sign in
type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// CategoryDeleteResponse reports how many items moved to the reassign target
type CategoryDeleteResponse struct {
	Reassigned int `json:"reassigned"`
}

// BackgroundsResponse lists the available scenes
type BackgroundsResponse struct {
	Backgrounds []string `json:"backgrounds"`
	Default     string   `json:"default"`
}

// HealthResponse is the response for the health check
type HealthResponse struct {
	Status string `json:"status"`
}

// IndexResponse describes the service at its root URL
type IndexResponse struct {
	Name       string `json:"name"`
	Challenges string `json:"challenges"`
	Game       string `json:"game"`
	Events     string `json:"events"`
}
