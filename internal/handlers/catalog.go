package handlers

import (
	"net/http"

	"github.com/thryft-app/thryft/internal/game"
)

// handleIndex is the page the console opens; it points a client at the API
func (h *Handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	respondOK(w, IndexResponse{
		Name:       "thryft",
		Challenges: "/api/challenges",
		Game:       "/api/game",
		Events:     "/ws",
	})
}

// handleHealth reports 503 when the store does not answer a ping
func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.Health != nil {
		if err := h.Health.Ping(r.Context()); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
			return
		}
	}
	respondOK(w, HealthResponse{Status: "ok"})
}

func (h *Handlers) handleGetChallenges(w http.ResponseWriter, r *http.Request) {
	respondOK(w, game.Challenges())
}

func (h *Handlers) handleGetBackgrounds(w http.ResponseWriter, r *http.Request) {
	respondOK(w, BackgroundsResponse{
		Backgrounds: game.Backgrounds,
		Default:     game.DefaultBackground(),
	})
}
