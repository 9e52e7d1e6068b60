package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// conditionalHTTPLogger only logs HTTP requests when HTTP logging is enabled
func (h *Handlers) conditionalHTTPLogger(next http.Handler) http.Handler {
	logger := middleware.Logger(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.Log != nil && h.Log.IsHTTPLoggingEnabled() {
			logger.ServeHTTP(w, r)
		} else {
			next.ServeHTTP(w, r)
		}
	})
}

// Router returns a configured chi router with all routes
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.conditionalHTTPLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)

	// Public
	r.Get("/", h.handleIndex)
	r.Get("/healthz", h.handleHealth)
	r.Post("/api/register", h.handleRegister)
	r.Post("/api/login", h.handleLogin)
	r.Post("/api/logout", h.handleLogout)
	r.Get("/api/challenges", h.handleGetChallenges)
	r.Get("/api/backgrounds", h.handleGetBackgrounds)

	r.Group(func(r chi.Router) {
		r.Use(h.Auth.RequireUser)

		// The WebSocket connection outlives any request timeout
		r.Get("/ws", h.Hub.ServeWs)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			r.Get("/api/me", h.handleMe)

			// Closet
			r.Get("/api/closet", h.handleGetCloset)
			r.Get("/api/closet/stats", h.handleGetClosetStats)
			r.Post("/api/closet", h.handleCreateClosetItem)
			r.Delete("/api/closet/{id}", h.handleDeleteClosetItem)

			// Categories
			r.Get("/api/categories", h.handleGetCategories)
			r.Post("/api/categories", h.handleCreateCategory)
			r.Delete("/api/categories/{id}", h.handleDeleteCategory)

			// Game
			r.Get("/api/game", h.handleGetGame)
			r.Post("/api/game/start", h.handleStartGame)
			r.Post("/api/game/equip", h.handleEquip)
			r.Post("/api/game/clear", h.handleClearEquipment)
			r.Put("/api/game/background", h.handleSetBackground)
			r.Post("/api/game/submit", h.handleSubmit)
			r.Post("/api/game/next", h.handleNextRound)
			r.Post("/api/game/save", h.handleSaveOutfit)
			r.Post("/api/game/end", h.handleEndGame)

			// Outfits
			r.Get("/api/outfits", h.handleGetOutfits)
			r.Patch("/api/outfits/{id}", h.handleUpdateOutfit)
			r.Delete("/api/outfits/{id}", h.handleDeleteOutfit)
			r.Get("/api/outfits/{id}/qr", h.handleGetOutfitQR)
		})
	})

	return r
}
