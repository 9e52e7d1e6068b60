package handlers

import (
	"context"
	"net/http"

	"github.com/thryft-app/thryft/internal/auth"
	"github.com/thryft-app/thryft/internal/services"
)

// EventStream serves the per-user WebSocket endpoint
type EventStream interface {
	ServeWs(w http.ResponseWriter, r *http.Request)
}

// HealthChecker reports whether a backing store is reachable
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Handlers holds all HTTP handler dependencies
type Handlers struct {
	Account services.AccountServicer
	Closet  services.ClosetServicer
	Outfits services.OutfitServicer
	Game    services.GameServicer
	Auth    *auth.Auth
	Hub     EventStream
	Health  HealthChecker
	Log     HTTPLogger
}

// HTTPLogger is an interface for loggers that support HTTP logging control
type HTTPLogger interface {
	IsHTTPLoggingEnabled() bool
}

// New creates a new Handlers instance with all dependencies
func New(
	account services.AccountServicer,
	closet services.ClosetServicer,
	outfits services.OutfitServicer,
	game services.GameServicer,
	sessions *auth.Auth,
	hub EventStream,
	health HealthChecker,
	log HTTPLogger,
) *Handlers {
	return &Handlers{
		Account: account,
		Closet:  closet,
		Outfits: outfits,
		Game:    game,
		Auth:    sessions,
		Hub:     hub,
		Health:  health,
		Log:     log,
	}
}

// NoopHTTPLogger is a test logger that always returns false for HTTP logging
type NoopHTTPLogger struct{}

func (NoopHTTPLogger) IsHTTPLoggingEnabled() bool { return false }

// userID returns the signed-in user. RequireUser guarantees one on every
// authenticated route.
func userID(r *http.Request) string {
	id, _ := auth.UserID(r.Context())
	return id
}
