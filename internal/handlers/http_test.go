package handlers_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/thryft-app/thryft/internal/errors"
	"github.com/thryft-app/thryft/internal/game"
	"github.com/thryft-app/thryft/internal/handlers"
	"github.com/thryft-app/thryft/internal/models"
)

var errDatabase = stderrors.New("database error")

func TestToAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"api error passes through", handlers.Conflict("taken"), http.StatusConflict, handlers.ErrCodeConflict},
		{"not found", errors.NotFound("gone"), http.StatusNotFound, handlers.ErrCodeNotFound},
		{"validation", errors.Validation("bad"), http.StatusBadRequest, handlers.ErrCodeValidation},
		{"invalid input", errors.InvalidInput("bad"), http.StatusBadRequest, handlers.ErrCodeValidation},
		{"precondition", game.ErrRoundNotRunning, http.StatusBadRequest, handlers.ErrCodePrecondition},
		{"conflict", errors.Conflict("dup"), http.StatusConflict, handlers.ErrCodeConflict},
		{"unauthorized", errors.Unauthorized("no"), http.StatusUnauthorized, handlers.ErrCodeUnauthorized},
		{"wrapped", fmt.Errorf("submit: %w", game.ErrGameOver), http.StatusBadRequest, handlers.ErrCodePrecondition},
		{"internal kind", errors.Internal(errDatabase), http.StatusInternalServerError, handlers.ErrCodeInternalServer},
		{"plain error", errDatabase, http.StatusInternalServerError, handlers.ErrCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := handlers.ToAPIError(tt.err)
			if got.Status != tt.wantStatus || got.Code != tt.wantCode {
				t.Errorf("got %d %s, want %d %s", got.Status, got.Code, tt.wantStatus, tt.wantCode)
			}
		})
	}
}

func TestToAPIError_HidesInternalMessage(t *testing.T) {
	got := handlers.ToAPIError(stderrors.New("disk I/O error at /var/lib/thryft.db"))
	if got.Message != "Internal server error" {
		t.Errorf("expected generic message, got %q", got.Message)
	}
}

func TestDecodeJSON_Messages(t *testing.T) {
	setup := newTestSetup(t)

	tests := []struct {
		body string
		want string
	}{
		{"", "Request body is empty"},
		{`{"name":`, "Invalid JSON: unexpected EOF"},
	}
	for _, tt := range tests {
		rec := setup.as(t, http.MethodPost, "/api/categories", tt.body)
		var body struct {
			Error string `json:"error"`
		}
		decode(t, rec, &body)
		if rec.Code != http.StatusBadRequest || body.Error != tt.want {
			t.Errorf("body %q: got %d %q, want 400 %q", tt.body, rec.Code, body.Error, tt.want)
		}
	}
}

func TestPublicRoutes(t *testing.T) {
	setup := newTestSetup(t)

	rec := setup.do(t, http.MethodGet, "/healthz", nil, "")
	if rec.Code != http.StatusOK {
		t.Errorf("healthz: expected 200, got %d", rec.Code)
	}

	var index handlers.IndexResponse
	decode(t, setup.do(t, http.MethodGet, "/", nil, ""), &index)
	if index.Name != "thryft" || index.Events != "/ws" {
		t.Errorf("unexpected index %+v", index)
	}

	var challenges []models.Challenge
	decode(t, setup.do(t, http.MethodGet, "/api/challenges", nil, ""), &challenges)
	if len(challenges) != len(game.Challenges()) {
		t.Errorf("expected full catalog, got %d", len(challenges))
	}

	var bgs handlers.BackgroundsResponse
	decode(t, setup.do(t, http.MethodGet, "/api/backgrounds", nil, ""), &bgs)
	if len(bgs.Backgrounds) != 4 || bgs.Default != "room1" {
		t.Errorf("unexpected backgrounds %+v", bgs)
	}
}

func TestRouter_RedirectsTrailingSlash(t *testing.T) {
	setup := newTestSetup(t)

	rec := setup.do(t, http.MethodGet, "/api/challenges/", nil, "")
	if rec.Code != http.StatusMovedPermanently {
		t.Errorf("expected 301, got %d", rec.Code)
	}
}

// httpLogSwitch reports a fixed HTTP logging state
type httpLogSwitch bool

func (s httpLogSwitch) IsHTTPLoggingEnabled() bool { return bool(s) }

func TestRouter_HTTPLoggingToggle(t *testing.T) {
	for _, enabled := range []bool{false, true} {
		setup := newTestSetup(t)
		setup.handlers.Log = httpLogSwitch(enabled)
		setup.router = setup.handlers.Router()

		if rec := setup.do(t, http.MethodGet, "/healthz", nil, ""); rec.Code != http.StatusOK {
			t.Errorf("logging=%v: expected 200, got %d", enabled, rec.Code)
		}
	}
}

func TestHealth_StoreUnavailable(t *testing.T) {
	setup, mockRepo := newTestSetupWithMockRepo(t)
	mockRepo.PingError = errDatabase

	rec := setup.do(t, http.MethodGet, "/healthz", nil, "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
}
