package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/thryft-app/thryft/internal/auth"
	"github.com/thryft-app/thryft/internal/handlers"
	"github.com/thryft-app/thryft/internal/logger"
	"github.com/thryft-app/thryft/internal/repository"
	"github.com/thryft-app/thryft/internal/repository/mock"
	"github.com/thryft-app/thryft/internal/services"
	"github.com/thryft-app/thryft/internal/testutil"
	"github.com/thryft-app/thryft/internal/websocket"
)

// testSetup creates all the dependencies needed for testing handlers
type testSetup struct {
	handlers *handlers.Handlers
	router   chi.Router
	token    string
	game     *services.GameService
}

func newTestSetup(t *testing.T) *testSetup {
	t.Helper()
	return newTestSetupWithRepo(t, testutil.NewTestRepository(t))
}

func newTestSetupWithMockRepo(t *testing.T) (*testSetup, *mock.Repository) {
	t.Helper()
	mockRepo := mock.NewRepository(testutil.NewTestRepository(t))
	return newTestSetupWithRepo(t, mockRepo), mockRepo
}

// newTestSetupWithRepo wires the full handler stack and signs in a player
func newTestSetupWithRepo(t *testing.T, repo repository.FullRepository) *testSetup {
	t.Helper()
	log := logger.Discard()
	sessions := auth.New()

	account := services.NewAccountService(log, repo, sessions)
	closet := services.NewClosetService(log, repo)
	outfits := services.NewOutfitService(log, repo, "http://thryft.local:8080")
	gameSvc := services.NewGameService(log, repo, outfits, services.GameConfig{ManualTicks: true})
	t.Cleanup(gameSvc.Close)

	hub := websocket.New(log, gameSvc)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	closet.SetBroadcaster(hub)
	gameSvc.SetBroadcaster(hub)

	h := handlers.New(account, closet, outfits, gameSvc, sessions, hub, repo, handlers.NoopHTTPLogger{})
	setup := &testSetup{handlers: h, router: h.Router(), game: gameSvc}
	setup.token = setup.signUp(t, "ava")
	return setup
}

// signUp registers username and returns a session token for it
func (s *testSetup) signUp(t *testing.T, username string) string {
	t.Helper()
	creds := map[string]string{"username": username, "password": "secret-pass"}

	rec := s.do(t, http.MethodPost, "/api/register", creds, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d: %s", username, rec.Code, rec.Body.String())
	}

	rec = s.do(t, http.MethodPost, "/api/login", creds, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d: %s", username, rec.Code, rec.Body.String())
	}
	var resp handlers.LoginResponse
	decode(t, rec, &resp)
	return resp.Token
}

// do sends a request with an optional JSON body and bearer token
func (s *testSetup) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

// as sends a request as the signed-in player
func (s *testSetup) as(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return s.do(t, method, path, body, s.token)
}

// addItem adds a closet item through the API and returns its ID
func (s *testSetup) addItem(t *testing.T, name, category string) string {
	t.Helper()
	rec := s.as(t, http.MethodPost, "/api/closet", map[string]string{
		"name":     name,
		"category": category,
		"image":    "https://img.example/" + name + ".png",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("add item: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var item struct {
		ID string `json:"id"`
	}
	decode(t, rec, &item)
	return item.ID
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

// errorCode returns the code field of an error envelope
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code  string `json:"code"`
		Error string `json:"error"`
	}
	decode(t, rec, &body)
	if body.Error == "" {
		t.Errorf("expected an error message in %q", rec.Body.String())
	}
	return body.Code
}
