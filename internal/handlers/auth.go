package handlers

import (
	"net/http"

	"github.com/thryft-app/thryft/internal/auth"
)

// handleRegister creates an account
func (h *Handlers) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	user, err := h.Account.Register(r.Context(), req.Username, req.Password, req.Name)
	if err != nil {
		respondError(w, err)
		return
	}

	respondCreated(w, user)
}

// handleLogin signs a player in. The token is returned in the body for API
// clients and set as a cookie for the browser.
func (h *Handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	token, user, err := h.Account.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	auth.SetSessionCookie(w, token)
	respondOK(w, LoginResponse{Token: token, User: user})
}

// handleLogout invalidates the session and clears the cookie
func (h *Handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token := auth.TokenFromRequest(r); token != "" {
		h.Account.Logout(token)
	}

	auth.ClearSessionCookie(w)
	respondSuccess(w, "Logged out")
}

// handleMe returns the signed-in user
func (h *Handlers) handleMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.Account.GetUser(r.Context(), userID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, user)
}
