package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/thryft-app/thryft/internal/services"
)

func (h *Handlers) handleGetCloset(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.Closet.ListItems(r.Context(), userID(r), services.ClosetQuery{
		Category: q.Get("category"),
		Search:   q.Get("q"),
		Sort:     q.Get("sort"),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, items)
}

func (h *Handlers) handleGetClosetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Closet.Stats(r.Context(), userID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, stats)
}

func (h *Handlers) handleCreateClosetItem(w http.ResponseWriter, r *http.Request) {
	var req ClosetItemCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	item, err := h.Closet.AddItem(r.Context(), userID(r), services.NewClosetItem{
		Name:     req.Name,
		Category: req.Category,
		Image:    req.Image,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, item)
}

func (h *Handlers) handleDeleteClosetItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Closet.DeleteItem(r.Context(), userID(r), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respondDeleted(w)
}

func (h *Handlers) handleGetCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.Closet.ListCategories(r.Context(), userID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, cats)
}

func (h *Handlers) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	cat, err := h.Closet.CreateCategory(r.Context(), userID(r), services.NewCategory{
		Name:  req.Name,
		Color: req.Color,
		Icon:  req.Icon,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, cat)
}

// handleDeleteCategory deletes a custom category. Items filed under it move
// to the category named by the reassign query parameter.
func (h *Handlers) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	moved, err := h.Closet.DeleteCategory(r.Context(), userID(r), chi.URLParam(r, "id"), r.URL.Query().Get("reassign"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, CategoryDeleteResponse{Reassigned: moved})
}
