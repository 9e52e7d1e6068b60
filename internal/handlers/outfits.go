package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/thryft-app/thryft/internal/models"
	"github.com/thryft-app/thryft/internal/services"
)

func (h *Handlers) handleGetOutfits(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	outfits, err := h.Outfits.ListOutfits(r.Context(), userID(r), services.OutfitQuery{
		Sort: q.Get("sort"),
		Tag:  q.Get("tag"),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, outfits)
}

func (h *Handlers) handleUpdateOutfit(w http.ResponseWriter, r *http.Request) {
	var req OutfitUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.Name == nil && req.Tags == nil {
		respondError(w, BadRequest("name or tags is required"))
		return
	}

	id := chi.URLParam(r, "id")
	var outfit *models.Outfit
	var err error
	if req.Name != nil {
		if outfit, err = h.Outfits.Rename(r.Context(), userID(r), id, *req.Name); err != nil {
			respondError(w, err)
			return
		}
	}
	if req.Tags != nil {
		if outfit, err = h.Outfits.SetTags(r.Context(), userID(r), id, *req.Tags); err != nil {
			respondError(w, err)
			return
		}
	}
	respondOK(w, outfit)
}

func (h *Handlers) handleDeleteOutfit(w http.ResponseWriter, r *http.Request) {
	if err := h.Outfits.Delete(r.Context(), userID(r), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respondDeleted(w)
}

// handleGetOutfitQR serves a PNG QR code linking to the outfit
func (h *Handlers) handleGetOutfitQR(w http.ResponseWriter, r *http.Request) {
	png, err := h.Outfits.ShareQR(r.Context(), userID(r), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Write(png)
}
