package handlers

import "net/http"

func (h *Handlers) handleGetGame(w http.ResponseWriter, r *http.Request) {
	respondOK(w, h.Game.State(r.Context(), userID(r)))
}

func (h *Handlers) handleStartGame(w http.ResponseWriter, r *http.Request) {
	st, err := h.Game.Start(r.Context(), userID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, st)
}

// handleEquip wears an item. A payload that cannot be read equips nothing
// and still returns the current state.
func (h *Handlers) handleEquip(w http.ResponseWriter, r *http.Request) {
	var req EquipRequest
	_ = decodeJSON(r, &req)

	res, err := h.Game.Equip(r.Context(), userID(r), req.ItemID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, res)
}

func (h *Handlers) handleClearEquipment(w http.ResponseWriter, r *http.Request) {
	respondOK(w, h.Game.Clear(r.Context(), userID(r)))
}

func (h *Handlers) handleSetBackground(w http.ResponseWriter, r *http.Request) {
	var req BackgroundRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	st, err := h.Game.SetBackground(r.Context(), userID(r), req.Background)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, st)
}

func (h *Handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	res, err := h.Game.Submit(r.Context(), userID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, res)
}

func (h *Handlers) handleNextRound(w http.ResponseWriter, r *http.Request) {
	st, err := h.Game.Advance(r.Context(), userID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, st)
}

func (h *Handlers) handleSaveOutfit(w http.ResponseWriter, r *http.Request) {
	outfit, err := h.Game.Save(r.Context(), userID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, outfit)
}

func (h *Handlers) handleEndGame(w http.ResponseWriter, r *http.Request) {
	respondOK(w, h.Game.End(r.Context(), userID(r)))
}
