// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
)

// ExchangeHandler handles item catalog and exchange requests.
type ExchangeHandler struct {
	deps Dependencies
}

// NewExchangeHandler creates a new exchange handler.
func NewExchangeHandler(deps Dependencies) *ExchangeHandler {
	return &ExchangeHandler{deps: deps}
}

type exchangeRequest struct {
	ItemID string `json:"item_id"`
}

// HandleGetItems handles GET /exchange/items requests.
func (h *ExchangeHandler) HandleGetItems(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.ExchangeItems(r.Context()))
}

// HandleExchange handles POST /exchange requests.
func (h *ExchangeHandler) HandleExchange(w http.ResponseWriter, r *http.Request) {
	const op = "api.exchange"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req exchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if req.ItemID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, errors.New("missing item_id")))
		return
	}
	rec, err := h.deps.ExchangeItem(r.Context(), req.ItemID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// HandleGetHistory handles GET /exchange/history requests.
func (h *ExchangeHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.ExchangeHistory(r.Context()))
}
