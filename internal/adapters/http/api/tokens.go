// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
)

// TokensHandler handles token balance and movement requests.
type TokensHandler struct {
	deps Dependencies
}

// NewTokensHandler creates a new tokens handler.
func NewTokensHandler(deps Dependencies) *TokensHandler {
	return &TokensHandler{deps: deps}
}

type tokenMovementRequest struct {
	Amount int `json:"amount"`
}

// HandleGetTokens handles GET /tokens requests.
func (h *TokensHandler) HandleGetTokens(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.TokenAmount(r.Context()))
}

// HandleGrant handles POST /tokens/grant requests.
func (h *TokensHandler) HandleGrant(w http.ResponseWriter, r *http.Request) {
	const op = "api.tokens_grant"
	amount, ok := h.decodeAmount(w, r, op)
	if !ok {
		return
	}
	if err := h.deps.AddTokens(r.Context(), amount); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.TokenAmount(r.Context()))
}

// HandleSpend handles POST /tokens/spend requests.
func (h *TokensHandler) HandleSpend(w http.ResponseWriter, r *http.Request) {
	const op = "api.tokens_spend"
	amount, ok := h.decodeAmount(w, r, op)
	if !ok {
		return
	}
	if err := h.deps.SpendTokens(r.Context(), amount); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.TokenAmount(r.Context()))
}

func (h *TokensHandler) decodeAmount(w http.ResponseWriter, r *http.Request, op string) (int, bool) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return 0, false
	}
	var req tokenMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return 0, false
	}
	if req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_input", WrapKind(op, ErrBadRequest, errors.New("amount must be positive")))
		return 0, false
	}
	return req.Amount, true
}
