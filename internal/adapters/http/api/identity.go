// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
)

// IdentityHandler handles identity connect and disconnect requests.
type IdentityHandler struct {
	deps Dependencies
}

// NewIdentityHandler creates a new identity handler.
func NewIdentityHandler(deps Dependencies) *IdentityHandler {
	return &IdentityHandler{deps: deps}
}

type connectRequest struct {
	Address string `json:"address"`
}

type identityResponse struct {
	Address   string `json:"address,omitempty"`
	Connected bool   `json:"connected"`
}

// HandleConnect handles POST /identity/connect requests. An empty or
// omitted address binds the default demo identity.
func (h *IdentityHandler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	const op = "api.identity_connect"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req connectRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
	}
	address := h.deps.Connect(r.Context(), req.Address)
	writeJSON(w, http.StatusOK, identityResponse{Address: address, Connected: true})
}

// HandleDisconnect handles POST /identity/disconnect requests.
func (h *IdentityHandler) HandleDisconnect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	h.deps.Disconnect(r.Context())
	writeJSON(w, http.StatusOK, identityResponse{Connected: false})
}

// HandleGetIdentity handles GET /identity requests.
func (h *IdentityHandler) HandleGetIdentity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	address, connected := h.deps.Identity()
	writeJSON(w, http.StatusOK, identityResponse{Address: address, Connected: connected})
}
