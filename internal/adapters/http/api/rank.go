// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strings"
)

// RankHandler handles per-address rank and prize-ticket requests.
type RankHandler struct {
	deps Dependencies
}

// NewRankHandler creates a new rank handler.
func NewRankHandler(deps Dependencies) *RankHandler {
	return &RankHandler{deps: deps}
}

type rankResponse struct {
	Address string `json:"address"`
	Rank    int    `json:"rank"`
}

type prizeTicketResponse struct {
	Address        string `json:"address"`
	HasPrizeTicket bool   `json:"has_prize_ticket"`
}

// pathParam extracts the single path parameter after prefix, or ""
// when the path is malformed.
func pathParam(path, prefix string) string {
	p := strings.TrimPrefix(path, prefix)
	if p == "" || strings.Contains(p, "/") {
		return ""
	}
	return p
}

// HandleGetRank handles GET /rank/{address} requests.
func (h *RankHandler) HandleGetRank(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	address := pathParam(r.URL.Path, "/rank/")
	if address == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	rank := h.deps.Rank(r.Context(), address)
	if rank == 0 {
		writeError(w, http.StatusNotFound, "unknown_entity", nil)
		return
	}
	writeJSON(w, http.StatusOK, rankResponse{Address: address, Rank: rank})
}

// HandleGetPrizeTicket handles GET /prize-ticket/{address} requests.
func (h *RankHandler) HandleGetPrizeTicket(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	address := pathParam(r.URL.Path, "/prize-ticket/")
	if address == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, prizeTicketResponse{
		Address:        address,
		HasPrizeTicket: h.deps.CheckPrizeTicket(r.Context(), address),
	})
}
