// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

// BadgesHandler handles badge registry and daily badge requests.
type BadgesHandler struct {
	deps Dependencies
}

// NewBadgesHandler creates a new badges handler.
func NewBadgesHandler(deps Dependencies) *BadgesHandler {
	return &BadgesHandler{deps: deps}
}

type streakResponse struct {
	ConsecutiveDays int `json:"consecutive_days"`
}

// HandleGetBadges handles GET /badges requests.
func (h *BadgesHandler) HandleGetBadges(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Badges(r.Context()))
}

// HandleGetDailyBadges handles GET /badges/daily requests.
func (h *BadgesHandler) HandleGetDailyBadges(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.DailyBadges(r.Context()))
}

// HandleGetStreak handles GET /streak requests.
func (h *BadgesHandler) HandleGetStreak(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, streakResponse{ConsecutiveDays: h.deps.Streak(r.Context())})
}
