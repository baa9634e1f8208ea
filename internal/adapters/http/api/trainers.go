// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

// TrainersHandler handles trainer roster requests.
type TrainersHandler struct {
	deps Dependencies
}

// NewTrainersHandler creates a new trainers handler.
func NewTrainersHandler(deps Dependencies) *TrainersHandler {
	return &TrainersHandler{deps: deps}
}

// HandleGetTrainers handles GET /trainers requests.
func (h *TrainersHandler) HandleGetTrainers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Trainers(r.Context()))
}
