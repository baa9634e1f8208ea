// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	service "github.com/MyuRay/ONE-FIT-HERO/internal/app"
	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/model"
)

// SessionsHandler handles direct session completion requests.
type SessionsHandler struct {
	deps Dependencies
}

// NewSessionsHandler creates a new sessions handler.
func NewSessionsHandler(deps Dependencies) *SessionsHandler {
	return &SessionsHandler{deps: deps}
}

// sessionRequest mirrors the wire schema for POST /sessions.
type sessionRequest struct {
	TrainerID        string  `json:"trainer_id"`
	Difficulty       string  `json:"difficulty"`
	ElapsedSeconds   int     `json:"elapsed_seconds"`
	ReproductionRate float64 `json:"reproduction_rate"`
	RawAccrual       int     `json:"raw_accrual"`
}

func (req sessionRequest) validate() error {
	switch {
	case req.TrainerID == "":
		return errors.New("missing trainer_id")
	case req.Difficulty == "":
		return errors.New("missing difficulty")
	case req.ElapsedSeconds < 0:
		return errors.New("negative elapsed_seconds")
	}
	return nil
}

// HandlePostSession handles POST /sessions requests: it completes one
// workout session with externally measured inputs.
func (h *SessionsHandler) HandlePostSession(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_session"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	difficulty, err := model.ParseDifficulty(req.Difficulty)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", WrapKind(op, ErrBadRequest, err))
		return
	}

	result, err := h.deps.CompleteSession(r.Context(), service.SessionInput{
		TrainerID:        req.TrainerID,
		Difficulty:       difficulty,
		ElapsedSeconds:   req.ElapsedSeconds,
		ReproductionRate: req.ReproductionRate,
		RawAccrual:       req.RawAccrual,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}
