// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/model"
	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/workout"
)

// WorkoutHandler handles live workout clock requests.
type WorkoutHandler struct {
	deps Dependencies
}

// NewWorkoutHandler creates a new workout handler.
func NewWorkoutHandler(deps Dependencies) *WorkoutHandler {
	return &WorkoutHandler{deps: deps}
}

type startWorkoutRequest struct {
	TrainerID  string `json:"trainer_id"`
	Difficulty string `json:"difficulty"`
}

type playbackRequest struct {
	State string `json:"state"`
}

type workoutStateResponse struct {
	Status         string `json:"status"`
	ElapsedSeconds int    `json:"elapsed_seconds,omitempty"`
}

// HandleStart handles POST /workout/start requests.
func (h *WorkoutHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	const op = "api.workout_start"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req startWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if req.TrainerID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, errors.New("missing trainer_id")))
		return
	}
	difficulty, err := model.ParseDifficulty(req.Difficulty)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := h.deps.StartWorkout(r.Context(), req.TrainerID, difficulty); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, workoutStateResponse{Status: "started"})
}

// HandlePlayback handles POST /workout/playback requests.
func (h *WorkoutHandler) HandlePlayback(w http.ResponseWriter, r *http.Request) {
	const op = "api.workout_playback"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req playbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := h.deps.SetPlayback(r.Context(), workout.PlaybackState(req.State)); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, workoutStateResponse{Status: "playback_" + req.State})
}

// HandlePause handles POST /workout/pause requests.
func (h *WorkoutHandler) HandlePause(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if err := h.deps.PauseWorkout(r.Context()); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, workoutStateResponse{Status: "paused"})
}

// HandleResume handles POST /workout/resume requests.
func (h *WorkoutHandler) HandleResume(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if err := h.deps.ResumeWorkout(r.Context()); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, workoutStateResponse{Status: "resumed"})
}

// HandleElapsed handles GET /workout/elapsed requests.
func (h *WorkoutHandler) HandleElapsed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	elapsed, err := h.deps.WorkoutElapsed(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, workoutStateResponse{Status: "active", ElapsedSeconds: elapsed})
}

// HandleStop handles POST /workout/stop requests: it halts the clock
// and returns the completed session result.
func (h *WorkoutHandler) HandleStop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	result, err := h.deps.StopWorkout(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// HandleAbandon handles POST /workout/abandon requests: it discards
// the clock without completing a session.
func (h *WorkoutHandler) HandleAbandon(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if err := h.deps.AbandonWorkout(r.Context()); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, workoutStateResponse{Status: "abandoned"})
}
