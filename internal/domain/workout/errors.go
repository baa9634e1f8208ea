package workout

import "errors"

// Sentinel kinds for workout clock errors.
var (
	ErrInvalidPlayback = errors.New("invalid playback state")
	ErrNoActiveWorkout = errors.New("no active workout")
	ErrWorkoutActive   = errors.New("workout already active")
)
