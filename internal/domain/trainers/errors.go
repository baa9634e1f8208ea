package trainers

import "errors"

// Sentinel kinds for trainer errors.
var (
	ErrUnknownTrainer = errors.New("unknown trainer")
)
