package service

import "errors"

// Sentinel kinds for service-level errors. Domain packages carry their
// own sentinels; these cover rules that only the orchestrator can see.
var (
	ErrIdentityRequired      = errors.New("identity required")
	ErrAlreadyCompletedToday = errors.New("workout already completed today")
	ErrNotStarted            = errors.New("service not started")
)
