package ledger

import "errors"

// Sentinel kinds for ledger errors.
var (
	ErrInvalidSession   = errors.New("invalid session")
	ErrDuplicateSession = errors.New("duplicate session id")
)
