package scoring

import "errors"

// Sentinel kinds for scoring errors. These allow errors.Is/As from callers.
var (
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrInvalidRate       = errors.New("invalid reproduction rate")
	ErrInvalidElapsed    = errors.New("invalid elapsed input")
)
