package tokens

import "errors"

// Sentinel kinds for token ledger errors.
var (
	ErrInvalidAmount       = errors.New("invalid token amount")
	ErrInsufficientBalance = errors.New("insufficient balance")
)
