package exchange

import "errors"

// Sentinel kinds for exchange errors.
var (
	ErrUnknownItem     = errors.New("unknown item")
	ErrItemUnavailable = errors.New("item unavailable")
)
