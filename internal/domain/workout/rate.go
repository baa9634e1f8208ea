package workout

import "context"

// RateSource supplies the externally judged reproduction-rate
// percentage for a completing session. Implementations may call out to
// a real motion-analysis service.
type RateSource interface {
	// Rate returns a fidelity percentage in [0,100].
	Rate(ctx context.Context) float64
}

// ConstantRate is the stub rate source used until a real detector is
// wired in.
type ConstantRate struct {
	value float64
}

// NewConstantRate creates a rate source that always reports value,
// clamped to [0,100].
func NewConstantRate(value float64) *ConstantRate {
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}
	return &ConstantRate{value: value}
}

// Rate returns the configured constant.
func (c *ConstantRate) Rate(context.Context) float64 {
	return c.value
}
