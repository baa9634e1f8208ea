// Package tokens maintains the connected identity's token balance.
package tokens

import (
	"fmt"
	"sync"
	"time"
)

// Ledger is the single running token balance. Credits and debits apply
// synchronously relative to their triggering event; the balance never
// goes negative.
type Ledger struct {
	mu          sync.RWMutex
	balance     int
	lastUpdated time.Time
	now         func() time.Time
}

// Option applies a configuration option to the Ledger.
type Option func(*Ledger)

// WithInitialBalance seeds the starting balance. Negative values are
// ignored.
func WithInitialBalance(amount int) Option {
	return func(l *Ledger) {
		if amount >= 0 {
			l.balance = amount
		}
	}
}

// WithClock sets the time source for lastUpdated stamps.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		if now != nil {
			l.now = now
		}
	}
}

// NewLedger creates a token ledger with configuration options.
func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{
		now: time.Now,
	}

	for _, opt := range opts {
		opt(l)
	}

	l.lastUpdated = l.now()
	return l
}

// Balance returns the current balance.
func (l *Ledger) Balance() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balance
}

// LastUpdated returns the time of the last successful mutation.
func (l *Ledger) LastUpdated() time.Time {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lastUpdated
}

// Credit adds amount to the balance. Amount must be positive.
func (l *Ledger) Credit(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: credit amount %d", ErrInvalidAmount, amount)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.balance += amount
	l.lastUpdated = l.now()
	return nil
}

// Debit subtracts amount from the balance. A debit that would make the
// balance negative is rejected atomically with no side effects.
func (l *Ledger) Debit(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: debit amount %d", ErrInvalidAmount, amount)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.balance < amount {
		return fmt.Errorf("%w: balance %d, debit %d", ErrInsufficientBalance, l.balance, amount)
	}
	l.balance -= amount
	l.lastUpdated = l.now()
	return nil
}
