// Package exchange holds the static reward item catalog and the
// append-only log of successful exchanges.
package exchange

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/model"
	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/tokens"
)

// ItemType classifies an exchangeable item.
type ItemType string

// Item types.
const (
	TypeLotteryTicket ItemType = "lottery_ticket"
	TypeGoods         ItemType = "goods"
)

// Item is one exchangeable catalog entry.
type Item struct {
	ID          string
	Name        string
	Description string
	Type        ItemType
	TokenCost   int
	Available   bool
}

// Market exposes the item catalog and performs atomic exchanges
// against a token ledger.
type Market struct {
	mu      sync.RWMutex
	order   []string
	items   map[string]Item
	history []model.ExchangeRecord
	now     func() time.Time
	newID   func() string
}

// Option applies a configuration option to the Market.
type Option func(*Market)

// WithItems replaces the default catalog.
func WithItems(items []Item) Option {
	return func(m *Market) {
		if len(items) == 0 {
			return
		}
		m.order = nil
		m.items = make(map[string]Item, len(items))
		for _, it := range items {
			m.order = append(m.order, it.ID)
			m.items[it.ID] = it
		}
	}
}

// WithClock sets the time source for exchange timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Market) {
		if now != nil {
			m.now = now
		}
	}
}

// NewMarket creates a market with configuration options.
func NewMarket(opts ...Option) *Market {
	m := &Market{
		items: make(map[string]Item),
		now:   time.Now,
		newID: func() string { return "exchange-" + uuid.NewString() },
	}
	for _, it := range DefaultCatalog() {
		m.order = append(m.order, it.ID)
		m.items[it.ID] = it
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Items returns the catalog in fixed order.
func (m *Market) Items() []Item {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Item, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.items[id])
	}
	return out
}

// Exchange debits the item cost and appends a history record. The
// operation either fully succeeds or fully fails: an unknown or
// unavailable item, or an insufficient balance, leaves both the
// balance and the history untouched.
func (m *Market) Exchange(_ context.Context, itemID string, ledger *tokens.Ledger) (model.ExchangeRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[itemID]
	if !ok {
		return model.ExchangeRecord{}, fmt.Errorf("%w: item %s", ErrUnknownItem, itemID)
	}
	if !item.Available {
		return model.ExchangeRecord{}, fmt.Errorf("%w: item %s", ErrItemUnavailable, itemID)
	}

	// The debit is atomic; it only mutates the balance on success, so
	// there is no partial state to roll back.
	if err := ledger.Debit(item.TokenCost); err != nil {
		return model.ExchangeRecord{}, fmt.Errorf("exchange %s: %w", itemID, err)
	}

	rec := model.ExchangeRecord{
		ID:        m.newID(),
		ItemID:    item.ID,
		ItemName:  item.Name,
		TokenCost: item.TokenCost,
		Timestamp: m.now(),
	}
	m.history = append(m.history, rec)
	return rec, nil
}

// History returns all successful exchanges in insertion order.
func (m *Market) History() []model.ExchangeRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.ExchangeRecord, len(m.history))
	copy(out, m.history)
	return out
}
