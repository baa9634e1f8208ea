// Package mirror persists completed sessions, daily badges and
// exchanges to a local sink, best-effort. The in-memory state is
// authoritative: mirror failures are logged and counted, never allowed
// to block or roll back a local commit.
package mirror

import (
	"context"
	"time"

	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/daily"
	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/model"
)

// RecordKind tags a mirrored record.
type RecordKind string

// Mirrored record kinds.
const (
	KindSession  RecordKind = "session"
	KindBadge    RecordKind = "daily_badge"
	KindExchange RecordKind = "exchange"
)

// Record is one unit of best-effort persistence work.
type Record struct {
	Kind     RecordKind
	Session  model.WorkoutSession
	Badge    daily.Badge
	Exchange model.ExchangeRecord
}

// Sink writes mirrored records to durable storage.
type Sink interface {
	WriteSession(ctx context.Context, s model.WorkoutSession) error
	WriteBadge(ctx context.Context, b daily.Badge) error
	WriteExchange(ctx context.Context, e model.ExchangeRecord) error
	Close() error
}

// SessionRecord builds a session mirror record.
func SessionRecord(s model.WorkoutSession) Record {
	return Record{Kind: KindSession, Session: s}
}

// BadgeRecord builds a daily-badge mirror record.
func BadgeRecord(b daily.Badge) Record {
	return Record{Kind: KindBadge, Badge: b}
}

// ExchangeRecord builds an exchange mirror record.
func ExchangeRecord(e model.ExchangeRecord) Record {
	return Record{Kind: KindExchange, Exchange: e}
}

// write dispatches one record to the sink.
func write(ctx context.Context, sink Sink, r Record) error {
	switch r.Kind {
	case KindSession:
		return sink.WriteSession(ctx, r.Session)
	case KindBadge:
		return sink.WriteBadge(ctx, r.Badge)
	case KindExchange:
		return sink.WriteExchange(ctx, r.Exchange)
	default:
		return nil
	}
}

// nowUTC formats a timestamp the way the mirror schema stores it.
func nowUTC(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
