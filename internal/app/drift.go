package service

import (
	"context"
	"time"

	"github.com/MyuRay/ONE-FIT-HERO/pkg/logger"
	"github.com/MyuRay/ONE-FIT-HERO/pkg/metrics"
)

// driftLoop periodically adds small cosmetic increments to every
// trainer's displayed score, simulating a live global player base.
// Drift never touches the authoritative totals and stops cleanly on
// shutdown or context cancellation.
func (s *Service) driftLoop(ctx context.Context) {
	defer close(s.driftDone)

	ticker := time.NewTicker(s.driftInterval)
	defer ticker.Stop()

	s.logger.Debug(ctx, "drift loop started",
		logger.Duration("interval", s.driftInterval),
	)

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.driftTick()
		}
	}
}

// driftTick applies one round of cosmetic increments.
func (s *Service) driftTick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.accumulator.IDs() {
		s.accumulator.AddDrift(id, driftMin+s.rng.Intn(driftSpread))
	}
	metrics.RecordDriftTick()
}
