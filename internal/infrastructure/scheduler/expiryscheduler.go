// Package scheduler runs periodic background tasks.
package scheduler

import (
	"context"
	"time"

	"github.com/vitrine-app/vitrine/internal/application/subscription/usecases"
	"github.com/vitrine-app/vitrine/internal/shared/logger"
)

// ExpiryScheduler periodically runs the subscription expiry sweep so
// ended subscriptions stop carrying their tier once the grace window
// has passed.
type ExpiryScheduler struct {
	sweep    *usecases.ExpireSubscriptionsUseCase
	logger   logger.Interface
	stopChan chan struct{}
	interval time.Duration
}

func NewExpiryScheduler(sweep *usecases.ExpireSubscriptionsUseCase, log logger.Interface) *ExpiryScheduler {
	return &ExpiryScheduler{
		sweep:    sweep,
		logger:   log,
		stopChan: make(chan struct{}),
		interval: time.Hour,
	}
}

// Start launches the sweep loop. The first sweep runs immediately.
func (s *ExpiryScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting subscription expiry scheduler", "interval", s.interval)
	go s.run(ctx)
}

// Stop stops the scheduler
func (s *ExpiryScheduler) Stop() {
	close(s.stopChan)
}

func (s *ExpiryScheduler) run(ctx context.Context) {
	s.runSweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("expiry scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			s.logger.Infow("expiry scheduler stopped")
			return
		case <-ticker.C:
			s.runSweep(ctx)
		}
	}
}

func (s *ExpiryScheduler) runSweep(ctx context.Context) {
	result, err := s.sweep.Execute(ctx)
	if err != nil {
		s.logger.Errorw("subscription expiry sweep failed", "error", err)
		return
	}
	if result.Expired > 0 || result.Failed > 0 {
		s.logger.Infow("subscription expiry sweep completed",
			"expired", result.Expired,
			"failed", result.Failed)
	}
}
