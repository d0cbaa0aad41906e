package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type offerSweeper interface {
	SweepAll(ctx context.Context) (int, error)
}

// Scheduler periodically reclaims lapsed offers and re-offers the freed
// spots. The sweep is idempotent, so overlapping or on-demand runs are safe.
type Scheduler struct {
	sweeper  offerSweeper
	interval time.Duration
	logger   logger.Logger
}

func New(
	sweeper offerSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("offer sweeper started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("offer sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.sweeper.SweepAll(ctx)
	if err != nil {
		s.logger.Error("failed to sweep expired offers",
			logger.String("error", err.Error()),
		)
		return
	}

	if expired > 0 {
		s.logger.Info("expired offers reclaimed",
			logger.Int("count", expired),
		)
	}
}
