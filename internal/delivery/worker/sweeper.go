package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"survey/config"
	"survey/internal/delivery"
	"survey/internal/usecase"

	"go.uber.org/fx"
)

// sweeper runs MaintenanceUsecase.Sweep on a fixed interval until stopped.
type sweeper struct {
	interval    time.Duration
	maintenance usecase.MaintenanceUsecase
	logger      *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// SweeperParams holds dependencies for the sweeper, injected by Fx.
type SweeperParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	Maintenance usecase.MaintenanceUsecase
}

// NewSweeper returns the periodic cleanup delivery. When sweeper.enabled is off it
// returns a delivery whose Serve returns immediately.
func NewSweeper(params SweeperParams) delivery.Delivery {
	if params.Cfg.Sweeper == nil || !params.Cfg.Sweeper.Enabled {
		return disabledSweeper{logger: params.Logger}
	}

	s := &sweeper{
		interval:    params.Cfg.Sweeper.Interval,
		maintenance: params.Maintenance,
		logger:      params.Logger,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s
}

// Serve sweeps once per interval. A failed sweep is logged and retried on the next tick.
func (s *sweeper) Serve(ctx context.Context) error {
	defer close(s.doneCh)

	s.logger.Info("Starting sweeper", slog.Duration("interval", s.interval))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopCh:
			return nil
		case <-ticker.C:
			s.sweepOnce(ctx)
		}
	}
}

func (s *sweeper) sweepOnce(ctx context.Context) {
	if _, err := s.maintenance.Sweep(ctx); err != nil {
		s.logger.Error("Sweep failed", slog.Any("error", err))
	}
}

func (s *sweeper) stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stopCh) })

	select {
	case <-s.doneCh:
	case <-ctx.Done():
	}
	s.logger.Info("Sweeper stopped")

	return nil
}

type disabledSweeper struct {
	logger *slog.Logger
}

func (d disabledSweeper) Serve(context.Context) error {
	d.logger.Info("Sweeper disabled")

	return nil
}
