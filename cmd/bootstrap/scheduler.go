package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"cellar-market/internal/domain/auction"
	"cellar-market/internal/pkg/clock"
	"cellar-market/internal/pkg/config"
	"cellar-market/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewClearingScheduler,
	),
	fx.Invoke(registerScheduler),
)

// ClearingScheduler runs clearing at every tick boundary.
type ClearingScheduler struct {
	clearing commands.ClearingCommands
	clock    clock.Clock
	tick     time.Duration
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func NewClearingScheduler(clearing commands.ClearingCommands, clk clock.Clock, cfg config.Config, logger *slog.Logger) *ClearingScheduler {
	return &ClearingScheduler{
		clearing: clearing,
		clock:    clk,
		tick:     cfg.Market.ClearingTick,
		logger:   logger,
	}
}

func (s *ClearingScheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.run(ctx)
}

func (s *ClearingScheduler) Stop(ctx context.Context) error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *ClearingScheduler) run(ctx context.Context) {
	defer close(s.done)

	timer := time.NewTimer(untilNextTick(s.clock.Now(), s.tick))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			s.runOnce(ctx)
			timer.Reset(untilNextTick(s.clock.Now(), s.tick))
		}
	}
}

func (s *ClearingScheduler) runOnce(ctx context.Context) {
	report, err := s.clearing.Clear(ctx, s.clock.Now())
	if err != nil {
		s.logger.Error("scheduled clearing failed", "error", err)
		return
	}
	if report.Skipped {
		s.logger.Info("scheduled clearing skipped, tick already taken", "tick", report.Tick)
	}
}

// untilNextTick is never zero so a run landing exactly on a boundary does
// not fire twice for the same tick.
func untilNextTick(now time.Time, tick time.Duration) time.Duration {
	next := auction.TickOf(now, tick).Add(tick)
	return next.Sub(now)
}

func registerScheduler(lc fx.Lifecycle, cfg config.Config, s *ClearingScheduler, logger *slog.Logger) {
	if !cfg.Market.SchedulerEnabled {
		logger.Info("clearing scheduler disabled")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("clearing scheduler started", "tick", cfg.Market.ClearingTick.String())
			s.Start()
			return nil
		},
		OnStop: s.Stop,
	})
}
