package worker

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/ahmedabdelhady55/cafe-ordering-system/config"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/delivery"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/usecase"
)

const defaultSweepInterval = time.Minute

// bannerSweeper periodically demotes active banners whose end date has
// passed. It only ever clears the active flag; reactivation and deletion
// stay manual.
type bannerSweeper struct {
	interval time.Duration
	logger   *slog.Logger
	banners  usecase.BannerUsecase
	stop     chan struct{}
}

// SweeperParams holds dependencies for the banner sweeper
type SweeperParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	Banners usecase.BannerUsecase
}

// NewBannerSweeper creates the background banner sweeper delivery.
func NewBannerSweeper(params SweeperParams) (delivery.Delivery, error) {
	interval := defaultSweepInterval
	if params.Cfg.Banner != nil && params.Cfg.Banner.SweepInterval > 0 {
		interval = params.Cfg.Banner.SweepInterval
	}

	sweeper := &bannerSweeper{
		interval: interval,
		logger:   params.Logger,
		banners:  params.Banners,
		stop:     make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			close(sweeper.stop)

			return nil
		},
	})

	return sweeper, nil
}

// Serve runs the sweep loop until the application stops.
func (s *bannerSweeper) Serve(ctx context.Context) error {
	s.logger.Info("Starting banner sweeper", slog.Duration("interval", s.interval))

	// Sweep once at startup so a restart never leaves stale banners up
	// for a full interval.
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stop:
			s.logger.Info("Stopping banner sweeper")

			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *bannerSweeper) sweep(ctx context.Context) {
	demoted, err := s.banners.SweepExpired(ctx)
	if err != nil {
		s.logger.Error("Banner sweep failed", slog.Any("error", err))

		return
	}

	if demoted > 0 {
		s.logger.Info("Banner sweep demoted expired banners", slog.Int("count", demoted))
	}
}
