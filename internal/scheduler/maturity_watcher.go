// Package scheduler runs the periodic maturity check.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/model"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/repository"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/service"
)

// MaturityWatcher logs assets whose maturity date falls within a window
// from now, on a cron schedule.
type MaturityWatcher struct {
	cron   *cron.Cron
	repo   repository.AssetRepository
	window time.Duration
	logger *zap.SugaredLogger
	now    func() time.Time
}

// NewMaturityWatcher validates schedule (standard five-field cron syntax) and
// registers the check. Call Run to start it.
func NewMaturityWatcher(repo repository.AssetRepository, schedule string, window time.Duration, logger *zap.SugaredLogger) (*MaturityWatcher, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	w := &MaturityWatcher{
		cron:   cron.New(),
		repo:   repo,
		window: window,
		logger: logger,
		now:    time.Now,
	}

	if _, err := w.cron.AddFunc(schedule, func() {
		if _, err := w.Check(context.Background()); err != nil {
			w.logger.Errorw("maturity check failed", "error", err)
		}
	}); err != nil {
		return nil, fmt.Errorf("invalid maturity watch schedule %q: %w", schedule, err)
	}

	return w, nil
}

// Check lists the upcoming maturities and logs each one.
func (w *MaturityWatcher) Check(ctx context.Context) ([]model.MaturityEvent, error) {
	assets, err := w.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	events := service.UpcomingMaturities(assets, w.now(), w.window)
	for _, e := range events {
		w.logger.Infow("asset maturing soon",
			"asset_id", e.AssetID,
			"asset", e.AssetName,
			"maturity_date", e.MaturityDate.Format("2006-01-02"),
			"days_left", e.DaysLeft,
		)
	}
	return events, nil
}

// Run starts the scheduler and blocks until ctx is done, then waits for a
// running check to finish.
func (w *MaturityWatcher) Run(ctx context.Context) error {
	w.cron.Start()
	w.logger.Infow("maturity watcher started", "window", w.window.String())

	<-ctx.Done()

	<-w.cron.Stop().Done()
	w.logger.Info("maturity watcher stopped")
	return nil
}
