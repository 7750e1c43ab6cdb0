package recompute

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shenikar/safety_scoring_system/internal/service"
	"github.com/sirupsen/logrus"
)

// scheduleTimeout ограничивает один запуск планового пересчета
const scheduleTimeout = time.Minute

// Scheduler периодически помечает все регионы для пересчета, чтобы оценки учитывали затухание
type Scheduler struct {
	cron   *cron.Cron
	scorer service.ScoringService
	logger *logrus.Logger
}

// NewScheduler создает планировщик. schedule - cron-выражение с секундами ("0 0 * * * *" - раз в час).
func NewScheduler(scorer service.ScoringService, logger *logrus.Logger, schedule string) (*Scheduler, error) {
	s := &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		scorer: scorer,
		logger: logger,
	}
	if _, err := s.cron.AddFunc(schedule, s.tick); err != nil {
		return nil, fmt.Errorf("invalid recompute schedule %q: %w", schedule, err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.logger.Info("Starting recompute scheduler...")
	s.cron.Start()
}

// Stop останавливает планировщик и ждет текущий запуск
func (s *Scheduler) Stop(ctx context.Context) error {
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
		s.logger.Info("Recompute scheduler stopped.")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), scheduleTimeout)
	defer cancel()

	count, err := s.scorer.RecomputeAll(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Scheduled recompute failed")
		return
	}
	s.logger.WithField("regions", count).Info("Scheduled recompute queued")
}
