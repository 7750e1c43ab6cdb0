package recompute

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/safety_scoring_system/internal/config"
	"github.com/shenikar/safety_scoring_system/internal/models"
	"github.com/shenikar/safety_scoring_system/internal/service"
	"github.com/sirupsen/logrus"
)

// requeueTimeout ограничивает возврат прерванного региона в очередь при остановке
const requeueTimeout = 2 * time.Second

// Worker - пул горутин, пересчитывающих регионы из очереди
type Worker struct {
	redisClient *redis.Client
	scorer      service.ScoringService
	marker      service.RegionMarker
	logger      *logrus.Logger

	workers     int
	maxRetries  int
	baseDelay   time.Duration
	pollTimeout time.Duration

	wg sync.WaitGroup
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, scorer service.ScoringService, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		scorer:      scorer,
		marker:      NewRedisPublisher(redisClient),
		logger:      logger,
		workers:     cfg.RecomputeWorkers,
		maxRetries:  cfg.RecomputeMaxRetries,
		baseDelay:   cfg.RecomputeBaseDelay,
		pollTimeout: cfg.RecomputePollTimeout,
	}
}

// Start запускает горутины обработки очереди. Они завершаются при отмене ctx.
func (w *Worker) Start(ctx context.Context) {
	w.logger.WithField("workers", w.workers).Info("Starting recompute workers...")
	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go func(n int) {
			defer w.wg.Done()
			w.run(ctx, n)
		}(i)
	}
}

// Wait блокируется до остановки всех горутин
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) run(ctx context.Context, n int) {
	log := w.logger.WithField("worker", n)
	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping recompute worker.")
			return
		default:
		}

		// BRPOP с таймаутом, чтобы периодически проверять отмену контекста
		result, err := w.redisClient.BRPop(ctx, w.pollTimeout, queueKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || ctx.Err() != nil {
				continue
			}
			log.WithError(err).Error("Failed to pop region from recompute queue")
			w.sleep(ctx, w.baseDelay)
			continue
		}

		// result[0] - ключ, result[1] - значение
		raw := result[1]
		// Снимаем отметку до пересчета: пометка во время пересчета снова поставит регион в очередь
		if err := w.redisClient.SRem(ctx, pendingSetKey, raw).Err(); err != nil {
			log.WithError(err).Warn("Failed to clear pending mark")
		}

		regionID, err := uuid.Parse(raw)
		if err != nil {
			log.WithError(err).WithField("payload", raw).Error("Dropping malformed region id")
			continue
		}
		w.process(ctx, regionID)
	}
}

// process пересчитывает регион с экспоненциальной задержкой между попытками
func (w *Worker) process(ctx context.Context, regionID uuid.UUID) {
	log := w.logger.WithField("region_id", regionID)
	log.Debug("Processing region recompute...")

	delay := w.baseDelay
	attempts := max(w.maxRetries, 1)
	for i := 0; i < attempts; i++ {
		_, err := w.scorer.RecomputeRegion(ctx, regionID)
		if err == nil {
			return
		}

		switch {
		case errors.Is(err, models.ErrNotFound):
			log.Info("Region no longer exists, skipping recompute.")
			return
		case errors.Is(err, models.ErrInvalidInput), errors.Is(err, models.ErrInconsistentState):
			log.WithError(err).Error("Region recompute rejected, not retrying.")
			return
		case ctx.Err() != nil:
			w.requeue(log, regionID)
			return
		}

		if i == attempts-1 {
			break
		}
		log.WithError(err).Warnf("Region recompute failed. Retrying in %v. Retries left: %d", delay, attempts-1-i)
		if !w.sleep(ctx, delay) {
			w.requeue(log, regionID)
			return
		}
		delay *= 2 // Экспоненциальная задержка
	}

	log.Errorf("Failed to recompute region after %d attempts.", attempts)
}

// requeue возвращает регион, прерванный остановкой, в очередь, чтобы его подхватил следующий процесс.
// Контекст воркера к этому моменту отменен, поэтому используется отдельный с коротким таймаутом.
func (w *Worker) requeue(log *logrus.Entry, regionID uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), requeueTimeout)
	defer cancel()

	if err := w.marker.MarkRegions(ctx, []uuid.UUID{regionID}); err != nil {
		log.WithError(err).Error("Failed to requeue region interrupted by shutdown")
		return
	}
	log.Info("Region returned to recompute queue after shutdown.")
}

// sleep ждет d или отмены ctx; возвращает false при отмене
func (w *Worker) sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
