package producer

import (
	"context"
	"time"

	"github.com/miguelF21/Facepay/internal/messaging/kafka"
	"github.com/miguelF21/Facepay/internal/metrics"

	"go.uber.org/zap"
)

const outboxBatchSize = 50

type batchResult struct {
	fetched int
	sent    int
	failed  int
}

// ProcessOutboxEvents publishes pending outbox rows until ctx is cancelled.
// A full batch is followed immediately by the next one so a backlog drains
// without waiting for the ticker.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	m *metrics.Metrics,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))

	for {
		drain(ctx, repo, writer, log, m)

		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
		}
	}
}

func drain(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	log *zap.Logger,
	m *metrics.Metrics,
) {
	for ctx.Err() == nil {
		res, err := processPendingEvents(ctx, repo, writer, log, m)
		if err != nil {
			log.Error("process outbox events failed", zap.Error(err))
			return
		}
		if res.fetched > 0 {
			log.Info("outbox batch processed",
				zap.Int("sent", res.sent),
				zap.Int("failed", res.failed),
			)
		}
		if res.fetched < outboxBatchSize {
			return
		}
	}
}

func processPendingEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	m *metrics.Metrics,
) (batchResult, error) {
	events, err := repo.ListPending(ctx, outboxBatchSize)
	if err != nil {
		return batchResult{}, err
	}

	res := batchResult{fetched: len(events)}
	for _, event := range events {
		if ctx.Err() != nil {
			break
		}
		log := logger.With(
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
		)

		if err := publishEvent(ctx, writer, event); err != nil {
			res.failed++
			m.IncOutboxFailed()
			log.Warn("publish outbox event failed",
				zap.Int("attempt", event.RetryCount+1),
				zap.Error(err),
			)
			if markErr := repo.MarkFailed(ctx, event, err.Error()); markErr != nil {
				log.Error("mark outbox event failed", zap.Error(markErr))
			}
			continue
		}

		// Published but not marked: the row is retried and consumers see it twice.
		if err := repo.MarkSent(ctx, event.ID); err != nil {
			log.Error("mark outbox event sent", zap.Error(err))
			continue
		}

		res.sent++
		m.IncOutboxSent()
		log.Debug("outbox event sent", zap.String("topic", event.Topic))
	}

	return res, nil
}
