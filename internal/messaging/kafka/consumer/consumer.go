package consumer

import (
	"context"
	"encoding/json"

	"github.com/miguelF21/Facepay/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ChangeRecorder persists a resource change, e.g. as an audit log row.
type ChangeRecorder interface {
	RecordChange(ctx context.Context, event events.ResourceChangedEvent) error
}

// ConsumeResourceChanges feeds every resource change into recorder until ctx
// is cancelled. Undecodable messages are committed and skipped; messages
// that fail to record stay uncommitted.
func ConsumeResourceChanges(
	ctx context.Context,
	reader MessageReader,
	recorder ChangeRecorder,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.resource_changes")
	log.Info("resource change consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("resource change consumer stopped")
				return
			}
			log.Error("fetch resource change message failed", zap.Error(err))
			continue
		}

		handleMessage(ctx, reader, recorder, msg, log)
	}
}

func handleMessage(
	ctx context.Context,
	reader MessageReader,
	recorder ChangeRecorder,
	msg kafkago.Message,
	log *zap.Logger,
) {
	var event events.ResourceChangedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil || event.EventType == "" {
		log.Error("decode resource change event failed",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	if err := recorder.RecordChange(ctx, event); err != nil {
		log.Error("record resource change failed",
			zap.String("event_type", event.EventType),
			zap.String("resource_id", event.ResourceID),
			zap.Error(err),
		)
		return
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit resource change message failed", zap.Error(err))
		return
	}

	log.Info("resource change recorded",
		zap.String("event_type", event.EventType),
		zap.String("resource_id", event.ResourceID),
		zap.String("request_id", event.RequestID),
	)
}
