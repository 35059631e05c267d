package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/miguelF21/Facepay/internal/events"
	"github.com/miguelF21/Facepay/internal/shared/contextutil"

	"github.com/google/uuid"
)

// EnqueueResourceChange writes a ResourceChangedEvent to the outbox. Call it
// with a repository bound to the same transaction as the write.
func EnqueueResourceChange(
	ctx context.Context,
	repo OutboxRepository,
	resource, action, resourceID string,
	data any,
) error {
	actor := contextutil.ActorFrom(ctx)

	event := events.ResourceChangedEvent{
		EventType:  events.EventType(resource, action),
		Resource:   resource,
		ResourceID: resourceID,
		Action:     action,
		Actor:      actor.Subject,
		ActorEmail: actor.Email,
		RequestID:  contextutil.GetRequestID(ctx),
		OccurredAt: time.Now().UTC(),
	}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return err
		}
		event.Data = raw
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return repo.Create(ctx, OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     event.RequestID,
		AggregateType: resource,
		AggregateID:   resourceID,
		EventType:     event.EventType,
		Topic:         events.ResourceChangesTopic,
		Payload:       payload,
		Status:        OutboxStatusPending,
	})
}
