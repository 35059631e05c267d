package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/miguelF21/Facepay/internal/events"
	"github.com/miguelF21/Facepay/internal/shared/contextutil"
	"github.com/miguelF21/Facepay/internal/shared/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOutbox(t *testing.T, now time.Time) *outboxRepository {
	t.Helper()
	db := dbtest.NewSQLite(t, &OutboxEvent{})
	return &outboxRepository{db: db, now: func() time.Time { return now }}
}

func pendingEvent(id string) OutboxEvent {
	return OutboxEvent{
		ID:            id,
		AggregateType: "terminal",
		AggregateID:   uuid.NewString(),
		EventType:     "terminal_created",
		Topic:         events.ResourceChangesTopic,
		Payload:       []byte(`{"event_type":"terminal_created"}`),
		Status:        OutboxStatusPending,
	}
}

func TestOutboxRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := newTestOutbox(t, now)

	first := pendingEvent(uuid.NewString())
	second := pendingEvent(uuid.NewString())
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	pending, err := repo.ListPending(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	require.NoError(t, repo.MarkSent(ctx, first.ID))
	require.NoError(t, repo.MarkFailed(ctx, OutboxEvent{ID: second.ID}, "broker unavailable"))

	pending, err = repo.ListPending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending, "failed event waits for its retry time")

	var failed OutboxEvent
	require.NoError(t, repo.db.First(&failed, "id = ?", second.ID).Error)
	assert.Equal(t, OutboxStatusFailed, failed.Status)
	assert.Equal(t, 1, failed.RetryCount)
	require.NotNil(t, failed.NextRetryAt)
	assert.True(t, failed.NextRetryAt.UTC().Equal(now.Add(15*time.Second)))

	later := &outboxRepository{db: repo.db, now: func() time.Time { return now.Add(time.Minute) }}
	pending, err = later.ListPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)
}

func TestOutboxRepository_CreateValidates(t *testing.T) {
	repo := newTestOutbox(t, time.Now().UTC())
	event := pendingEvent("")
	assert.Error(t, repo.Create(context.Background(), event))

	event = pendingEvent(uuid.NewString())
	event.Status = "queued"
	assert.Error(t, repo.Create(context.Background(), event))
}

func TestEnqueueResourceChange(t *testing.T) {
	repo := newTestOutbox(t, time.Now().UTC())

	ctx := contextutil.WithRequestID(context.Background(), "req-42")
	ctx = contextutil.WithActor(ctx, contextutil.Actor{Subject: "auth0|abc", Email: "ops@facepay.io"})

	id := uuid.NewString()
	err := EnqueueResourceChange(ctx, repo, "employee", events.ActionCreated, id, map[string]string{"employee_code": "TEST001"})
	require.NoError(t, err)

	var stored OutboxEvent
	require.NoError(t, repo.db.First(&stored, "aggregate_id = ?", id).Error)
	assert.Equal(t, "employee_created", stored.EventType)
	assert.Equal(t, events.ResourceChangesTopic, stored.Topic)
	assert.Equal(t, "req-42", stored.RequestID)

	var event events.ResourceChangedEvent
	require.NoError(t, json.Unmarshal(stored.Payload, &event))
	assert.Equal(t, "employee", event.Resource)
	assert.Equal(t, events.ActionCreated, event.Action)
	assert.Equal(t, "auth0|abc", event.Actor)
	assert.Equal(t, "ops@facepay.io", event.ActorEmail)
	assert.JSONEq(t, `{"employee_code":"TEST001"}`, string(event.Data))
}
