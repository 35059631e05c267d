package producer

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/miguelF21/Facepay/internal/messaging/kafka"
	kafkaMock "github.com/miguelF21/Facepay/internal/messaging/kafka/mock"
	"github.com/miguelF21/Facepay/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	failFor map[string]bool
	written []kafkago.Message
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if f.failFor[string(m.Key)] {
			return errors.New("broker unavailable")
		}
		f.written = append(f.written, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes and marks sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{}

		pending := []kafka.OutboxEvent{
			{ID: "o-1", AggregateID: "a-1", EventType: "employee_created", Topic: "t", Payload: []byte(`{}`)},
			{ID: "o-2", AggregateID: "a-2", EventType: "terminal_updated", Topic: "t", Payload: []byte(`{}`)},
		}
		repo.EXPECT().ListPending(ctx, outboxBatchSize).Return(pending, nil)
		repo.EXPECT().MarkSent(ctx, "o-1").Return(nil)
		repo.EXPECT().MarkSent(ctx, "o-2").Return(nil)

		res, err := processPendingEvents(ctx, repo, writer, zap.NewNop(), nil)
		assert.NoError(t, err)
		assert.Equal(t, batchResult{fetched: 2, sent: 2}, res)
		assert.Len(t, writer.written, 2)
		assert.Equal(t, []byte("a-1"), writer.written[0].Key)
		assert.Equal(t, "event_type", writer.written[0].Headers[0].Key)
		assert.Equal(t, []byte("employee_created"), writer.written[0].Headers[0].Value)
	})

	t.Run("publish failure marks failed and continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failFor: map[string]bool{"a-1": true}}

		pending := []kafka.OutboxEvent{
			{ID: "o-1", AggregateID: "a-1", Topic: "t", Payload: []byte(`{}`)},
			{ID: "o-2", AggregateID: "a-2", Topic: "t", Payload: []byte(`{}`)},
		}
		repo.EXPECT().ListPending(ctx, outboxBatchSize).Return(pending, nil)
		repo.EXPECT().MarkFailed(ctx, pending[0], "broker unavailable").Return(nil)
		repo.EXPECT().MarkSent(ctx, "o-2").Return(nil)

		res, err := processPendingEvents(ctx, repo, writer, zap.NewNop(), nil)
		assert.NoError(t, err)
		assert.Equal(t, batchResult{fetched: 2, sent: 1, failed: 1}, res)
		assert.Len(t, writer.written, 1)
	})

	t.Run("list failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().ListPending(ctx, outboxBatchSize).Return(nil, errors.New("db down"))

		_, err := processPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop(), nil)
		assert.Error(t, err)
	})
}

func outboxCounts(t *testing.T, reg *prometheus.Registry) map[string]float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "facepay_outbox_events_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			counts[resultLabel(metric)] = metric.GetCounter().GetValue()
		}
	}
	return counts
}

func resultLabel(m *dto.Metric) string {
	for _, l := range m.GetLabel() {
		if l.GetName() == "result" {
			return l.GetValue()
		}
	}
	return ""
}

func TestProcessPendingEvents_Metrics(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	repo := kafkaMock.NewMockOutboxRepository(gomock.NewController(t))
	writer := &fakeWriter{failFor: map[string]bool{"a-2": true}}
	pending := []kafka.OutboxEvent{
		{ID: "o-1", AggregateID: "a-1", Topic: "t"},
		{ID: "o-2", AggregateID: "a-2", Topic: "t"},
		{ID: "o-3", AggregateID: "a-3", Topic: "t"},
	}
	repo.EXPECT().ListPending(ctx, outboxBatchSize).Return(pending, nil)
	repo.EXPECT().MarkSent(ctx, "o-1").Return(nil)
	repo.EXPECT().MarkFailed(ctx, pending[1], "broker unavailable").Return(nil)
	repo.EXPECT().MarkSent(ctx, "o-3").Return(nil)

	_, err := processPendingEvents(ctx, repo, writer, zap.NewNop(), m)
	require.NoError(t, err)

	counts := outboxCounts(t, reg)
	assert.Equal(t, 2.0, counts["sent"])
	assert.Equal(t, 1.0, counts["failed"])
}

func TestDrain_FollowsFullBatches(t *testing.T) {
	ctx := context.Background()
	repo := kafkaMock.NewMockOutboxRepository(gomock.NewController(t))

	full := make([]kafka.OutboxEvent, outboxBatchSize)
	for i := range full {
		full[i] = kafka.OutboxEvent{ID: fmt.Sprintf("o-%d", i), AggregateID: "a", Topic: "t"}
	}
	tail := []kafka.OutboxEvent{{ID: "o-last", AggregateID: "a", Topic: "t"}}

	gomock.InOrder(
		repo.EXPECT().ListPending(ctx, outboxBatchSize).Return(full, nil),
		repo.EXPECT().ListPending(ctx, outboxBatchSize).Return(tail, nil),
	)
	repo.EXPECT().MarkSent(ctx, gomock.Any()).Return(nil).Times(outboxBatchSize + 1)

	writer := &fakeWriter{}
	drain(ctx, repo, writer, zap.NewNop(), nil)

	assert.Len(t, writer.written, outboxBatchSize+1)
}
