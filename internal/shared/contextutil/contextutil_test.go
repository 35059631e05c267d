package contextutil_test

import (
	"context"
	"testing"

	"github.com/miguelF21/Facepay/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestActor(t *testing.T) {
	anon := contextutil.ActorFrom(context.Background())
	assert.True(t, anon.Anonymous())
	assert.Equal(t, contextutil.Actor{}, anon)

	ctx := contextutil.WithActor(context.Background(), contextutil.Actor{Subject: "auth0|123", Email: "ana@facepay.io"})
	actor := contextutil.ActorFrom(ctx)
	assert.False(t, actor.Anonymous())
	assert.Equal(t, "auth0|123", actor.Subject)
	assert.Equal(t, "ana@facepay.io", actor.Email)
}

func TestRequestID(t *testing.T) {
	assert.Empty(t, contextutil.GetRequestID(context.Background()))
	assert.Equal(t, "req-1", contextutil.GetRequestID(contextutil.WithRequestID(context.Background(), "req-1")))
}

func TestGetLogger(t *testing.T) {
	fallback := zap.NewExample()
	assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))

	scoped := zap.NewNop().Named("scoped")
	ctx := contextutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, contextutil.GetLogger(ctx, fallback))
}
