package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	autherrors "github.com/miguelF21/Facepay/internal/auth/errors"
	"github.com/miguelF21/Facepay/internal/auth/jwks"
	"github.com/miguelF21/Facepay/internal/metrics"
	"github.com/miguelF21/Facepay/internal/middleware"
	"github.com/miguelF21/Facepay/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAuthenticator struct {
	identity *jwks.Identity
	err      error
	header   string
}

func (f *fakeAuthenticator) Authenticate(_ context.Context, authorization string) (*jwks.Identity, error) {
	f.header = authorization
	return f.identity, f.err
}

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func newRouter(authn middleware.Authenticator, m *metrics.Metrics, protected bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ContextLogger(zap.NewNop()), middleware.Authenticate(authn, m))
	handlers := []gin.HandlerFunc{}
	if protected {
		handlers = append(handlers, middleware.RequireIdentity(m))
	}
	handlers = append(handlers, func(c *gin.Context) {
		ctx := c.Request.Context()
		c.JSON(http.StatusOK, gin.H{
			"request_id": contextutil.GetRequestID(ctx),
			"user_id":    contextutil.ActorFrom(ctx).Subject,
			"email":      contextutil.ActorFrom(ctx).Email,
		})
	})
	r.GET("/ping", handlers...)
	return r
}

func TestAuthenticate_AnonymousPassesThrough(t *testing.T) {
	r := newRouter(&fakeAuthenticator{}, nil, false)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestAuthenticate_PropagatesIdentity(t *testing.T) {
	authn := &fakeAuthenticator{identity: &jwks.Identity{Subject: "auth0|1", Email: "ana@facepay.test"}}
	r := newRouter(authn, nil, true)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer abc")
	req.Header.Set(middleware.RequestIDHeader, "rid-1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "rid-1", body["request_id"])
	assert.Equal(t, "auth0|1", body["user_id"])
	assert.Equal(t, "ana@facepay.test", body["email"])
	assert.Equal(t, "Bearer abc", authn.header)
	assert.Equal(t, "rid-1", rec.Header().Get(middleware.RequestIDHeader))
}

func TestAuthenticate_RejectsWithVerifierError(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	r := newRouter(&fakeAuthenticator{err: autherrors.ErrTokenExpired}, m, false)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer abc")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decode(t, rec)
	assert.False(t, env.Ok)
	assert.Equal(t, autherrors.CodeTokenExpired, env.Error.Code)
	assert.Equal(t, "token expired", env.Error.Message)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, mfs)
	assert.Equal(t, "facepay_auth_failures_total", mfs[0].GetName())
	assert.Equal(t, float64(1), mfs[0].GetMetric()[0].GetCounter().GetValue())
}

func TestRequireIdentity_RejectsAnonymous(t *testing.T) {
	r := newRouter(&fakeAuthenticator{}, nil, true)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "Authentication is required", env.Error.Message)
}

func TestRateLimitByIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RateLimitByIP(1, 2))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	r := gin.New()
	r.Use(middleware.Metrics(metrics.New(reg)))
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/42", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	var found bool
	for _, mf := range mfs {
		if mf.GetName() != "facepay_http_requests_total" {
			continue
		}
		for _, l := range mf.GetMetric()[0].GetLabel() {
			if l.GetName() == "route" {
				assert.Equal(t, "/items/:id", l.GetValue())
				found = true
			}
		}
	}
	assert.True(t, found)
}
