package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/miguelF21/Facepay/internal/app"
	"github.com/miguelF21/Facepay/internal/auth/jwks"
	"github.com/miguelF21/Facepay/internal/config"
	"github.com/miguelF21/Facepay/internal/messaging/kafka"
	"github.com/miguelF21/Facepay/internal/shared/apperror"
	"github.com/miguelF21/Facepay/internal/shared/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type stubAuthenticator struct{}

func (stubAuthenticator) Authenticate(_ context.Context, authorization string) (*jwks.Identity, error) {
	if authorization == "" {
		return nil, nil
	}
	return &jwks.Identity{Subject: "auth0|1", Email: "ops@facepay.test"}, nil
}

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type harness struct {
	t      *testing.T
	router *gin.Engine
	db     *gorm.DB
	header http.Header
}

func newHarness(t *testing.T, authRequired bool) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)
	apperror.Init()

	db := dbtest.NewSQLite(t, app.Models()...)
	cfg := &config.Config{
		RateLimit: config.RateLimitConfig{RPS: 1000, Burst: 1000},
		Auth:      config.AuthConfig{Required: authRequired},
	}
	router := app.NewRouter(app.Dependencies{
		Config:        cfg,
		DB:            db,
		Authenticator: stubAuthenticator{},
		Logger:        zap.NewNop(),
	})
	return &harness{t: t, router: router, db: db, header: http.Header{}}
}

func (h *harness) do(method, path string, body any) (int, envelope) {
	h.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(h.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range h.header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get("Content-Type") != "" && bytes.HasPrefix(rec.Body.Bytes(), []byte("{")) {
		require.NoError(h.t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec.Code, env
}

func (h *harness) create(path string, body any) map[string]any {
	h.t.Helper()
	code, env := h.do(http.MethodPost, path, body)
	require.Equal(h.t, http.StatusCreated, code, "POST %s: %s", path, env.Error.Message)
	return decodeObject(h.t, env.Data)
}

func decodeObject(t *testing.T, raw json.RawMessage) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestRouter_Health(t *testing.T) {
	h := newHarness(t, false)

	code, env := h.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Ok)
}

func TestRouter_PayrollFlow(t *testing.T) {
	h := newHarness(t, false)

	u := h.create("/api/v1/users", map[string]any{"email": "ana@facepay.test", "password": "s3cretpass"})
	assert.NotContains(t, u, "password")
	assert.Equal(t, "employee", u["role"])

	emp := h.create("/api/v1/employees", map[string]any{
		"user_id":       u["id"],
		"first_name":    "Ana",
		"employee_code": "E-001",
	})

	code, env := h.do(http.MethodGet, "/api/v1/employees/"+emp["id"].(string), nil)
	require.Equal(t, http.StatusOK, code)
	nested := decodeObject(t, env.Data)
	require.NotNil(t, nested["user"])
	assert.Equal(t, "ana@facepay.test", nested["user"].(map[string]any)["email"])

	pay := h.create("/api/v1/payroll-records", map[string]any{
		"employee_id":  emp["id"],
		"period_start": "2026-01-01",
		"period_end":   "2026-01-31",
		"gross_salary": "1500.5",
	})
	assert.Equal(t, "1500.50", pay["gross_salary"])

	h.create("/api/v1/concepts", map[string]any{
		"code":       "BONUS",
		"amount":     "200",
		"payroll_id": pay["id"],
	})

	code, env = h.do(http.MethodPost, "/api/v1/concepts", map[string]any{"code": "BONUS", "payroll_id": pay["id"]})
	assert.Equal(t, http.StatusConflict, code)
	assert.False(t, env.Ok)

	code, env = h.do(http.MethodGet, "/api/v1/payroll-records/"+pay["id"].(string), nil)
	require.Equal(t, http.StatusOK, code)
	full := decodeObject(t, env.Data)
	concepts, ok := full["concepts"].([]any)
	require.True(t, ok)
	require.Len(t, concepts, 1)
	assert.Equal(t, "200.00", concepts[0].(map[string]any)["amount"])

	code, env = h.do(http.MethodGet, "/api/v1/payroll-records?employee_id="+emp["id"].(string), nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, env.Meta["total"])

	code, _ = h.do(http.MethodDelete, "/api/v1/employees/"+emp["id"].(string), nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = h.do(http.MethodGet, "/api/v1/payroll-records/"+pay["id"].(string), nil)
	assert.Equal(t, http.StatusNotFound, code)

	var events int64
	require.NoError(t, h.db.Model(&kafka.OutboxEvent{}).Count(&events).Error)
	assert.Equal(t, int64(5), events)
}

func TestRouter_InvalidInput(t *testing.T) {
	h := newHarness(t, false)

	code, env := h.do(http.MethodPost, "/api/v1/payroll-records", map[string]any{
		"employee_id": "8b0f6c4e-5a8e-4c55-9b56-0d1b6f3f2f11",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, apperror.CodeInvalidInput, env.Error.Code)

	code, _ = h.do(http.MethodGet, "/api/v1/terminals/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = h.do(http.MethodPost, "/api/v1/users", map[string]any{"username": "nobody"})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestRouter_AuthRequired(t *testing.T) {
	h := newHarness(t, true)

	code, env := h.do(http.MethodGet, "/api/v1/users", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, apperror.CodeUnauthorized, env.Error.Code)

	code, _ = h.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, code)

	h.header.Set("Authorization", "Bearer token")
	code, env = h.do(http.MethodGet, "/api/v1/users", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Ok)
}

func TestRouter_Metrics(t *testing.T) {
	h := newHarness(t, false)
	h.do(http.MethodGet, "/api/v1/contacts", nil)

	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "facepay_http_requests_total")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
