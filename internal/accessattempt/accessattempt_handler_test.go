package accessattempt_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/miguelF21/Facepay/internal/accessattempt"
	accessattempterrors "github.com/miguelF21/Facepay/internal/accessattempt/errors"
	mock_accessattempt "github.com/miguelF21/Facepay/internal/accessattempt/mock"
	"github.com/miguelF21/Facepay/internal/shared/apperror"
	"github.com/miguelF21/Facepay/internal/shared/listquery"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupRouter(t *testing.T) (*gin.Engine, *mock_accessattempt.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	apperror.Init()

	svc := mock_accessattempt.NewMockService(gomock.NewController(t))
	r := gin.New()
	accessattempt.RegisterRoutes(r.Group("/api/v1"), accessattempt.NewHandler(svc, zap.NewNop()))
	return r, svc
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAccessAttemptHandler_GetAllRejectsBadEmployeeFilter(t *testing.T) {
	r, _ := setupRouter(t)

	rec := do(r, http.MethodGet, "/api/v1/access-attempts?employee_id=42", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "employee_id filter is invalid")
}

func TestAccessAttemptHandler_GetAllOrdersByTimestamp(t *testing.T) {
	r, svc := setupRouter(t)
	svc.EXPECT().
		GetAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q listquery.Query) ([]accessattempt.AccessAttemptResponse, int64, error) {
			assert.Equal(t, 1, q.Page)
			return []accessattempt.AccessAttemptResponse{}, 0, nil
		})

	rec := do(r, http.MethodGet, "/api/v1/access-attempts?ordering=-timestamp&result=denied", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccessAttemptHandler_CreateAndPatch(t *testing.T) {
	r, svc := setupRouter(t)
	svc.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(accessattempt.AccessAttemptResponse{ID: "a-1"}, nil)
	svc.EXPECT().
		Update(gomock.Any(), "a-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req accessattempt.AccessAttemptRequest) (accessattempt.AccessAttemptResponse, error) {
			assert.True(t, req.EmployeeID.Valid)
			assert.Nil(t, req.EmployeeID.Value)
			return accessattempt.AccessAttemptResponse{}, accessattempterrors.ErrAccessAttemptNotFound
		})

	assert.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/v1/access-attempts", `{"method":"face"}`).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPatch, "/api/v1/access-attempts/a-1", `{"employee_id":null}`).Code)
}

func TestAccessAttemptHandler_MethodTooLong(t *testing.T) {
	r, _ := setupRouter(t)

	rec := do(r, http.MethodPost, "/api/v1/access-attempts", `{"method":"`+strings.Repeat("m", 17)+`"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
