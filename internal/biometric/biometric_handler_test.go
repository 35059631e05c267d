package biometric_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/miguelF21/Facepay/internal/biometric"
	mock_biometric "github.com/miguelF21/Facepay/internal/biometric/mock"
	"github.com/miguelF21/Facepay/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupRouter(t *testing.T) (*gin.Engine, *mock_biometric.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	apperror.Init()

	svc := mock_biometric.NewMockService(gomock.NewController(t))
	r := gin.New()
	biometric.RegisterRoutes(r.Group("/api/v1"), biometric.NewHandler(svc, zap.NewNop()))
	return r, svc
}

func TestBiometricHandler_CreateRequiresEmployee(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/biometric-data", strings.NewReader(`{"type":"face"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Employee Id is required")
}

func TestBiometricHandler_PatchWithoutEmployee(t *testing.T) {
	r, svc := setupRouter(t)
	svc.EXPECT().
		Patch(gomock.Any(), "b-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req biometric.BiometricDataPatchRequest) (biometric.BiometricDataResponse, error) {
			assert.Nil(t, req.EmployeeID)
			assert.True(t, req.Vector.Valid)
			return biometric.BiometricDataResponse{ID: "b-1"}, nil
		})

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/biometric-data/b-1", strings.NewReader(`{"vector":"AAEC"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
