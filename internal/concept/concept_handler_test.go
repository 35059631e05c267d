package concept_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/miguelF21/Facepay/internal/concept"
	concepterrors "github.com/miguelF21/Facepay/internal/concept/errors"
	mock_concept "github.com/miguelF21/Facepay/internal/concept/mock"
	"github.com/miguelF21/Facepay/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupRouter(t *testing.T) (*gin.Engine, *mock_concept.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	apperror.Init()

	svc := mock_concept.NewMockService(gomock.NewController(t))
	r := gin.New()
	concept.RegisterRoutes(r.Group("/api/v1"), concept.NewHandler(svc, zap.NewNop()))
	return r, svc
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestConceptHandler_CreateRequiresCode(t *testing.T) {
	r, _ := setupRouter(t)

	rec := perform(r, http.MethodPost, "/api/v1/concepts",
		`{"payroll_id":"8b5f1f7e-8f7c-4c39-9a55-0d4f1b0f8d10"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Code is required")
}

func TestConceptHandler_CreateRejectsAmountPrecision(t *testing.T) {
	r, _ := setupRouter(t)

	rec := perform(r, http.MethodPost, "/api/v1/concepts",
		`{"code":"BONUS","amount":"10.005","payroll_id":"8b5f1f7e-8f7c-4c39-9a55-0d4f1b0f8d10"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Amount is invalid")
}

func TestConceptHandler_Create(t *testing.T) {
	r, svc := setupRouter(t)
	svc.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req concept.ConceptRequest) (concept.ConceptResponse, error) {
			assert.Equal(t, "BONUS", req.Code)
			assert.Equal(t, "10.5", req.Amount.Value.String())
			amount := "10.50"
			return concept.ConceptResponse{Code: req.Code, Amount: &amount}, nil
		})

	rec := perform(r, http.MethodPost, "/api/v1/concepts",
		`{"code":"BONUS","amount":10.5,"payroll_id":"8b5f1f7e-8f7c-4c39-9a55-0d4f1b0f8d10"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"amount":"10.50"`)
}

func TestConceptHandler_DuplicateCode(t *testing.T) {
	r, svc := setupRouter(t)
	svc.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(concept.ConceptResponse{}, concepterrors.ErrConceptCodeAlreadyExists)

	rec := perform(r, http.MethodPost, "/api/v1/concepts",
		`{"code":"BONUS","payroll_id":"8b5f1f7e-8f7c-4c39-9a55-0d4f1b0f8d10"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestConceptHandler_PatchByCode(t *testing.T) {
	r, svc := setupRouter(t)
	svc.EXPECT().
		Patch(gomock.Any(), "BONUS", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req concept.ConceptPatchRequest) (concept.ConceptResponse, error) {
			assert.True(t, req.Description.Valid)
			assert.Nil(t, req.Description.Value)
			assert.Nil(t, req.PayrollID)
			return concept.ConceptResponse{Code: "BONUS"}, nil
		})

	rec := perform(r, http.MethodPatch, "/api/v1/concepts/BONUS", `{"description":null}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}
