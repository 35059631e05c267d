package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/miguelF21/Facepay/internal/employee"
	employeeerrors "github.com/miguelF21/Facepay/internal/employee/errors"
	"github.com/miguelF21/Facepay/internal/shared/apperror"
	"github.com/miguelF21/Facepay/internal/shared/listquery"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEmployeeService struct {
	GetAllFn  func(ctx context.Context, q listquery.Query) ([]employee.EmployeeResponse, int64, error)
	GetByIDFn func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	CreateFn  func(ctx context.Context, req employee.EmployeeRequest) (employee.EmployeeResponse, error)
	UpdateFn  func(ctx context.Context, id string, req employee.EmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn  func(ctx context.Context, id string) error
}

func (f *fakeEmployeeService) GetAll(ctx context.Context, q listquery.Query) ([]employee.EmployeeResponse, int64, error) {
	return f.GetAllFn(ctx, q)
}

func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.EmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}

func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.EmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, req)
}

func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func setupRouter(svc employee.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	employee.RegisterRoutes(r.Group("/api/v1"), employee.NewHandler(svc, zap.NewNop()))
	return r
}

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error struct {
		Code    string                `json:"code"`
		Message string                `json:"message"`
		Details []apperror.FieldError `json:"details"`
	} `json:"error"`
}

func perform(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func TestEmployeeHandler_Create(t *testing.T) {
	userID := uuid.New()

	t.Run("accepts foreign keys only", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(_ context.Context, req employee.EmployeeRequest) (employee.EmployeeResponse, error) {
				require.NotNil(t, req.UserID.Value)
				assert.Equal(t, userID, *req.UserID.Value)
				assert.Equal(t, int64(1032456789), *req.DocumentNumber.Value)
				assert.False(t, req.ContactID.Valid)
				code := *req.EmployeeCode.Value
				return employee.EmployeeResponse{ID: "e-1", EmployeeCode: &code}, nil
			},
		}

		rec, env := perform(setupRouter(svc), http.MethodPost, "/api/v1/employees",
			`{"user_id":"`+userID.String()+`","employee_code":"TEST001","document_number":1032456789}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(env.Data), `"employee_code":"TEST001"`)
	})

	t.Run("malformed user id", func(t *testing.T) {
		rec, env := perform(setupRouter(&fakeEmployeeService{}), http.MethodPost, "/api/v1/employees",
			`{"user_id":"nope"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apperror.CodeInvalidInput, env.Error.Code)
	})

	t.Run("code too long", func(t *testing.T) {
		rec, env := perform(setupRouter(&fakeEmployeeService{}), http.MethodPost, "/api/v1/employees",
			`{"employee_code":"`+strings.Repeat("9", 17)+`"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Employee Code is invalid", env.Error.Message)
	})

	t.Run("duplicate code", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(context.Context, employee.EmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeCodeAlreadyExists
			},
		}

		rec, _ := perform(setupRouter(svc), http.MethodPost, "/api/v1/employees", `{"employee_code":"TEST001"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	svc := &fakeEmployeeService{
		GetAllFn: func(_ context.Context, q listquery.Query) ([]employee.EmployeeResponse, int64, error) {
			assert.Equal(t, listquery.DefaultPageSize, q.PageSize)
			return []employee.EmployeeResponse{{ID: "e-1"}}, 1, nil
		},
	}

	rec, env := perform(setupRouter(svc), http.MethodGet, "/api/v1/employees?department=Sales&search=ana", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Ok)
}

func TestEmployeeHandler_UpdateAndDelete(t *testing.T) {
	svc := &fakeEmployeeService{
		UpdateFn: func(_ context.Context, id string, req employee.EmployeeRequest) (employee.EmployeeResponse, error) {
			assert.True(t, req.AddressID.Valid)
			assert.Nil(t, req.AddressID.Value)
			return employee.EmployeeResponse{ID: id}, nil
		},
		DeleteFn: func(context.Context, string) error {
			return employeeerrors.ErrEmployeeNotFound
		},
	}
	r := setupRouter(svc)

	rec, _ := perform(r, http.MethodPatch, "/api/v1/employees/e-1", `{"address_id":null}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := perform(r, http.MethodDelete, "/api/v1/employees/e-1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Employee not found", env.Error.Message)
}
