package user_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/miguelF21/Facepay/internal/shared/apperror"
	"github.com/miguelF21/Facepay/internal/shared/listquery"
	"github.com/miguelF21/Facepay/internal/user"
	usererrors "github.com/miguelF21/Facepay/internal/user/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserService struct {
	GetAllFn  func(ctx context.Context, q listquery.Query) ([]user.UserResponse, int64, error)
	GetByIDFn func(ctx context.Context, id string) (user.UserResponse, error)
	CreateFn  func(ctx context.Context, req user.UserRequest) (user.UserResponse, error)
	UpdateFn  func(ctx context.Context, id string, req user.UserRequest) (user.UserResponse, error)
	PatchFn   func(ctx context.Context, id string, req user.UserPatchRequest) (user.UserResponse, error)
	DeleteFn  func(ctx context.Context, id string) error
}

func (f *fakeUserService) GetAll(ctx context.Context, q listquery.Query) ([]user.UserResponse, int64, error) {
	return f.GetAllFn(ctx, q)
}

func (f *fakeUserService) GetByID(ctx context.Context, id string) (user.UserResponse, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *fakeUserService) Create(ctx context.Context, req user.UserRequest) (user.UserResponse, error) {
	return f.CreateFn(ctx, req)
}

func (f *fakeUserService) Update(ctx context.Context, id string, req user.UserRequest) (user.UserResponse, error) {
	return f.UpdateFn(ctx, id, req)
}

func (f *fakeUserService) Patch(ctx context.Context, id string, req user.UserPatchRequest) (user.UserResponse, error) {
	return f.PatchFn(ctx, id, req)
}

func (f *fakeUserService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func setupRouter(svc user.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	user.RegisterRoutes(r.Group("/api/v1"), user.NewHandler(svc, zap.NewNop()))
	return r
}

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
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

func TestUserHandler_GetAll(t *testing.T) {
	t.Run("passes parsed query and returns meta", func(t *testing.T) {
		svc := &fakeUserService{
			GetAllFn: func(_ context.Context, q listquery.Query) ([]user.UserResponse, int64, error) {
				assert.Equal(t, 2, q.Page)
				assert.Equal(t, 1, q.PageSize)
				return []user.UserResponse{{ID: "u-1", Email: "ana@facepay.test"}}, 3, nil
			},
		}

		rec, env := perform(setupRouter(svc), http.MethodGet, "/api/v1/users?active=true&page=2&page_size=1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Ok)
		assert.Equal(t, float64(3), env.Meta["total"])
		assert.Equal(t, float64(3), env.Meta["totalPages"])
	})

	t.Run("invalid bool filter", func(t *testing.T) {
		svc := &fakeUserService{}

		rec, env := perform(setupRouter(svc), http.MethodGet, "/api/v1/users?active=maybe", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "active filter is invalid", env.Error.Message)
	})
}

func TestUserHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeUserService{
			CreateFn: func(_ context.Context, req user.UserRequest) (user.UserResponse, error) {
				assert.Equal(t, "ana@facepay.test", req.Email)
				assert.True(t, req.Password.Valid)
				require.NotNil(t, req.Role)
				assert.Equal(t, user.RoleOperator, *req.Role)
				return user.UserResponse{ID: "u-1", Email: req.Email, Role: *req.Role}, nil
			},
		}

		rec, env := perform(setupRouter(svc), http.MethodPost, "/api/v1/users",
			`{"email":"ana@facepay.test","password":"longenough","role":"operator"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, env.Ok)
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("missing email", func(t *testing.T) {
		svc := &fakeUserService{}

		rec, env := perform(setupRouter(svc), http.MethodPost, "/api/v1/users", `{"username":"ana"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apperror.CodeInvalidInput, env.Error.Code)
		assert.Equal(t, "Email is required", env.Error.Message)
		require.Len(t, env.Error.Details, 1)
		assert.Equal(t, "email", env.Error.Details[0].Field)
	})

	t.Run("username too long and unknown role", func(t *testing.T) {
		svc := &fakeUserService{}

		rec, env := perform(setupRouter(svc), http.MethodPost, "/api/v1/users",
			`{"email":"a@b.c","username":"`+strings.Repeat("x", 65)+`","role":"root"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Len(t, env.Error.Details, 2)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := &fakeUserService{
			CreateFn: func(context.Context, user.UserRequest) (user.UserResponse, error) {
				return user.UserResponse{}, usererrors.ErrEmailAlreadyExists
			},
		}

		rec, env := perform(setupRouter(svc), http.MethodPost, "/api/v1/users", `{"email":"a@b.c"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apperror.CodeConflict, env.Error.Code)
	})
}

func TestUserHandler_Patch(t *testing.T) {
	svc := &fakeUserService{
		PatchFn: func(_ context.Context, id string, req user.UserPatchRequest) (user.UserResponse, error) {
			assert.Equal(t, "u-1", id)
			assert.Nil(t, req.Email)
			assert.True(t, req.Username.Valid)
			assert.Nil(t, req.Username.Value)
			return user.UserResponse{ID: id}, nil
		},
	}

	rec, _ := perform(setupRouter(svc), http.MethodPatch, "/api/v1/users/u-1", `{"username":null}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_PatchRejectsEmptyEmail(t *testing.T) {
	rec, env := perform(setupRouter(&fakeUserService{}), http.MethodPatch, "/api/v1/users/u-1", `{"email":""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email is invalid", env.Error.Message)
}

func TestUserHandler_GetByID_NotFound(t *testing.T) {
	svc := &fakeUserService{
		GetByIDFn: func(context.Context, string) (user.UserResponse, error) {
			return user.UserResponse{}, usererrors.ErrUserNotFound
		},
	}

	rec, env := perform(setupRouter(svc), http.MethodGet, "/api/v1/users/6f1f0b7e-3c0a-4c1e-8d44-1f7b0e6c2a11", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", env.Error.Message)
}

func TestUserHandler_Delete(t *testing.T) {
	svc := &fakeUserService{
		DeleteFn: func(_ context.Context, id string) error {
			assert.Equal(t, "u-1", id)
			return nil
		},
	}

	rec, env := perform(setupRouter(svc), http.MethodDelete, "/api/v1/users/u-1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":true}`, string(env.Data))
}
