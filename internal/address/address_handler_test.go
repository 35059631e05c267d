package address_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/miguelF21/Facepay/internal/address"
	addresserrors "github.com/miguelF21/Facepay/internal/address/errors"
	"github.com/miguelF21/Facepay/internal/shared/apperror"
	"github.com/miguelF21/Facepay/internal/shared/listquery"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAddressService struct {
	GetAllFn  func(ctx context.Context, q listquery.Query) ([]address.AddressResponse, int64, error)
	GetByIDFn func(ctx context.Context, id string) (address.AddressResponse, error)
	CreateFn  func(ctx context.Context, req address.AddressRequest) (address.AddressResponse, error)
	UpdateFn  func(ctx context.Context, id string, req address.AddressRequest) (address.AddressResponse, error)
	DeleteFn  func(ctx context.Context, id string) error
}

func (f *fakeAddressService) GetAll(ctx context.Context, q listquery.Query) ([]address.AddressResponse, int64, error) {
	return f.GetAllFn(ctx, q)
}

func (f *fakeAddressService) GetByID(ctx context.Context, id string) (address.AddressResponse, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *fakeAddressService) Create(ctx context.Context, req address.AddressRequest) (address.AddressResponse, error) {
	return f.CreateFn(ctx, req)
}

func (f *fakeAddressService) Update(ctx context.Context, id string, req address.AddressRequest) (address.AddressResponse, error) {
	return f.UpdateFn(ctx, id, req)
}

func (f *fakeAddressService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func setupRouter(svc address.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	address.RegisterRoutes(r.Group("/api/v1"), address.NewHandler(svc, zap.NewNop()))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAddressHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeAddressService{
			CreateFn: func(_ context.Context, req address.AddressRequest) (address.AddressResponse, error) {
				require.NotNil(t, req.City.Value)
				assert.Equal(t, "Bogota", *req.City.Value)
				assert.False(t, req.Street.Valid)
				return address.AddressResponse{ID: "a-1", City: req.City.Value}, nil
			},
		}

		rec := do(setupRouter(svc), http.MethodPost, "/api/v1/addresses", `{"city":"Bogota"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"city":"Bogota"`)
	})

	t.Run("postal code too long", func(t *testing.T) {
		rec := do(setupRouter(&fakeAddressService{}), http.MethodPost, "/api/v1/addresses",
			`{"postal_code":"12345678901234567"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var body struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Postal Code is invalid", body.Error.Message)
	})
}

func TestAddressHandler_PatchAndPutShareUpdate(t *testing.T) {
	calls := 0
	svc := &fakeAddressService{
		UpdateFn: func(_ context.Context, id string, req address.AddressRequest) (address.AddressResponse, error) {
			calls++
			assert.Equal(t, "a-1", id)
			return address.AddressResponse{ID: id}, nil
		},
	}
	r := setupRouter(svc)

	assert.Equal(t, http.StatusOK, do(r, http.MethodPut, "/api/v1/addresses/a-1", `{"state":"Cundinamarca"}`).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodPatch, "/api/v1/addresses/a-1", `{"state":null}`).Code)
	assert.Equal(t, 2, calls)
}

func TestAddressHandler_GetAllFilterAndNotFound(t *testing.T) {
	svc := &fakeAddressService{
		GetAllFn: func(_ context.Context, q listquery.Query) ([]address.AddressResponse, int64, error) {
			assert.Equal(t, 1, q.Page)
			return []address.AddressResponse{}, 0, nil
		},
		GetByIDFn: func(context.Context, string) (address.AddressResponse, error) {
			return address.AddressResponse{}, addresserrors.ErrAddressNotFound
		},
	}
	r := setupRouter(svc)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/v1/addresses?city=Bogota", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/v1/addresses/missing", "").Code)
}
