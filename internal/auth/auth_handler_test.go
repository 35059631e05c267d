package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/miguelF21/Facepay/internal/auth"
	"github.com/miguelF21/Facepay/internal/auth/jwks"
	mock_auth "github.com/miguelF21/Facepay/internal/auth/mock"
	"github.com/miguelF21/Facepay/internal/middleware"
	"github.com/miguelF21/Facepay/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type staticAuthenticator struct {
	identity *jwks.Identity
}

func (s staticAuthenticator) Authenticate(_ context.Context, authorization string) (*jwks.Identity, error) {
	if authorization == "" {
		return nil, nil
	}
	return s.identity, nil
}

func setupRouter(t *testing.T, identity *jwks.Identity) (*gin.Engine, *mock_auth.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	apperror.Init()

	svc := mock_auth.NewMockService(gomock.NewController(t))
	r := gin.New()
	api := r.Group("/api/v1", middleware.Authenticate(staticAuthenticator{identity: identity}, nil))
	auth.RegisterRoutes(api, auth.NewHandler(svc, zap.NewNop()), nil)
	return r, svc
}

func TestAuthHandler_MeRequiresIdentity(t *testing.T) {
	r, _ := setupRouter(t, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authentication is required")
}

func TestAuthHandler_Me(t *testing.T) {
	identity := &jwks.Identity{
		Subject: "auth0|42",
		Email:   "ana@facepay.test",
		Claims:  jwt.MapClaims{"sub": "auth0|42", "scope": "read:employees"},
	}
	r, svc := setupRouter(t, identity)
	svc.EXPECT().
		Me(gomock.Any(), identity).
		Return(auth.MeResponse{Subject: "auth0|42", Email: "ana@facepay.test", Claims: identity.Claims}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data auth.MeResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "auth0|42", body.Data.Subject)
	assert.Equal(t, "read:employees", body.Data.Claims["scope"])
}
