package middleware

import (
	"context"

	autherrors "github.com/miguelF21/Facepay/internal/auth/errors"
	"github.com/miguelF21/Facepay/internal/auth/jwks"
	"github.com/miguelF21/Facepay/internal/metrics"
	"github.com/miguelF21/Facepay/internal/shared/apperror"
	"github.com/miguelF21/Facepay/internal/shared/contextutil"
	"github.com/miguelF21/Facepay/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const identityKey = "auth_identity"

// Authenticator resolves the Authorization header into an identity. A nil
// identity with a nil error means the request is anonymous.
type Authenticator interface {
	Authenticate(ctx context.Context, authorization string) (*jwks.Identity, error)
}

// Authenticate verifies the bearer token when one is sent. Anonymous
// requests pass through; RequireIdentity decides whether that is allowed.
func Authenticate(authn Authenticator, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		identity, err := authn.Authenticate(ctx, c.GetHeader("Authorization"))
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			m.IncAuthFailure(httpErr.Code)
			contextutil.GetLogger(ctx, nil).Warn("authentication failed", zap.String("reason", httpErr.Code))
			abortWithError(c, err)
			return
		}
		if identity == nil {
			c.Next()
			return
		}

		c.Set(identityKey, identity)
		c.Set("user_id", identity.Subject)

		ctx = contextutil.WithActor(ctx, contextutil.Actor{Subject: identity.Subject, Email: identity.Email})
		ctx = contextutil.WithLogger(ctx, contextutil.GetLogger(ctx, nil).With(
			zap.String("sub", identity.Subject),
		))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireIdentity rejects anonymous requests.
func RequireIdentity(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := IdentityFrom(c); !ok {
			m.IncAuthFailure(autherrors.ErrUnauthenticated.Code)
			abortWithError(c, autherrors.ErrUnauthenticated)
			return
		}
		c.Next()
	}
}

// IdentityFrom returns the identity stored by Authenticate.
func IdentityFrom(c *gin.Context) (*jwks.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*jwks.Identity)
	return identity, ok && identity != nil
}

func abortWithError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
	c.Abort()
}
