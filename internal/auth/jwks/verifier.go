package jwks

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	autherrors "github.com/miguelF21/Facepay/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const wellKnownPath = "/.well-known/jwks.json"

// Identity is the authenticated caller: the verified claim set and the raw
// bearer token.
type Identity struct {
	Subject string
	Email   string
	Claims  jwt.MapClaims
	Token   string
}

type Config struct {
	Domain   string
	Audience string
	Issuer   string
	Timeout  time.Duration
}

// Verifier validates RS256 bearer tokens against the identity provider's
// published key set.
type Verifier struct {
	jwksURL  string
	audience string
	issuer   string
	client   *http.Client
	logger   *zap.Logger
}

// NewVerifier builds a verifier for cfg. A nil client gets one with
// cfg.Timeout.
func NewVerifier(cfg Config, client *http.Client, logger ...*zap.Logger) *Verifier {
	l := zap.L().Named("auth.jwks")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.jwks")
	}
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	domain := strings.TrimSuffix(strings.TrimPrefix(cfg.Domain, "https://"), "/")
	issuer := cfg.Issuer
	if issuer == "" {
		issuer = "https://" + domain + "/"
	}

	return &Verifier{
		jwksURL:  "https://" + domain + wellKnownPath,
		audience: cfg.Audience,
		issuer:   issuer,
		client:   client,
		logger:   l,
	}
}

// JWKSURL is the key set location derived from the configured domain.
func (v *Verifier) JWKSURL() string {
	return v.jwksURL
}

// Authenticate checks the Authorization header value. An empty header is
// anonymous and returns (nil, nil).
func (v *Verifier) Authenticate(ctx context.Context, authorization string) (*Identity, error) {
	authorization = strings.TrimSpace(authorization)
	if authorization == "" {
		return nil, nil
	}

	parts := strings.Fields(authorization)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, autherrors.ErrMalformedHeader
	}
	raw := parts[1]

	keySet, err := FetchKeySet(ctx, v.client, v.jwksURL)
	if err != nil {
		v.logger.Warn("fetch jwks failed", zap.String("url", v.jwksURL), zap.Error(err))
		return nil, autherrors.ErrKeySetUnavailable
	}

	unverified, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return nil, autherrors.ErrInvalidToken
	}
	kid, _ := unverified.Header["kid"].(string)

	jwk, ok := keySet.Find(kid)
	if !ok {
		v.logger.Warn("no signing key for token", zap.String("kid", kid))
		return nil, autherrors.ErrSigningKeyNotFound
	}
	publicKey, err := jwk.RSAPublicKey()
	if err != nil {
		v.logger.Warn("unusable signing key", zap.String("kid", kid), zap.Error(err))
		return nil, autherrors.ErrSigningKeyNotFound
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return publicKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithAudience(v.audience),
		jwt.WithIssuer(v.issuer),
	)
	if err != nil {
		return nil, mapValidationError(err)
	}

	subject, _ := claims.GetSubject()
	email, _ := claims["email"].(string)

	return &Identity{
		Subject: subject,
		Email:   email,
		Claims:  claims,
		Token:   raw,
	}, nil
}

func mapValidationError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return autherrors.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return autherrors.ErrInvalidAudience
	default:
		return autherrors.ErrInvalidToken
	}
}
