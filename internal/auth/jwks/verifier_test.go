package jwks_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	autherrors "github.com/miguelF21/Facepay/internal/auth/errors"
	"github.com/miguelF21/Facepay/internal/auth/jwks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKID      = "test-key"
	testAudience = "https://api.facepay.test"
)

type provider struct {
	server   *httptest.Server
	key      *rsa.PrivateKey
	hits     atomic.Int32
	status   int
	body     string
	verifier *jwks.Verifier
	issuer   string
}

func newProvider(t *testing.T) *provider {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	p := &provider{key: key, status: http.StatusOK}
	p.server = httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.hits.Add(1)
		if r.URL.Path != "/.well-known/jwks.json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(p.status)
		if p.body != "" {
			_, _ = w.Write([]byte(p.body))
			return
		}
		_ = json.NewEncoder(w).Encode(jwks.KeySet{Keys: []jwks.JSONWebKey{publicJWK(testKID, &key.PublicKey)}})
	}))
	t.Cleanup(p.server.Close)

	domain := strings.TrimPrefix(p.server.URL, "https://")
	p.issuer = "https://" + domain + "/"
	p.verifier = jwks.NewVerifier(jwks.Config{
		Domain:   domain,
		Audience: testAudience,
	}, p.server.Client())

	return p
}

func publicJWK(kid string, pub *rsa.PublicKey) jwks.JSONWebKey {
	return jwks.JSONWebKey{
		Kty: "RSA",
		Kid: kid,
		Use: "sig",
		Alg: "RS256",
		N:   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
		E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
	}
}

func (p *provider) claims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   "auth0|user-1",
		"email": "ana@facepay.test",
		"aud":   testAudience,
		"iss":   p.issuer,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
}

func sign(t *testing.T, key *rsa.PrivateKey, kid string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if kid != "" {
		token.Header["kid"] = kid
	}
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestVerifier_AnonymousWhenHeaderMissing(t *testing.T) {
	p := newProvider(t)

	identity, err := p.verifier.Authenticate(context.Background(), "")

	assert.NoError(t, err)
	assert.Nil(t, identity)
	assert.Zero(t, p.hits.Load())
}

func TestVerifier_MalformedHeader(t *testing.T) {
	p := newProvider(t)

	for _, header := range []string{"Token abc", "Bearer", "Bearer a b", "Basic dXNlcjpwYXNz"} {
		identity, err := p.verifier.Authenticate(context.Background(), header)
		assert.Nil(t, identity, header)
		assert.ErrorIs(t, err, autherrors.ErrMalformedHeader, header)
	}
	assert.Zero(t, p.hits.Load())
}

func TestVerifier_ValidToken(t *testing.T) {
	p := newProvider(t)
	raw := sign(t, p.key, testKID, p.claims())

	identity, err := p.verifier.Authenticate(context.Background(), "bearer "+raw)

	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, "auth0|user-1", identity.Subject)
	assert.Equal(t, "ana@facepay.test", identity.Email)
	assert.Equal(t, raw, identity.Token)
	assert.Equal(t, testAudience, identity.Claims["aud"])
}

func TestVerifier_FetchesKeySetOnEveryRequest(t *testing.T) {
	p := newProvider(t)
	raw := sign(t, p.key, testKID, p.claims())

	for i := 0; i < 3; i++ {
		_, err := p.verifier.Authenticate(context.Background(), "Bearer "+raw)
		require.NoError(t, err)
	}

	assert.Equal(t, int32(3), p.hits.Load())
}

func TestVerifier_KeySetUnavailable(t *testing.T) {
	p := newProvider(t)
	raw := sign(t, p.key, testKID, p.claims())

	p.status = http.StatusInternalServerError
	p.body = "boom"
	_, err := p.verifier.Authenticate(context.Background(), "Bearer "+raw)
	assert.ErrorIs(t, err, autherrors.ErrKeySetUnavailable)

	p.status = http.StatusOK
	p.body = "{not json"
	_, err = p.verifier.Authenticate(context.Background(), "Bearer "+raw)
	assert.ErrorIs(t, err, autherrors.ErrKeySetUnavailable)
}

func TestVerifier_UnreachableKeySet(t *testing.T) {
	v := jwks.NewVerifier(jwks.Config{Domain: "127.0.0.1:1", Audience: testAudience, Timeout: time.Second}, nil)

	_, err := v.Authenticate(context.Background(), "Bearer abc.def.ghi")

	assert.ErrorIs(t, err, autherrors.ErrKeySetUnavailable)
}

func TestVerifier_UnparsableToken(t *testing.T) {
	p := newProvider(t)

	_, err := p.verifier.Authenticate(context.Background(), "Bearer not-a-jwt")

	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}

func TestVerifier_SigningKeyNotFound(t *testing.T) {
	p := newProvider(t)

	_, err := p.verifier.Authenticate(context.Background(), "Bearer "+sign(t, p.key, "rotated", p.claims()))
	assert.ErrorIs(t, err, autherrors.ErrSigningKeyNotFound)

	_, err = p.verifier.Authenticate(context.Background(), "Bearer "+sign(t, p.key, "", p.claims()))
	assert.ErrorIs(t, err, autherrors.ErrSigningKeyNotFound)
}

func TestVerifier_ExpiredToken(t *testing.T) {
	p := newProvider(t)
	claims := p.claims()
	claims["exp"] = time.Now().Add(-time.Minute).Unix()

	_, err := p.verifier.Authenticate(context.Background(), "Bearer "+sign(t, p.key, testKID, claims))

	assert.ErrorIs(t, err, autherrors.ErrTokenExpired)
}

func TestVerifier_WrongAudience(t *testing.T) {
	p := newProvider(t)
	claims := p.claims()
	claims["aud"] = "https://someone-else"

	_, err := p.verifier.Authenticate(context.Background(), "Bearer "+sign(t, p.key, testKID, claims))

	assert.ErrorIs(t, err, autherrors.ErrInvalidAudience)
}

func TestVerifier_WrongIssuer(t *testing.T) {
	p := newProvider(t)
	claims := p.claims()
	claims["iss"] = "https://evil.example/"

	_, err := p.verifier.Authenticate(context.Background(), "Bearer "+sign(t, p.key, testKID, claims))

	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}

func TestVerifier_BadSignature(t *testing.T) {
	p := newProvider(t)
	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	_, err = p.verifier.Authenticate(context.Background(), "Bearer "+sign(t, other, testKID, p.claims()))

	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}

func TestVerifier_RejectsHMACToken(t *testing.T) {
	p := newProvider(t)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, p.claims())
	token.Header["kid"] = testKID
	raw, err := token.SignedString([]byte("shared-secret"))
	require.NoError(t, err)

	_, err = p.verifier.Authenticate(context.Background(), "Bearer "+raw)

	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}

func TestJSONWebKey_RSAPublicKey(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	pub, err := publicJWK("k", &key.PublicKey).RSAPublicKey()
	require.NoError(t, err)
	assert.True(t, key.PublicKey.Equal(pub))

	_, err = jwks.JSONWebKey{Kty: "EC", N: "x", E: "AQAB"}.RSAPublicKey()
	assert.Error(t, err)

	_, err = jwks.JSONWebKey{Kty: "RSA", N: "***", E: "AQAB"}.RSAPublicKey()
	assert.Error(t, err)
}

func TestVerifier_JWKSURL(t *testing.T) {
	v := jwks.NewVerifier(jwks.Config{Domain: "https://tenant.auth0.com/"}, nil)

	assert.Equal(t, "https://tenant.auth0.com/.well-known/jwks.json", v.JWKSURL())
}
