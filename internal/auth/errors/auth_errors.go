package autherrors

import (
	"net/http"

	"github.com/miguelF21/Facepay/internal/shared/apperror"
)

const (
	CodeMalformedHeader    = "MALFORMED_AUTH_HEADER"
	CodeKeySetUnavailable  = "JWKS_UNAVAILABLE"
	CodeSigningKeyNotFound = "SIGNING_KEY_NOT_FOUND"
	CodeTokenExpired       = "TOKEN_EXPIRED"
	CodeInvalidAudience    = "INVALID_AUDIENCE"
	CodeInvalidToken       = "INVALID_TOKEN"
)

var (
	ErrUnauthenticated = apperror.ErrUnauthorized

	ErrMalformedHeader = apperror.New(
		CodeMalformedHeader,
		"malformed authorization header",
		http.StatusUnauthorized,
	)
	ErrKeySetUnavailable = apperror.New(
		CodeKeySetUnavailable,
		"signing key set unavailable",
		http.StatusUnauthorized,
	)
	ErrSigningKeyNotFound = apperror.New(
		CodeSigningKeyNotFound,
		"signing key not found",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		CodeTokenExpired,
		"token expired",
		http.StatusUnauthorized,
	)
	ErrInvalidAudience = apperror.New(
		CodeInvalidAudience,
		"invalid audience",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		CodeInvalidToken,
		"invalid token",
		http.StatusUnauthorized,
	)
)
