package authtokenerrors

import (
	"net/http"

	"github.com/miguelF21/Facepay/internal/shared/apperror"
)

var (
	ErrAuthTokenNotFound = apperror.New(
		apperror.CodeNotFound,
		"Auth token not found",
		http.StatusNotFound,
	)
	ErrTokenAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Token already exists",
		http.StatusConflict,
	)
)
