package sysconfigerrors

import (
	"net/http"

	"github.com/miguelF21/Facepay/internal/shared/apperror"
)

var (
	ErrSystemConfigNotFound = apperror.New(
		apperror.CodeNotFound,
		"System config not found",
		http.StatusNotFound,
	)
	ErrInvalidSystemConfigID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid system config ID",
		http.StatusBadRequest,
	)
)
