package accessattempterrors

import (
	"net/http"

	"github.com/miguelF21/Facepay/internal/shared/apperror"
)

var (
	ErrAccessAttemptNotFound = apperror.New(
		apperror.CodeNotFound,
		"Access attempt not found",
		http.StatusNotFound,
	)
	ErrInvalidAccessAttemptID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid access attempt ID",
		http.StatusBadRequest,
	)
)
