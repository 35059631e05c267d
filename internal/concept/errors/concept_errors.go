package concepterrors

import (
	"net/http"

	"github.com/miguelF21/Facepay/internal/shared/apperror"
)

var (
	ErrConceptNotFound = apperror.New(
		apperror.CodeNotFound,
		"Concept not found",
		http.StatusNotFound,
	)
	ErrConceptCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Concept code already exists",
		http.StatusConflict,
	)
)
