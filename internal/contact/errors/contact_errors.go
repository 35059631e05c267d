package contacterrors

import (
	"net/http"

	"github.com/miguelF21/Facepay/internal/shared/apperror"
)

var (
	ErrContactNotFound = apperror.New(
		apperror.CodeNotFound,
		"Contact not found",
		http.StatusNotFound,
	)
	ErrInvalidContactID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid contact ID",
		http.StatusBadRequest,
	)
)
