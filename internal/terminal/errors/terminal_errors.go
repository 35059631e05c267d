package terminalerrors

import (
	"net/http"

	"github.com/miguelF21/Facepay/internal/shared/apperror"
)

var (
	ErrTerminalNotFound = apperror.New(
		apperror.CodeNotFound,
		"Terminal not found",
		http.StatusNotFound,
	)
	ErrInvalidTerminalID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid terminal ID",
		http.StatusBadRequest,
	)
)
