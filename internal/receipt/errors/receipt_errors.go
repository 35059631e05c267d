package receipterrors

import (
	"net/http"

	"github.com/miguelF21/Facepay/internal/shared/apperror"
)

var (
	ErrPayReceiptNotFound = apperror.New(
		apperror.CodeNotFound,
		"Pay receipt not found",
		http.StatusNotFound,
	)
	ErrInvalidPayReceiptID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid pay receipt ID",
		http.StatusBadRequest,
	)
)
