package recognitionerrors

import (
	"net/http"

	"github.com/miguelF21/Facepay/internal/shared/apperror"
)

var (
	ErrRecognitionResultNotFound = apperror.New(
		apperror.CodeNotFound,
		"Recognition result not found",
		http.StatusNotFound,
	)
	ErrInvalidRecognitionResultID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid recognition result ID",
		http.StatusBadRequest,
	)
)
