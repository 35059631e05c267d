package apperror

import "net/http"

var (
	ErrInternal = New(
		CodeInternalError,
		"Internal server error",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)

	// ErrInvalidReference reports a write naming a related record that
	// does not exist.
	ErrInvalidReference = New(
		CodeInvalidInput,
		"Referenced record does not exist",
		http.StatusBadRequest,
	)
)
