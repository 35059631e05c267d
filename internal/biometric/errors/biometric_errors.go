package biometricerrors

import (
	"net/http"

	"github.com/miguelF21/Facepay/internal/shared/apperror"
)

var (
	ErrBiometricDataNotFound = apperror.New(
		apperror.CodeNotFound,
		"Biometric data not found",
		http.StatusNotFound,
	)
	ErrInvalidBiometricDataID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid biometric data ID",
		http.StatusBadRequest,
	)
)
