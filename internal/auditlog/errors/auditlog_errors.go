package auditlogerrors

import (
	"net/http"

	"github.com/miguelF21/Facepay/internal/shared/apperror"
)

var (
	ErrAuditLogNotFound = apperror.New(
		apperror.CodeNotFound,
		"Audit log not found",
		http.StatusNotFound,
	)
	ErrInvalidAuditLogID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid audit log ID",
		http.StatusBadRequest,
	)
)
