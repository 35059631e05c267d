package reporterrors

import (
	"net/http"

	"github.com/miguelF21/Facepay/internal/shared/apperror"
)

var (
	ErrReportNotFound = apperror.New(
		apperror.CodeNotFound,
		"Report not found",
		http.StatusNotFound,
	)
	ErrInvalidReportID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid report ID",
		http.StatusBadRequest,
	)
	ErrAdminRoleRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Admin must be a user with the admin role",
		http.StatusBadRequest,
	)
)
