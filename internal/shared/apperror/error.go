package apperror

// AppError is an error with a stable machine code and the HTTP status it
// is reported with. Package level AppErrors are sentinels compared with
// errors.Is.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
}

func (e *AppError) Error() string {
	return e.Message
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}
