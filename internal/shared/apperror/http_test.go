package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"testing"

	"github.com/miguelF21/Facepay/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTTP(t *testing.T) {
	t.Run("wrapped app error keeps its status", func(t *testing.T) {
		err := fmt.Errorf("create concept: %w", apperror.ErrInvalidReference)

		got := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusBadRequest, got.Status)
		assert.Equal(t, apperror.CodeInvalidInput, got.Code)
		assert.Equal(t, "Referenced record does not exist", got.Message)
	})

	t.Run("unknown error is internal", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("connection reset"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.NotContains(t, got.Message, "connection reset")
	})
}

type payrollBody struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Note       string `json:"note" validate:"max=3"`
}

func TestMapValidationError(t *testing.T) {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string { return fld.Tag.Get("json") })

	err := v.Struct(payrollBody{Note: "too long"})
	require.Error(t, err)

	mapped := apperror.MapValidationError(err)

	var verr *apperror.ValidationError
	require.ErrorAs(t, mapped, &verr)
	assert.Equal(t, "Employee Id is required", verr.Message)
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, apperror.FieldError{Field: "employee_id", Message: "is required"}, verr.Fields[0])
	assert.Equal(t, "must be at most 3 characters", verr.Fields[1].Message)

	got := apperror.ToHTTP(mapped)
	assert.Equal(t, http.StatusBadRequest, got.Status)
	assert.Equal(t, verr.Fields, got.Details)

	assert.Same(t, apperror.ErrInvalidInput, apperror.MapValidationError(errors.New("EOF")))
}
