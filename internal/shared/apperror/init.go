package apperror

import (
	"reflect"
	"strings"

	"github.com/miguelF21/Facepay/internal/shared/types"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Init configures gin's validator: field names in errors follow the json
// tags and optional request fields are validated by their inner value.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		types.RegisterValidation(v)
	}
}
