package types

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	// amounts are numeric(12,2) columns
	moneyScale     = 2
	moneyIntDigits = 10
)

var moneyLimit = decimal.New(1, moneyIntDigits)

type validationValuer interface {
	validationValue() any
}

// RegisterValidation lets binding tags such as `omitempty,max=64` apply to
// the value wrapped by a Nullable field, and adds the `money` tag.
func RegisterValidation(v *validator.Validate) {
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		vv, ok := field.Interface().(validationValuer)
		if !ok {
			return nil
		}
		// decimals are validated in their string form
		if d, ok := vv.validationValue().(decimal.Decimal); ok {
			return d.String()
		}
		return vv.validationValue()
	},
		Nullable[string]{},
		Nullable[bool]{},
		Nullable[float64]{},
		Nullable[int64]{},
		NullableUUID{},
		Nullable[Date]{},
		Nullable[ClockTime]{},
		Nullable[JSON]{},
		Nullable[decimal.Decimal]{},
	)
	_ = v.RegisterValidation("money", validateMoney)
}

func validateMoney(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return ValidMoney(d)
}

// ValidMoney reports whether d fits a numeric(12,2) column.
func ValidMoney(d decimal.Decimal) bool {
	if d.Exponent() < -moneyScale && !d.Equal(d.Round(moneyScale)) {
		return false
	}
	return d.Abs().LessThan(moneyLimit)
}

// MoneyString renders an amount with two decimals, or nil.
func MoneyString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(moneyScale)
	return &s
}
