package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidMoney(t *testing.T) {
	cases := map[string]bool{
		"0":             true,
		"1500.50":       true,
		"-20.1":         true,
		"9999999999.99": true,
		"10000000000":   false,
		"1.005":         false,
		"1.500":         true,
	}
	for in, want := range cases {
		assert.Equal(t, want, ValidMoney(decimal.RequireFromString(in)), in)
	}
}

func TestMoneyString(t *testing.T) {
	assert.Nil(t, MoneyString(nil))

	d := decimal.RequireFromString("1500.5")
	assert.Equal(t, "1500.50", *MoneyString(&d))
}
