package utils_test

import (
	"testing"

	"github.com/quickbill305/quickbill_backend/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"5", "5.00"},
		{"1234.5", "1,234.50"},
		{"1234567.5", "1,234,567.50"},
		{"-98765.432", "-98,765.43"},
		{"999", "999.00"},
		{"1000", "1,000.00"},
	}
	for _, tc := range cases {
		got := utils.FormatCurrency(decimal.RequireFromString(tc.in))
		assert.Equal(t, tc.want, got, "input %s", tc.in)
	}
}
