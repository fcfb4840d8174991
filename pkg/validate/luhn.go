package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn reports whether s is a valid Luhn order number.
func IsLuhn(s string) bool {
	return goluhn.Validate(s) == nil
}

// NewOrderNumber generates a Luhn-valid number for internally created
// second-payment orders.
func NewOrderNumber(length int) string {
	return goluhn.Generate(length)
}
