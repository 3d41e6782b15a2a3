package flooring

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

// customerNameRE is the allowed customer name charset: alphanumerics,
// spaces, commas, periods and apostrophes.
var customerNameRE = regexp.MustCompile(`^[A-Za-z0-9,.' ]+$`)

// MinArea is the smallest area (in square feet) an order may carry.
var MinArea = decimal.NewFromInt(100)

// ValidateCustomerName checks that a customer name is non-empty and uses
// only the allowed charset.
func ValidateCustomerName(name string) error {
	if name == "" {
		return &ValidationError{Field: "customer name", Msg: "must not be empty"}
	}
	if !customerNameRE.MatchString(name) {
		return &ValidationError{Field: "customer name", Msg: fmt.Sprintf("%q contains disallowed characters", name)}
	}
	return nil
}

// ValidateArea checks the minimum order area.
func ValidateArea(area decimal.Decimal) error {
	if area.LessThan(MinArea) {
		return &ValidationError{Field: "area", Msg: fmt.Sprintf("%s sqft is below the minimum of %s sqft", area, MinArea)}
	}
	return nil
}
