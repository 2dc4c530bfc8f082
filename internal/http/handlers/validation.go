package handlers

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	maxProductNameLength     = 40
	maxQuantityPerUnitLength = 20

	// unit_price is numeric(10,2)
	unitPriceScale = 2
	maxPriceDigits = 8
)

var maxUnitPrice = decimal.RequireFromString("99999999.99")

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	name := strings.TrimSpace(p.ProductName)
	if name == "" {
		errs = append(errs, ProductValidationError{Field: "ProductName", Description: "Product name is required"})
	} else if utf8.RuneCountInString(name) > maxProductNameLength {
		errs = append(errs, ProductValidationError{Field: "ProductName", Description: "Product name cannot exceed 40 characters"})
	}
	if utf8.RuneCountInString(p.QuantityPerUnit) > maxQuantityPerUnitLength {
		errs = append(errs, ProductValidationError{Field: "QuantityPerUnit", Description: "Quantity per unit cannot exceed 20 characters"})
	}
	if p.CategoryID <= 0 {
		errs = append(errs, ProductValidationError{Field: "CategoryId", Description: "Category is required"})
	}
	if p.SupplierID <= 0 {
		errs = append(errs, ProductValidationError{Field: "SupplierId", Description: "Supplier is required"})
	}
	if p.UnitPrice.IsNegative() {
		errs = append(errs, ProductValidationError{Field: "UnitPrice", Description: "Unit price cannot be negative"})
	} else if !unitPriceFits(p.UnitPrice) {
		errs = append(errs, ProductValidationError{Field: "UnitPrice", Description: unitPriceRangeMessage})
	}
	if !inUnitsRange(p.UnitsInStock) {
		errs = append(errs, ProductValidationError{Field: "UnitsInStock", Description: "Units in stock must be between 0 and 32767"})
	}
	if !inUnitsRange(p.UnitsOnOrder) {
		errs = append(errs, ProductValidationError{Field: "UnitsOnOrder", Description: "Units on order must be between 0 and 32767"})
	}
	if !inUnitsRange(p.ReorderLevel) {
		errs = append(errs, ProductValidationError{Field: "ReorderLevel", Description: "Reorder level must be between 0 and 32767"})
	}
	return errs
}

func inUnitsRange(v int) bool {
	return v >= 0 && v <= math.MaxInt16
}

const unitPriceRangeMessage = "Unit price must be at most 99999999.99 with no more than 2 decimal places"

// priceExponentInRange rejects values whose exponent alone rules them out.
// Comparing or rounding such a value expands it to every digit.
func priceExponentInRange(d decimal.Decimal) bool {
	exp := d.Exponent()
	return exp <= maxPriceDigits && exp >= -(maxPriceDigits+unitPriceScale)
}

func unitPriceFits(d decimal.Decimal) bool {
	if !priceExponentInRange(d) {
		return false
	}
	if d.GreaterThan(maxUnitPrice) {
		return false
	}
	return d.Equal(d.Truncate(unitPriceScale))
}
