// Package cart implements the storefront cart: discount pricing, line-item
// repricing, totals, and reconciliation of persisted carts against the live
// catalog. It holds no storage or HTTP code; collaborators are injected.
package cart

import (
	"math"
	"strings"

	"github.com/arjune867/kriukesnack/models"
)

// NormalizeCode canonicalizes a discount code for storage and lookup.
// Matching is case-insensitive everywhere.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// PriceAfterDiscount applies a discount to a base unit price. A nil discount
// leaves the price unchanged. The result is never negative: a percentage
// above 100 or a fixed deduction above the base price floors at zero.
func PriceAfterDiscount(base int64, d *models.DiscountCode) int64 {
	if d == nil {
		return base
	}
	switch d.Type {
	case models.DiscountPercentage:
		discounted := int64(math.Round(float64(base) * (1 - d.Value/100)))
		if discounted < 0 {
			return 0
		}
		return discounted
	case models.DiscountFixed:
		discounted := base - int64(math.Round(d.Value))
		if discounted < 0 {
			return 0
		}
		return discounted
	default:
		return base
	}
}

// DiscountAmount computes the cart-level deduction an applied discount takes
// off the subtotal. Never negative; a fixed amount may exceed the subtotal,
// in which case Total clamps at zero.
func DiscountAmount(subtotal int64, d *models.DiscountCode) int64 {
	if d == nil {
		return 0
	}
	var amount int64
	switch d.Type {
	case models.DiscountPercentage:
		amount = int64(math.Round(float64(subtotal) * d.Value / 100))
	case models.DiscountFixed:
		amount = int64(math.Round(d.Value))
	}
	if amount < 0 {
		return 0
	}
	return amount
}

// Total is the amount due after the cart-level discount, clamped at zero.
func Total(subtotal, discountAmount int64) int64 {
	total := subtotal - discountAmount
	if total < 0 {
		return 0
	}
	return total
}
