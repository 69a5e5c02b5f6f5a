package cart

import (
	"testing"

	"github.com/arjune867/kriukesnack/models"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "HEMAT10", NormalizeCode("hemat10"))
	assert.Equal(t, "HEMAT10", NormalizeCode("  Hemat10 "))
	assert.Equal(t, "", NormalizeCode("   "))
}

func TestPriceAfterDiscount_NilDiscount(t *testing.T) {
	assert.Equal(t, int64(25000), PriceAfterDiscount(25000, nil))
	assert.Equal(t, int64(0), PriceAfterDiscount(0, nil))
}

func TestPriceAfterDiscount_Percentage(t *testing.T) {
	tests := []struct {
		name  string
		base  int64
		value float64
		want  int64
	}{
		{"ten percent off", 25000, 10, 22500},
		{"full discount", 25000, 100, 0},
		{"over one hundred percent floors at zero", 25000, 150, 0},
		{"zero percent", 25000, 0, 25000},
		{"fractional percent rounds", 1000, 12.5, 875},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &models.DiscountCode{Type: models.DiscountPercentage, Value: tt.value}
			got := PriceAfterDiscount(tt.base, d)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, int64(0))
		})
	}
}

func TestPriceAfterDiscount_Fixed(t *testing.T) {
	tests := []struct {
		name  string
		base  int64
		value float64
		want  int64
	}{
		{"partial deduction", 25000, 5000, 20000},
		{"deduction equal to base", 5000, 5000, 0},
		{"deduction above base floors at zero", 3000, 5000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &models.DiscountCode{Type: models.DiscountFixed, Value: tt.value}
			assert.Equal(t, tt.want, PriceAfterDiscount(tt.base, d))
		})
	}
}

func TestPriceAfterDiscount_UnknownTypeLeavesPriceUnchanged(t *testing.T) {
	d := &models.DiscountCode{Type: "bogo", Value: 50}
	assert.Equal(t, int64(25000), PriceAfterDiscount(25000, d))
}

func TestDiscountAmount(t *testing.T) {
	percentage := &models.DiscountCode{Type: models.DiscountPercentage, Value: 10}
	fixed := &models.DiscountCode{Type: models.DiscountFixed, Value: 5000}

	assert.Equal(t, int64(0), DiscountAmount(45000, nil))
	assert.Equal(t, int64(4500), DiscountAmount(45000, percentage))
	assert.Equal(t, int64(5000), DiscountAmount(45000, fixed))
	// A fixed discount above the subtotal keeps its face value; Total clamps.
	assert.Equal(t, int64(5000), DiscountAmount(3000, fixed))
}

func TestTotal_ClampsAtZero(t *testing.T) {
	assert.Equal(t, int64(40000), Total(45000, 5000))
	assert.Equal(t, int64(0), Total(3000, 5000))
	assert.Equal(t, int64(45000), Total(45000, 0))
}

func TestTotal_NeverExceedsSubtotal(t *testing.T) {
	subtotals := []int64{0, 1, 2999, 45000, 1000000}
	discounts := []*models.DiscountCode{
		nil,
		{Type: models.DiscountPercentage, Value: 10},
		{Type: models.DiscountPercentage, Value: 100},
		{Type: models.DiscountPercentage, Value: 250},
		{Type: models.DiscountFixed, Value: 5000},
		{Type: models.DiscountFixed, Value: 5000000},
	}
	for _, subtotal := range subtotals {
		for _, d := range discounts {
			amount := DiscountAmount(subtotal, d)
			total := Total(subtotal, amount)
			assert.GreaterOrEqual(t, amount, int64(0))
			assert.GreaterOrEqual(t, total, int64(0))
			assert.LessOrEqual(t, total, subtotal)
		}
	}
}
