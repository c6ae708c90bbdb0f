package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		currency string
		minor    int64
		want     string
	}{
		{"whole rupees grouped", "INR", 249900, "₹2,499"},
		{"large amount", "INR", 1299900, "₹12,999"},
		{"with cents", "USD", 12345, "$123.45"},
		{"under a thousand", "INR", 99900, "₹999"},
		{"zero", "INR", 0, "₹0"},
		{"negative", "USD", -150, "-$1.50"},
		{"million grouping", "INR", 123456700, "₹1,234,567"},
		{"unknown currency falls back to code", "JPY", 50000, "JPY 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.currency, tt.minor))
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"₹2,499", 249900},
		{"$123.45", 12345},
		{"JPY 500", 50000},
		{"2499", 249900},
		{"-$1.50", -150},
		{" ₹1,234,567 ", 123456700},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Parse("not a price")
	assert.Error(t, err)
}

func TestMinorConversions(t *testing.T) {
	assert.True(t, decimal.NewFromFloat(24.99).Equal(FromMinor(2499)))
	assert.Equal(t, int64(2499), ToMinor(decimal.NewFromFloat(24.99)))
	assert.Equal(t, int64(2500), ToMinor(decimal.NewFromFloat(24.999)))
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "₹2,499", FormatDecimal("INR", decimal.NewFromInt(2499)))
	assert.Equal(t, "₹10.50", FormatDecimal("INR", decimal.NewFromFloat(10.5)))
}

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		name     string
		original int64
		price    int64
		want     int64
	}{
		{"roughly 29 percent", 349900, 249900, 29},
		{"half price", 200000, 100000, 50},
		{"no original price", 0, 249900, 0},
		{"original below price", 100000, 200000, 0},
		{"equal prices", 100000, 100000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DiscountPercent(tt.original, tt.price))
		})
	}
}
