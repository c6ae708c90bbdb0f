// Package money handles amounts as integer minor units plus a currency code.
// Formatting into a symbol-prefixed display string happens only at the
// presentation edge; all arithmetic stays numeric.
package money

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultCurrency = "INR"

var symbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// Format renders minor units as a display string, e.g. Format("INR", 249900)
// returns "₹2,499". Whole amounts drop the fractional part.
func Format(currency string, minor int64) string {
	symbol, ok := symbols[currency]
	if !ok {
		symbol = currency + " "
	}

	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}

	units := minor / 100
	cents := minor % 100

	s := groupThousands(strconv.FormatInt(units, 10))
	if cents != 0 {
		s = fmt.Sprintf("%s.%02d", s, cents)
	}
	return sign + symbol + s
}

// FormatDecimal renders a major-unit decimal amount, e.g. an order total
// stored as DECIMAL(10,2).
func FormatDecimal(currency string, amount decimal.Decimal) string {
	return Format(currency, ToMinor(amount))
}

// FromMinor converts minor units to a major-unit decimal.
func FromMinor(minor int64) decimal.Decimal {
	return decimal.NewFromInt(minor).Div(decimal.NewFromInt(100))
}

// ToMinor converts a major-unit decimal to minor units, rounding to the cent.
func ToMinor(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// Parse reads a display string back into minor units, accepting any of the
// known symbols, a currency-code prefix, and thousands separators. Older
// catalog clients still send prices in this form.
func Parse(s string) (int64, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	for _, symbol := range symbols {
		s = strings.TrimPrefix(s, symbol)
	}
	s = strings.TrimLeft(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	minor := ToMinor(amount)
	if neg {
		minor = -minor
	}
	return minor, nil
}

// DiscountPercent computes the rounded percentage discount of price against
// originalPrice, both in minor units. Returns 0 unless originalPrice is
// greater than price.
func DiscountPercent(originalPriceMinor, priceMinor int64) int64 {
	if originalPriceMinor <= 0 || priceMinor < 0 || originalPriceMinor <= priceMinor {
		return 0
	}
	return decimal.NewFromInt(originalPriceMinor - priceMinor).
		Div(decimal.NewFromInt(originalPriceMinor)).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
