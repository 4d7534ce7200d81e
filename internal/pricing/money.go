package pricing

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundAmount rounds to the nearest whole currency unit, half away from zero.
func RoundAmount(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount).Round(0)
}

// FormatAmount renders a rounded amount with thousands separators, e.g. "$ 10,800".
func FormatAmount(amount float64, currencySymbol string) string {
	rounded := RoundAmount(amount)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}

	// no int64 conversion, totals may exceed its range
	digits := rounded.Abs().String()
	var sb strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(d)
	}

	if currencySymbol == "" {
		return sign + sb.String()
	}
	return currencySymbol + " " + sign + sb.String()
}

// ParseAmount coerces a numeric form field. Malformed input keeps the fallback
// (zero or the previous valid value) instead of failing.
func ParseAmount(text string, fallback float64) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
