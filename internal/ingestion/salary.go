package ingestion

import (
	"math"
	"strconv"
	"strings"

	"github.com/fractionalquest/fractional-quest/internal/types"
)

// Compensation is the normalized salary of a posting. All fields are nil when the
// feed carries no usable salary.
type Compensation struct {
	Display  *string
	Min      *int
	Max      *int
	Currency *string
}

var currencySymbols = map[string]string{
	"GBP": "£",
	"EUR": "€",
	"USD": "$",
	"AUD": "A$",
	"CAD": "C$",
}

const fallbackCurrencySymbol = "$"

// NormalizeSalary derives the display string and numeric bounds from a feed salary.
//
// {currency: GBP, min: 50000, max: 80000, unit: YEAR} becomes "£50,000-£80,000/year".
func NormalizeSalary(amount *types.MonetaryAmount) Compensation {
	if amount == nil || amount.Value == nil {
		return Compensation{}
	}

	v := amount.Value
	minVal, maxVal := v.MinValue, v.MaxValue
	if minVal == nil && maxVal == nil && v.Value != nil {
		minVal, maxVal = v.Value, v.Value
	}
	if minVal == nil && maxVal == nil {
		return Compensation{}
	}

	currency := strings.ToUpper(strings.TrimSpace(amount.Currency))
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = fallbackCurrencySymbol
	}

	var c Compensation
	var display string
	switch {
	case minVal != nil && maxVal != nil:
		lo, hi := roundAmount(*minVal), roundAmount(*maxVal)
		c.Min, c.Max = &lo, &hi
		if lo == hi {
			display = symbol + formatThousands(lo)
		} else {
			display = symbol + formatThousands(lo) + "-" + symbol + formatThousands(hi)
		}
	case minVal != nil:
		lo := roundAmount(*minVal)
		c.Min = &lo
		display = "From " + symbol + formatThousands(lo)
	default:
		hi := roundAmount(*maxVal)
		c.Max = &hi
		display = "Up to " + symbol + formatThousands(hi)
	}

	if unit := strings.ToLower(strings.TrimSpace(v.UnitText)); unit != "" {
		display += "/" + unit
	}
	c.Display = &display
	if currency != "" {
		c.Currency = &currency
	}
	return c
}

func roundAmount(f float64) int {
	return int(math.Round(f))
}

// formatThousands renders n with comma thousands separators.
func formatThousands(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
