package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fractionalquest/fractional-quest/internal/types"
)

func f64(f float64) *float64 { return &f }

func TestNormalizeSalary(t *testing.T) {
	tests := []struct {
		name     string
		amount   *types.MonetaryAmount
		display  string
		min, max *int
		currency string
	}{
		{
			name:     "GBP range per year",
			amount:   &types.MonetaryAmount{Currency: "GBP", Value: &types.QuantitativeValue{MinValue: f64(50000), MaxValue: f64(80000), UnitText: "YEAR"}},
			display:  "£50,000-£80,000/year",
			min:      intPtr(50000),
			max:      intPtr(80000),
			currency: "GBP",
		},
		{
			name:     "EUR day rate",
			amount:   &types.MonetaryAmount{Currency: "eur", Value: &types.QuantitativeValue{MinValue: f64(800), MaxValue: f64(1000), UnitText: "DAY"}},
			display:  "€800-€1,000/day",
			min:      intPtr(800),
			max:      intPtr(1000),
			currency: "EUR",
		},
		{
			name:     "unknown currency falls back to dollar",
			amount:   &types.MonetaryAmount{Currency: "CHF", Value: &types.QuantitativeValue{MinValue: f64(120000), MaxValue: f64(150000)}},
			display:  "$120,000-$150,000",
			min:      intPtr(120000),
			max:      intPtr(150000),
			currency: "CHF",
		},
		{
			name:     "single value",
			amount:   &types.MonetaryAmount{Currency: "USD", Value: &types.QuantitativeValue{Value: f64(95.5), UnitText: "HOUR"}},
			display:  "$96/hour",
			min:      intPtr(96),
			max:      intPtr(96),
			currency: "USD",
		},
		{
			name:     "min only",
			amount:   &types.MonetaryAmount{Currency: "GBP", Value: &types.QuantitativeValue{MinValue: f64(1200000)}},
			display:  "From £1,200,000",
			min:      intPtr(1200000),
			currency: "GBP",
		},
		{
			name:    "max only without currency",
			amount:  &types.MonetaryAmount{Value: &types.QuantitativeValue{MaxValue: f64(600), UnitText: "Day"}},
			display: "Up to $600/day",
			max:     intPtr(600),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NormalizeSalary(tt.amount)

			require.NotNil(t, c.Display)
			assert.Equal(t, tt.display, *c.Display)
			assert.Equal(t, tt.min, c.Min)
			assert.Equal(t, tt.max, c.Max)
			if tt.currency == "" {
				assert.Nil(t, c.Currency)
			} else {
				require.NotNil(t, c.Currency)
				assert.Equal(t, tt.currency, *c.Currency)
			}
		})
	}
}

func TestNormalizeSalary_NoSalary(t *testing.T) {
	empty := Compensation{}

	assert.Equal(t, empty, NormalizeSalary(nil))
	assert.Equal(t, empty, NormalizeSalary(&types.MonetaryAmount{Currency: "GBP"}))
	assert.Equal(t, empty, NormalizeSalary(&types.MonetaryAmount{Currency: "GBP", Value: &types.QuantitativeValue{UnitText: "YEAR"}}))
}

func TestFormatThousands(t *testing.T) {
	tests := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		50000:    "50,000",
		1234567:  "1,234,567",
		-45000:   "-45,000",
		12345678: "12,345,678",
	}
	for n, expected := range tests {
		assert.Equal(t, expected, formatThousands(n))
	}
}

func intPtr(n int) *int { return &n }
