// Package finance implements the deterministic financial calculators
// behind the agency's analyses: ROI/NPV, payback period, cost reduction
// and proposal pricing. All functions are pure and reentrant; they never
// touch the network or the clock.
package finance

import (
	"math"
	"strings"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
	"github.com/shopspring/decimal"
)

// FormatBRL renders a value in Brazilian currency notation:
// thousands separated by dots, decimals by comma, e.g. "R$ 1.234.567,80".
func FormatBRL(value float64) string {
	d := decimal.NewFromFloat(value)
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + fracPart
	if neg {
		out = "R$ -" + b.String() + "," + fracPart
	}
	return out
}

// AnnualToMonthlyRate converts a compound annual rate to its monthly
// equivalent: (1+annual)^(1/12) - 1.
func AnnualToMonthlyRate(annual float64) (float64, error) {
	if annual <= -1 {
		return 0, &domain.ErrValidation{
			Field:   "discount_rate",
			Message: "annual rate must be greater than -1",
		}
	}
	return math.Pow(1+annual, 1.0/12.0) - 1, nil
}

// round2 rounds to 2 decimal places, round1 to one.
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
