package finance

import (
	"fmt"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
)

// BaseHourlyRateBRL is the agency's standard hourly rate.
const BaseHourlyRateBRL = 150.00

// CalculateProposalPrice prices an engagement from estimated effort,
// complexity and desired margin. The complexity level scales the base
// cost (low x1.0, medium x1.5, high x2.0), then the margin is applied on
// top of the adjusted cost.
func CalculateProposalPrice(effortHours float64, level domain.Complexity, marginPercentage, baseHourlyRate float64) (*domain.PricingQuote, error) {
	if effortHours <= 0 {
		return nil, &domain.ErrValidation{
			Field:   "estimated_effort_hours",
			Message: "estimated effort must be greater than zero",
		}
	}
	if marginPercentage < 0 {
		return nil, &domain.ErrValidation{
			Field:   "desired_margin_percentage",
			Message: "desired margin cannot be negative",
		}
	}
	if baseHourlyRate <= 0 {
		return nil, &domain.ErrValidation{
			Field:   "base_hourly_rate",
			Message: "base hourly rate must be greater than zero",
		}
	}

	multiplier := level.Multiplier()
	baseCost := effortHours * baseHourlyRate
	adjustedCost := baseCost * multiplier
	finalPrice := adjustedCost * (1 + marginPercentage/100)

	formatted := FormatBRL(finalPrice)

	return &domain.PricingQuote{
		EffortHours:          effortHours,
		ComplexityLevel:      level,
		ComplexityMultiplier: multiplier,
		BaseHourlyRate:       baseHourlyRate,
		MarginPercentage:     marginPercentage,
		FinalPrice:           round2(finalPrice),
		FormattedPrice:       formatted,
		Message:              fmt.Sprintf("O preço calculado para a proposta é %s.", formatted),
	}, nil
}
