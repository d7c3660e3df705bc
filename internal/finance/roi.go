package finance

import (
	"math"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
)

// Default analysis parameters applied by callers when the request omits them.
const (
	DefaultDiscountRate    = 0.10
	DefaultDurationYears   = 3
	DefaultPaybackDiscount = 0.08
)

// CalculateROI computes return on investment over a multi-year horizon.
//
// The benefit series is adjusted to the project duration before anything
// else: missing years repeat the last known value, surplus years are
// dropped. NPV discounts each year's benefit at the annual rate; the
// simple payback interpolates linearly inside the break-even year and
// caps at the project duration when benefits never cover the cost.
func CalculateROI(projectCost float64, annualBenefits []float64, discountRate float64, durationYears int) (*domain.ROIResult, error) {
	if projectCost <= 0 {
		return nil, &domain.ErrValidation{
			Field:   "project_cost",
			Message: "project cost must be greater than zero",
		}
	}
	if len(annualBenefits) == 0 {
		return nil, &domain.ErrValidation{
			Field:   "annual_benefits",
			Message: "at least one annual benefit value is required",
		}
	}
	if durationYears < 1 {
		return nil, &domain.ErrValidation{
			Field:   "project_duration_years",
			Message: "project duration must be at least one year",
		}
	}

	// Pad or truncate without mutating the caller's slice.
	benefits := make([]float64, durationYears)
	last := annualBenefits[len(annualBenefits)-1]
	for i := 0; i < durationYears; i++ {
		if i < len(annualBenefits) {
			benefits[i] = annualBenefits[i]
		} else {
			benefits[i] = last
		}
	}

	npv := -projectCost
	cumulativeBenefits := 0.0
	discounted := make([]float64, 0, durationYears)

	for year, benefit := range benefits {
		presentValue := benefit / math.Pow(1+discountRate, float64(year+1))
		discounted = append(discounted, round2(presentValue))
		npv += presentValue
		cumulativeBenefits += benefit
	}

	roiSimple := (cumulativeBenefits - projectCost) / projectCost * 100
	roiNPV := npv / projectCost * 100

	// Simple payback with linear interpolation inside the break-even year.
	cumulative := 0.0
	paybackYears := float64(durationYears)
	for year, benefit := range benefits {
		cumulative += benefit
		if cumulative >= projectCost {
			prev := cumulative - benefit
			fraction := (projectCost - prev) / benefit
			paybackYears = float64(year) + fraction
			break
		}
	}

	// Crude IRR approximation: average annual benefit over cost. Kept as
	// an estimate field, never presented as a true internal rate of return.
	irrEstimate := (cumulativeBenefits / float64(durationYears)) / projectCost * 100

	result := &domain.ROIResult{
		ROIPercentage:         round2(roiSimple),
		ROINPVPercentage:      round2(roiNPV),
		NPV:                   round2(npv),
		PaybackYears:          round2(paybackYears),
		IRRPercentageEstimate: round2(irrEstimate),
		TotalBenefits:         round2(cumulativeBenefits),
		DiscountedBenefits:    discounted,
	}

	switch {
	case npv > 0 && roiNPV > 50:
		result.AnalysisSummary = "Projeto altamente recomendado. ROI excepcional."
	case npv > 0 && roiNPV > 25:
		result.AnalysisSummary = "Projeto recomendado. ROI forte."
	case npv > 0:
		result.AnalysisSummary = "Projeto viável. ROI positivo."
	default:
		result.AnalysisSummary = "Projeto não recomendado financeiramente. ROI negativo."
	}

	return result, nil
}
