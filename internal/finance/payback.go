package finance

import (
	"fmt"
	"math"
	"strings"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
)

// paybackSafetyCeilingMonths bounds the discounted payback search. Past
// this point the discounted benefits no longer meaningfully converge and
// the payback is reported as not applicable.
const paybackSafetyCeilingMonths = 1000

// AnalyzePayback computes the simple and discounted payback period of an
// investment with constant monthly benefits.
//
// When considerTimeValue is set, each month's benefit is discounted at the
// monthly-compounded equivalent of the annual rate. A discounted payback
// beyond the safety ceiling is a sentinel (Applicable=false), not an
// error. The cash-flow table covers at least 36 months and extends 6
// months past the break-even point.
func AnalyzePayback(initialInvestment, monthlyBenefits float64, considerTimeValue bool, discountRate float64) (*domain.PaybackResult, error) {
	if initialInvestment <= 0 {
		return nil, &domain.ErrValidation{
			Field:   "initial_investment",
			Message: "initial investment must be greater than zero",
		}
	}
	if monthlyBenefits <= 0 {
		return nil, &domain.ErrValidation{
			Field:   "monthly_benefits",
			Message: "monthly benefits must be greater than zero",
		}
	}

	monthlyRate := 0.0
	if considerTimeValue {
		var err error
		monthlyRate, err = AnnualToMonthlyRate(discountRate)
		if err != nil {
			return nil, err
		}
	}

	simpleMonths := initialInvestment / monthlyBenefits
	simpleYears := simpleMonths / 12

	discountedMonths := simpleMonths
	applicable := true

	if considerTimeValue {
		cumulativePV := 0.0
		months := 0
		for cumulativePV < initialInvestment {
			months++
			cumulativePV += monthlyBenefits / math.Pow(1+monthlyRate, float64(months))
			if months > paybackSafetyCeilingMonths {
				applicable = false
				break
			}
		}
		discountedMonths = float64(months)
	}
	discountedYears := discountedMonths / 12

	// Cash-flow table: at least 36 months, extending past break-even.
	analysisMonths := 36
	if applicable {
		if m := int(discountedMonths) + 6; m > analysisMonths {
			analysisMonths = m
		}
	}

	cashFlow := make([]domain.CashFlowPoint, 0, analysisMonths)
	cumulativeCash := -initialInvestment
	cumulativeDiscounted := -initialInvestment

	for month := 1; month <= analysisMonths; month++ {
		monthPV := monthlyBenefits
		if considerTimeValue {
			monthPV = monthlyBenefits / math.Pow(1+monthlyRate, float64(month))
		}
		cumulativeCash += monthlyBenefits
		cumulativeDiscounted += monthPV

		cashFlow = append(cashFlow, domain.CashFlowPoint{
			Month:                month,
			NominalBenefit:       monthlyBenefits,
			DiscountedBenefit:    monthPV,
			CumulativeNominal:    cumulativeCash,
			CumulativeDiscounted: cumulativeDiscounted,
		})
	}

	effectiveMonths := simpleMonths
	if considerTimeValue {
		effectiveMonths = discountedMonths
	}
	effectiveYears := effectiveMonths / 12

	assessment := assessPayback(effectiveYears, applicable)

	annualRate := 0.0
	if considerTimeValue {
		annualRate = discountRate
	}

	result := &domain.PaybackResult{
		SimplePaybackMonths: round1(simpleMonths),
		SimplePaybackYears:  round2(simpleYears),
		DiscountedApplicable: applicable,
		PaybackAssessment:    assessment,
		ConsideredTimeValue:  considerTimeValue,
		AnnualDiscountRate:   annualRate,
		MonthlyDiscountRate:  monthlyRate,
		CashFlow:             cashFlow,
		Formatted: domain.PaybackFormatted{
			InitialInvestment: FormatBRL(initialInvestment),
			MonthlyBenefits:   FormatBRL(monthlyBenefits),
			AnnualBenefits:    FormatBRL(monthlyBenefits * 12),
		},
	}

	if applicable {
		result.DiscountedPaybackMonths = round1(discountedMonths)
		result.DiscountedPaybackYears = round2(discountedYears)
		result.EffectivePaybackMonths = round1(effectiveMonths)
		result.EffectivePaybackYears = round2(effectiveYears)
	}

	effMonthsStr := "N/A"
	effYearsStr := "N/A"
	if applicable {
		effMonthsStr = fmt.Sprintf("%.1f", result.EffectivePaybackMonths)
		effYearsStr = fmt.Sprintf("%.2f", result.EffectivePaybackYears)
	}

	result.Summary = fmt.Sprintf(
		"Com um investimento inicial de %s e benefícios mensais de %s, o período de payback é de aproximadamente %s meses (%s anos). Esta é uma taxa de retorno %s.",
		result.Formatted.InitialInvestment,
		result.Formatted.MonthlyBenefits,
		effMonthsStr,
		effYearsStr,
		strings.ToLower(assessment),
	)

	return result, nil
}

func assessPayback(effectiveYears float64, applicable bool) string {
	if !applicable {
		return "Longo prazo"
	}
	switch {
	case effectiveYears < 1:
		return "Excelente"
	case effectiveYears < 2:
		return "Muito bom"
	case effectiveYears < 3:
		return "Bom"
	case effectiveYears < 5:
		return "Razoável"
	default:
		return "Longo prazo"
	}
}
