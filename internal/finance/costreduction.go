package finance

import (
	"fmt"
	"sort"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
)

// DefaultCostCategories is the cost template offered when the caller has
// no breakdown of its current spend.
var DefaultCostCategories = []string{
	"personal",
	"infrastructure",
	"licenses",
	"maintenance",
	"operational",
	"errors",
	"compliance",
}

// defaultSolutionImpact holds conservative per-category impact estimates
// (as fractions) used when the caller provides none.
var defaultSolutionImpact = map[string]float64{
	"personal":       0.10,
	"infrastructure": 0.15,
	"licenses":       0.05,
	"maintenance":    0.20,
	"operational":    0.10,
	"errors":         0.25,
	"compliance":     0.15,
}

// EstimateCostReduction projects the savings of a solution over the given
// horizon. currentCosts maps category to monthly spend; solutionImpact
// maps category to the expected reduction as a fraction (0.15 = 15%).
// Categories absent from solutionImpact contribute no savings.
//
// The monthly projection applies a ramp-up factor of min(1, month/3), so
// full savings are only reached from month 3 on.
func EstimateCostReduction(currentCosts, solutionImpact map[string]float64, timeHorizonMonths int) *domain.CostReductionResult {
	if len(currentCosts) == 0 {
		currentCosts = make(map[string]float64, len(DefaultCostCategories))
		for _, c := range DefaultCostCategories {
			currentCosts[c] = 0
		}
	}
	if len(solutionImpact) == 0 {
		solutionImpact = defaultSolutionImpact
	}
	if timeHorizonMonths <= 0 {
		timeHorizonMonths = 12
	}

	detailed := make(map[string]domain.CategorySavings, len(currentCosts))
	totalCurrentMonthly := 0.0
	totalSavingsMonthly := 0.0

	for category, monthlyCost := range currentCosts {
		impact := solutionImpact[category]
		savings := monthlyCost * impact

		detailed[category] = domain.CategorySavings{
			CurrentCost:      monthlyCost,
			ImpactPercentage: impact * 100,
			MonthlySavings:   savings,
			AnnualSavings:    savings * 12,
		}

		totalCurrentMonthly += monthlyCost
		totalSavingsMonthly += savings
	}

	projection := make([]domain.SavingsProjectionPoint, 0, timeHorizonMonths)
	cumulative := 0.0
	for month := 1; month <= timeHorizonMonths; month++ {
		rampUp := float64(month) / 3
		if rampUp > 1 {
			rampUp = 1
		}
		monthSavings := totalSavingsMonthly * rampUp
		cumulative += monthSavings
		projection = append(projection, domain.SavingsProjectionPoint{
			Month:             month,
			Savings:           monthSavings,
			CumulativeSavings: cumulative,
		})
	}

	savingsPct := 0.0
	if totalCurrentMonthly > 0 {
		savingsPct = totalSavingsMonthly / totalCurrentMonthly * 100
	}

	// Rank categories by monthly savings; ties break alphabetically so
	// the output is stable across runs.
	type ranked struct {
		category string
		savings  float64
	}
	order := make([]ranked, 0, len(detailed))
	for category, d := range detailed {
		order = append(order, ranked{category, d.MonthlySavings})
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].savings != order[j].savings {
			return order[i].savings > order[j].savings
		}
		return order[i].category < order[j].category
	})

	top := make([]string, 0, 3)
	for _, r := range order {
		if len(top) == 3 {
			break
		}
		if r.savings > 0 {
			top = append(top, r.category)
		}
	}

	result := &domain.CostReductionResult{
		TotalCurrentMonthlyCost: totalCurrentMonthly,
		TotalMonthlySavings:     totalSavingsMonthly,
		TotalAnnualSavings:      totalSavingsMonthly * 12,
		SavingsPercentage:       savingsPct,
		DetailedSavings:         detailed,
		MonthlyProjection:       projection,
		CumulativeSavingsTotal:  cumulative,
		TopSavingsCategories:    top,
		Formatted: domain.CostReductionFormatted{
			TotalCurrentMonthlyCost: FormatBRL(totalCurrentMonthly),
			TotalMonthlySavings:     FormatBRL(totalSavingsMonthly),
			TotalAnnualSavings:      FormatBRL(totalSavingsMonthly * 12),
			CumulativeSavingsTotal:  FormatBRL(cumulative),
		},
	}

	result.Summary = fmt.Sprintf(
		"A solução proposta pode gerar uma economia mensal de %s (%.1f%% dos custos atuais), totalizando %s por ano. Em %d meses, a economia acumulada será de %s.",
		result.Formatted.TotalMonthlySavings,
		savingsPct,
		result.Formatted.TotalAnnualSavings,
		timeHorizonMonths,
		result.Formatted.CumulativeSavingsTotal,
	)

	return result
}
