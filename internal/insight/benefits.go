// Package insight implements the keyword-driven analysis tools: benefit
// projection, architecture complexity scoring, value propositions and
// technology diagnostics. Like the finance calculators, everything here
// is deterministic and offline.
package insight

import (
	"fmt"
	"sort"
	"strings"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
	"github.com/felipeOliveira-1/fstech-agency/internal/finance"
)

// benefitEstimate is the working state of one benefit category during
// projection.
type benefitEstimate struct {
	category    string
	value       float64 // percentage points before industry adjustment
	description string
	confidence  string
}

// industryMultipliers adjust projections by sector. Unknown sectors
// stay at 1.0.
var industryMultipliers = map[string]float64{
	"Tecnologia": 1.0,
	"Finanças":   1.2,
	"Saúde":      1.1,
	"Varejo":     0.9,
	"Manufatura": 1.05,
	"Serviços":   0.95,
}

// companySizeScales scale monetary estimates by company size.
var companySizeScales = map[string]float64{
	"Pequena":    0.7,
	"Média":      1.0,
	"Grande":     1.5,
	"Enterprise": 2.5,
}

// companyBaseRevenue is the assumed annual revenue per company size,
// used to monetize percentage benefits.
var companyBaseRevenue = map[string]float64{
	"Pequena":    2_000_000,
	"Média":      10_000_000,
	"Grande":     50_000_000,
	"Enterprise": 200_000_000,
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// ProjectBenefits estimates the financial benefit categories of a
// solution from keyword analysis of the business problem and the
// proposed solution, adjusted by industry and company size.
//
// The 3-year projection grows each category by 20% in year 2 and 30% in
// year 3 over the year-1 value; the total sums all three years across
// categories.
func ProjectBenefits(businessProblem, solutionDescription, industry, companySize string) *domain.BenefitProjection {
	if industry == "" {
		industry = "Tecnologia"
	}
	if companySize == "" {
		companySize = "Média"
	}

	problem := strings.ToLower(businessProblem)
	solution := strings.ToLower(solutionDescription)

	// Fixed categories in declaration order; dynamic ones append after.
	estimates := []*benefitEstimate{
		{category: domain.BenefitCostReduction, confidence: "Média"},
		{category: domain.BenefitProductivityGain, confidence: "Média"},
		{category: domain.BenefitRevenueIncrease, confidence: "Baixa"},
		{category: domain.BenefitRiskMitigation, confidence: "Média"},
	}
	byCategory := make(map[string]*benefitEstimate, len(estimates))
	for _, e := range estimates {
		byCategory[e.category] = e
	}

	if containsAny(problem, "ineficiência", "lento", "demorado", "manual") {
		e := byCategory[domain.BenefitProductivityGain]
		e.value = 20
		e.description = "Aumento de produtividade pela eliminação de tarefas manuais e processos ineficientes"
		e.confidence = "Alta"
	}
	if containsAny(problem, "custo", "despesa", "recurso", "desperdício") {
		e := byCategory[domain.BenefitCostReduction]
		e.value = 15
		e.description = "Redução de custos operacionais pela otimização de recursos"
		e.confidence = "Alta"
	}
	if containsAny(problem, "venda", "cliente", "conversão", "receita") {
		e := byCategory[domain.BenefitRevenueIncrease]
		e.value = 10
		e.description = "Aumento de receita por melhor experiência do cliente ou eficiência de vendas"
		e.confidence = "Média"
	}
	if containsAny(problem, "erro", "falha", "segurança", "compliance", "regulação") {
		e := byCategory[domain.BenefitRiskMitigation]
		e.value = 12
		e.description = "Mitigação de riscos operacionais, regulatórios ou de segurança"
		e.confidence = "Alta"
	}

	if containsAny(solution, "automação", "automático", "workflow") {
		e := byCategory[domain.BenefitProductivityGain]
		e.value += 10
		if e.description != "" {
			e.description += " através de automação de processos"
		} else {
			e.description = "Ganhos de produtividade através de automação de processos"
		}
	}
	if containsAny(solution, "inteligência artificial", "ia", "machine learning", "ml") {
		byCategory[domain.BenefitProductivityGain].value += 15
		byCategory[domain.BenefitCostReduction].value += 10
		estimates = append(estimates, &benefitEstimate{
			category:    domain.BenefitAIOptimization,
			value:       18,
			description: "Otimização de processos através de inteligência artificial",
			confidence:  "Média",
		})
	}
	if containsAny(solution, "dashboard", "análise", "relatório", "indicador") {
		estimates = append(estimates, &benefitEstimate{
			category:    domain.BenefitDecisionMaking,
			value:       15,
			description: "Melhoria na tomada de decisão através de insights baseados em dados",
			confidence:  "Média",
		})
	}

	multiplier := 1.0
	if m, ok := industryMultipliers[industry]; ok {
		multiplier = m
	}
	scale := 1.0
	if s, ok := companySizeScales[companySize]; ok {
		scale = s
	}
	baseRevenue := 10_000_000.0
	if r, ok := companyBaseRevenue[companySize]; ok {
		baseRevenue = r
	}

	// Rank by raw value; ties keep declaration order.
	sort.SliceStable(estimates, func(i, j int) bool {
		return estimates[i].value > estimates[j].value
	})

	result := &domain.BenefitProjection{
		PercentageBenefits: make(map[string]string),
		MonetaryBenefits:   make(map[string]string),
		AnnualProjection:   make(map[string]domain.YearlyProjection),
	}

	totalBenefit := 0.0
	for _, e := range estimates {
		adjusted := e.value * multiplier / 100
		if adjusted <= 0 {
			continue
		}
		monetary := baseRevenue * adjusted * scale

		result.PercentageBenefits[e.category] = fmt.Sprintf("%.1f%%", adjusted*100)
		result.MonetaryBenefits[e.category] = finance.FormatBRL(monetary)
		result.AnnualProjection[e.category] = domain.YearlyProjection{
			Year1: finance.FormatBRL(monetary),
			Year2: finance.FormatBRL(monetary * 1.2),
			Year3: finance.FormatBRL(monetary * 1.3),
		}
		totalBenefit += monetary * (1 + 1.2 + 1.3)
	}

	for i, e := range estimates {
		if i == 2 {
			break
		}
		result.HighestBenefitCategories = append(result.HighestBenefitCategories, e.category)
	}

	var descriptions []string
	for _, category := range result.HighestBenefitCategories {
		for _, est := range estimates {
			if est.category == category && est.description != "" {
				descriptions = append(descriptions, est.description)
				break
			}
		}
	}
	result.BenefitsSummary = "Principais benefícios financeiros projetados: " + strings.Join(descriptions, "; ") + "."

	result.TotalProjected3YearValue = totalBenefit
	result.TotalProjected3Year = finance.FormatBRL(totalBenefit)

	return result
}
