package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/felipeOliveira-1/fstech-agency/internal/finance"
	"github.com/felipeOliveira-1/fstech-agency/internal/insight"
)

// NewROIAnalyst builds the agent that turns technical proposals into
// financial arguments. All of its tools are pure calculators.
func NewROIAnalyst() *Agent {
	return &Agent{
		id:          "analista-roi",
		name:        "Analista de ROI",
		role:        "Análise financeira de propostas",
		description: "Quantifica benefícios financeiros: ROI, payback, redução de custos e proposta de valor.",
		routes: []Route{
			{
				Keywords: []string{"roi", "retorno sobre investimento"},
				Tool:     "calculate_roi",
				Run:      runCalculateROI,
			},
			{
				Keywords: []string{"benefício", "projeção"},
				Tool:     "project_benefits",
				Run:      runProjectBenefits,
			},
			{
				Keywords: []string{"custo", "economia", "redução"},
				Tool:     "estimate_cost_reduction",
				Run:      runEstimateCostReduction,
			},
			{
				Keywords: []string{"payback", "período de retorno"},
				Tool:     "analyze_payback_period",
				Run:      runAnalyzePayback,
			},
			{
				Keywords: []string{"valor", "proposta de valor", "value proposition"},
				Tool:     "build_value_proposition",
				Run:      runBuildValueProposition,
			},
		},
	}
}

func runCalculateROI(_ context.Context, _ string, tc TaskContext) (string, any, error) {
	cost := tc.Float("project_cost", 50000)
	benefits := floatsOrDefault(tc, "annual_benefits", []float64{20000, 30000, 40000})
	rate := tc.Float("discount_rate", finance.DefaultDiscountRate)
	years := tc.Int("project_duration_years", finance.DefaultDurationYears)

	result, err := finance.CalculateROI(cost, benefits, rate, years)
	if err != nil {
		return "", nil, err
	}
	return result.AnalysisSummary, result, nil
}

func runProjectBenefits(_ context.Context, _ string, tc TaskContext) (string, any, error) {
	projection := insight.ProjectBenefits(
		tc.String("business_problem", "Problema não especificado"),
		tc.String("solution_description", "Solução não detalhada"),
		tc.String("industry", "Tecnologia"),
		tc.String("company_size", "Média"),
	)
	return projection.BenefitsSummary, projection, nil
}

func runEstimateCostReduction(_ context.Context, _ string, tc TaskContext) (string, any, error) {
	result := finance.EstimateCostReduction(
		tc.FloatMap("current_costs"),
		tc.FloatMap("solution_impact"),
		tc.Int("time_horizon_months", 12),
	)
	return result.Summary, result, nil
}

func runAnalyzePayback(_ context.Context, _ string, tc TaskContext) (string, any, error) {
	result, err := finance.AnalyzePayback(
		tc.Float("initial_investment", 50000),
		tc.Float("monthly_benefits", 5000),
		tc.Bool("consider_time_value", true),
		tc.Float("discount_rate", finance.DefaultPaybackDiscount),
	)
	if err != nil {
		return "", nil, err
	}
	return result.Summary, result, nil
}

func runBuildValueProposition(_ context.Context, _ string, tc TaskContext) (string, any, error) {
	proposition := insight.BuildValueProposition(
		tc.Strings("client_pain_points"),
		tc.Strings("solution_benefits"),
		tc.Strings("target_stakeholders"),
	)

	var b strings.Builder
	b.WriteString(proposition.MainValueProposition)
	b.WriteString("\n\nProposta de valor por stakeholder:\n")
	for _, stakeholder := range proposition.TargetStakeholders {
		sp, ok := proposition.StakeholderPropositions[stakeholder]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "- %s: %s\n", stakeholder, sp.Headline)
	}
	return b.String(), proposition, nil
}

func floatsOrDefault(tc TaskContext, key string, def []float64) []float64 {
	switch v := tc[key].(type) {
	case []float64:
		return v
	case []any:
		out := make([]float64, 0, len(v))
		for _, item := range v {
			if f, ok := item.(float64); ok {
				out = append(out, f)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return def
}
