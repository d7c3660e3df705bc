package domain

// ============================================================
// Benefit projection & value proposition
// ============================================================

// Benefit category keys. The set is open: the projection engine may add
// dynamic categories (ai_optimization, decision_making) on top of the
// fixed four.
const (
	BenefitCostReduction    = "cost_reduction"
	BenefitProductivityGain = "productivity_gain"
	BenefitRevenueIncrease  = "revenue_increase"
	BenefitRiskMitigation   = "risk_mitigation"
	BenefitAIOptimization   = "ai_optimization"
	BenefitDecisionMaking   = "decision_making"
)

// YearlyProjection holds a 3-year projection with pre-formatted BRL values.
type YearlyProjection struct {
	Year1 string `json:"year_1"`
	Year2 string `json:"year_2"`
	Year3 string `json:"year_3"`
}

// BenefitProjection holds the output of the benefit projection engine.
type BenefitProjection struct {
	PercentageBenefits map[string]string           `json:"percentage_benefits"`
	MonetaryBenefits   map[string]string           `json:"monetary_benefits"`
	AnnualProjection   map[string]YearlyProjection `json:"annual_projection"`
	// HighestBenefitCategories ranks by raw (pre-multiplier) percentage,
	// matching the original model.
	HighestBenefitCategories []string `json:"highest_benefit_categories"`
	BenefitsSummary          string   `json:"benefits_summary"`
	TotalProjected3YearValue float64  `json:"total_projected_benefit_3_years_value"`
	TotalProjected3Year      string   `json:"total_projected_benefit_3_years"`
}

// StakeholderProposition is the value proposition tailored to one stakeholder type.
type StakeholderProposition struct {
	Headline           string   `json:"headline"`
	KeyPoints          []string `json:"key_points"`
	RelevantPainPoints []string `json:"relevant_pain_points"`
	RelevantBenefits   []string `json:"relevant_benefits"`
}

// ValueProposition holds the output of the value proposition builder.
type ValueProposition struct {
	MainValueProposition   string                            `json:"main_value_proposition"`
	StakeholderPropositions map[string]StakeholderProposition `json:"stakeholder_propositions"`
	ConsolidatedPainPoints []string                          `json:"consolidated_pain_points"`
	ConsolidatedBenefits   []string                          `json:"consolidated_benefits"`
	TargetStakeholders     []string                          `json:"target_stakeholders"`
}
