package domain

// ============================================================
// Financial calculator results
// ============================================================

// CashFlowPoint is one row of a payback cash-flow schedule.
// Points are always produced in ascending period order; break-even
// detection downstream relies on that ordering.
type CashFlowPoint struct {
	Month                int     `json:"month"`
	NominalBenefit       float64 `json:"nominal_benefit"`
	DiscountedBenefit    float64 `json:"discounted_benefit"`
	CumulativeNominal    float64 `json:"cumulative_nominal"`
	CumulativeDiscounted float64 `json:"cumulative_discounted"`
}

// ROIResult holds the output of the ROI/NPV calculator.
type ROIResult struct {
	ROIPercentage    float64 `json:"roi_percentage"`
	ROINPVPercentage float64 `json:"roi_npv_percentage"`
	NPV              float64 `json:"npv"`
	PaybackYears     float64 `json:"payback_years"`
	// IRRPercentageEstimate is (avg annual benefit / cost) * 100, a crude
	// approximation rather than a root-finding internal rate of return.
	IRRPercentageEstimate float64   `json:"irr_percentage_estimate"`
	TotalBenefits         float64   `json:"total_benefits"`
	DiscountedBenefits    []float64 `json:"discounted_benefits"`
	AnalysisSummary       string    `json:"analysis_summary"`
}

// PaybackFormatted carries pre-formatted BRL strings for report embedding.
type PaybackFormatted struct {
	InitialInvestment string `json:"initial_investment"`
	MonthlyBenefits   string `json:"monthly_benefits"`
	AnnualBenefits    string `json:"annual_benefits"`
}

// PaybackResult holds the output of the payback period analyzer.
// When the discounted payback exceeds the safety ceiling it is reported
// as not applicable (DiscountedApplicable=false) rather than as a number.
type PaybackResult struct {
	SimplePaybackMonths     float64          `json:"simple_payback_months"`
	SimplePaybackYears      float64          `json:"simple_payback_years"`
	DiscountedPaybackMonths float64          `json:"discounted_payback_months"`
	DiscountedPaybackYears  float64          `json:"discounted_payback_years"`
	DiscountedApplicable    bool             `json:"discounted_applicable"`
	EffectivePaybackMonths  float64          `json:"effective_payback_months"`
	EffectivePaybackYears   float64          `json:"effective_payback_years"`
	PaybackAssessment       string           `json:"payback_assessment"`
	ConsideredTimeValue     bool             `json:"considered_time_value"`
	AnnualDiscountRate      float64          `json:"annual_discount_rate"`
	MonthlyDiscountRate     float64          `json:"monthly_discount_rate"`
	CashFlow                []CashFlowPoint  `json:"cash_flow"`
	Formatted               PaybackFormatted `json:"formatted"`
	Summary                 string           `json:"summary"`
}

// CategorySavings is the per-category breakdown of a cost-reduction estimate.
type CategorySavings struct {
	CurrentCost      float64 `json:"current_cost"`
	ImpactPercentage float64 `json:"impact_percentage"` // 0-100, for display
	MonthlySavings   float64 `json:"monthly_savings"`
	AnnualSavings    float64 `json:"annual_savings"`
}

// SavingsProjectionPoint is one month of the ramp-up-adjusted projection.
type SavingsProjectionPoint struct {
	Month             int     `json:"month"`
	Savings           float64 `json:"savings"`
	CumulativeSavings float64 `json:"cumulative_savings"`
}

// CostReductionFormatted carries pre-formatted BRL totals.
type CostReductionFormatted struct {
	TotalCurrentMonthlyCost string `json:"total_current_monthly_cost"`
	TotalMonthlySavings     string `json:"total_monthly_savings"`
	TotalAnnualSavings      string `json:"total_annual_savings"`
	CumulativeSavingsTotal  string `json:"cumulative_savings_total"`
}

// CostReductionResult holds the output of the cost-reduction estimator.
type CostReductionResult struct {
	TotalCurrentMonthlyCost float64                    `json:"total_current_monthly_cost"`
	TotalMonthlySavings     float64                    `json:"total_monthly_savings"`
	TotalAnnualSavings      float64                    `json:"total_annual_savings"`
	SavingsPercentage       float64                    `json:"savings_percentage"`
	DetailedSavings         map[string]CategorySavings `json:"detailed_savings"`
	MonthlyProjection       []SavingsProjectionPoint   `json:"monthly_projection"`
	CumulativeSavingsTotal  float64                    `json:"cumulative_savings_total"`
	TopSavingsCategories    []string                   `json:"top_savings_categories"`
	Formatted               CostReductionFormatted     `json:"formatted"`
	Summary                 string                     `json:"summary"`
}

// PricingQuote holds the output of the proposal pricing calculator.
type PricingQuote struct {
	EffortHours          float64    `json:"effort_hours"`
	ComplexityLevel      Complexity `json:"complexity_level"`
	ComplexityMultiplier float64    `json:"complexity_multiplier"`
	BaseHourlyRate       float64    `json:"base_hourly_rate"`
	MarginPercentage     float64    `json:"margin_percentage"`
	FinalPrice           float64    `json:"final_price"`
	FormattedPrice       string     `json:"formatted_price"`
	Message              string     `json:"message"`
}
