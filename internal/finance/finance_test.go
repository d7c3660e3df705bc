package finance_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
	"github.com/felipeOliveira-1/fstech-agency/internal/finance"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// ------------------------------------------------------------
// Currency
// ------------------------------------------------------------

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1234567.8, "R$ 1.234.567,80"},
		{0, "R$ 0,00"},
		{999.99, "R$ 999,99"},
		{1000, "R$ 1.000,00"},
		{-1234.5, "R$ -1.234,50"},
		{150, "R$ 150,00"},
	}
	for _, c := range cases {
		if got := finance.FormatBRL(c.in); got != c.want {
			t.Errorf("FormatBRL(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestAnnualToMonthlyRate(t *testing.T) {
	got, err := finance.AnnualToMonthlyRate(0.08)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := math.Pow(1.08, 1.0/12.0) - 1
	if !almostEqual(got, want, 1e-12) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if _, err := finance.AnnualToMonthlyRate(-1); err == nil {
		t.Fatal("expected error for rate <= -1")
	}
}

// ------------------------------------------------------------
// ROI
// ------------------------------------------------------------

func TestCalculateROI_Reference(t *testing.T) {
	result, err := finance.CalculateROI(100000, []float64{40000, 60000, 80000}, 0.08, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ROIPercentage != 80.0 {
		t.Errorf("expected ROI 80.0, got %v", result.ROIPercentage)
	}
	if result.NPV <= 0 {
		t.Errorf("expected positive NPV, got %v", result.NPV)
	}
	if result.TotalBenefits != 180000 {
		t.Errorf("expected total benefits 180000, got %v", result.TotalBenefits)
	}
	if len(result.DiscountedBenefits) != 3 {
		t.Fatalf("expected 3 discounted benefits, got %d", len(result.DiscountedBenefits))
	}
	// Break-even in year 2: 40k + 60k = 100k exactly.
	if result.PaybackYears != 2.0 {
		t.Errorf("expected payback 2.0 years, got %v", result.PaybackYears)
	}
	if result.AnalysisSummary == "" {
		t.Error("expected non-empty analysis summary")
	}
}

func TestCalculateROI_PadsBenefits(t *testing.T) {
	result, err := finance.CalculateROI(50000, []float64{10000, 20000}, 0.1, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Series padded to [10000, 20000, 20000, 20000].
	if result.TotalBenefits != 70000 {
		t.Errorf("expected total benefits 70000, got %v", result.TotalBenefits)
	}
	if len(result.DiscountedBenefits) != 4 {
		t.Errorf("expected 4 discounted values, got %d", len(result.DiscountedBenefits))
	}
}

func TestCalculateROI_TruncatesBenefits(t *testing.T) {
	result, err := finance.CalculateROI(100000, []float64{50000, 50000, 50000, 50000, 50000}, 0.1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalBenefits != 100000 {
		t.Errorf("expected total benefits 100000, got %v", result.TotalBenefits)
	}
}

func TestCalculateROI_DoesNotMutateInput(t *testing.T) {
	benefits := []float64{10000, 20000}
	if _, err := finance.CalculateROI(50000, benefits, 0.1, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(benefits) != 2 {
		t.Errorf("input slice was mutated, len=%d", len(benefits))
	}
}

func TestCalculateROI_NeverPaysBack(t *testing.T) {
	result, err := finance.CalculateROI(1000000, []float64{1000}, 0.1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Caps at the project duration when benefits never cover the cost.
	if result.PaybackYears != 3 {
		t.Errorf("expected payback capped at 3 years, got %v", result.PaybackYears)
	}
	if !strings.Contains(result.AnalysisSummary, "não recomendado") {
		t.Errorf("expected negative recommendation, got %q", result.AnalysisSummary)
	}
}

func TestCalculateROI_Validation(t *testing.T) {
	var vErr *domain.ErrValidation

	_, err := finance.CalculateROI(0, []float64{1000}, 0.1, 3)
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ErrValidation for zero cost, got %v", err)
	}

	_, err = finance.CalculateROI(1000, nil, 0.1, 3)
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ErrValidation for empty benefits, got %v", err)
	}

	_, err = finance.CalculateROI(1000, []float64{100}, 0.1, 0)
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ErrValidation for zero duration, got %v", err)
	}
}

// ------------------------------------------------------------
// Payback
// ------------------------------------------------------------

func TestAnalyzePayback_Simple(t *testing.T) {
	result, err := finance.AnalyzePayback(100000, 15000, false, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(result.SimplePaybackMonths, 6.7, 0.01) {
		t.Errorf("expected simple payback 6.7 months, got %v", result.SimplePaybackMonths)
	}
	if result.MonthlyDiscountRate != 0 {
		t.Errorf("expected zero monthly rate without time value, got %v", result.MonthlyDiscountRate)
	}
	if result.EffectivePaybackMonths != result.SimplePaybackMonths {
		t.Errorf("effective should equal simple without time value")
	}
	if result.PaybackAssessment != "Excelente" {
		t.Errorf("expected 'Excelente', got %q", result.PaybackAssessment)
	}
}

func TestAnalyzePayback_Discounted(t *testing.T) {
	result, err := finance.AnalyzePayback(100000, 15000, true, 0.08)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.DiscountedApplicable {
		t.Fatal("expected discounted payback to be applicable")
	}
	// Discounting can only push the break-even point out.
	if result.DiscountedPaybackMonths < result.SimplePaybackMonths {
		t.Errorf("discounted payback (%v) should not beat simple (%v)",
			result.DiscountedPaybackMonths, result.SimplePaybackMonths)
	}
	if len(result.CashFlow) < 36 {
		t.Errorf("expected at least 36 cash-flow rows, got %d", len(result.CashFlow))
	}
	// Rows are ordered and cumulative values strictly increase.
	for i := 1; i < len(result.CashFlow); i++ {
		if result.CashFlow[i].Month != result.CashFlow[i-1].Month+1 {
			t.Fatalf("cash flow months out of order at index %d", i)
		}
		if result.CashFlow[i].CumulativeNominal <= result.CashFlow[i-1].CumulativeNominal {
			t.Fatalf("cumulative nominal not increasing at month %d", result.CashFlow[i].Month)
		}
	}
	if result.Formatted.InitialInvestment != "R$ 100.000,00" {
		t.Errorf("unexpected formatted investment: %q", result.Formatted.InitialInvestment)
	}
}

func TestAnalyzePayback_NotApplicable(t *testing.T) {
	// Benefits so small the discounted series never reaches the investment.
	result, err := finance.AnalyzePayback(1000000, 0.01, true, 0.08)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.DiscountedApplicable {
		t.Fatal("expected discounted payback to be not applicable")
	}
	if result.PaybackAssessment != "Longo prazo" {
		t.Errorf("expected 'Longo prazo', got %q", result.PaybackAssessment)
	}
	if len(result.CashFlow) != 36 {
		t.Errorf("expected table to fall back to 36 rows, got %d", len(result.CashFlow))
	}
	if !strings.Contains(result.Summary, "N/A") {
		t.Errorf("expected N/A in summary, got %q", result.Summary)
	}
}

func TestAnalyzePayback_Validation(t *testing.T) {
	var vErr *domain.ErrValidation

	_, err := finance.AnalyzePayback(0, 1000, true, 0.08)
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ErrValidation for zero investment, got %v", err)
	}

	_, err = finance.AnalyzePayback(1000, 0, true, 0.08)
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ErrValidation for zero benefits, got %v", err)
	}
}

// ------------------------------------------------------------
// Cost reduction
// ------------------------------------------------------------

func TestEstimateCostReduction_Reference(t *testing.T) {
	costs := map[string]float64{
		"personal":       100000,
		"infrastructure": 20000,
		"errors":         10000,
	}
	impact := map[string]float64{
		"personal":       0.20,
		"infrastructure": 0.15,
		"errors":         0.30,
	}

	result := finance.EstimateCostReduction(costs, impact, 12)

	if result.TotalCurrentMonthlyCost != 130000 {
		t.Errorf("expected total cost 130000, got %v", result.TotalCurrentMonthlyCost)
	}
	// 20000 + 3000 + 3000 = 26000/month.
	if result.TotalMonthlySavings != 26000 {
		t.Errorf("expected monthly savings 26000, got %v", result.TotalMonthlySavings)
	}
	if result.TotalAnnualSavings != 312000 {
		t.Errorf("expected annual savings 312000, got %v", result.TotalAnnualSavings)
	}
	if !almostEqual(result.SavingsPercentage, 20.0, 0.01) {
		t.Errorf("expected 20%% savings, got %v", result.SavingsPercentage)
	}
	if result.DetailedSavings["personal"].ImpactPercentage != 20 {
		t.Errorf("expected impact displayed as 20, got %v",
			result.DetailedSavings["personal"].ImpactPercentage)
	}
}

func TestEstimateCostReduction_RampUp(t *testing.T) {
	costs := map[string]float64{"operational": 30000}
	impact := map[string]float64{"operational": 0.10}

	result := finance.EstimateCostReduction(costs, impact, 6)

	steady := 3000.0
	if !almostEqual(result.MonthlyProjection[0].Savings, steady/3, 0.01) {
		t.Errorf("month 1 should be 1/3 of steady state, got %v", result.MonthlyProjection[0].Savings)
	}
	if !almostEqual(result.MonthlyProjection[1].Savings, steady*2/3, 0.01) {
		t.Errorf("month 2 should be 2/3 of steady state, got %v", result.MonthlyProjection[1].Savings)
	}
	if !almostEqual(result.MonthlyProjection[2].Savings, steady, 0.01) {
		t.Errorf("month 3 should reach steady state, got %v", result.MonthlyProjection[2].Savings)
	}
	if !almostEqual(result.MonthlyProjection[3].Savings, steady, 0.01) {
		t.Errorf("month 4 should hold steady state, got %v", result.MonthlyProjection[3].Savings)
	}
	if result.MonthlyProjection[5].CumulativeSavings <= result.MonthlyProjection[4].CumulativeSavings {
		t.Error("cumulative savings must increase month over month")
	}
}

func TestEstimateCostReduction_TopCategories(t *testing.T) {
	costs := map[string]float64{
		"personal":    100000,
		"licenses":    15000,
		"maintenance": 25000,
		"compliance":  5000,
	}
	impact := map[string]float64{
		"personal":    0.20, // 20000
		"licenses":    0.05, // 750
		"maintenance": 0.25, // 6250
		"compliance":  0.20, // 1000
	}

	result := finance.EstimateCostReduction(costs, impact, 12)

	want := []string{"personal", "maintenance", "compliance"}
	if len(result.TopSavingsCategories) != 3 {
		t.Fatalf("expected 3 top categories, got %v", result.TopSavingsCategories)
	}
	for i, c := range want {
		if result.TopSavingsCategories[i] != c {
			t.Errorf("top[%d]: expected %q, got %q", i, c, result.TopSavingsCategories[i])
		}
	}
}

func TestEstimateCostReduction_Defaults(t *testing.T) {
	result := finance.EstimateCostReduction(nil, nil, 0)

	if result.TotalCurrentMonthlyCost != 0 {
		t.Errorf("default template should carry zero costs, got %v", result.TotalCurrentMonthlyCost)
	}
	if len(result.MonthlyProjection) != 12 {
		t.Errorf("expected default 12-month horizon, got %d", len(result.MonthlyProjection))
	}
	if len(result.TopSavingsCategories) != 0 {
		t.Errorf("zero-savings categories must not rank, got %v", result.TopSavingsCategories)
	}
}

// ------------------------------------------------------------
// Pricing
// ------------------------------------------------------------

func TestCalculateProposalPrice(t *testing.T) {
	cases := []struct {
		name      string
		hours     float64
		level     domain.Complexity
		margin    float64
		rate      float64
		wantPrice float64
	}{
		{"medium", 50, domain.ComplexityMedium, 25, 150, 50 * 150 * 1.5 * 1.25},
		{"high", 120, domain.ComplexityHigh, 30, 150, 120 * 150 * 2.0 * 1.30},
		{"low custom rate", 20, domain.ComplexityLow, 15, 200, 20 * 200 * 1.0 * 1.15},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			quote, err := finance.CalculateProposalPrice(c.hours, c.level, c.margin, c.rate)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !almostEqual(quote.FinalPrice, c.wantPrice, 0.01) {
				t.Errorf("expected price %v, got %v", c.wantPrice, quote.FinalPrice)
			}
			if !strings.HasPrefix(quote.FormattedPrice, "R$ ") {
				t.Errorf("expected BRL formatting, got %q", quote.FormattedPrice)
			}
			if !strings.Contains(quote.Message, quote.FormattedPrice) {
				t.Errorf("message should embed the formatted price: %q", quote.Message)
			}
		})
	}
}

func TestCalculateProposalPrice_Validation(t *testing.T) {
	var vErr *domain.ErrValidation

	_, err := finance.CalculateProposalPrice(0, domain.ComplexityMedium, 20, 150)
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ErrValidation for zero effort, got %v", err)
	}

	_, err = finance.CalculateProposalPrice(30, domain.ComplexityMedium, -5, 150)
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ErrValidation for negative margin, got %v", err)
	}

	_, err = finance.CalculateProposalPrice(30, domain.ComplexityMedium, 20, 0)
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ErrValidation for zero rate, got %v", err)
	}
}

func TestParseComplexity(t *testing.T) {
	cases := map[string]domain.Complexity{
		"low":    domain.ComplexityLow,
		"Baixa":  domain.ComplexityLow,
		"MEDIA":  domain.ComplexityMedium,
		"média":  domain.ComplexityMedium,
		"medium": domain.ComplexityMedium,
		"alta":   domain.ComplexityHigh,
		"high":   domain.ComplexityHigh,
	}
	for in, want := range cases {
		got, err := domain.ParseComplexity(in)
		if err != nil {
			t.Errorf("ParseComplexity(%q): unexpected error %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseComplexity(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := domain.ParseComplexity("muito alta"); err == nil {
		t.Fatal("expected error for unknown complexity level")
	}
}
