package insight_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
	"github.com/felipeOliveira-1/fstech-agency/internal/insight"
)

// ------------------------------------------------------------
// Benefit projection
// ------------------------------------------------------------

func TestProjectBenefits_KeywordDetection(t *testing.T) {
	result := insight.ProjectBenefits(
		"Nosso processo manual de aprovação é demorado e causa erros frequentes.",
		"Sistema de workflow com dashboard para acompanhamento.",
		"Finanças",
		"Grande",
	)

	// "manual" + "workflow" -> productivity (20+10=30), "erro" -> risk (12),
	// "dashboard" -> decision_making (15).
	if _, ok := result.PercentageBenefits[domain.BenefitProductivityGain]; !ok {
		t.Error("expected productivity gain to be detected")
	}
	if _, ok := result.PercentageBenefits[domain.BenefitRiskMitigation]; !ok {
		t.Error("expected risk mitigation to be detected")
	}
	if _, ok := result.PercentageBenefits[domain.BenefitDecisionMaking]; !ok {
		t.Error("expected decision making to be detected")
	}

	// Finanças multiplier 1.2: productivity 30 * 1.2 = 36.0%.
	if got := result.PercentageBenefits[domain.BenefitProductivityGain]; got != "36.0%" {
		t.Errorf("expected productivity at 36.0%%, got %q", got)
	}

	if len(result.HighestBenefitCategories) != 2 {
		t.Fatalf("expected 2 highest categories, got %v", result.HighestBenefitCategories)
	}
	if result.HighestBenefitCategories[0] != domain.BenefitProductivityGain {
		t.Errorf("expected productivity to rank first, got %q", result.HighestBenefitCategories[0])
	}

	if !strings.HasPrefix(result.TotalProjected3Year, "R$ ") {
		t.Errorf("expected BRL-formatted total, got %q", result.TotalProjected3Year)
	}
	if result.TotalProjected3YearValue <= 0 {
		t.Errorf("expected positive 3-year total, got %v", result.TotalProjected3YearValue)
	}
}

func TestProjectBenefits_ZeroCategoriesOmitted(t *testing.T) {
	result := insight.ProjectBenefits(
		"Tudo funciona bem por aqui.",
		"Nenhum recurso novo.",
		"Tecnologia",
		"Média",
	)

	if len(result.PercentageBenefits) != 0 {
		t.Errorf("expected no monetized categories, got %v", result.PercentageBenefits)
	}
	// Ranking still lists the top two (zero-value) fixed categories.
	if len(result.HighestBenefitCategories) != 2 {
		t.Errorf("expected 2 ranked categories, got %v", result.HighestBenefitCategories)
	}
	if result.TotalProjected3YearValue != 0 {
		t.Errorf("expected zero total, got %v", result.TotalProjected3YearValue)
	}
}

func TestProjectBenefits_CompanySizeScaling(t *testing.T) {
	small := insight.ProjectBenefits("custos altos", "automação", "Tecnologia", "Pequena")
	enterprise := insight.ProjectBenefits("custos altos", "automação", "Tecnologia", "Enterprise")

	if small.TotalProjected3YearValue >= enterprise.TotalProjected3YearValue {
		t.Errorf("enterprise projection (%v) should exceed small company (%v)",
			enterprise.TotalProjected3YearValue, small.TotalProjected3YearValue)
	}
}

func TestProjectBenefits_AnnualProjectionGrowth(t *testing.T) {
	result := insight.ProjectBenefits("processo manual de fechamento", "", "Tecnologia", "Média")

	proj, ok := result.AnnualProjection[domain.BenefitProductivityGain]
	if !ok {
		t.Fatal("expected productivity projection")
	}
	// Year 1 = 10M * 0.20 = R$ 2.000.000,00; year 2 +20%; year 3 +30%.
	if proj.Year1 != "R$ 2.000.000,00" {
		t.Errorf("unexpected year 1: %q", proj.Year1)
	}
	if proj.Year2 != "R$ 2.400.000,00" {
		t.Errorf("unexpected year 2: %q", proj.Year2)
	}
	if proj.Year3 != "R$ 2.600.000,00" {
		t.Errorf("unexpected year 3: %q", proj.Year3)
	}
}

// ------------------------------------------------------------
// Architecture complexity
// ------------------------------------------------------------

func TestAssessArchitecture_Reference(t *testing.T) {
	req := `Precisamos de um sistema web com login de usuários, um dashboard para visualizar dados
e uma api para integração com um aplicativo móvel futuro. O sistema deve usar um banco de dados sql.
Também queremos uma automação simples para enviar emails.`

	result, err := insight.AssessArchitecture(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// login(1) + dashboard(1) + api(2) + integração(2) + aplicativo móvel(3)
	// + banco de dados(2) + sql(2) + automação(1) = 14 -> high.
	if result.TotalScore != 14 {
		t.Errorf("expected score 14, got %d", result.TotalScore)
	}
	if result.ComplexityLevel != domain.ComplexityHigh {
		t.Errorf("expected high complexity, got %v", result.ComplexityLevel)
	}
	if !strings.Contains(result.Report, "ALTA") {
		t.Errorf("expected ALTA in report, got %q", result.Report)
	}
}

func TestAssessArchitecture_DeduplicatesComponents(t *testing.T) {
	// "banco de dados" and "database" map to the same component.
	result, err := insight.AssessArchitecture("um banco de dados moderno, uma database rápida")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.DetectedComponents) != 1 {
		t.Fatalf("expected 1 deduplicated component, got %v", result.DetectedComponents)
	}
	if result.TotalScore != 2 {
		t.Errorf("expected score 2, got %d", result.TotalScore)
	}
}

func TestAssessArchitecture_Thresholds(t *testing.T) {
	// login(1) + dashboard(1) + webhook(1) + site(1) = 4 -> still low.
	low, err := insight.AssessArchitecture("site com login, dashboard e webhook")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if low.TotalScore != 4 || low.ComplexityLevel != domain.ComplexityLow {
		t.Errorf("expected score 4 = low, got score %d level %v", low.TotalScore, low.ComplexityLevel)
	}

	// Adding automação(1) crosses to 5 -> medium.
	medium, err := insight.AssessArchitecture("site com login, dashboard, webhook e automação")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if medium.TotalScore != 5 || medium.ComplexityLevel != domain.ComplexityMedium {
		t.Errorf("expected score 5 = medium, got score %d level %v", medium.TotalScore, medium.ComplexityLevel)
	}
}

func TestAssessArchitecture_WholeWordsOnly(t *testing.T) {
	// "apitite" must not match "api".
	result, err := insight.AssessArchitecture("cliente com apitite por novidades")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.DetectedComponents) != 0 {
		t.Errorf("expected no components, got %v", result.DetectedComponents)
	}
	if !strings.Contains(result.Report, "Nenhum componente") {
		t.Errorf("expected empty-detection wording, got %q", result.Report)
	}
}

func TestAssessArchitecture_EmptyInput(t *testing.T) {
	var vErr *domain.ErrValidation
	_, err := insight.AssessArchitecture("   ")
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

// ------------------------------------------------------------
// Value proposition
// ------------------------------------------------------------

func TestBuildValueProposition_MatchesByStakeholder(t *testing.T) {
	pains := []string{
		"Altos custos operacionais com desperdício de recursos",
		"Falta de escalabilidade da plataforma",
		"Pressão competitiva e perda de market share",
	}
	benefits := []string{
		"Economia mensal comprovada e payback rápido",
		"Integração robusta com sistemas legados",
		"Vantagem competitiva pela inovação",
	}

	result := insight.BuildValueProposition(pains, benefits, nil)

	fin, ok := result.StakeholderPropositions[insight.StakeholderFinancial]
	if !ok {
		t.Fatal("expected financial stakeholder proposition")
	}
	found := false
	for _, b := range fin.RelevantBenefits {
		if strings.Contains(b, "payback") {
			found = true
		}
	}
	if !found {
		t.Errorf("financial stakeholder should pick the payback benefit, got %v", fin.RelevantBenefits)
	}

	exec, ok := result.StakeholderPropositions[insight.StakeholderExecutive]
	if !ok {
		t.Fatal("expected executive stakeholder proposition")
	}
	if !strings.Contains(exec.Headline, "vantagem competitiva") {
		t.Errorf("executive headline should carry the strategic angle, got %q", exec.Headline)
	}

	if len(result.ConsolidatedPainPoints) == 0 || len(result.ConsolidatedBenefits) == 0 {
		t.Error("expected consolidated pains and benefits")
	}
}

func TestBuildValueProposition_Defaults(t *testing.T) {
	result := insight.BuildValueProposition(nil, nil, nil)

	if len(result.StakeholderPropositions) != 3 {
		t.Errorf("expected 3 default stakeholders, got %d", len(result.StakeholderPropositions))
	}
	if result.MainValueProposition == "" {
		t.Error("expected a main value proposition")
	}
}

func TestBuildValueProposition_SkipsUnknownStakeholders(t *testing.T) {
	result := insight.BuildValueProposition(nil, nil, []string{"Jurídico", insight.StakeholderTechnical})

	if len(result.StakeholderPropositions) != 1 {
		t.Errorf("expected only the known stakeholder, got %v", result.StakeholderPropositions)
	}
	if _, ok := result.StakeholderPropositions[insight.StakeholderTechnical]; !ok {
		t.Error("expected technical proposition to be present")
	}
}

// ------------------------------------------------------------
// Diagnostic
// ------------------------------------------------------------

func TestAnalyzeTechDiagnostic(t *testing.T) {
	input := insight.DiagnosticInput{
		ClientName:    "Exemplo Corp",
		Industry:      "Manufatura",
		MainChallenge: "Processos manuais lentos",
	}

	report, err := insight.AnalyzeTechDiagnostic(input, "Infraestrutura de TI")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(report, "Exemplo Corp") {
		t.Error("report should name the client")
	}
	if !strings.Contains(report, "nuvem") {
		t.Error("infrastructure focus should suggest cloud migration")
	}

	sales, err := insight.AnalyzeTechDiagnostic(input, "Processos de Vendas")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sales, "CRM") {
		t.Error("sales focus should mention the CRM")
	}

	var vErr *domain.ErrValidation
	if _, err := insight.AnalyzeTechDiagnostic(input, ""); !errors.As(err, &vErr) {
		t.Fatalf("expected ErrValidation for empty focus area, got %v", err)
	}
}
