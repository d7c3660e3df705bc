package insight

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
)

// componentKeyword ties a requirements keyword to the architecture
// component it implies and that component's complexity score.
type componentKeyword struct {
	keyword string
	name    string
	score   int
	re      *regexp.Regexp
}

// componentKeywords is scanned in order; components already detected
// under another keyword are not scored twice.
var componentKeywords = buildComponentKeywords([]componentKeyword{
	{keyword: "api", name: "API REST/GraphQL", score: 2},
	{keyword: "banco de dados", name: "Banco de Dados (SQL/NoSQL)", score: 2},
	{keyword: "database", name: "Banco de Dados (SQL/NoSQL)", score: 2},
	{keyword: "sql", name: "Banco de Dados (SQL)", score: 2},
	{keyword: "nosql", name: "Banco de Dados (NoSQL)", score: 2},
	{keyword: "frontend", name: "Frontend Web (React/Vue/Angular)", score: 2},
	{keyword: "interface web", name: "Frontend Web", score: 2},
	{keyword: "site", name: "Frontend Web", score: 1},
	{keyword: "aplicativo móvel", name: "Aplicativo Móvel (iOS/Android)", score: 3},
	{keyword: "mobile app", name: "Aplicativo Móvel (iOS/Android)", score: 3},
	{keyword: "inteligência artificial", name: "Componente de IA/ML", score: 3},
	{keyword: "machine learning", name: "Componente de IA/ML", score: 3},
	{keyword: "modelo de ia", name: "Componente de IA/ML", score: 3},
	{keyword: "llm", name: "Integração com LLM", score: 2},
	{keyword: "gpt", name: "Integração com LLM (GPT)", score: 2},
	{keyword: "integração", name: "Integração com Sistema Externo", score: 2},
	{keyword: "webhook", name: "Integração via Webhook", score: 1},
	{keyword: "automação", name: "Fluxo de Automação", score: 1},
	{keyword: "pagamento", name: "Integração de Pagamento", score: 2},
	{keyword: "login", name: "Sistema de Autenticação", score: 1},
	{keyword: "autenticação", name: "Sistema de Autenticação", score: 1},
	{keyword: "dashboard", name: "Painel de Controle/Dashboard", score: 1},
	{keyword: "relatórios", name: "Geração de Relatórios", score: 1},
})

func buildComponentKeywords(entries []componentKeyword) []componentKeyword {
	for i := range entries {
		entries[i].re = regexp.MustCompile(`\b` + regexp.QuoteMeta(entries[i].keyword) + `\b`)
	}
	return entries
}

// Complexity score thresholds: up to 4 is low, up to 8 medium, above high.
const (
	lowScoreCeiling    = 4
	mediumScoreCeiling = 8
)

// AssessArchitecture scans a requirements text for known technical
// components, scores the detected set and buckets the total into a
// complexity level. Matching is case-insensitive on whole words.
func AssessArchitecture(requirementsText string) (*domain.ComplexityAssessment, error) {
	if strings.TrimSpace(requirementsText) == "" {
		return nil, &domain.ErrValidation{
			Field:   "requirements_text",
			Message: "requirements text cannot be empty",
		}
	}

	normalized := strings.ToLower(requirementsText)

	seen := make(map[string]bool)
	var components []domain.ArchitectureComponent
	totalScore := 0
	var sketchLines []string

	for _, ck := range componentKeywords {
		if !ck.re.MatchString(normalized) {
			continue
		}
		if seen[ck.name] {
			continue
		}
		seen[ck.name] = true
		totalScore += ck.score
		components = append(components, domain.ArchitectureComponent{Name: ck.name, Score: ck.score})
		sketchLines = append(sketchLines, fmt.Sprintf("- %s (Score: %d)", ck.name, ck.score))
	}

	level := domain.ComplexityLow
	switch {
	case totalScore > mediumScoreCeiling:
		level = domain.ComplexityHigh
	case totalScore > lowScoreCeiling:
		level = domain.ComplexityMedium
	}

	sketch := strings.Join(sketchLines, "\n")

	var report strings.Builder
	if len(sketchLines) == 0 {
		report.WriteString("Nenhum componente técnico chave identificado claramente nos requisitos. ")
	} else {
		report.WriteString("Esboço da Arquitetura Sugerida:\n")
		report.WriteString(sketch)
		report.WriteString("\n\n")
	}
	fmt.Fprintf(&report, "Pontuação Total de Complexidade: %d\n", totalScore)
	fmt.Fprintf(&report, "Nível de Complexidade Estimado: %s", strings.ToUpper(level.Label()))

	return &domain.ComplexityAssessment{
		DetectedComponents: components,
		TotalScore:         totalScore,
		ComplexityLevel:    level,
		Sketch:             sketch,
		Report:             report.String(),
	}, nil
}
