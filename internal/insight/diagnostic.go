package insight

import (
	"fmt"
	"strings"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
)

// DiagnosticInput carries the intake data analyzed by the diagnostic.
type DiagnosticInput struct {
	ClientName    string
	Industry      string
	MainChallenge string
	TechStack     []string
}

// AnalyzeTechDiagnostic produces a markdown diagnostic summary for a
// focus area. The findings come from a fixed playbook keyed on the focus
// area; unmapped areas get a generic recommendation for deeper analysis.
func AnalyzeTechDiagnostic(input DiagnosticInput, focusArea string) (string, error) {
	if strings.TrimSpace(focusArea) == "" {
		return "", &domain.ErrValidation{
			Field:   "focus_area",
			Message: "focus area is required",
		}
	}

	clientName := input.ClientName
	if clientName == "" {
		clientName = "Cliente Desconhecido"
	}

	var strengths, weaknesses, opportunities []string

	focus := strings.ToLower(focusArea)
	switch {
	case strings.Contains(focus, "infraestrutura"):
		weaknesses = append(weaknesses,
			"Hardware obsoleto identificado em alguns setores.",
			"Processo de backup manual e propenso a erros.")
		opportunities = append(opportunities,
			"Migração para infraestrutura em nuvem para escalabilidade.",
			"Implementação de solução de backup automatizado.")
		strengths = append(strengths, "Equipe de TI interna dedicada (embora pequena).")
	case strings.Contains(focus, "vendas"):
		weaknesses = append(weaknesses,
			"CRM subutilizado, dados de clientes descentralizados.",
			"Falta de automação no follow-up de leads.")
		opportunities = append(opportunities,
			"Implementação de funil de vendas automatizado no CRM.",
			"Treinamento da equipe de vendas para uso eficaz do CRM.")
		strengths = append(strengths, "Produto/serviço com boa aceitação no mercado.")
	case strings.Contains(focus, "marketing"):
		weaknesses = append(weaknesses,
			"Presença online limitada, SEO básico.",
			"Campanhas de email marketing genéricas.")
		opportunities = append(opportunities,
			"Desenvolvimento de estratégia de conteúdo e SEO.",
			"Segmentação de público e personalização de campanhas de email.")
		strengths = append(strengths, "Marca com boa reputação offline.")
	default:
		weaknesses = append(weaknesses, "Área de foco não mapeada para análise detalhada.")
		opportunities = append(opportunities, "Realizar análise mais aprofundada específica para esta área.")
		strengths = append(strengths, "Disposição do cliente em investir em melhorias.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Sumário do Diagnóstico Tecnológico - %s\n\n", clientName)
	fmt.Fprintf(&b, "**Área de Foco:** %s\n\n", focusArea)

	b.WriteString("## Pontos Fortes Identificados:\n")
	for _, s := range strengths {
		fmt.Fprintf(&b, "- %s\n", s)
	}

	b.WriteString("\n## Pontos Fracos / Desafios Identificados:\n")
	for _, w := range weaknesses {
		fmt.Fprintf(&b, "- %s\n", w)
	}

	b.WriteString("\n## Oportunidades de Melhoria Identificadas:\n")
	for _, o := range opportunities {
		fmt.Fprintf(&b, "- %s\n", o)
	}

	b.WriteString("\n*Nota: Diagnóstico preliminar baseado nos dados de intake disponíveis.*")

	return b.String(), nil
}
