package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
	"github.com/felipeOliveira-1/fstech-agency/internal/finance"
	"github.com/felipeOliveira-1/fstech-agency/internal/insight"
	"github.com/felipeOliveira-1/fstech-agency/internal/port"
)

// NewDiagnosticConsultant builds the agent that runs client diagnostics
// and assembles commercial proposals. crm may be nil; the CRM status
// tool then reports the port as unconfigured.
func NewDiagnosticConsultant(crm port.CRM) *Agent {
	return &Agent{
		id:          "consultor-de-diagnostico",
		name:        "Consultor de Diagnóstico",
		role:        "Diagnóstico e propostas comerciais",
		description: "Analisa o cenário tecnológico do cliente, gera roadmap, precifica e monta propostas.",
		routes: []Route{
			{
				Keywords: []string{"diagnóstico", "diagnostico"},
				Tool:     "analyze_tech_diagnostic",
				Run:      runTechDiagnostic,
			},
			{
				Keywords: []string{"roadmap", "plano de ação"},
				Tool:     "generate_roadmap",
				Run:      runGenerateRoadmap,
			},
			{
				Keywords: []string{"preço", "precificação", "precificar"},
				Tool:     "calculate_proposal_price",
				Run:      runProposalPrice,
			},
			{
				Keywords: []string{"proposta"},
				Tool:     "build_proposal_markdown",
				Run:      runBuildProposal,
			},
			{
				Keywords: []string{"formulário", "intake"},
				Tool:     "generate_client_intake_form",
				Run:      runIntakeForm,
			},
			{
				Keywords: []string{"status", "crm"},
				Tool:     "update_crm_task_status",
				Run:      crmStatusTool(crm),
			},
		},
	}
}

func runTechDiagnostic(_ context.Context, _ string, tc TaskContext) (string, any, error) {
	report, err := insight.AnalyzeTechDiagnostic(insight.DiagnosticInput{
		ClientName:    tc.String("client_name", "Cliente"),
		Industry:      tc.String("industry", "Tecnologia"),
		MainChallenge: tc.String("main_challenge", "Desafio não especificado"),
		TechStack:     tc.Strings("tech_stack"),
	}, tc.String("focus_area", "geral"))
	if err != nil {
		return "", nil, err
	}
	return report, nil, nil
}

func runGenerateRoadmap(_ context.Context, _ string, tc TaskContext) (string, any, error) {
	summary := tc.String("diagnostic_summary", "")
	objectives := tc.Strings("client_objectives")
	if summary == "" || len(objectives) == 0 {
		return "", nil, &domain.ErrValidation{
			Field:   "diagnostic_summary",
			Message: "diagnostic summary and client objectives are required",
		}
	}

	actions := extractOpportunities(summary)
	if len(actions) == 0 {
		actions = []string{"Implementar solução X", "Otimizar processo Y", "Treinar equipe Z"}
	}
	for len(actions) < 3 {
		actions = append(actions, fmt.Sprintf("[Ação Chave %d]", len(actions)+1))
	}

	var b strings.Builder
	b.WriteString("# Roadmap Proposto - FSTech Consulting Agency\n\n")
	b.WriteString("**Baseado em:** Diagnóstico Tecnológico e Objetivos do Cliente\n")
	fmt.Fprintf(&b, "**Objetivos Principais:** %s\n\n", strings.Join(objectives, "; "))
	b.WriteString("## Fase 1: Fundação e Planejamento (Próximos 1-2 meses)\n\n")
	b.WriteString("*   **Marco 1.1:** Validação detalhada dos requisitos.\n")
	b.WriteString("*   **Marco 1.2:** Definição da arquitetura da solução (se aplicável).\n")
	fmt.Fprintf(&b, "*   **Ação:** %s\n\n", actions[0])
	b.WriteString("## Fase 2: Implementação Inicial (Meses 2-4)\n\n")
	b.WriteString("*   **Marco 2.1:** Desenvolvimento/Configuração do Módulo A.\n")
	b.WriteString("*   **Marco 2.2:** Testes iniciais e feedback.\n")
	fmt.Fprintf(&b, "*   **Ação:** %s\n\n", actions[1])
	b.WriteString("## Fase 3: Expansão e Otimização (Meses 4-6+)\n\n")
	b.WriteString("*   **Marco 3.1:** Implementação do Módulo B / Rollout completo.\n")
	b.WriteString("*   **Marco 3.2:** Treinamento de usuários e Go-live.\n")
	b.WriteString("*   **Marco 3.3:** Monitoramento e otimização contínua.\n")
	fmt.Fprintf(&b, "*   **Ação:** %s\n", actions[2])
	return b.String(), nil, nil
}

// extractOpportunities pulls the bullet list that follows the
// "Oportunidades de Melhoria" heading of a diagnostic report.
func extractOpportunities(summary string) []string {
	var opportunities []string
	inSection := false
	for _, line := range strings.Split(summary, "\n") {
		lowered := strings.ToLower(line)
		if strings.Contains(lowered, "oportunidades de melhoria") {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "- ") {
			opportunities = append(opportunities, strings.TrimPrefix(trimmed, "- "))
		} else if trimmed == "" && len(opportunities) > 0 {
			break
		}
	}
	return opportunities
}

func runProposalPrice(_ context.Context, _ string, tc TaskContext) (string, any, error) {
	level, err := domain.ParseComplexity(tc.String("complexity_level", "media"))
	if err != nil {
		return "", nil, err
	}
	quote, err := finance.CalculateProposalPrice(
		tc.Float("estimated_effort_hours", 40),
		level,
		tc.Float("margin_percentage", 20),
		tc.Float("base_hourly_rate", finance.BaseHourlyRateBRL),
	)
	if err != nil {
		return "", nil, err
	}
	return quote.Message, quote, nil
}

func runBuildProposal(_ context.Context, _ string, tc TaskContext) (string, any, error) {
	markdown, err := insight.BuildProposalMarkdown(insight.ProposalInput{
		ClientName:         tc.String("client_name", ""),
		ClientCompany:      tc.String("client_company", ""),
		ProblemDescription: tc.String("problem_description", ""),
		ArchitectureSketch: tc.String("architecture_sketch", ""),
		Price:              tc.String("price", ""),
		EstimatedTimeline:  tc.String("estimated_timeline", "4-6 semanas"),
	})
	if err != nil {
		return "", nil, err
	}
	return markdown, nil, nil
}

func runIntakeForm(_ context.Context, _ string, tc TaskContext) (string, any, error) {
	industry := tc.String("industry", "")
	challenge := tc.String("main_challenge", "")
	if industry == "" || challenge == "" {
		return "", nil, &domain.ErrValidation{
			Field:   "industry",
			Message: "industry and main_challenge are required for the intake form",
		}
	}

	var b strings.Builder
	b.WriteString("# Formulário de Intake - FSTech Consulting Agency\n\n")
	b.WriteString("**Cliente:** [Nome da Empresa do Cliente]\n")
	b.WriteString("**Contato Principal:** [Nome e Cargo]\n")
	b.WriteString("**Email:** [Email de Contato]\n\n")
	fmt.Fprintf(&b, "**Setor de Atuação:** %s\n\n", industry)
	b.WriteString("## Sobre o Negócio\n\n")
	b.WriteString("1.  Descreva brevemente sua empresa e seus principais produtos/serviços.\n")
	b.WriteString("2.  Qual o tamanho da sua empresa (número de funcionários, faturamento anual aproximado)?\n")
	b.WriteString("3.  Quem são seus principais concorrentes?\n\n")
	b.WriteString("## Desafios e Objetivos\n\n")
	fmt.Fprintf(&b, "4.  **Principal Desafio:** %s\n", challenge)
	b.WriteString("    *   Como este desafio impacta seu negócio atualmente?\n")
	b.WriteString("    *   Quais tentativas já foram feitas para resolvê-lo?\n")
	b.WriteString("5.  Quais são seus principais objetivos de negócio para os próximos 12 meses?\n")
	b.WriteString("6.  Quais métricas você usa para medir o sucesso em relação a esses objetivos?\n\n")
	fmt.Fprintf(&b, "## Tecnologia e Processos Atuais (Foco em %s)\n\n", industry)
	b.WriteString("7.  Quais são as principais ferramentas/softwares que vocês utilizam hoje?\n")
	b.WriteString("8.  Existem gargalos conhecidos ou áreas de ineficiência?\n\n")
	b.WriteString("## Expectativas com a FSTech\n\n")
	b.WriteString("9.  O que você espera alcançar trabalhando conosco?\n")
	b.WriteString("10. Qual o orçamento estimado para este projeto/consultoria?\n")
	b.WriteString("11. Qual o cronograma ideal para implementação?\n\n")
	b.WriteString("*Obrigado por preencher! Entraremos em contato em breve.*\n")
	return b.String(), nil, nil
}

func crmStatusTool(crm port.CRM) Tool {
	return func(ctx context.Context, _ string, tc TaskContext) (string, any, error) {
		if crm == nil {
			return "", nil, &domain.ErrExternalService{
				Service: "clickup",
				Err:     fmt.Errorf("CRM port is not configured"),
			}
		}
		taskID := tc.String("crm_task_id", "")
		statusKey := tc.String("status_key", "")
		if taskID == "" || statusKey == "" {
			return "", nil, &domain.ErrValidation{
				Field:   "crm_task_id",
				Message: "crm_task_id and status_key are required",
			}
		}
		if err := crm.UpdateStatus(ctx, taskID, statusKey); err != nil {
			return "", nil, err
		}
		name, _ := domain.CRMStatusName(statusKey)
		return fmt.Sprintf("Status da tarefa %s atualizado para %q.", taskID, name), nil, nil
	}
}
