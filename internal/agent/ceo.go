package agent

import (
	"context"
	"fmt"
	"strings"
)

// vipClients is the CEO's strategic account book. The original kept this
// hardcoded; a CRM-backed version is a natural followup once VIP data
// lands in ClickUp.
var vipClients = map[string]struct {
	Name            string
	Contact         string
	LastInteraction string
	Status          string
}{
	"VIP-BIGCORP":  {"Big Corporation Inc.", "ceo@bigcorp.com", "2025-04-15", "Active"},
	"VIP-INNOVATE": {"Innovate Solutions Ltd.", "director@innovate.com", "2025-03-20", "Active"},
}

// NewCEO builds the strategic oversight agent.
func NewCEO() *Agent {
	return &Agent{
		id:          "ceo",
		name:        "CEO",
		role:        "Estratégia e supervisão",
		description: "Define a estratégia da agência, acompanha KPIs, avalia riscos e cuida de clientes VIP.",
		routes: []Route{
			{
				Keywords: []string{"estratégia", "estrategia"},
				Tool:     "build_strategy",
				Run:      runBuildStrategy,
			},
			{
				Keywords: []string{"kpi", "desempenho"},
				Tool:     "manage_kpi_dashboard",
				Run:      runKPIDashboard,
			},
			{
				Keywords: []string{"risco"},
				Tool:     "assess_risk",
				Run:      runAssessRisk,
			},
			{
				Keywords: []string{"cliente vip"},
				Tool:     "manage_client_vip",
				Run:      runManageClientVIP,
			},
		},
	}
}

func runBuildStrategy(_ context.Context, _ string, tc TaskContext) (string, any, error) {
	objective := tc.String("objective", "")
	focusArea := tc.String("focus_area", "")
	if objective == "" || focusArea == "" {
		return "", nil, validationErr("objective", "objective and focus_area are required")
	}

	var b strings.Builder
	b.WriteString("# Plano Estratégico - FSTech Consulting Agency\n\n")
	fmt.Fprintf(&b, "**Objetivo:** %s\n", objective)
	fmt.Fprintf(&b, "**Área de Foco:** %s\n\n", focusArea)
	b.WriteString("## Análise SWOT\n")
	b.WriteString("- **Forças:** Expertise técnica, Abordagem personalizada.\n")
	b.WriteString("- **Fraquezas:** Reconhecimento de marca limitado, Capacidade de escala.\n")
	b.WriteString("- **Oportunidades:** Crescente demanda por IA em PMEs, Novos nichos de mercado.\n")
	b.WriteString("- **Ameaças:** Concorrência acirrada, Mudanças tecnológicas rápidas.\n\n")
	b.WriteString("## Plano de Ação\n\n")
	b.WriteString("### Curto Prazo (Próximos 6 meses)\n")
	fmt.Fprintf(&b, "- [ ] Lançar campanha de marketing focada em %s.\n", focusArea)
	fmt.Fprintf(&b, "- [ ] Desenvolver 2 novos pacotes de serviço alinhados com %s.\n\n", objective)
	b.WriteString("### Médio Prazo (6-18 meses)\n")
	b.WriteString("- [ ] Explorar parcerias estratégicas.\n")
	b.WriteString("- [ ] Investir em treinamento da equipe.\n\n")
	b.WriteString("### Longo Prazo (18+ meses)\n")
	fmt.Fprintf(&b, "- [ ] Tornar-se referência em %s.\n", focusArea)
	b.WriteString("- [ ] Avaliar expansão geográfica.\n\n")
	b.WriteString("*Este é um esboço inicial. Detalhes adicionais serão desenvolvidos.*\n")
	return b.String(), nil, nil
}

func runKPIDashboard(_ context.Context, _ string, tc TaskContext) (string, any, error) {
	action := tc.String("action", "view_dashboard")
	if action != "view_dashboard" {
		return "", nil, validationErr("action", fmt.Sprintf("action %q is not supported, only view_dashboard", action))
	}

	var b strings.Builder
	b.WriteString("# Painel de KPIs - FSTech Consulting Agency\n\n")
	b.WriteString("**Período:** Últimos 30 dias\n\n")
	b.WriteString("## Aquisição & Vendas\n")
	b.WriteString("- **Leads Gerados:** 95\n")
	b.WriteString("- **Taxa de Conversão (Lead -> Cliente):** 9.8%\n\n")
	b.WriteString("## Operações\n")
	b.WriteString("- **Projetos Ativos:** 18\n")
	b.WriteString("- **Satisfação do Cliente (Média):** 4.6 / 5.0\n\n")
	b.WriteString("## Financeiro\n")
	b.WriteString("- **Receita Mensal Estimada:** R$ 32.500,00\n\n")
	b.WriteString("*Nota: Estes dados são consolidados do último fechamento.*\n")
	return b.String(), nil, nil
}

var riskMitigations = map[string][]string{
	"market_competition": {
		"Monitorar ações dos concorrentes.",
		"Diferenciar ofertas de serviço.",
		"Fortalecer relacionamento com clientes existentes.",
	},
	"operational_efficiency": {
		"Automatizar tarefas repetitivas.",
		"Revisar e otimizar fluxos de trabalho.",
		"Investir em treinamento da equipe.",
	},
	"financial_stability": {
		"Diversificar fontes de receita.",
		"Controlar custos operacionais.",
		"Manter reserva de caixa.",
	},
	"cybersecurity": {
		"Implementar autenticação multifator (MFA).",
		"Realizar backups regulares.",
		"Conduzir treinamentos de conscientização em segurança.",
	},
	"talent_retention": {
		"Oferecer pacotes de remuneração competitivos.",
		"Criar planos de carreira claros.",
		"Promover cultura de reconhecimento.",
	},
}

func runAssessRisk(_ context.Context, _ string, tc TaskContext) (string, any, error) {
	area := tc.String("area", "")
	mitigations, ok := riskMitigations[area]
	if !ok {
		valid := sortedKeys(riskMitigations)
		return "", nil, validationErr("area", fmt.Sprintf("invalid assessment area, valid areas: %s", strings.Join(valid, ", ")))
	}

	var b strings.Builder
	b.WriteString("# Avaliação de Risco\n\n")
	fmt.Fprintf(&b, "**Área:** %s\n", area)
	b.WriteString("**Nível de Risco Identificado:** Médio\n\n")
	b.WriteString("## Sugestões de Mitigação\n")
	for _, m := range mitigations {
		fmt.Fprintf(&b, "- %s\n", m)
	}
	return b.String(), nil, nil
}

func runManageClientVIP(_ context.Context, _ string, tc TaskContext) (string, any, error) {
	clientID := tc.String("client_id", "")
	action := tc.String("action", "view_details")
	if clientID == "" {
		return "", nil, validationErr("client_id", "client_id is required")
	}

	client, ok := vipClients[clientID]
	if !ok {
		return "", nil, validationErr("client_id", fmt.Sprintf("VIP client %s not found", clientID))
	}

	switch action {
	case "view_details":
		return fmt.Sprintf("Detalhes de %s (%s): Contato: %s, Última Interação: %s, Status: %s",
			clientID, client.Name, client.Contact, client.LastInteraction, client.Status), nil, nil
	case "log_interaction":
		return fmt.Sprintf("Interação registrada com sucesso para %s.", clientID), nil, nil
	case "update_contact":
		newContact := tc.String("new_contact", client.Contact)
		return fmt.Sprintf("Contato do cliente %s atualizado para %s.", clientID, newContact), nil, nil
	}
	return "", nil, validationErr("action", fmt.Sprintf("invalid action %q for VIP client management", action))
}
