package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/felipeOliveira-1/fstech-agency/internal/insight"
	"github.com/felipeOliveira-1/fstech-agency/internal/port"
)

// MarketResearch is the market research tool's structured result. When
// the text-generation port is absent or fails, Status carries "fallback"
// and the fields hold conservative defaults.
type MarketResearch struct {
	Status        string   `json:"status"`
	PriceRange    string   `json:"price_range"`
	Timeline      string   `json:"timeline"`
	MarketFactors []string `json:"market_factors"`
}

// NewSoftwareArchitect builds the agent responsible for solution design.
// gen may be nil; market research then answers with defaults.
func NewSoftwareArchitect(gen port.TextGenerator) *Agent {
	return &Agent{
		id:          "arquiteto-de-software",
		name:        "Arquiteto de Software",
		role:        "Desenho técnico de soluções",
		description: "Projeta arquiteturas, avalia complexidade, audita segurança e pesquisa preços de mercado.",
		routes: []Route{
			{
				Keywords: []string{"arquitetura", "projetar sistema"},
				Tool:     "design_architecture_and_assess_complexity",
				Run:      runDesignArchitecture,
			},
			{
				Keywords: []string{"blueprint", "especificação api"},
				Tool:     "generate_api_blueprint",
				Run:      runAPIBlueprint,
			},
			{
				Keywords: []string{"escalabilidade", "teste de carga"},
				Tool:     "test_scalability",
				Run:      runScalabilityTest,
			},
			{
				Keywords: []string{"segurança", "auditoria"},
				Tool:     "perform_security_audit",
				Run:      runSecurityAudit,
			},
			{
				Keywords: []string{"pesquisa", "preço", "prazo", "mercado", "precificação"},
				Tool:     "research_market_prices",
				Run:      marketResearchTool(gen),
			},
		},
	}
}

func runDesignArchitecture(_ context.Context, _ string, tc TaskContext) (string, any, error) {
	requirements := tc.String("requirements_text", "")
	if requirements == "" {
		if list := tc.Strings("requirements"); len(list) > 0 {
			requirements = strings.Join(list, "\n")
		}
	}
	assessment, err := insight.AssessArchitecture(requirements)
	if err != nil {
		return "", nil, err
	}
	return assessment.Report, assessment, nil
}

func runAPIBlueprint(_ context.Context, _ string, tc TaskContext) (string, any, error) {
	apiName := tc.String("api_name", "API Padrão")
	resources := tc.Strings("resources")
	if len(resources) == 0 {
		resources = []string{"recurso"}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Blueprint de API - %s\n\n", apiName)
	b.WriteString("**Formato:** REST/JSON\n**Autenticação:** Bearer token\n\n## Recursos\n\n")
	for _, resource := range resources {
		slug := strings.ToLower(strings.ReplaceAll(resource, " ", "-"))
		fmt.Fprintf(&b, "### %s\n", resource)
		fmt.Fprintf(&b, "- `GET /%s` — lista registros.\n", slug)
		fmt.Fprintf(&b, "- `GET /%s/{id}` — consulta um registro.\n", slug)
		fmt.Fprintf(&b, "- `POST /%s` — cria um registro.\n", slug)
		fmt.Fprintf(&b, "- `PUT /%s/{id}` — atualiza um registro.\n", slug)
		fmt.Fprintf(&b, "- `DELETE /%s/{id}` — remove um registro.\n\n", slug)
	}
	if models, ok := tc["data_models"].(map[string]any); ok && len(models) > 0 {
		b.WriteString("## Modelos de Dados\n\n")
		for _, name := range sortedKeys(models) {
			fmt.Fprintf(&b, "- %s\n", name)
		}
	}
	return b.String(), nil, nil
}

func runScalabilityTest(_ context.Context, _ string, tc TaskContext) (string, any, error) {
	endpoint := tc.String("target_endpoint", "http://example.com/api")
	users := tc.Int("concurrent_users", 50)
	duration := tc.Int("duration_minutes", 2)

	// Plano de teste, não execução: a carga real roda fora do fluxo de
	// consultoria.
	var b strings.Builder
	b.WriteString("# Plano de Teste de Escalabilidade\n\n")
	fmt.Fprintf(&b, "**Endpoint Alvo:** %s\n", endpoint)
	fmt.Fprintf(&b, "**Usuários Concorrentes:** %d\n", users)
	fmt.Fprintf(&b, "**Duração:** %d minutos\n\n", duration)
	b.WriteString("## Cenários\n")
	fmt.Fprintf(&b, "1. Rampa gradual até %d usuários em 1/3 da duração.\n", users)
	fmt.Fprintf(&b, "2. Platô com %d usuários pelo restante do período.\n", users)
	b.WriteString("3. Pico de 2x os usuários por 60 segundos.\n\n")
	b.WriteString("## Critérios de Aceite\n")
	b.WriteString("- p95 de latência abaixo de 500ms durante o platô.\n")
	b.WriteString("- Taxa de erro abaixo de 1%.\n")
	b.WriteString("- Sem degradação de throughput após o pico.\n")
	return b.String(), nil, nil
}

func runSecurityAudit(_ context.Context, _ string, tc TaskContext) (string, any, error) {
	systemDesc := tc.String("target_system_description", "Sistema não descrito")
	focusAreas := tc.Strings("audit_focus")
	if len(focusAreas) == 0 {
		focusAreas = []string{"Geral"}
	}

	var b strings.Builder
	b.WriteString("# Checklist de Auditoria de Segurança\n\n")
	fmt.Fprintf(&b, "**Sistema:** %s\n", systemDesc)
	fmt.Fprintf(&b, "**Áreas de Foco:** %s\n\n", strings.Join(focusAreas, ", "))
	for _, area := range focusAreas {
		fmt.Fprintf(&b, "## %s\n", area)
		b.WriteString("- [ ] Autenticação e controle de acesso revisados.\n")
		b.WriteString("- [ ] Dados sensíveis criptografados em trânsito e em repouso.\n")
		b.WriteString("- [ ] Logs de auditoria habilitados e monitorados.\n")
		b.WriteString("- [ ] Dependências verificadas contra vulnerabilidades conhecidas.\n\n")
	}
	b.WriteString("*Checklist inicial; a auditoria completa exige acesso ao ambiente.*\n")
	return b.String(), nil, nil
}

var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

func marketResearchTool(gen port.TextGenerator) Tool {
	fallback := &MarketResearch{
		Status:        "fallback",
		PriceRange:    "R$ 8.000,00 - R$ 15.000,00",
		Timeline:      "4-8 semanas",
		MarketFactors: []string{"Valor baseado em estimativa padrão sem pesquisa de mercado"},
	}

	return func(ctx context.Context, _ string, tc TaskContext) (string, any, error) {
		description := tc.String("project_description", "Projeto não descrito")
		level := tc.String("complexity_level", "media")

		research := fallback
		if gen != nil {
			prompt := fmt.Sprintf(
				"Analise o mercado brasileiro para o projeto abaixo e responda apenas com JSON no formato "+
					`{"price_range": "R$ X - R$ Y", "timeline": "A-B semanas", "market_factors": ["fator 1", "fator 2"]}`+
					"\n\nDescrição do Projeto: %s\nNível de Complexidade: %s",
				description, level,
			)
			answer, err := gen.Complete(ctx,
				"Você é um especialista em pesquisa de mercado para projetos de tecnologia no Brasil.",
				prompt,
			)
			if err == nil {
				if match := jsonObjectRe.FindString(answer); match != "" {
					var parsed MarketResearch
					if jsonErr := json.Unmarshal([]byte(match), &parsed); jsonErr == nil && parsed.PriceRange != "" {
						parsed.Status = "success"
						research = &parsed
					}
				}
			}
		}

		output := fmt.Sprintf(
			"Pesquisa de mercado (complexidade %s): faixa de preço %s, prazo estimado %s.",
			level, research.PriceRange, research.Timeline,
		)
		return output, research, nil
	}
}
