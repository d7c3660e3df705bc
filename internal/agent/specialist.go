package agent

import (
	"context"
	"fmt"
	"strings"
)

// NewTechnicalSpecialist builds the hands-on implementation agent. Its
// tools produce deterministic execution plans for automation, LLM and
// integration work.
func NewTechnicalSpecialist() *Agent {
	return &Agent{
		id:          "especialista-tecnico",
		name:        "Especialista Técnico",
		role:        "Implementação de soluções",
		description: "Configura automações, ajusta modelos de linguagem, otimiza prompts e integra APIs.",
		routes: []Route{
			{
				Keywords: []string{"automação", "automatizar"},
				Tool:     "setup_automation",
				Run:      runSetupAutomation,
			},
			{
				Keywords: []string{"fine-tuning", "fine tune"},
				Tool:     "fine_tune_llm",
				Run:      runFineTuneLLM,
			},
			{
				Keywords: []string{"prompt"},
				Tool:     "optimize_prompt",
				Run:      runOptimizePrompt,
			},
			{
				Keywords: []string{"integrar api", "integração"},
				Tool:     "integrate_api",
				Run:      runIntegrateAPI,
			},
			{
				Keywords: []string{"configurar plataforma", "configuração"},
				Tool:     "configure_platform",
				Run:      runConfigurePlatform,
			},
		},
	}
}

func runSetupAutomation(_ context.Context, task string, tc TaskContext) (string, any, error) {
	platform := tc.String("platform", "Zapier")
	automationTask := tc.String("automation_task", task)

	var b strings.Builder
	fmt.Fprintf(&b, "# Plano de Automação - %s\n\n", platform)
	fmt.Fprintf(&b, "**Tarefa:** %s\n\n", automationTask)
	b.WriteString("## Passos\n")
	fmt.Fprintf(&b, "1. Mapear o gatilho e as ações na plataforma %s.\n", platform)
	b.WriteString("2. Configurar credenciais de acesso aos sistemas envolvidos.\n")
	b.WriteString("3. Construir o fluxo com tratamento de falhas e notificação.\n")
	b.WriteString("4. Testar com dados de exemplo antes de ativar.\n")
	b.WriteString("5. Ativar e monitorar as primeiras execuções.\n")
	return b.String(), nil, nil
}

func runFineTuneLLM(_ context.Context, _ string, tc TaskContext) (string, any, error) {
	baseModel := tc.String("base_model", "openai/gpt-3.5-turbo")
	datasetPath := tc.String("dataset_path", "")
	if datasetPath == "" {
		return "", nil, validationErr("dataset_path", "a training dataset path is required for fine-tuning")
	}

	var b strings.Builder
	b.WriteString("# Plano de Fine-Tuning\n\n")
	fmt.Fprintf(&b, "**Modelo Base:** %s\n", baseModel)
	fmt.Fprintf(&b, "**Dataset:** %s\n\n", datasetPath)
	b.WriteString("## Etapas\n")
	b.WriteString("1. Validar o formato do dataset (JSONL, pares prompt/completion).\n")
	b.WriteString("2. Separar conjunto de validação (10-20%).\n")
	b.WriteString("3. Executar o job de fine-tuning e acompanhar a perda.\n")
	b.WriteString("4. Avaliar o modelo resultante contra o conjunto de validação.\n")
	b.WriteString("5. Publicar o modelo e atualizar as integrações.\n")
	return b.String(), nil, nil
}

func runOptimizePrompt(_ context.Context, task string, tc TaskContext) (string, any, error) {
	original := tc.String("original_prompt", task)
	taskType := tc.String("task_type", "Geral")

	var b strings.Builder
	b.WriteString("# Prompt Otimizado\n\n")
	fmt.Fprintf(&b, "**Tipo de Tarefa:** %s\n\n", taskType)
	b.WriteString("**Prompt Original:**\n")
	fmt.Fprintf(&b, "```\n%s\n```\n\n", original)
	b.WriteString("**Recomendações Aplicadas:**\n")
	b.WriteString("- Definir papel e contexto explícitos no início.\n")
	b.WriteString("- Especificar o formato de saída esperado.\n")
	b.WriteString("- Incluir um exemplo de entrada/saída quando o formato for rígido.\n")
	b.WriteString("- Delimitar o conteúdo variável com marcadores claros.\n")
	return b.String(), nil, nil
}

func runIntegrateAPI(_ context.Context, _ string, tc TaskContext) (string, any, error) {
	source := tc.String("source_api", "API de origem")
	target := tc.String("target_system", "sistema de destino")

	var b strings.Builder
	b.WriteString("# Plano de Integração de API\n\n")
	fmt.Fprintf(&b, "**Origem:** %s\n**Destino:** %s\n\n", source, target)
	b.WriteString("## Etapas\n")
	b.WriteString("1. Levantar autenticação e limites de taxa das duas pontas.\n")
	b.WriteString("2. Definir o mapeamento de campos entre origem e destino.\n")
	b.WriteString("3. Implementar o conector com retentativas e fila de erros.\n")
	b.WriteString("4. Validar com carga de homologação antes do corte.\n")
	return b.String(), nil, nil
}

func runConfigurePlatform(_ context.Context, _ string, tc TaskContext) (string, any, error) {
	platform := tc.String("platform_name", "Salesforce")

	var b strings.Builder
	fmt.Fprintf(&b, "# Configuração de Plataforma - %s\n\n", platform)
	b.WriteString("## Checklist\n")
	b.WriteString("- [ ] Usuários e perfis de acesso criados.\n")
	b.WriteString("- [ ] Campos e objetos customizados definidos.\n")
	b.WriteString("- [ ] Fluxos de trabalho e notificações configurados.\n")
	b.WriteString("- [ ] Integrações com sistemas existentes testadas.\n")
	b.WriteString("- [ ] Ambiente de produção validado com dados reais.\n")
	return b.String(), nil, nil
}
