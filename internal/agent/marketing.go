package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
	"github.com/felipeOliveira-1/fstech-agency/internal/port"
)

// NewMarketingManager builds the digital marketing agent. Lead creation
// goes through the CRM port; the content calendar is repository-backed.
func NewMarketingManager(crm port.CRM, calendar port.ContentCalendarRepository) *Agent {
	return &Agent{
		id:          "gerente-de-marketing",
		name:        "Gerente de Marketing Digital",
		role:        "Aquisição e conteúdo",
		description: "Cria leads no CRM, gerencia o calendário de conteúdo, posts, campanhas e SEO.",
		routes: []Route{
			{
				Keywords: []string{"criar lead", "registrar lead", "novo lead crm"},
				Tool:     "create_crm_lead",
				Run:      crmLeadTool(crm),
			},
			{
				Keywords: []string{"calendário", "agendar conteúdo"},
				Tool:     "manage_content_calendar",
				Run:      contentCalendarTool(calendar),
			},
			{
				Keywords: []string{"post", "mídia social", "social media"},
				Tool:     "generate_social_media_post",
				Run:      runSocialMediaPost,
			},
			{
				Keywords: []string{"campanha", "anúncio", "ads"},
				Tool:     "launch_ad_campaign",
				Run:      runAdCampaign,
			},
			{
				Keywords: []string{"seo", "otimizar"},
				Tool:     "optimize_seo",
				Run:      runSEOReview,
			},
		},
	}
}

func crmLeadTool(crm port.CRM) Tool {
	return func(ctx context.Context, _ string, tc TaskContext) (string, any, error) {
		if crm == nil {
			return "", nil, &domain.ErrExternalService{
				Service: "clickup",
				Err:     fmt.Errorf("CRM port is not configured"),
			}
		}
		leadName := tc.String("lead_name", "Lead Desconhecido")
		description := tc.String("description", "")

		taskID, err := crm.CreateTask(ctx, leadName, description, tc.Int("assignee_id", 0))
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("Lead %q criado no CRM com ID %s.", leadName, taskID),
			&domain.CRMTask{ID: taskID, Name: leadName, Status: domain.StatusOpportunityIdentified},
			nil
	}
}

func contentCalendarTool(calendar port.ContentCalendarRepository) Tool {
	return func(ctx context.Context, _ string, tc TaskContext) (string, any, error) {
		if calendar == nil {
			return "", nil, validationErr("calendar", "content calendar repository is not configured")
		}
		action := tc.String("action", "add_item")
		date := tc.String("date", time.Now().Format("2006-01-02"))

		switch action {
		case "add_item":
			entry := domain.ContentEntry{
				Topic:         tc.String("topic", "Tópico Padrão"),
				Channel:       tc.String("channel", "Blog"),
				ScheduledDate: date,
			}
			id, err := calendar.Add(ctx, entry)
			if err != nil {
				return "", nil, err
			}
			entry.ID = id
			entry.Status = domain.ContentDraft
			return fmt.Sprintf("Conteúdo %q agendado para %s no canal %s (ID %s).", entry.Topic, date, entry.Channel, id), entry, nil

		case "view_items":
			entries, err := calendar.ListByDate(ctx, date)
			if err != nil {
				return "", nil, err
			}
			if len(entries) == 0 {
				return fmt.Sprintf("Nenhum conteúdo agendado para %s.", date), entries, nil
			}
			var b strings.Builder
			fmt.Fprintf(&b, "Conteúdos agendados para %s:\n", date)
			for _, e := range entries {
				fmt.Fprintf(&b, "- [%s] %s (%s) — %s\n", e.ID, e.Topic, e.Channel, e.Status)
			}
			return b.String(), entries, nil

		case "update_status":
			contentID := tc.String("content_id", "")
			newStatus := tc.String("new_status", domain.ContentScheduled)
			if contentID == "" {
				return "", nil, validationErr("content_id", "content_id is required to update a calendar entry")
			}
			entry, err := calendar.UpdateStatus(ctx, contentID, newStatus)
			if err != nil {
				return "", nil, err
			}
			return fmt.Sprintf("Conteúdo %s atualizado para status %q.", contentID, entry.Status), entry, nil
		}
		return "", nil, validationErr("action", fmt.Sprintf("invalid calendar action %q", action))
	}
}

func runSocialMediaPost(_ context.Context, _ string, tc TaskContext) (string, any, error) {
	topic := tc.String("topic", "Tópico Genérico")
	channel := tc.String("channel", "LinkedIn")
	audience := tc.String("target_audience", "Geral")
	tone := tc.String("tone", "Informativo")

	var b strings.Builder
	fmt.Fprintf(&b, "# Post para %s\n\n", channel)
	fmt.Fprintf(&b, "**Tema:** %s\n**Público:** %s\n**Tom:** %s\n\n", topic, audience, tone)
	fmt.Fprintf(&b, "Você sabia que %s pode transformar a operação da sua empresa? ", strings.ToLower(topic))
	b.WriteString("Na FSTech ajudamos PMEs a sair do diagnóstico para a implementação em semanas, não meses. ")
	b.WriteString("Quer entender o que isso significa para o seu negócio? Fale com a gente.\n\n")
	fmt.Fprintf(&b, "#%s #TransformaçãoDigital #FSTech\n", hashtagFor(topic))
	return b.String(), nil, nil
}

func hashtagFor(topic string) string {
	var b strings.Builder
	for _, word := range strings.Fields(topic) {
		runes := []rune(word)
		b.WriteString(strings.ToUpper(string(runes[0])))
		b.WriteString(string(runes[1:]))
	}
	return b.String()
}

func runAdCampaign(_ context.Context, _ string, tc TaskContext) (string, any, error) {
	platform := tc.String("platform", "Google Ads")
	name := tc.String("campaign_name", "Campanha Padrão")
	budget := tc.Float("budget", 100.0)

	var b strings.Builder
	b.WriteString("# Plano de Campanha\n\n")
	fmt.Fprintf(&b, "**Plataforma:** %s\n**Campanha:** %s\n**Orçamento Diário:** R$ %.2f\n\n", platform, name, budget)
	b.WriteString("## Estrutura\n")
	b.WriteString("1. Grupo de anúncios por persona (decisor técnico, decisor financeiro).\n")
	b.WriteString("2. Criativos A/B com foco em dor e em resultado.\n")
	b.WriteString("3. Página de destino com formulário de diagnóstico gratuito.\n\n")
	b.WriteString("## Métricas de Acompanhamento\n")
	b.WriteString("- CPL alvo, taxa de conversão da página, CTR por criativo.\n")
	return b.String(), nil, nil
}

func runSEOReview(_ context.Context, _ string, tc TaskContext) (string, any, error) {
	url := tc.String("content_url", "http://example.com")
	keywords := tc.Strings("target_keywords")
	if len(keywords) == 0 {
		keywords = []string{"tecnologia"}
	}

	var b strings.Builder
	b.WriteString("# Revisão de SEO\n\n")
	fmt.Fprintf(&b, "**URL:** %s\n", url)
	fmt.Fprintf(&b, "**Palavras-chave Alvo:** %s\n\n", strings.Join(keywords, ", "))
	b.WriteString("## Recomendações\n")
	fmt.Fprintf(&b, "- Incluir %q no título e na meta description.\n", keywords[0])
	b.WriteString("- Estruturar o conteúdo com H2/H3 cobrindo as variações das palavras-chave.\n")
	b.WriteString("- Adicionar links internos para páginas de serviço relacionadas.\n")
	b.WriteString("- Comprimir imagens e revisar Core Web Vitals.\n")
	return b.String(), nil, nil
}
