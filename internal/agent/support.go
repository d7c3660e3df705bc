package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
	"github.com/felipeOliveira-1/fstech-agency/internal/port"
)

// NewAdministrativeSupport builds the back-office agent. Meetings go
// through the calendar port; subscriptions are repository-backed.
func NewAdministrativeSupport(scheduler port.Scheduler, subscriptions port.SubscriptionRepository) *Agent {
	return &Agent{
		id:          "suporte-administrativo",
		name:        "Suporte Administrativo",
		role:        "Operações e atendimento",
		description: "Atende dúvidas, agenda reuniões, acompanha assinaturas, coleta feedback e gera contratos.",
		routes: []Route{
			{
				Keywords: []string{"suporte", "pergunta", "dúvida"},
				Tool:     "handle_client_support_query",
				Run:      runSupportQuery,
			},
			{
				Keywords: []string{"agendar", "reunião", "marcar"},
				Tool:     "manage_appointment",
				Run:      appointmentTool(scheduler),
			},
			{
				Keywords: []string{"assinatura", "plano", "cobrança"},
				Tool:     "track_subscription",
				Run:      subscriptionTool(subscriptions),
			},
			{
				Keywords: []string{"feedback", "opinião", "classificação"},
				Tool:     "collect_feedback",
				Run:      runCollectFeedback,
			},
			{
				Keywords: []string{"contrato"},
				Tool:     "generate_contract",
				Run:      runGenerateContract,
			},
		},
	}
}

// supportAnswers maps query themes to canned first-line replies, like
// the original support bot.
var supportAnswers = []struct {
	keywords []string
	answer   string
}{
	{
		keywords: []string{"fatura", "cobrança", "pagamento"},
		answer:   "Sobre faturamento: as cobranças são emitidas no início de cada ciclo e o boleto segue por email. Posso encaminhar a segunda via se precisar.",
	},
	{
		keywords: []string{"prazo", "entrega", "cronograma"},
		answer:   "Sobre prazos: o cronograma atualizado do seu projeto está disponível com o Coordenador de Projetos; solicitei o envio da última versão para o seu email.",
	},
	{
		keywords: []string{"acesso", "senha", "login"},
		answer:   "Sobre acesso: enviamos um link de redefinição para o email cadastrado. Se não chegar em alguns minutos, verifique a caixa de spam.",
	},
}

func runSupportQuery(_ context.Context, task string, tc TaskContext) (string, any, error) {
	query := tc.String("query", task)
	lowered := strings.ToLower(query)
	for _, entry := range supportAnswers {
		for _, kw := range entry.keywords {
			if strings.Contains(lowered, kw) {
				return entry.answer, nil, nil
			}
		}
	}
	return "Recebemos sua solicitação e ela foi encaminhada ao consultor responsável. Retornaremos em até 1 dia útil.", nil, nil
}

func appointmentTool(scheduler port.Scheduler) Tool {
	return func(ctx context.Context, _ string, tc TaskContext) (string, any, error) {
		if scheduler == nil {
			return "", nil, &domain.ErrExternalService{
				Service: "calcom",
				Err:     fmt.Errorf("scheduler port is not configured"),
			}
		}
		start := tc.Time("start")
		if start.IsZero() {
			return "", nil, validationErr("start", "a meeting start time in RFC3339 is required")
		}

		booking, err := scheduler.BookMeeting(ctx, domain.BookingRequest{
			Title:        tc.String("subject", "Reunião FSTech"),
			InviteeName:  tc.String("invitee_name", ""),
			InviteeEmail: tc.String("invitee_email", ""),
			Start:        start,
			DurationMin:  tc.Int("duration_minutes", 30),
			Notes:        tc.String("notes", ""),
		})
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("Reunião %q agendada para %s (ID %s).",
			booking.Title, booking.Start.Format("02/01/2006 15:04"), booking.ID), booking, nil
	}
}

func subscriptionTool(subscriptions port.SubscriptionRepository) Tool {
	return func(ctx context.Context, _ string, tc TaskContext) (string, any, error) {
		if subscriptions == nil {
			return "", nil, validationErr("subscriptions", "subscription repository is not configured")
		}
		action := tc.String("action", "view_subscription")

		switch action {
		case "view_subscription":
			subscriptionID := tc.String("subscription_id", "")
			if subscriptionID == "" {
				clientID := tc.String("client_id", "")
				if clientID == "" {
					return "", nil, validationErr("subscription_id", "subscription_id or client_id is required")
				}
				list, err := subscriptions.ListByClient(ctx, clientID)
				if err != nil {
					return "", nil, err
				}
				if len(list) == 0 {
					return fmt.Sprintf("Nenhuma assinatura encontrada para o cliente %s.", clientID), list, nil
				}
				var b strings.Builder
				fmt.Fprintf(&b, "Assinaturas do cliente %s:\n", clientID)
				for _, s := range list {
					fmt.Fprintf(&b, "- [%s] %s — %s (R$ %.2f/mês)\n", s.ID, s.Service, s.Status, s.Amount)
				}
				return b.String(), list, nil
			}
			sub, err := subscriptions.Get(ctx, subscriptionID)
			if err != nil {
				return "", nil, err
			}
			return fmt.Sprintf("Assinatura %s: %s — %s, próxima cobrança em %s.",
				sub.ID, sub.Service, sub.Status, sub.NextBillingDate), sub, nil

		case "update_status":
			subscriptionID := tc.String("subscription_id", "")
			newStatus := tc.String("new_status", "")
			if subscriptionID == "" || newStatus == "" {
				return "", nil, validationErr("subscription_id", "subscription_id and new_status are required")
			}
			sub, err := subscriptions.UpdateStatus(ctx, subscriptionID, newStatus)
			if err != nil {
				return "", nil, err
			}
			return fmt.Sprintf("Assinatura %s atualizada para %q.", sub.ID, sub.Status), sub, nil
		}
		return "", nil, validationErr("action", fmt.Sprintf("invalid subscription action %q", action))
	}
}

func runCollectFeedback(_ context.Context, task string, tc TaskContext) (string, any, error) {
	clientID := tc.String("client_id", "")
	if clientID == "" {
		return "", nil, validationErr("client_id", "client_id is required")
	}
	feedback := tc.String("feedback_text", task)
	rating := tc.Int("rating", 0)

	msg := fmt.Sprintf("Feedback do cliente %s registrado: %q", clientID, feedback)
	if rating > 0 {
		msg += fmt.Sprintf(" (nota %d/5)", rating)
	}
	return msg + ". Obrigado pela contribuição!", nil, nil
}

func runGenerateContract(_ context.Context, _ string, tc TaskContext) (string, any, error) {
	clientCompany := tc.String("client_company", "")
	service := tc.String("service_description", "")
	price := tc.String("price", "")
	if clientCompany == "" || service == "" || price == "" {
		return "", nil, validationErr("client_company", "client_company, service_description and price are required")
	}

	var b strings.Builder
	b.WriteString("# Contrato de Prestação de Serviços\n\n")
	fmt.Fprintf(&b, "**Contratante:** %s\n", clientCompany)
	b.WriteString("**Contratada:** FSTech Consulting Agency\n")
	fmt.Fprintf(&b, "**Data:** %s\n\n", time.Now().Format("02/01/2006"))
	b.WriteString("## Objeto\n\n")
	fmt.Fprintf(&b, "%s\n\n", service)
	b.WriteString("## Valor e Condições de Pagamento\n\n")
	fmt.Fprintf(&b, "O valor total dos serviços é de **%s**, pagável 50%% na assinatura e 50%% na entrega.\n\n", price)
	b.WriteString("## Prazo e Rescisão\n\n")
	b.WriteString("O prazo de execução consta do cronograma anexo. Qualquer parte pode rescindir com aviso prévio de 30 dias.\n\n")
	b.WriteString("*Minuta gerada automaticamente; sujeita a revisão jurídica antes da assinatura.*\n")
	return b.String(), nil, nil
}
