package insight

import (
	"fmt"
	"strings"
	"time"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
)

// ProposalInput carries everything the commercial proposal template needs.
// Price and ArchitectureSketch come preformatted from the pricing
// calculator and the architecture scorer.
type ProposalInput struct {
	ClientName         string
	ClientCompany      string
	ProblemDescription string
	ArchitectureSketch string
	Price              string
	EstimatedTimeline  string
	Date               time.Time
}

// BuildProposalMarkdown renders the agency's commercial proposal document.
func BuildProposalMarkdown(in ProposalInput) (string, error) {
	missing := ""
	switch {
	case in.ClientName == "":
		missing = "client_name"
	case in.ClientCompany == "":
		missing = "client_company"
	case in.ProblemDescription == "":
		missing = "problem_description"
	case in.ArchitectureSketch == "":
		missing = "architecture_sketch"
	case in.Price == "":
		missing = "price"
	case in.EstimatedTimeline == "":
		missing = "estimated_timeline"
	}
	if missing != "" {
		return "", &domain.ErrValidation{Field: missing, Message: "required for the proposal document"}
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Proposta Comercial - %s\n\n", in.ClientCompany)
	fmt.Fprintf(&b, "**Data:** %s\n", date.Format("02/01/2006"))
	fmt.Fprintf(&b, "**Para:** %s (%s)\n", in.ClientName, in.ClientCompany)
	b.WriteString("**De:** FSTech Consulting Agency\n\n")

	b.WriteString("## 1. Entendimento do Desafio\n\n")
	fmt.Fprintf(&b, "Com base em nossa conversa e análise inicial, compreendemos que o principal desafio enfrentado por %s é:\n\n", in.ClientCompany)
	fmt.Fprintf(&b, "```\n%s\n```\n\n", in.ProblemDescription)

	b.WriteString("## 2. Solução Proposta\n\n")
	b.WriteString("Para endereçar este desafio, propomos a seguinte solução técnica:\n\n")
	b.WriteString("**Componentes Principais:**\n")
	b.WriteString(in.ArchitectureSketch)
	b.WriteString("\n\n")

	b.WriteString("## 3. Escopo e Entregáveis\n\n")
	b.WriteString("O escopo deste projeto inclui:\n\n")
	b.WriteString("*   Desenvolvimento e implementação dos componentes descritos acima.\n")
	b.WriteString("*   Testes e validação da solução.\n")
	b.WriteString("*   Treinamento inicial (se aplicável).\n")
	b.WriteString("*   Documentação técnica.\n\n")

	b.WriteString("## 4. Cronograma Estimado\n\n")
	fmt.Fprintf(&b, "Estimamos que o projeto levará aproximadamente **%s** para ser concluído, a partir da data de início acordada.\n\n", in.EstimatedTimeline)

	b.WriteString("## 5. Investimento\n\n")
	fmt.Fprintf(&b, "O investimento total para a implementação desta solução é de **%s**.\n\n", in.Price)

	b.WriteString("## 6. Próximos Passos\n\n")
	b.WriteString("Caso esta proposta seja aprovada, os próximos passos serão a assinatura do contrato e o agendamento da reunião de kickoff.\n\n")
	b.WriteString("Atenciosamente,\n\nEquipe FSTech Consulting Agency\n")

	return b.String(), nil
}
