package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
	"github.com/felipeOliveira-1/fstech-agency/internal/insight"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var proposalMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// RenderProposal builds the full proposal document: the commercial
// template followed by the financial analysis sections.
func RenderProposal(state *domain.PipelineState, proposal *domain.Proposal, timeline string) (string, error) {
	base, err := insight.BuildProposalMarkdown(insight.ProposalInput{
		ClientName:         state.ClientName,
		ClientCompany:      state.Company,
		ProblemDescription: state.Briefing.Challenge,
		ArchitectureSketch: state.Assessment.Sketch,
		Price:              proposal.Pricing.FormattedPrice,
		EstimatedTimeline:  timeline,
		Date:               state.UpdatedAt,
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(base)
	b.WriteString("\n## Análise de Retorno sobre Investimento\n\n")
	if proposal.ROI != nil {
		fmt.Fprintf(&b, "%s\n\n", proposal.ROI.AnalysisSummary)
	}
	if proposal.Payback != nil {
		fmt.Fprintf(&b, "%s\n\n", proposal.Payback.Summary)
	}
	if proposal.CostReduction != nil {
		fmt.Fprintf(&b, "%s\n\n", proposal.CostReduction.Summary)
	}
	if proposal.Benefits != nil {
		fmt.Fprintf(&b, "%s\n\n", proposal.Benefits.BenefitsSummary)
		fmt.Fprintf(&b, "Valor total projetado em 3 anos: %s\n", proposal.Benefits.TotalProjected3Year)
	}
	return b.String(), nil
}

// RenderProposalHTML converts the proposal markdown to HTML for email
// and web embedding.
func RenderProposalHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := proposalMarkdown.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
