package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
	"github.com/felipeOliveira-1/fstech-agency/internal/infra/cache"
	"github.com/felipeOliveira-1/fstech-agency/internal/infra/observability"
	"github.com/felipeOliveira-1/fstech-agency/internal/port"

	"go.uber.org/zap"
)

type mockCRM struct {
	createErr error
	updateErr error
	statuses  []string
}

func (m *mockCRM) CreateTask(_ context.Context, _, _ string, _ int) (string, error) {
	if m.createErr != nil {
		return "", m.createErr
	}
	return "crm-task-1", nil
}

func (m *mockCRM) UpdateStatus(_ context.Context, _, statusKey string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.statuses = append(m.statuses, statusKey)
	return nil
}

type mockScheduler struct {
	booking *domain.Booking
	err     error
}

func (m *mockScheduler) BookMeeting(_ context.Context, req domain.BookingRequest) (*domain.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.booking != nil {
		return m.booking, nil
	}
	return &domain.Booking{ID: "99", Title: req.Title, Start: req.Start, Status: "ACCEPTED"}, nil
}

type mockGenerator struct {
	answer string
	err    error
}

func (m *mockGenerator) Complete(_ context.Context, _, _ string) (string, error) {
	return m.answer, m.err
}

func newTestPipeline(crm *mockCRM, sched *mockScheduler, gen port.TextGenerator) (*Pipeline, *cache.InMemory[domain.PipelineState]) {
	states := cache.New[domain.PipelineState](time.Hour)
	p := NewPipeline(crm, sched, gen, states, zap.NewNop(), observability.NewMetrics())
	return p, states
}

const sampleBriefing = "Nossa loja online sofre com processo manual e lento de faturamento. " +
	"Precisamos de uma api rest integrada ao banco de dados com dashboard de indicadores e autenticação."

func TestCreateLead(t *testing.T) {
	crm := &mockCRM{}
	p, _ := newTestPipeline(crm, &mockScheduler{}, nil)

	state, err := p.CreateLead(context.Background(), LeadRequest{
		ClientName:  "João Silva",
		ClientEmail: "joao@empresa.com.br",
		Company:     "Empresa Exemplo Ltda",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Status != domain.StatusOpportunityIdentified {
		t.Errorf("expected initial status, got %s", state.Status)
	}
	if state.CRMTaskID != "crm-task-1" {
		t.Errorf("expected CRM task id, got %s", state.CRMTaskID)
	}
	if state.ID == "" {
		t.Error("expected generated pipeline id")
	}

	got, err := p.Get(context.Background(), state.ID)
	if err != nil {
		t.Fatalf("state not cached: %v", err)
	}
	if got.Company != "Empresa Exemplo Ltda" {
		t.Errorf("unexpected company: %s", got.Company)
	}
}

func TestCreateLead_Validation(t *testing.T) {
	p, _ := newTestPipeline(&mockCRM{}, &mockScheduler{}, nil)

	_, err := p.CreateLead(context.Background(), LeadRequest{ClientName: "Só Nome"})
	var vErr *domain.ErrValidation
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestGet_Missing(t *testing.T) {
	p, _ := newTestPipeline(&mockCRM{}, &mockScheduler{}, nil)

	_, err := p.Get(context.Background(), "nao-existe")
	var notFound *domain.ErrNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestScheduleMeeting(t *testing.T) {
	crm := &mockCRM{}
	p, _ := newTestPipeline(crm, &mockScheduler{}, nil)

	state, _ := p.CreateLead(context.Background(), LeadRequest{
		ClientName: "Maria", ClientEmail: "maria@x.com", Company: "X Ltda",
	})

	start := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)
	updated, err := p.ScheduleMeeting(context.Background(), state.ID, start, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.StatusMeetingScheduled {
		t.Errorf("expected reuniao_agendada, got %s", updated.Status)
	}
	if updated.Booking == nil || updated.Booking.ID != "99" {
		t.Errorf("booking not recorded: %+v", updated.Booking)
	}
	if len(crm.statuses) != 1 || crm.statuses[0] != domain.StatusMeetingScheduled {
		t.Errorf("CRM status not updated: %v", crm.statuses)
	}
}

func TestAnalyzeBriefing_HeuristicFallback(t *testing.T) {
	p, _ := newTestPipeline(&mockCRM{}, &mockScheduler{}, nil)
	state, _ := p.CreateLead(context.Background(), LeadRequest{
		ClientName: "Maria", ClientEmail: "maria@x.com", Company: "X Ltda",
	})

	updated, err := p.AnalyzeBriefing(context.Background(), state.ID, sampleBriefing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Briefing.Industry != "Varejo" {
		t.Errorf("expected Varejo from 'loja', got %s", updated.Briefing.Industry)
	}
	if updated.Briefing.Challenge == "" {
		t.Error("expected challenge extracted from first sentence")
	}
	if updated.Assessment == nil || updated.Assessment.TotalScore == 0 {
		t.Errorf("expected architecture assessment, got %+v", updated.Assessment)
	}
	if updated.Status != domain.StatusMeetingHeld {
		t.Errorf("expected reuniao_realizada, got %s", updated.Status)
	}
}

func TestAnalyzeBriefing_GeneratorExtraction(t *testing.T) {
	gen := &mockGenerator{answer: "Setor: Finanças\nDesafio: Automatizar a conciliação bancária"}
	p, _ := newTestPipeline(&mockCRM{}, &mockScheduler{}, gen)
	state, _ := p.CreateLead(context.Background(), LeadRequest{
		ClientName: "Maria", ClientEmail: "maria@x.com", Company: "X Ltda",
	})

	updated, err := p.AnalyzeBriefing(context.Background(), state.ID, sampleBriefing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Briefing.Industry != "Finanças" {
		t.Errorf("expected generator industry, got %s", updated.Briefing.Industry)
	}
	if updated.Briefing.Challenge != "Automatizar a conciliação bancária" {
		t.Errorf("expected generator challenge, got %q", updated.Briefing.Challenge)
	}
}

func TestAnalyzeBriefing_GeneratorErrorFallsBack(t *testing.T) {
	gen := &mockGenerator{err: errors.New("timeout")}
	p, _ := newTestPipeline(&mockCRM{}, &mockScheduler{}, gen)
	state, _ := p.CreateLead(context.Background(), LeadRequest{
		ClientName: "Maria", ClientEmail: "maria@x.com", Company: "X Ltda",
	})

	updated, err := p.AnalyzeBriefing(context.Background(), state.ID, sampleBriefing)
	if err != nil {
		t.Fatalf("expected heuristics fallback, got error: %v", err)
	}
	if updated.Briefing.Industry != "Varejo" {
		t.Errorf("expected heuristic industry, got %s", updated.Briefing.Industry)
	}
}

func TestComposeProposal(t *testing.T) {
	crm := &mockCRM{}
	p, _ := newTestPipeline(crm, &mockScheduler{}, nil)
	state, _ := p.CreateLead(context.Background(), LeadRequest{
		ClientName: "João Silva", ClientEmail: "joao@x.com", Company: "Empresa Exemplo Ltda",
	})
	if _, err := p.AnalyzeBriefing(context.Background(), state.ID, sampleBriefing); err != nil {
		t.Fatalf("briefing: %v", err)
	}

	updated, err := p.ComposeProposal(context.Background(), state.ID, ProposalOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	proposal := updated.Proposal
	if proposal == nil {
		t.Fatal("expected composed proposal")
	}
	if proposal.Pricing.FinalPrice <= 0 {
		t.Errorf("expected priced engagement, got %v", proposal.Pricing.FinalPrice)
	}
	if proposal.ROI == nil || proposal.Payback == nil || proposal.CostReduction == nil || proposal.Benefits == nil {
		t.Fatalf("expected all financial sections, got %+v", proposal)
	}
	if !strings.Contains(proposal.Markdown, "Proposta Comercial - Empresa Exemplo Ltda") {
		t.Errorf("proposal markdown missing title:\n%s", proposal.Markdown[:200])
	}
	if !strings.Contains(proposal.Markdown, "Análise de Retorno sobre Investimento") {
		t.Error("proposal markdown missing financial section")
	}
	if !strings.Contains(proposal.HTML, "<h1") {
		t.Errorf("expected rendered HTML, got %q", proposal.HTML[:min(len(proposal.HTML), 100)])
	}
	if updated.Status != domain.StatusProposalSent {
		t.Errorf("expected proposta_enviada, got %s", updated.Status)
	}
	if crm.statuses[len(crm.statuses)-1] != domain.StatusProposalSent {
		t.Errorf("CRM not moved to proposta_enviada: %v", crm.statuses)
	}
}

func TestComposeProposal_RequiresBriefing(t *testing.T) {
	p, _ := newTestPipeline(&mockCRM{}, &mockScheduler{}, nil)
	state, _ := p.CreateLead(context.Background(), LeadRequest{
		ClientName: "Maria", ClientEmail: "m@x.com", Company: "X",
	})

	_, err := p.ComposeProposal(context.Background(), state.ID, ProposalOptions{})
	var conflict *domain.ErrConflict
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestAdvance_WalksToCompletion(t *testing.T) {
	crm := &mockCRM{}
	p, _ := newTestPipeline(crm, &mockScheduler{}, nil)
	state, _ := p.CreateLead(context.Background(), LeadRequest{
		ClientName: "Maria", ClientEmail: "m@x.com", Company: "X",
	})

	want := []string{
		domain.StatusContactMade,
		domain.StatusMeetingScheduled,
		domain.StatusMeetingHeld,
		domain.StatusProposalSent,
		domain.StatusAwaitingResponse,
		domain.StatusProposalAccepted,
		domain.StatusSaleClosed,
		domain.StatusProjectInProgress,
		domain.StatusProjectCompleted,
	}
	for _, expected := range want {
		updated, err := p.Advance(context.Background(), state.ID)
		if err != nil {
			t.Fatalf("advance to %s: %v", expected, err)
		}
		if updated.Status != expected {
			t.Fatalf("expected %s, got %s", expected, updated.Status)
		}
	}

	_, err := p.Advance(context.Background(), state.ID)
	var conflict *domain.ErrConflict
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ErrConflict at the end of the flow, got %v", err)
	}
}

func TestInferIndustry(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Somos uma fintech de crédito", "Finanças"},
		{"Rede de clínicas odontológicas", "Saúde"},
		{"Temos uma fábrica de autopeças", "Manufatura"},
		{"Plataforma de software B2B", "Tecnologia"},
	}
	for _, tt := range tests {
		if got := inferIndustry(tt.text); got != tt.want {
			t.Errorf("inferIndustry(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestAuthenticator_IssueAndVerify(t *testing.T) {
	hash, err := HashAPIKey("chave-super-secreta")
	if err != nil {
		t.Fatalf("hashing: %v", err)
	}
	auth := NewAuthenticator(hash, "assinatura-jwt", time.Hour)

	token, err := auth.IssueToken("chave-super-secreta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := auth.VerifyToken(token); err != nil {
		t.Errorf("expected valid token, got %v", err)
	}
}

func TestAuthenticator_RejectsWrongKey(t *testing.T) {
	hash, _ := HashAPIKey("chave-correta")
	auth := NewAuthenticator(hash, "assinatura-jwt", time.Hour)

	_, err := auth.IssueToken("chave-errada")
	var unauthorized *domain.ErrUnauthorized
	if !errors.As(err, &unauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthenticator_RejectsExpiredToken(t *testing.T) {
	hash, _ := HashAPIKey("chave")
	auth := NewAuthenticator(hash, "assinatura-jwt", time.Minute)

	auth.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := auth.IssueToken("chave")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	auth.now = time.Now
	var unauthorized *domain.ErrUnauthorized
	if err := auth.VerifyToken(token); !errors.As(err, &unauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
}

func TestAuthenticator_RejectsTamperedToken(t *testing.T) {
	hash, _ := HashAPIKey("chave")
	auth := NewAuthenticator(hash, "assinatura-jwt", time.Hour)
	other := NewAuthenticator(hash, "outra-assinatura", time.Hour)

	token, _ := other.IssueToken("chave")
	var unauthorized *domain.ErrUnauthorized
	if err := auth.VerifyToken(token); !errors.As(err, &unauthorized) {
		t.Fatalf("expected ErrUnauthorized for wrong signature, got %v", err)
	}
}
