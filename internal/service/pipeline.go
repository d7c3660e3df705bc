// Package service holds the application services: the sales pipeline
// orchestrator, proposal rendering and API authentication.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
	"github.com/felipeOliveira-1/fstech-agency/internal/finance"
	"github.com/felipeOliveira-1/fstech-agency/internal/infra/cache"
	"github.com/felipeOliveira-1/fstech-agency/internal/infra/observability"
	"github.com/felipeOliveira-1/fstech-agency/internal/insight"
	"github.com/felipeOliveira-1/fstech-agency/internal/port"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("service")

const pipelineCacheName = "pipeline"

var errNotConfigured = errors.New("collaborator not configured")

// pipelineFlow is the ordered status vocabulary a lead walks through.
// Stage operations may jump ahead (scheduling a meeting moves straight
// to reuniao_agendada); Advance moves one step at a time.
var pipelineFlow = []string{
	domain.StatusOpportunityIdentified,
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

// Per-complexity engagement defaults.
var (
	effortHoursByLevel = map[domain.Complexity]float64{
		domain.ComplexityLow:    40,
		domain.ComplexityMedium: 100,
		domain.ComplexityHigh:   180,
	}
	marginByLevel = map[domain.Complexity]float64{
		domain.ComplexityLow:    20,
		domain.ComplexityMedium: 30,
		domain.ComplexityHigh:   35,
	}
	timelineByLevel = map[domain.Complexity]string{
		domain.ComplexityLow:    "2-3 semanas",
		domain.ComplexityMedium: "4-6 semanas",
		domain.ComplexityHigh:   "8-12 semanas",
	}
)

// Pipeline drives a lead through the agency's sales flow. State lives in
// the TTL cache; the CRM remains the system of record.
type Pipeline struct {
	crm       port.CRM
	scheduler port.Scheduler
	generator port.TextGenerator
	states    *cache.InMemory[domain.PipelineState]
	logger    *zap.Logger
	metrics   *observability.Metrics
	now       func() time.Time
}

// NewPipeline wires the pipeline orchestrator. generator may be nil;
// briefing analysis then falls back to keyword heuristics.
func NewPipeline(
	crm port.CRM,
	scheduler port.Scheduler,
	generator port.TextGenerator,
	states *cache.InMemory[domain.PipelineState],
	logger *zap.Logger,
	metrics *observability.Metrics,
) *Pipeline {
	return &Pipeline{
		crm:       crm,
		scheduler: scheduler,
		generator: generator,
		states:    states,
		logger:    logger,
		metrics:   metrics,
		now:       time.Now,
	}
}

// LeadRequest is the intake for a new pipeline lead.
type LeadRequest struct {
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	Company     string `json:"company"`
	Description string `json:"description,omitempty"`
}

// CreateLead opens the CRM task and caches the initial pipeline state.
func (p *Pipeline) CreateLead(ctx context.Context, req LeadRequest) (*domain.PipelineState, error) {
	ctx, span := tracer.Start(ctx, "Pipeline.CreateLead")
	defer span.End()

	if req.ClientName == "" || req.Company == "" {
		return nil, &domain.ErrValidation{Field: "client_name", Message: "client name and company are required"}
	}

	if p.crm == nil {
		return nil, &domain.ErrExternalService{Service: "clickup", Err: errNotConfigured}
	}

	taskName := fmt.Sprintf("Lead - %s", req.Company)
	taskID, err := p.crm.CreateTask(ctx, taskName, req.Description, 0)
	if err != nil {
		p.metrics.IncrExternalError("clickup")
		return nil, err
	}

	now := p.now()
	state := domain.PipelineState{
		ID:          uuid.NewString(),
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		Company:     req.Company,
		CRMTaskID:   taskID,
		Status:      domain.StatusOpportunityIdentified,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	p.states.Set(state.ID, state)

	p.logger.Info("lead created",
		zap.String("pipeline_id", state.ID),
		zap.String("crm_task_id", taskID),
		zap.String("company", req.Company),
	)
	span.SetAttributes(attribute.String("pipeline.id", state.ID))
	return &state, nil
}

// Get returns the cached state of a pipeline.
func (p *Pipeline) Get(_ context.Context, id string) (*domain.PipelineState, error) {
	state, ok := p.states.Get(id)
	if !ok {
		p.metrics.IncrCacheMiss(pipelineCacheName)
		return nil, &domain.ErrNotFound{Resource: "pipeline", ID: id}
	}
	p.metrics.IncrCacheHit(pipelineCacheName)
	return &state, nil
}

// ScheduleMeeting books the diagnostic meeting and moves the CRM status.
func (p *Pipeline) ScheduleMeeting(ctx context.Context, id string, start time.Time, durationMin int) (*domain.PipelineState, error) {
	ctx, span := tracer.Start(ctx, "Pipeline.ScheduleMeeting")
	defer span.End()
	span.SetAttributes(attribute.String("pipeline.id", id))

	state, err := p.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.scheduler == nil {
		return nil, &domain.ErrExternalService{Service: "calcom", Err: errNotConfigured}
	}

	booking, err := p.scheduler.BookMeeting(ctx, domain.BookingRequest{
		Title:        fmt.Sprintf("FSTech Agency - Reunião com %s", state.ClientName),
		InviteeName:  state.ClientName,
		InviteeEmail: state.ClientEmail,
		Start:        start,
		DurationMin:  durationMin,
	})
	if err != nil {
		p.metrics.IncrExternalError("calcom")
		return nil, err
	}

	if err := p.moveCRM(ctx, state.CRMTaskID, domain.StatusMeetingScheduled); err != nil {
		return nil, err
	}

	state.Booking = booking
	state.Status = domain.StatusMeetingScheduled
	p.save(state)
	p.logger.Info("meeting scheduled",
		zap.String("pipeline_id", state.ID),
		zap.String("booking_id", booking.ID),
	)
	return state, nil
}

// AnalyzeBriefing extracts industry and challenge from the meeting notes
// and scores the solution complexity. The text-generation port refines
// the extraction when available; keyword heuristics back it up.
func (p *Pipeline) AnalyzeBriefing(ctx context.Context, id, rawText string) (*domain.PipelineState, error) {
	ctx, span := tracer.Start(ctx, "Pipeline.AnalyzeBriefing")
	defer span.End()
	span.SetAttributes(attribute.String("pipeline.id", id))

	if strings.TrimSpace(rawText) == "" {
		return nil, &domain.ErrValidation{Field: "briefing", Message: "briefing text must not be empty"}
	}

	state, err := p.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	briefing := p.extractBriefing(ctx, rawText)
	assessment, err := insight.AssessArchitecture(rawText)
	if err != nil {
		return nil, err
	}

	if err := p.moveCRM(ctx, state.CRMTaskID, domain.StatusMeetingHeld); err != nil {
		return nil, err
	}

	state.Briefing = briefing
	state.Assessment = assessment
	state.Status = domain.StatusMeetingHeld
	p.save(state)
	p.logger.Info("briefing analyzed",
		zap.String("pipeline_id", state.ID),
		zap.String("industry", briefing.Industry),
		zap.String("complexity", string(assessment.ComplexityLevel)),
	)
	return state, nil
}

// ProposalOptions override the engagement defaults derived from the
// complexity assessment. Zero values keep the defaults.
type ProposalOptions struct {
	EffortHours      float64 `json:"effort_hours,omitempty"`
	MarginPercentage float64 `json:"margin_percentage,omitempty"`
}

// ComposeProposal prices the engagement, fans out the financial
// calculators and renders the proposal document.
func (p *Pipeline) ComposeProposal(ctx context.Context, id string, opts ProposalOptions) (*domain.PipelineState, error) {
	ctx, span := tracer.Start(ctx, "Pipeline.ComposeProposal")
	defer span.End()
	span.SetAttributes(attribute.String("pipeline.id", id))

	state, err := p.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if state.Briefing == nil || state.Assessment == nil {
		return nil, &domain.ErrConflict{Message: "briefing must be analyzed before composing a proposal"}
	}

	level := state.Assessment.ComplexityLevel
	effort := opts.EffortHours
	if effort <= 0 {
		effort = effortHoursByLevel[level]
	}
	margin := opts.MarginPercentage
	if margin <= 0 {
		margin = marginByLevel[level]
	}

	quote, err := finance.CalculateProposalPrice(effort, level, margin, finance.BaseHourlyRateBRL)
	if err != nil {
		return nil, err
	}

	// Monthly benefit estimate follows the engagement sizing rule:
	// 15% of the initial investment per month.
	investment := quote.FinalPrice
	monthlyBenefits := investment * 0.15
	annual := monthlyBenefits * 12

	proposal := &domain.Proposal{Pricing: *quote}
	var g errgroup.Group
	g.Go(func() error {
		defer p.observeCalc("roi", p.now())
		roi, err := finance.CalculateROI(investment,
			[]float64{annual, annual * 1.2, annual * 1.3},
			finance.DefaultDiscountRate, finance.DefaultDurationYears)
		if err == nil {
			proposal.ROI = roi
		}
		return err
	})
	g.Go(func() error {
		defer p.observeCalc("payback", p.now())
		payback, err := finance.AnalyzePayback(investment, monthlyBenefits, true, finance.DefaultPaybackDiscount)
		if err == nil {
			proposal.Payback = payback
		}
		return err
	})
	g.Go(func() error {
		defer p.observeCalc("cost_reduction", p.now())
		proposal.CostReduction = finance.EstimateCostReduction(nil, nil, 12)
		return nil
	})
	g.Go(func() error {
		defer p.observeCalc("benefits", p.now())
		proposal.Benefits = insight.ProjectBenefits(
			state.Briefing.Challenge,
			state.Assessment.Sketch,
			state.Briefing.Industry,
			"Média",
		)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	timeline := timelineByLevel[level]
	markdown, err := RenderProposal(state, proposal, timeline)
	if err != nil {
		return nil, err
	}
	proposal.Markdown = markdown
	if html, err := RenderProposalHTML(markdown); err == nil {
		proposal.HTML = html
	}

	if err := p.moveCRM(ctx, state.CRMTaskID, domain.StatusProposalSent); err != nil {
		return nil, err
	}

	state.Proposal = proposal
	state.Status = domain.StatusProposalSent
	p.save(state)
	p.logger.Info("proposal composed",
		zap.String("pipeline_id", state.ID),
		zap.String("complexity", string(level)),
		zap.Float64("price", quote.FinalPrice),
	)
	return state, nil
}

// Advance moves the pipeline one step along the status vocabulary and
// mirrors the move to the CRM.
func (p *Pipeline) Advance(ctx context.Context, id string) (*domain.PipelineState, error) {
	ctx, span := tracer.Start(ctx, "Pipeline.Advance")
	defer span.End()
	span.SetAttributes(attribute.String("pipeline.id", id))

	state, err := p.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := nextStatus(state.Status)
	if err != nil {
		return nil, err
	}
	if err := p.moveCRM(ctx, state.CRMTaskID, next); err != nil {
		return nil, err
	}

	state.Status = next
	p.save(state)
	p.logger.Info("pipeline advanced",
		zap.String("pipeline_id", state.ID),
		zap.String("status", next),
	)
	return state, nil
}

func nextStatus(current string) (string, error) {
	for i, status := range pipelineFlow {
		if status != current {
			continue
		}
		if i == len(pipelineFlow)-1 {
			return "", &domain.ErrConflict{Message: "pipeline already reached projeto_concluido"}
		}
		return pipelineFlow[i+1], nil
	}
	return "", &domain.ErrConflict{Message: fmt.Sprintf("status %q is not part of the sales flow", current)}
}

// moveCRM mirrors a status change to the CRM task.
func (p *Pipeline) moveCRM(ctx context.Context, taskID, statusKey string) error {
	if p.crm == nil {
		return &domain.ErrExternalService{Service: "clickup", Err: errNotConfigured}
	}
	if err := p.crm.UpdateStatus(ctx, taskID, statusKey); err != nil {
		p.metrics.IncrExternalError("clickup")
		return err
	}
	return nil
}

func (p *Pipeline) save(state *domain.PipelineState) {
	state.UpdatedAt = p.now()
	p.states.Set(state.ID, *state)
}

func (p *Pipeline) observeCalc(name string, start time.Time) {
	p.metrics.RecordCalcDuration(name, time.Since(start))
}

// extractBriefing asks the text generator for industry and challenge,
// expecting "Setor:" and "Desafio:" lines, and falls back to keyword
// heuristics for anything the answer leaves open.
func (p *Pipeline) extractBriefing(ctx context.Context, rawText string) *domain.Briefing {
	briefing := &domain.Briefing{RawText: rawText}

	if p.generator != nil {
		answer, err := p.generator.Complete(ctx,
			"Você analisa briefings comerciais. Responda em exatamente duas linhas: 'Setor: <setor>' e 'Desafio: <principal desafio em uma frase>'.",
			rawText,
		)
		if err != nil {
			p.metrics.IncrExternalError("openai")
			p.logger.Warn("briefing extraction failed, using heuristics", zap.Error(err))
		} else {
			for _, line := range strings.Split(answer, "\n") {
				trimmed := strings.TrimSpace(line)
				lowered := strings.ToLower(trimmed)
				switch {
				case strings.HasPrefix(lowered, "setor:"):
					briefing.Industry = strings.TrimSpace(trimmed[len("setor:"):])
				case strings.HasPrefix(lowered, "desafio:"):
					briefing.Challenge = strings.TrimSpace(trimmed[len("desafio:"):])
				}
			}
		}
	}

	if briefing.Industry == "" {
		briefing.Industry = inferIndustry(rawText)
	}
	if briefing.Challenge == "" {
		briefing.Challenge = firstSentence(rawText)
	}
	return briefing
}

// industryHints is scanned in order; the first hit wins.
var industryHints = []struct {
	keywords []string
	industry string
}{
	{[]string{"banco", "fintech", "financeir", "crédito", "seguro"}, "Finanças"},
	{[]string{"clínica", "hospital", "saúde", "paciente"}, "Saúde"},
	{[]string{"loja", "varejo", "e-commerce", "ecommerce"}, "Varejo"},
	{[]string{"fábrica", "indústria", "manufatura", "produção"}, "Manufatura"},
	{[]string{"consultoria", "escritório", "serviço"}, "Serviços"},
}

func inferIndustry(text string) string {
	lowered := strings.ToLower(text)
	for _, hint := range industryHints {
		for _, kw := range hint.keywords {
			if strings.Contains(lowered, kw) {
				return hint.industry
			}
		}
	}
	return "Tecnologia"
}

func firstSentence(text string) string {
	trimmed := strings.TrimSpace(text)
	if idx := strings.IndexAny(trimmed, ".!?\n"); idx > 0 {
		trimmed = trimmed[:idx]
	}
	const maxLen = 200
	if runes := []rune(trimmed); len(runes) > maxLen {
		trimmed = string(runes[:maxLen])
	}
	return strings.TrimSpace(trimmed)
}
