package domain

import "time"

// Briefing is the analyzed intake of a sales conversation.
type Briefing struct {
	RawText   string `json:"raw_text"`
	Industry  string `json:"industry"`
	Challenge string `json:"challenge"`
}

// Proposal bundles the financial analysis behind a commercial proposal.
type Proposal struct {
	Pricing       PricingQuote         `json:"pricing"`
	ROI           *ROIResult           `json:"roi,omitempty"`
	Payback       *PaybackResult       `json:"payback,omitempty"`
	CostReduction *CostReductionResult `json:"cost_reduction,omitempty"`
	Benefits      *BenefitProjection   `json:"benefits,omitempty"`
	Markdown      string               `json:"markdown"`
	HTML          string               `json:"html,omitempty"`
}

// PipelineState is the full state of one lead moving through the sales flow.
// The CRM remains the system of record; this state is a working copy kept
// in the TTL cache.
type PipelineState struct {
	ID          string                `json:"id"`
	ClientName  string                `json:"client_name"`
	ClientEmail string                `json:"client_email"`
	Company     string                `json:"company"`
	CRMTaskID   string                `json:"crm_task_id"`
	Status      string                `json:"status"`
	Booking     *Booking              `json:"booking,omitempty"`
	Briefing    *Briefing             `json:"briefing,omitempty"`
	Assessment  *ComplexityAssessment `json:"assessment,omitempty"`
	Proposal    *Proposal             `json:"proposal,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}
