package domain

// ============================================================
// Operational records kept behind repository ports
// ============================================================

// Project task statuses.
const (
	TaskStatusPending    = "Pendente"
	TaskStatusInProgress = "Em Andamento"
	TaskStatusDone       = "Concluída"
)

// ProjectTask is one task of an ongoing client project.
type ProjectTask struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	Description string `json:"description"`
	Assignee    string `json:"assignee,omitempty"`
	DueDate     string `json:"due_date,omitempty"` // YYYY-MM-DD
	Status      string `json:"status"`
}

// Subscription statuses.
const (
	SubscriptionActive    = "Ativa"
	SubscriptionSuspended = "Suspensa"
	SubscriptionCancelled = "Cancelada"
)

// Subscription is a recurring service contract with a client.
type Subscription struct {
	ID              string  `json:"id"`
	ClientID        string  `json:"client_id"`
	Service         string  `json:"service"`
	Status          string  `json:"status"`
	NextBillingDate string  `json:"next_billing_date,omitempty"` // YYYY-MM-DD, empty when cancelled
	Amount          float64 `json:"amount"`
}

// Content entry statuses.
const (
	ContentDraft     = "Draft"
	ContentScheduled = "Scheduled"
	ContentPublished = "Published"
)

// ContentEntry is one planned item on the marketing content calendar.
type ContentEntry struct {
	ID            string `json:"id"`
	Topic         string `json:"topic"`
	Channel       string `json:"channel"`
	Status        string `json:"status"`
	ScheduledDate string `json:"scheduled_date"` // YYYY-MM-DD
}
