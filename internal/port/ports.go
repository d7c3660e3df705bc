// Package port defines the interfaces the agency's services depend on.
// Adapters live under internal/infra; tests substitute hand-written mocks.
package port

import (
	"context"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
)

// CRM is the customer relationship management collaborator (ClickUp).
type CRM interface {
	// CreateTask opens a task on the CRM list with the initial pipeline
	// status and returns its ID.
	CreateTask(ctx context.Context, name, description string, assigneeID int) (string, error)
	// UpdateStatus moves a task to the status identified by a key from
	// domain.CRMStatusNames.
	UpdateStatus(ctx context.Context, taskID, statusKey string) error
}

// Scheduler books meetings on the shared calendar (Cal.com).
type Scheduler interface {
	BookMeeting(ctx context.Context, req domain.BookingRequest) (*domain.Booking, error)
}

// TextGenerator produces free text from a prompt (OpenAI-compatible).
// The financial calculators never depend on this port; callers that use
// it must degrade gracefully when it is unconfigured.
type TextGenerator interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// TaskRepository stores project task assignments.
type TaskRepository interface {
	Create(ctx context.Context, task domain.ProjectTask) (string, error)
	Assign(ctx context.Context, taskID, assignee, dueDate string) error
	Get(ctx context.Context, taskID string) (*domain.ProjectTask, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.ProjectTask, error)
	ListByAssignee(ctx context.Context, assignee string) ([]domain.ProjectTask, error)
}

// SubscriptionRepository stores client service subscriptions.
type SubscriptionRepository interface {
	Get(ctx context.Context, subscriptionID string) (*domain.Subscription, error)
	ListByClient(ctx context.Context, clientID string) ([]domain.Subscription, error)
	UpdateStatus(ctx context.Context, subscriptionID, newStatus string) (*domain.Subscription, error)
}

// ContentCalendarRepository stores planned marketing content.
type ContentCalendarRepository interface {
	Add(ctx context.Context, entry domain.ContentEntry) (string, error)
	ListByDate(ctx context.Context, date string) ([]domain.ContentEntry, error)
	UpdateStatus(ctx context.Context, contentID, newStatus string) (*domain.ContentEntry, error)
}
