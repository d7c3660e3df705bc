package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
	"github.com/felipeOliveira-1/fstech-agency/internal/infra/memory"
)

func TestTaskStore_CreateAndAssign(t *testing.T) {
	store := memory.NewTaskStore()
	ctx := context.Background()

	id, err := store.Create(ctx, domain.ProjectTask{
		ProjectID:   "PROJ-AI-IMPL",
		Description: "Configurar ambiente de desenvolvimento",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Fatal("expected a generated task ID")
	}

	task, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Status != domain.TaskStatusPending {
		t.Errorf("new tasks should start pending, got %q", task.Status)
	}

	if err := store.Assign(ctx, id, "especialista@fstech.example.com", "2025-06-15"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byAssignee, err := store.ListByAssignee(ctx, "especialista@fstech.example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byAssignee) != 1 || byAssignee[0].DueDate != "2025-06-15" {
		t.Errorf("unexpected assignee listing: %+v", byAssignee)
	}

	byProject, err := store.ListByProject(ctx, "PROJ-AI-IMPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byProject) != 1 {
		t.Errorf("expected 1 project task, got %d", len(byProject))
	}
}

func TestTaskStore_AssignMissing(t *testing.T) {
	store := memory.NewTaskStore()

	err := store.Assign(context.Background(), "task-nope", "a@b.c", "")
	var nf *domain.ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSubscriptionStore_CancelClearsBilling(t *testing.T) {
	store := memory.NewSubscriptionStore(domain.Subscription{
		ID:              "sub-123",
		ClientID:        "VIP-BIGCORP",
		Service:         "Plano Premium IA",
		Status:          domain.SubscriptionActive,
		NextBillingDate: "2025-06-01",
		Amount:          5000,
	})
	ctx := context.Background()

	sub, err := store.UpdateStatus(ctx, "sub-123", domain.SubscriptionCancelled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.NextBillingDate != "" {
		t.Errorf("cancelling should clear the billing date, got %q", sub.NextBillingDate)
	}

	listed, err := store.ListByClient(ctx, "VIP-BIGCORP")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed) != 1 || listed[0].Status != domain.SubscriptionCancelled {
		t.Errorf("unexpected listing: %+v", listed)
	}
}

func TestContentCalendarStore(t *testing.T) {
	store := memory.NewContentCalendarStore()
	ctx := context.Background()

	id, err := store.Add(ctx, domain.ContentEntry{
		Topic:         "Benefícios da IA para PMEs",
		Channel:       "Blog",
		ScheduledDate: "2025-05-10",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := store.ListByDate(ctx, "2025-05-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].Status != domain.ContentDraft {
		t.Errorf("unexpected entries: %+v", entries)
	}

	updated, err := store.UpdateStatus(ctx, id, domain.ContentPublished)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.ContentPublished {
		t.Errorf("expected published, got %q", updated.Status)
	}

	empty, err := store.ListByDate(ctx, "2025-05-11")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected empty date, got %+v", empty)
	}
}
