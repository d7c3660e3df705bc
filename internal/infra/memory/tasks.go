// Package memory provides in-memory implementations of the repository
// ports. Each store is safe for concurrent use and holds no global
// state: construct a fresh store per process (or per test).
package memory

import (
	"context"
	"sync"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
	"github.com/google/uuid"
)

// TaskStore is an in-memory port.TaskRepository.
type TaskStore struct {
	mu    sync.RWMutex
	tasks map[string]domain.ProjectTask
}

// NewTaskStore creates an empty task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{tasks: make(map[string]domain.ProjectTask)}
}

// Create stores a new task. A missing ID is generated; a missing status
// defaults to pending.
func (s *TaskStore) Create(_ context.Context, task domain.ProjectTask) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if task.ID == "" {
		task.ID = "task-" + uuid.NewString()[:8]
	}
	if task.Status == "" {
		task.Status = domain.TaskStatusPending
	}
	s.tasks[task.ID] = task
	return task.ID, nil
}

// Assign sets the task's assignee, optionally updating the due date.
func (s *TaskStore) Assign(_ context.Context, taskID, assignee, dueDate string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return &domain.ErrNotFound{Resource: "task", ID: taskID}
	}
	task.Assignee = assignee
	if dueDate != "" {
		task.DueDate = dueDate
	}
	s.tasks[taskID] = task
	return nil
}

// Get returns a copy of the task.
func (s *TaskStore) Get(_ context.Context, taskID string) (*domain.ProjectTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return nil, &domain.ErrNotFound{Resource: "task", ID: taskID}
	}
	return &task, nil
}

// ListByProject returns the project's tasks.
func (s *TaskStore) ListByProject(_ context.Context, projectID string) ([]domain.ProjectTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.ProjectTask
	for _, task := range s.tasks {
		if task.ProjectID == projectID {
			out = append(out, task)
		}
	}
	return out, nil
}

// ListByAssignee returns the tasks assigned to one team member.
func (s *TaskStore) ListByAssignee(_ context.Context, assignee string) ([]domain.ProjectTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.ProjectTask
	for _, task := range s.tasks {
		if task.Assignee == assignee {
			out = append(out, task)
		}
	}
	return out, nil
}
