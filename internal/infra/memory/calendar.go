package memory

import (
	"context"
	"sync"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
	"github.com/google/uuid"
)

// ContentCalendarStore is an in-memory port.ContentCalendarRepository.
type ContentCalendarStore struct {
	mu      sync.RWMutex
	entries map[string]domain.ContentEntry
	byDate  map[string][]string
}

// NewContentCalendarStore creates an empty content calendar.
func NewContentCalendarStore() *ContentCalendarStore {
	return &ContentCalendarStore{
		entries: make(map[string]domain.ContentEntry),
		byDate:  make(map[string][]string),
	}
}

// Add schedules a content item. New items start as drafts.
func (s *ContentCalendarStore) Add(_ context.Context, entry domain.ContentEntry) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = "content-" + uuid.NewString()[:8]
	}
	if entry.Status == "" {
		entry.Status = domain.ContentDraft
	}
	s.entries[entry.ID] = entry
	s.byDate[entry.ScheduledDate] = append(s.byDate[entry.ScheduledDate], entry.ID)
	return entry.ID, nil
}

// ListByDate returns the entries scheduled for a date, in insertion order.
func (s *ContentCalendarStore) ListByDate(_ context.Context, date string) ([]domain.ContentEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byDate[date]
	out := make([]domain.ContentEntry, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.entries[id])
	}
	return out, nil
}

// UpdateStatus moves a content item to a new workflow status.
func (s *ContentCalendarStore) UpdateStatus(_ context.Context, contentID, newStatus string) (*domain.ContentEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[contentID]
	if !ok {
		return nil, &domain.ErrNotFound{Resource: "content", ID: contentID}
	}
	entry.Status = newStatus
	s.entries[contentID] = entry
	return &entry, nil
}
