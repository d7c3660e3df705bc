package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
)

// SubscriptionStore is an in-memory port.SubscriptionRepository.
type SubscriptionStore struct {
	mu   sync.RWMutex
	subs map[string]domain.Subscription
}

// NewSubscriptionStore creates a store pre-loaded with the given
// subscriptions, keyed by ID.
func NewSubscriptionStore(seed ...domain.Subscription) *SubscriptionStore {
	s := &SubscriptionStore{subs: make(map[string]domain.Subscription, len(seed))}
	for _, sub := range seed {
		s.subs[sub.ID] = sub
	}
	return s
}

// Get returns a copy of the subscription.
func (s *SubscriptionStore) Get(_ context.Context, subscriptionID string) (*domain.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.subs[subscriptionID]
	if !ok {
		return nil, &domain.ErrNotFound{Resource: "subscription", ID: subscriptionID}
	}
	return &sub, nil
}

// ListByClient returns all subscriptions of one client.
func (s *SubscriptionStore) ListByClient(_ context.Context, clientID string) ([]domain.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Subscription
	for _, sub := range s.subs {
		if sub.ClientID == clientID {
			out = append(out, sub)
		}
	}
	return out, nil
}

// UpdateStatus moves a subscription to a new status. Cancelling clears
// the next billing date.
func (s *SubscriptionStore) UpdateStatus(_ context.Context, subscriptionID, newStatus string) (*domain.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.subs[subscriptionID]
	if !ok {
		return nil, &domain.ErrNotFound{Resource: "subscription", ID: subscriptionID}
	}
	sub.Status = newStatus
	if strings.EqualFold(newStatus, domain.SubscriptionCancelled) {
		sub.NextBillingDate = ""
	}
	s.subs[subscriptionID] = sub
	return &sub, nil
}
