// Package cache holds the per-course aggregate completion view and its
// invalidation contract. Every completion mark mutation must invalidate the
// affected (user, course) entry.
package cache

import "sync"

// Invalidator defines the completion-cache invalidation contract.
type Invalidator interface {
	Invalidate(userID, courseID string) error
}

// NoopInvalidator is a no-op implementation.
type NoopInvalidator struct{}

// Invalidate performs no action.
func (NoopInvalidator) Invalidate(string, string) error { return nil }

// Store is an in-process cache of aggregate completion views keyed by
// (user, course). It implements Invalidator for the reconciler.
type Store struct {
	mu      sync.RWMutex
	entries map[cacheKey]interface{}
}

type cacheKey struct {
	userID   string
	courseID string
}

// NewStore creates an empty completion cache
func NewStore() *Store {
	return &Store{entries: make(map[cacheKey]interface{})}
}

// Get returns the cached view for (user, course), if any
func (s *Store) Get(userID, courseID string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[cacheKey{userID: userID, courseID: courseID}]
	return v, ok
}

// Put stores a computed view for (user, course)
func (s *Store) Put(userID, courseID string, view interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[cacheKey{userID: userID, courseID: courseID}] = view
}

// Invalidate drops the cached view for (user, course)
func (s *Store) Invalidate(userID, courseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, cacheKey{userID: userID, courseID: courseID})
	return nil
}
