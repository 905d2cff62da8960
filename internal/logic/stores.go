package logic

import (
	"sync"

	"scooper/internal/domain"
	"scooper/internal/eventbus"
)

// MemoryAppStore holds the discovered apps and answers filter requests.
// Changes to the bucket list and filter results are published on the bus.
type MemoryAppStore struct {
	mu      sync.RWMutex
	bus     eventbus.EventBus
	apps    []domain.App
	buckets []domain.Bucket
	last    domain.FilterQuery
}

// NewMemoryAppStore creates a new memory-based app store
func NewMemoryAppStore(bus eventbus.EventBus) *MemoryAppStore {
	s := &MemoryAppStore{bus: bus}

	// Keep the store in sync with discovery
	bus.Subscribe(eventbus.EventAppsDiscovered, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.AppsDiscoveredEvent); ok {
			s.SetBuckets(event.Buckets)
			s.SetApps(event.Apps)
		}
	})

	return s
}

// ApplyFilters filters the known apps and publishes the result.
// Identical consecutive requests are all honoured.
func (s *MemoryAppStore) ApplyFilters(query domain.FilterQuery) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = query
	s.publishResults()
}

// publishResults publishes the last query against the current apps.
// Callers hold s.mu so results go out in the order the state changed.
func (s *MemoryAppStore) publishResults() {
	s.bus.Publish(eventbus.FiltersAppliedEvent{
		Query: s.last,
		Apps:  FilterApps(s.apps, s.last),
		Total: len(s.apps),
	})
}

// LastQuery returns the most recent filter request
func (s *MemoryAppStore) LastQuery() domain.FilterQuery {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// SetApps replaces the app list and re-applies the last filter
func (s *MemoryAppStore) SetApps(apps []domain.App) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.apps = append([]domain.App(nil), apps...)
	s.publishResults()
}

// SetBuckets replaces the bucket list and publishes the new names
func (s *MemoryAppStore) SetBuckets(buckets []domain.Bucket) {
	s.mu.Lock()
	s.buckets = append([]domain.Bucket(nil), buckets...)
	s.mu.Unlock()

	s.bus.Publish(eventbus.BucketsUpdatedEvent{Names: s.BucketNames()})
}

// Apps returns a copy of all known apps
func (s *MemoryAppStore) Apps() []domain.App {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.App(nil), s.apps...)
}

// Buckets returns a copy of all known buckets
func (s *MemoryAppStore) Buckets() []domain.Bucket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Bucket(nil), s.buckets...)
}

// BucketNames returns the bucket names in presentation order
func (s *MemoryAppStore) BucketNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.buckets))
	for i, b := range s.buckets {
		names[i] = b.Name
	}
	return names
}
