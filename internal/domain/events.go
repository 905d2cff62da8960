package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventBucketsUpdated  EventType = "BucketsUpdated"
	EventAppsDiscovered  EventType = "AppsDiscovered"
	EventFiltersApplied  EventType = "FiltersApplied"
	EventScanRequested   EventType = "ScanRequested"
	EventScanStarted     EventType = "ScanStarted"
	EventScanCompleted   EventType = "ScanCompleted"
	EventError           EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// BucketsUpdatedEvent carries the ordered list of bucket names currently available
type BucketsUpdatedEvent struct {
	Names []string
}

func (e BucketsUpdatedEvent) Type() EventType { return EventBucketsUpdated }

// AppsDiscoveredEvent is emitted when a scan has produced the full bucket and app lists
type AppsDiscoveredEvent struct {
	Buckets []Bucket
	Apps    []App
}

func (e AppsDiscoveredEvent) Type() EventType { return EventAppsDiscovered }

// FiltersAppliedEvent carries the apps matching a filter request
type FiltersAppliedEvent struct {
	Query FilterQuery
	Apps  []App
	Total int // apps known to the store before filtering
}

func (e FiltersAppliedEvent) Type() EventType { return EventFiltersApplied }

// ScanRequestedEvent is emitted to request a rescan of the scoop root
type ScanRequestedEvent struct {
	Reason string
}

func (e ScanRequestedEvent) Type() EventType { return EventScanRequested }

// ScanStartedEvent is emitted when a scan begins
type ScanStartedEvent struct {
	Root string
}

func (e ScanStartedEvent) Type() EventType { return EventScanStarted }

// ScanCompletedEvent is emitted when a scan completes
type ScanCompletedEvent struct {
	Buckets int
	Apps    int
}

func (e ScanCompletedEvent) Type() EventType { return EventScanCompleted }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
