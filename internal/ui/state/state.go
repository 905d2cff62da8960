package state

import (
	"scooper/internal/domain"
)

// PanelState contains the UI state not owned by the filter control
type PanelState struct {
	// Latest results published by the store
	Results []domain.App
	Total   int
	Applied domain.FilterQuery

	// Scan progress
	Scanning    bool
	BucketCount int

	// Status line
	StatusMessage string
	StatusIsError bool

	// Pager
	InPagerMode bool
}

// NewPanelState creates an empty panel state
func NewPanelState() *PanelState {
	return &PanelState{
		Results: make([]domain.App, 0),
	}
}

// SetResults replaces the visible results
func (s *PanelState) SetResults(query domain.FilterQuery, apps []domain.App, total int) {
	s.Applied = query
	s.Results = apps
	s.Total = total
}

// SetStatus shows an informational message
func (s *PanelState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = false
}

// SetError shows an error message
func (s *PanelState) SetError(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = true
}

// ClearStatus empties the status line
func (s *PanelState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}
