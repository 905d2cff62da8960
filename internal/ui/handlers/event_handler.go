package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"scooper/internal/eventbus"
	"scooper/internal/ui/filter"
	"scooper/internal/ui/state"
)

// StatusTimeout is how long informational messages stay on the status line
const StatusTimeout = 3 * time.Second

// ClearStatusMsg clears the status line
type ClearStatusMsg struct {
	// Message is the text that was shown; a newer message is left alone
	Message string
}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state   *state.PanelState
	control *filter.Control
}

// NewEventHandler creates a new event handler
func NewEventHandler(panelState *state.PanelState, control *filter.Control) *EventHandler {
	return &EventHandler{
		state:   panelState,
		control: control,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.BucketsUpdatedEvent:
		// Applied even while the dropdown is open or the query is being edited
		h.control.SetBuckets(e.Names)
		h.state.BucketCount = len(e.Names)

	case eventbus.FiltersAppliedEvent:
		h.state.SetResults(e.Query, e.Apps, e.Total)

	case eventbus.ScanStartedEvent:
		h.state.Scanning = true
		h.state.SetStatus(fmt.Sprintf("Scanning %s", e.Root))

	case eventbus.ScanCompletedEvent:
		h.state.Scanning = false
		h.state.BucketCount = e.Buckets
		msg := fmt.Sprintf("Found %d apps in %d buckets", e.Apps, e.Buckets)
		h.state.SetStatus(msg)
		return clearStatusAfter(msg)

	case eventbus.ErrorEvent:
		h.state.Scanning = false
		h.state.SetError(fmt.Sprintf("Error: %s", e.Message))
	}

	return nil
}

// HandleClearStatus clears the status line unless a newer message replaced it
func (h *EventHandler) HandleClearStatus(msg ClearStatusMsg) {
	if h.state.StatusMessage == msg.Message && !h.state.StatusIsError {
		h.state.ClearStatus()
	}
}

func clearStatusAfter(message string) tea.Cmd {
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg {
		return ClearStatusMsg{Message: message}
	})
}
