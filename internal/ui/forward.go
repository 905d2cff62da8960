package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"scooper/internal/eventbus"
)

// Sender delivers messages into a running program; *tea.Program satisfies it
type Sender interface {
	Send(msg tea.Msg)
}

// forwardedEvents are the events the panel renders
var forwardedEvents = []eventbus.EventType{
	eventbus.EventBucketsUpdated,
	eventbus.EventFiltersApplied,
	eventbus.EventScanStarted,
	eventbus.EventScanCompleted,
	eventbus.EventError,
}

// Forward subscribes p to the panel's events and returns a func that
// unsubscribes all of them. Calling it more than once is safe.
func Forward(bus eventbus.EventBus, p Sender) func() {
	unsubs := make([]func(), 0, len(forwardedEvents))
	for _, t := range forwardedEvents {
		unsubs = append(unsubs, bus.Subscribe(t, func(e eventbus.DomainEvent) {
			p.Send(EventMsg{Event: e})
		}))
	}

	return func() {
		for _, unsub := range unsubs {
			unsub()
		}
	}
}
