package types

import tea "github.com/charmbracelet/bubbletea"

// Focus identifies the panel control that receives keys
type Focus int

const (
	FocusSelector Focus = iota
	FocusQuery
	FocusButton
	focusCount
)

// Next returns the focus after f, wrapping around
func (f Focus) Next() Focus {
	return (f + 1) % focusCount
}

// Prev returns the focus before f, wrapping around
func (f Focus) Prev() Focus {
	return (f + focusCount - 1) % focusCount
}

func (f Focus) String() string {
	switch f {
	case FocusSelector:
		return "selector"
	case FocusQuery:
		return "query"
	case FocusButton:
		return "button"
	default:
		return "unknown"
	}
}

// Mode represents an input mode
type Mode int

const (
	ModeSelector Mode = iota
	ModeQuery
	ModeButton
	ModeDropdown
)

// ModeFor returns the mode used while f has focus and the dropdown is closed
func ModeFor(f Focus) Mode {
	switch f {
	case FocusQuery:
		return ModeQuery
	case FocusButton:
		return ModeButton
	default:
		return ModeSelector
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	DropdownOpen() bool
	OptionCount() int
	HoverIndex() int
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
