package types

// Focus actions
type ChangeFocusAction struct {
	Focus Focus
}

func (a ChangeFocusAction) Type() string { return "change_focus" }

type CycleFocusAction struct {
	Reverse bool
}

func (a CycleFocusAction) Type() string { return "cycle_focus" }

// FocusQueryAction gives or takes the cursor of the query field
type FocusQueryAction struct {
	Focused bool
}

func (a FocusQueryAction) Type() string { return "focus_query" }

// Dropdown actions
type OpenDropdownAction struct{}

func (a OpenDropdownAction) Type() string { return "open_dropdown" }

type DismissDropdownAction struct{}

func (a DismissDropdownAction) Type() string { return "dismiss_dropdown" }

type MoveHoverAction struct {
	Delta int
}

func (a MoveHoverAction) Type() string { return "move_hover" }

type HoverOptionAction struct {
	Index int
}

func (a HoverOptionAction) Type() string { return "hover_option" }

type ChooseOptionAction struct {
	Index int // HoveredOption for the highlighted entry
}

func (a ChooseOptionAction) Type() string { return "choose_option" }

// HoveredOption selects whatever option is highlighted
const HoveredOption = -1

// Commit sources
const (
	SourceEnter  = "enter"
	SourceButton = "button"
)

// SubmitAction commits the current query and bucket
type SubmitAction struct {
	Source string
}

func (a SubmitAction) Type() string { return "submit" }

// Command actions
type RescanAction struct{}

func (a RescanAction) Type() string { return "rescan" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
