package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"scooper/internal/ui/input/modes"
	"scooper/internal/ui/input/types"
)

// Handler routes keys to the mode of the focused control and turns them into actions
type Handler struct {
	focus types.Focus
	modes map[types.Mode]types.ModeHandler
}

// New creates a handler with the query field focused
func New() *Handler {
	h := &Handler{
		focus: types.FocusQuery,
		modes: make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ModeSelector] = modes.NewSelectorMode()
	h.modes[types.ModeQuery] = modes.NewQueryMode()
	h.modes[types.ModeButton] = modes.NewButtonMode()
	h.modes[types.ModeDropdown] = modes.NewDropdownMode()

	return h
}

// Start returns the actions for entering the initial mode
func (h *Handler) Start(ctx types.Context) []types.Action {
	if handler := h.modes[types.ModeFor(h.focus)]; handler != nil {
		return handler.Enter(ctx)
	}
	return nil
}

// HandleKey returns the actions for msg and whether the key was consumed.
// Unconsumed keys in query mode belong to the text field.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// Global keys work in every mode
	switch {
	case key.Matches(msg, types.Keys.Force):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, types.Keys.Rescan):
		return []types.Action{types.RescanAction{}}, true
	case key.Matches(msg, types.Keys.Help):
		return []types.Action{types.ShowHelpAction{}}, true
	}

	handler := h.modes[h.CurrentMode(ctx)]
	if handler == nil {
		return nil, false
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	return h.Resolve(actions, ctx), consumed
}

// SetFocus moves focus to f and returns the exit/enter actions of the affected modes
func (h *Handler) SetFocus(f types.Focus, ctx types.Context) []types.Action {
	if f == h.focus {
		return nil
	}

	var actions []types.Action
	if old := h.modes[types.ModeFor(h.focus)]; old != nil {
		actions = append(actions, old.Exit(ctx)...)
	}
	h.focus = f
	if next := h.modes[types.ModeFor(h.focus)]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

// Resolve replaces focus actions with the resulting mode transitions
func (h *Handler) Resolve(actions []types.Action, ctx types.Context) []types.Action {
	var out []types.Action
	for _, action := range actions {
		switch a := action.(type) {
		case types.CycleFocusAction:
			target := h.focus.Next()
			if a.Reverse {
				target = h.focus.Prev()
			}
			out = append(out, h.SetFocus(target, ctx)...)
		case types.ChangeFocusAction:
			out = append(out, h.SetFocus(a.Focus, ctx)...)
		default:
			out = append(out, action)
		}
	}
	return out
}

// Focus returns the focused control
func (h *Handler) Focus() types.Focus {
	return h.focus
}

// CurrentMode returns the mode keys are routed to
func (h *Handler) CurrentMode(ctx types.Context) types.Mode {
	if ctx.DropdownOpen() {
		return types.ModeDropdown
	}
	return types.ModeFor(h.focus)
}

// ModeName returns the display name of the current mode
func (h *Handler) ModeName(ctx types.Context) string {
	if handler := h.modes[h.CurrentMode(ctx)]; handler != nil {
		return handler.Name()
	}
	return ""
}
