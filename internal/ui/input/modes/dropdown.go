package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"scooper/internal/ui/input/types"
)

// DropdownMode handles keys while the bucket list is open.
// It swallows every key so nothing leaks into the query field.
type DropdownMode struct{}

func NewDropdownMode() *DropdownMode {
	return &DropdownMode{}
}

func (m *DropdownMode) Name() string {
	return "buckets"
}

func (m *DropdownMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DropdownMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *DropdownMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "enter", " ":
		return []types.Action{types.ChooseOptionAction{Index: types.HoveredOption}}, true
	case "home", "g":
		return []types.Action{types.HoverOptionAction{Index: 0}}, true
	case "end", "G":
		return []types.Action{types.HoverOptionAction{Index: ctx.OptionCount() - 1}}, true
	}

	switch {
	case key.Matches(msg, types.Keys.Up):
		return []types.Action{types.MoveHoverAction{Delta: -1}}, true
	case key.Matches(msg, types.Keys.Down):
		return []types.Action{types.MoveHoverAction{Delta: 1}}, true
	case key.Matches(msg, types.Keys.Dismiss):
		return []types.Action{types.DismissDropdownAction{}}, true
	case key.Matches(msg, types.Keys.Next):
		// Leaving the selector dismisses the list
		return []types.Action{types.DismissDropdownAction{}, types.CycleFocusAction{}}, true
	case key.Matches(msg, types.Keys.Prev):
		return []types.Action{types.DismissDropdownAction{}, types.CycleFocusAction{Reverse: true}}, true
	}
	return nil, true
}
