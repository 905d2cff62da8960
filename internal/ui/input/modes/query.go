package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"scooper/internal/ui/input/types"
)

// QueryMode edits the free text query. Keys it does not consume go to the text field.
type QueryMode struct{}

func NewQueryMode() *QueryMode {
	return &QueryMode{}
}

func (m *QueryMode) Name() string {
	return "query"
}

func (m *QueryMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.FocusQueryAction{Focused: true}}
}

func (m *QueryMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.FocusQueryAction{Focused: false}}
}

func (m *QueryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, types.Keys.Confirm):
		return []types.Action{types.SubmitAction{Source: types.SourceEnter}}, true
	case key.Matches(msg, types.Keys.Next):
		return []types.Action{types.CycleFocusAction{}}, true
	case key.Matches(msg, types.Keys.Prev):
		return []types.Action{types.CycleFocusAction{Reverse: true}}, true
	default:
		// Let the text field handle it
		return nil, false
	}
}
