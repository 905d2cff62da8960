package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"scooper/internal/ui/input/types"
)

// ButtonMode is active while the search button has focus
type ButtonMode struct{}

func NewButtonMode() *ButtonMode {
	return &ButtonMode{}
}

func (m *ButtonMode) Name() string {
	return "search"
}

func (m *ButtonMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ButtonMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ButtonMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "enter", " ":
		return []types.Action{types.SubmitAction{Source: types.SourceButton}}, true
	}

	switch {
	case key.Matches(msg, types.Keys.Next):
		return []types.Action{types.CycleFocusAction{}}, true
	case key.Matches(msg, types.Keys.Prev):
		return []types.Action{types.CycleFocusAction{Reverse: true}}, true
	case key.Matches(msg, types.Keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	}
	return nil, false
}
