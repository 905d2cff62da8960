package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"scooper/internal/ui/input/types"
)

// SelectorMode is active while the closed bucket selector has focus
type SelectorMode struct{}

func NewSelectorMode() *SelectorMode {
	return &SelectorMode{}
}

func (m *SelectorMode) Name() string {
	return "bucket"
}

func (m *SelectorMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *SelectorMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *SelectorMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, types.Keys.Open):
		return []types.Action{types.OpenDropdownAction{}}, true
	case key.Matches(msg, types.Keys.Next):
		return []types.Action{types.CycleFocusAction{}}, true
	case key.Matches(msg, types.Keys.Prev):
		return []types.Action{types.CycleFocusAction{Reverse: true}}, true
	case key.Matches(msg, types.Keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	}
	return nil, false
}
