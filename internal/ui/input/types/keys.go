package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the panel key bindings
type KeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Confirm key.Binding
	Open    key.Binding
	Dismiss key.Binding
	Up      key.Binding
	Down    key.Binding
	Rescan  key.Binding
	Help    key.Binding
	Quit    key.Binding
	Force   key.Binding
}

// Keys is the active key map
var Keys = DefaultKeyMap()

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		Open:    key.NewBinding(key.WithKeys("enter", " ", "down", "j"), key.WithHelp("enter", "buckets")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Rescan:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "rescan")),
		Help:    key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Force:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Confirm, k.Dismiss, k.Rescan, k.Help, k.Force}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Confirm},
		{k.Open, k.Up, k.Down, k.Dismiss},
		{k.Rescan, k.Help, k.Quit, k.Force},
	}
}
