package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	StatusError    lipgloss.Style
	StatusLoading  lipgloss.Style
	StatusSuccess  lipgloss.Style
	Filter         lipgloss.Style
	Help           lipgloss.Style
	Selector       lipgloss.Style
	SelectorFocus  lipgloss.Style
	Stale          lipgloss.Style
	Field          lipgloss.Style
	FieldFocus     lipgloss.Style
	Button         lipgloss.Style
	ButtonFocus    lipgloss.Style
	Option         lipgloss.Style
	OptionHover    lipgloss.Style
	OptionSelected lipgloss.Style
	Installed      lipgloss.Style
	Version        lipgloss.Style
	Bucket         lipgloss.Style
	Highlight      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Dim:            lipgloss.NewStyle().Faint(true),
		Status:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Filter:         lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:           lipgloss.NewStyle().Faint(true),
		Selector:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
		SelectorFocus:  lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")),
		Stale:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("236")).Strikethrough(true),
		Field:          lipgloss.NewStyle().Background(lipgloss.Color("235")),
		FieldFocus:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Button:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")),
		ButtonFocus:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")),
		Option:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
		OptionHover:    lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")),
		OptionSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Background(lipgloss.Color("236")),
		Installed:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Version:        lipgloss.NewStyle().Foreground(lipgloss.Color("33")),  // blue
		Bucket:         lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Highlight:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	}
}

// BucketColor returns the color used for a bucket name
func BucketColor(bucket string) string {
	switch bucket {
	case "main":
		return "78" // green
	case "extras":
		return "33" // blue
	case "":
		return "241" // gray, unknown bucket
	default:
		return "214" // yellow for everything else
	}
}
