// Package filter holds the search panel's state machine: the bucket
// dropdown, the query field, and the translation of user commits into
// filter requests.
//
// All methods are meant to be called from the bubbletea Update loop; the
// control does no locking of its own.
package filter

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"scooper/internal/domain"
	"scooper/internal/logic"
)

// NoIndex marks an unset selection or hover position
const NoIndex = -1

// Labels shown for the sentinel option and an empty selection
const (
	AllLabel         = "All"
	PlaceholderLabel = "Select bucket"
)

// DropdownState is the bucket selector's transient state
type DropdownState struct {
	Open     bool
	Selected int // index into the options, NoIndex if nothing chosen yet
	Hover    int // highlighted option while open, NoIndex if none
}

// Control is the search panel state machine
type Control struct {
	applier  logic.FilterApplier
	dropdown DropdownState
	bucket   string
	options  []string
	query    textinput.Model
}

// New creates a control that sends filter requests to applier
func New(applier logic.FilterApplier) *Control {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Search apps"

	return &Control{
		applier:  applier,
		dropdown: DropdownState{Selected: NoIndex, Hover: NoIndex},
		bucket:   domain.AllBuckets,
		options:  []string{domain.AllBuckets},
		query:    ti,
	}
}

// SetBuckets replaces the option list with the sentinel followed by names.
// The selection is left alone even when its bucket is gone; see SelectionStale.
func (c *Control) SetBuckets(names []string) {
	options := make([]string, 0, len(names)+1)
	options = append(options, domain.AllBuckets)
	options = append(options, names...)
	c.options = options

	if c.dropdown.Hover >= len(c.options) {
		c.dropdown.Hover = len(c.options) - 1
	}
}

// Open opens the dropdown. It returns false if it was already open.
func (c *Control) Open() bool {
	if c.dropdown.Open {
		return false
	}
	c.dropdown.Open = true
	c.dropdown.Hover = 0
	if i := c.SelectedOption(); i != NoIndex {
		c.dropdown.Hover = i
	}
	return true
}

// Dismiss closes the dropdown without choosing. It returns false if it was closed.
func (c *Control) Dismiss() bool {
	if !c.dropdown.Open {
		return false
	}
	c.dropdown.Open = false
	c.dropdown.Hover = NoIndex
	return true
}

// Choose selects option i, closes the dropdown and issues a filter request.
// A closed dropdown or an index outside the current options is a no-op.
func (c *Control) Choose(i int) bool {
	if !c.dropdown.Open || !c.validIndex(i) {
		return false
	}

	c.dropdown.Selected = i
	c.bucket = c.options[i]
	c.dropdown.Open = false
	c.dropdown.Hover = NoIndex

	c.Submit()
	return true
}

// ChooseHovered chooses the highlighted option
func (c *Control) ChooseHovered() bool {
	return c.Choose(c.dropdown.Hover)
}

// SetHover highlights option i while the dropdown is open
func (c *Control) SetHover(i int) {
	if c.dropdown.Open && c.validIndex(i) {
		c.dropdown.Hover = i
	}
}

// MoveHover moves the highlight by delta, wrapping around the options
func (c *Control) MoveHover(delta int) {
	if !c.dropdown.Open || len(c.options) == 0 {
		return
	}
	n := len(c.options)
	h := c.dropdown.Hover
	if h < 0 {
		h = 0
		if delta > 0 {
			delta--
		}
	}
	c.dropdown.Hover = ((h+delta)%n + n) % n
}

// Submit sends the current query and bucket to the applier.
// Both the Enter key and the search button end up here.
func (c *Control) Submit() domain.FilterQuery {
	q := c.Query()
	c.applier.ApplyFilters(q)
	return q
}

// Query builds the filter request for the current state
func (c *Control) Query() domain.FilterQuery {
	return domain.FilterQuery{Text: c.query.Value(), Bucket: c.bucket}
}

// UpdateQuery feeds a message to the query field
func (c *Control) UpdateQuery(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.query, cmd = c.query.Update(msg)
	return cmd
}

// SetQueryText replaces the query text without committing it
func (c *Control) SetQueryText(s string) {
	c.query.SetValue(s)
}

// FocusQuery gives the query field the cursor
func (c *Control) FocusQuery() tea.Cmd {
	return c.query.Focus()
}

// BlurQuery takes the cursor away from the query field
func (c *Control) BlurQuery() {
	c.query.Blur()
}

// QueryFocused reports whether the query field has the cursor
func (c *Control) QueryFocused() bool {
	return c.query.Focused()
}

// QueryView renders the query field at the given width
func (c *Control) QueryView(width int) string {
	c.query.Width = width
	return c.query.View()
}

// Dropdown returns a copy of the dropdown state
func (c *Control) Dropdown() DropdownState {
	return c.dropdown
}

// IsOpen reports whether the dropdown is open
func (c *Control) IsOpen() bool {
	return c.dropdown.Open
}

// Bucket returns the chosen bucket, domain.AllBuckets if none
func (c *Control) Bucket() string {
	return c.bucket
}

// Options returns a copy of the current option list
func (c *Control) Options() []string {
	return append([]string(nil), c.options...)
}

// OptionLabel returns the text shown for option i
func (c *Control) OptionLabel(i int) string {
	if !c.validIndex(i) {
		return ""
	}
	if c.options[i] == domain.AllBuckets {
		return AllLabel
	}
	return c.options[i]
}

// BucketLabel returns the text shown on the closed selector
func (c *Control) BucketLabel() string {
	if c.bucket == domain.AllBuckets {
		if c.dropdown.Selected == 0 {
			return AllLabel
		}
		return PlaceholderLabel
	}
	return c.bucket
}

// SelectedOption returns the position of the chosen bucket in the current
// options. Selected records where it was when chosen, which goes out of date
// when a bucket update reorders the list. NoIndex if nothing was chosen or
// the bucket is gone.
func (c *Control) SelectedOption() int {
	if c.dropdown.Selected == NoIndex {
		return NoIndex
	}
	for i, o := range c.options {
		if o == c.bucket {
			return i
		}
	}
	return NoIndex
}

// SelectionStale reports whether the chosen bucket is missing from the current options
func (c *Control) SelectionStale() bool {
	if c.bucket == domain.AllBuckets {
		return false
	}
	for _, o := range c.options {
		if o == c.bucket {
			return false
		}
	}
	return true
}

func (c *Control) validIndex(i int) bool {
	return i >= 0 && i < len(c.options)
}
