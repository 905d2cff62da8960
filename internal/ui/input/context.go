package input

import (
	"scooper/internal/ui/filter"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Control *filter.Control
}

// DropdownOpen reports whether the bucket list is open
func (c *ModelContext) DropdownOpen() bool {
	return c.Control.IsOpen()
}

// OptionCount returns the number of dropdown options, "All" included
func (c *ModelContext) OptionCount() int {
	return len(c.Control.Options())
}

// HoverIndex returns the highlighted option
func (c *ModelContext) HoverIndex() int {
	return c.Control.Dropdown().Hover
}
