package views

import (
	"github.com/charmbracelet/lipgloss"

	"scooper/internal/layout"
)

// Block is a stack child made of pre-rendered lines
type Block struct {
	Lines []string
	rect  layout.Rect
}

// NewBlock creates a block from lines
func NewBlock(lines ...string) *Block {
	return &Block{Lines: lines}
}

// Measure reports the widest line and the line count, clamped to c
func (b *Block) Measure(c layout.Constraints) layout.Size {
	w := 0
	for _, l := range b.Lines {
		if lw := lipgloss.Width(l); lw > w {
			w = lw
		}
	}
	return c.Constrain(layout.Size{Width: w, Height: len(b.Lines)})
}

// Place records the box assigned by the layout
func (b *Block) Place(r layout.Rect) {
	b.rect = r
}

// Rect returns the last placement
func (b *Block) Rect() layout.Rect {
	return b.rect
}

// Span is a horizontal run of cells on a single row
type Span struct {
	X, Width int
}

// At returns the span as a one-row rectangle on row y
func (s Span) At(y int) layout.Rect {
	return layout.Rect{X: s.X, Y: y, Width: s.Width, Height: 1}
}

// OptionHit maps a dropdown option index to its rectangle
type OptionHit struct {
	Index int
	Rect  layout.Rect
}

// Hits holds the rectangles of everything clickable in the last frame
type Hits struct {
	Selector layout.Rect
	Field    layout.Rect
	Button   layout.Rect
	Dropdown layout.Rect
	Options  []OptionHit
}

// OptionAt returns the option under (x, y)
func (h Hits) OptionAt(x, y int) (int, bool) {
	for _, o := range h.Options {
		if o.Rect.Contains(x, y) {
			return o.Index, true
		}
	}
	return 0, false
}
