// Package layout measures and places terminal UI blocks.
//
// The only policy implemented is a vertical stack: every child is measured
// against the incoming constraints, then placed top to bottom in a single
// column. Nothing is retained between passes; [Stack] returns the computed
// placements so callers can use them for rendering and hit testing.
package layout

// Size represents a width/height pair in terminal cells.
type Size struct {
	Width, Height int
}

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y int
}

// Rect is a placed box.
type Rect struct {
	X, Y, Width, Height int
}

// NewRect creates a Rect at p with size s.
func NewRect(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// Contains returns true if (x, y) lies inside the rectangle.
// Empty rectangles contain nothing.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Bottom returns the first row below the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Constraints bound the size a child may take.
type Constraints struct {
	MinWidth, MaxWidth   int
	MinHeight, MaxHeight int
}

// Tight returns constraints that allow exactly w x h.
func Tight(w, h int) Constraints {
	return Constraints{MinWidth: w, MaxWidth: w, MinHeight: h, MaxHeight: h}
}

// Loose returns constraints that allow anything up to w x h.
func Loose(w, h int) Constraints {
	return Constraints{MaxWidth: w, MaxHeight: h}
}

// Constrain clamps s into the constraint bounds.
func (c Constraints) Constrain(s Size) Size {
	return Size{
		Width:  clamp(s.Width, c.MinWidth, c.MaxWidth),
		Height: clamp(s.Height, c.MinHeight, c.MaxHeight),
	}
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Measurable is anything that can report its size for given constraints and
// accept the placement the layout assigns to it.
type Measurable interface {
	// Measure returns the desired size. It must not depend on siblings and
	// must return the same size for the same constraints.
	Measure(c Constraints) Size

	// Place receives the final box for the current pass.
	Place(r Rect)
}
