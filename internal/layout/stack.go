package layout

// Result holds the outcome of one layout pass.
type Result struct {
	// Size is the size reported to the parent.
	Size Size
	// Children holds the placement of each child, in input order.
	Children []Rect
}

// Stack lays children out in a single column.
//
// Each child is measured against c, then placed at x=0 directly below the
// previous one. The container always claims c.MaxWidth x c.MaxHeight: it
// fills its box and never shrink-wraps. Children running past MaxHeight are
// still placed; clipping is up to the caller.
func Stack(c Constraints, children []Measurable) Result {
	sizes := make([]Size, len(children))
	for i, child := range children {
		sizes[i] = child.Measure(c)
	}

	res := Result{
		Size:     Size{Width: c.MaxWidth, Height: c.MaxHeight},
		Children: make([]Rect, len(children)),
	}

	y := 0
	for i, child := range children {
		r := NewRect(Point{X: 0, Y: y}, sizes[i])
		child.Place(r)
		res.Children[i] = r
		y += sizes[i].Height
	}

	return res
}
