package canvas

// Rect is a rectangle of cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains determines whether the cell at (x, y) lies within the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersect returns the largest rectangle contained by both r and o. If they
// don't overlap the empty rectangle is returned.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.Width, o.X+o.Width), min(r.Y+r.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Empty is true if the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Clamp moves the rectangle so that it lies within bounds, as far as it is
// able to.
func (r Rect) Clamp(bounds Rect) Rect {
	r.X = max(bounds.X, min(r.X, bounds.X+bounds.Width-r.Width))
	r.Y = max(bounds.Y, min(r.Y, bounds.Y+bounds.Height-r.Height))
	return r
}
