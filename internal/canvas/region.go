package canvas

// Region is a clipped view onto part of a canvas.
type Region struct {
	canvas *Canvas
	// bounds of the region in canvas coordinates
	bounds Rect
	// clip is the visible part of bounds
	clip Rect
}

func (r *Region) Width() int  { return r.bounds.Width }
func (r *Region) Height() int { return r.bounds.Height }

// Text writes s at (x, y), relative to the region, returning the number of
// cells it occupies. Text beyond the region's edges is clipped.
func (r *Region) Text(x, y int, s string, style Style) int {
	return r.canvas.text(r.clip, r.bounds.X+x, r.bounds.Y+y, s, style)
}

// Fill fills the whole region with the rune.
func (r *Region) Fill(ch rune, style Style) {
	r.canvas.Fill(r.clip, ch, style)
}

// Sub returns a region within this region, with rect relative to this
// region.
func (r *Region) Sub(rect Rect) *Region {
	rect.X += r.bounds.X
	rect.Y += r.bounds.Y
	return &Region{
		canvas: r.canvas,
		bounds: rect,
		clip:   rect.Intersect(r.clip),
	}
}
