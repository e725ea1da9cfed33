package apps

import (
	"github.com/amiigood/folio/internal/canvas"
	"github.com/amiigood/folio/internal/tui"
	"github.com/muesli/reflow/truncate"
)

// image previews an image file. The terminal cannot display the image itself,
// so a placeholder is drawn along with the image's source. It renders nothing
// without a file.
type image struct{}

func newImage() *image {
	return &image{}
}

func (image) Title(data any) string {
	if e, ok := entry(data); ok {
		return e.Name
	}
	return ""
}

func (image) Render(r *canvas.Region, data any) {
	e, ok := entry(data)
	if !ok {
		return
	}
	w, h := r.Width(), r.Height()
	if w < 4 || h < 3 {
		return
	}
	// A shaded frame the size of the window, less a margin, with the
	// image's source centred inside.
	frame := r.Sub(canvas.Rect{X: 1, Y: 0, Width: w - 2, Height: h - 1})
	frame.Fill('░', tui.SubtleStyle)
	src := truncate.StringWithTail(e.ImageSource(), uint(max(0, w-4)), "…")
	name := truncate.StringWithTail(e.Name, uint(max(0, w-4)), "…")
	mid := frame.Height() / 2
	frame.Text((frame.Width()-canvas.StringWidth(name))/2, mid-1, name, tui.TitleStyle)
	frame.Text((frame.Width()-canvas.StringWidth(src))/2, mid, src, tui.AccentStyle)
}
