package tui

import (
	"math"

	"github.com/amiigood/folio/internal/canvas"
)

const (
	scrollbarThumb = "█"
	scrollbarTrack = "░"
)

// DrawScrollbar draws a vertical scrollbar down the first column of the
// region, for content of total lines, of which visible lines are shown
// starting at offset.
func DrawScrollbar(r *canvas.Region, total, visible, offset int) {
	height := r.Height()
	if height <= 0 || total <= 0 {
		return
	}
	ratio := float64(height) / float64(total)
	thumbHeight := max(1, int(math.Round(float64(visible)*ratio)))
	thumbOffset := max(0, min(height-thumbHeight, int(math.Round(float64(offset)*ratio))))

	for y := 0; y < height; y++ {
		if y >= thumbOffset && y < thumbOffset+thumbHeight {
			r.Text(0, y, scrollbarThumb, AccentStyle)
		} else {
			r.Text(0, y, scrollbarTrack, SubtleStyle)
		}
	}
}
