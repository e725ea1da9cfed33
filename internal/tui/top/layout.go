package top

import (
	"github.com/amiigood/folio/internal/canvas"
	"github.com/amiigood/folio/internal/catalog"
	"github.com/muesli/reflow/truncate"
)

const (
	navbarHeight = 1
	dockHeight   = 3

	// The welcome text is swapped for a notice below these dimensions.
	smallWidth  = 60
	smallHeight = 16

	brand = "◆ "
)

// hotspot is an area of the screen that responds to a click.
type hotspot struct {
	rect canvas.Rect
	// index of the nav link or dock app
	index int
}

type point struct{ x, y int }

// layout is the geometry of the desktop for a given screen size.
type layout struct {
	width, height int

	// desktop is the area in which windows are placed.
	desktop canvas.Rect
	links   []hotspot
	dock    canvas.Rect
	apps    []hotspot

	small    bool
	subtitle point
	title    point
}

func newLayout(width, height int, cat *catalog.Catalog, welcome *welcome) layout {
	l := layout{
		width:  width,
		height: height,
		desktop: canvas.Rect{
			Y:      navbarHeight,
			Width:  width,
			Height: max(0, height-navbarHeight-dockHeight),
		},
		small: width < smallWidth || height < smallHeight,
	}

	// Nav links follow the owner's name.
	x := 1 + canvas.StringWidth(brand+cat.Owner) + 3
	for i, link := range cat.NavLinks {
		w := canvas.StringWidth(link.Name)
		l.links = append(l.links, hotspot{
			rect:  canvas.Rect{X: x, Y: 0, Width: w, Height: 1},
			index: i,
		})
		x += w + 2
	}

	// The dock is centred along the bottom of the screen.
	dockWidth := 3
	for _, app := range cat.Dock {
		dockWidth += canvas.StringWidth(app.Name) + 3
	}
	l.dock = canvas.Rect{
		X:      max(0, (width-dockWidth)/2),
		Y:      max(navbarHeight, height-dockHeight),
		Width:  dockWidth,
		Height: dockHeight,
	}
	x = l.dock.X + 2
	for i, app := range cat.Dock {
		w := canvas.StringWidth(app.Name) + 2
		l.apps = append(l.apps, hotspot{
			rect:  canvas.Rect{X: x, Y: l.dock.Y + 1, Width: w, Height: 1},
			index: i,
		})
		x += w + 1
	}

	// The welcome text is centred on the desktop.
	cx := l.desktop.X + l.desktop.Width/2
	cy := l.desktop.Y + l.desktop.Height/2
	l.subtitle = point{x: cx - welcome.subtitle.Width()/2, y: cy - 1}
	l.title = point{x: cx - welcome.title.Width()/2, y: cy + 1}
	return l
}

// hoverZone is the area within which the pointer animates the welcome text.
func (l layout) hoverZone(w *welcome) canvas.Rect {
	x0 := min(l.subtitle.x, l.title.x)
	x1 := max(l.subtitle.x+w.subtitle.Width(), l.title.x+w.title.Width())
	return canvas.Rect{
		X:      x0 - 4,
		Y:      l.subtitle.y - 2,
		Width:  x1 - x0 + 8,
		Height: l.title.y - l.subtitle.y + 5,
	}
}

// hit returns the index of the hotspot containing (x, y).
func hit(spots []hotspot, x, y int) (int, bool) {
	for _, s := range spots {
		if s.rect.Contains(x, y) {
			return s.index, true
		}
	}
	return 0, false
}

// fit truncates s to fit within width cells.
func fit(s string, width int) string {
	return truncate.StringWithTail(s, uint(max(0, width)), "…")
}
