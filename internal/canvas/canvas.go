// Package canvas composites overlapping boxes of text, such as windows
// stacked on a desktop, onto a grid of terminal cells.
package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Style is an index into a canvas's palette.
type Style uint8

// Cell is a single terminal cell.
type Cell struct {
	Rune  rune
	Style Style
	// cont is true if the cell is occupied by the right half of a wide rune
	// in the cell to its left.
	cont bool
}

// Canvas is a grid of cells. Later drawing operations overwrite earlier ones,
// so boxes are drawn bottom first.
type Canvas struct {
	width, height int
	cells         []Cell
	palette       []lipgloss.Style
}

// New constructs a blank canvas. Cells are rendered using the style at their
// index in the palette.
func New(width, height int, palette []lipgloss.Style) *Canvas {
	width, height = max(0, width), max(0, height)
	c := &Canvas{
		width:   width,
		height:  height,
		cells:   make([]Cell, width*height),
		palette: palette,
	}
	c.Fill(c.Bounds(), ' ', 0)
	return c
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Bounds returns the rectangle covering the whole canvas.
func (c *Canvas) Bounds() Rect {
	return Rect{Width: c.width, Height: c.height}
}

// Cell returns the cell at (x, y). Out of bounds coordinates return the zero
// cell.
func (c *Canvas) Cell(x, y int) Cell {
	if !c.Bounds().Contains(x, y) {
		return Cell{}
	}
	return c.cells[y*c.width+x]
}

// Fill fills the rectangle with the rune.
func (c *Canvas) Fill(r Rect, ch rune, style Style) {
	r = r.Intersect(c.Bounds())
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			c.set(x, y, Cell{Rune: ch, Style: style})
		}
	}
}

// Region returns a view of part of the canvas in which drawing is clipped and
// coordinates are relative to the rectangle.
func (c *Canvas) Region(r Rect) *Region {
	return &Region{canvas: c, bounds: r, clip: r.Intersect(c.Bounds())}
}

// Render renders the canvas, one line per row.
func (c *Canvas) Render() string {
	return c.render(true)
}

// Plain renders the canvas without styling.
func (c *Canvas) Plain() string {
	return c.render(false)
}

func (c *Canvas) render(styled bool) string {
	var (
		b   strings.Builder
		run []rune
	)
	for y := 0; y < c.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		run = run[:0]
		current := c.Cell(0, y).Style
		flush := func() {
			if len(run) == 0 {
				return
			}
			if styled && int(current) < len(c.palette) {
				b.WriteString(c.palette[current].Render(string(run)))
			} else {
				b.WriteString(string(run))
			}
			run = run[:0]
		}
		for x := 0; x < c.width; x++ {
			cell := c.cells[y*c.width+x]
			if cell.cont {
				continue
			}
			if cell.Style != current {
				flush()
				current = cell.Style
			}
			run = append(run, cell.Rune)
		}
		flush()
	}
	return b.String()
}

// text writes s starting at (x, y), clipped to clip, returning the number of
// cells s occupies, including clipped cells.
func (c *Canvas) text(clip Rect, x, y int, s string, style Style) int {
	start := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if w == 2 && clip.Contains(x, y) && !clip.Contains(x+1, y) {
			// Not enough room for the right half
			c.set(x, y, Cell{Rune: ' ', Style: style})
		} else if clip.Contains(x, y) {
			c.set(x, y, Cell{Rune: r, Style: style})
			if w == 2 {
				c.set(x+1, y, Cell{Style: style, cont: true})
			}
		}
		x += w
	}
	return x - start
}

// set sets a cell, repairing any wide rune it splits.
func (c *Canvas) set(x, y int, cell Cell) {
	i := y*c.width + x
	old := c.cells[i]
	if old.cont && !cell.cont && x > 0 {
		// Overwriting right half of a wide rune: blank its left half
		c.cells[i-1].Rune = ' '
	}
	if !old.cont && x+1 < c.width && c.cells[i+1].cont {
		// Overwriting left half of a wide rune: blank its right half
		c.cells[i+1] = Cell{Rune: ' ', Style: c.cells[i+1].Style}
	}
	c.cells[i] = cell
}

// StringWidth returns the number of cells s occupies.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}
