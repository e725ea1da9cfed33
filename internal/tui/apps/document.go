package apps

import (
	"strings"

	"github.com/amiigood/folio/internal/canvas"
	"github.com/amiigood/folio/internal/tui"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

type line struct {
	text   string
	style  canvas.Style
	indent int
}

// page accumulates lines of text wrapped to a width.
type page struct {
	width int
	lines []line
}

// add adds a paragraph, word wrapped to fit the page, with words too long to
// fit broken across lines.
func (p *page) add(indent int, text string, style canvas.Style) {
	width := max(1, p.width-indent)
	wrapped := wrap.String(wordwrap.String(text, width), width)
	for _, s := range strings.Split(wrapped, "\n") {
		p.lines = append(p.lines, line{text: strings.TrimRight(s, " "), style: style, indent: indent})
	}
}

func (p *page) blank() {
	p.lines = append(p.lines, line{style: tui.BodyStyle})
}

// document is a scrollable page.
type document struct {
	viewport viewport.Model
}

func newDocument() *document {
	return &document{viewport: viewport.New(0, 0)}
}

// render builds a page to fit the region below the top row, leaving a margin
// either side, and draws its visible lines. A scrollbar is drawn in the right
// margin when the page overflows.
func (d *document) render(r *canvas.Region, top int, build func(width int) *page) {
	body := r.Sub(canvas.Rect{
		X:      1,
		Y:      top,
		Width:  max(0, r.Width()-2),
		Height: max(0, r.Height()-top),
	})
	p := build(body.Width())

	d.viewport.Width = body.Width()
	d.viewport.Height = body.Height()
	plain := make([]string, len(p.lines))
	for i, l := range p.lines {
		plain[i] = l.text
	}
	d.viewport.SetContent(strings.Join(plain, "\n"))

	for i := 0; i < body.Height(); i++ {
		j := d.viewport.YOffset + i
		if j >= len(p.lines) {
			break
		}
		l := p.lines[j]
		body.Text(l.indent, i, l.text, l.style)
	}
	if len(p.lines) > body.Height() && r.Width() > 2 {
		bar := r.Sub(canvas.Rect{X: r.Width() - 1, Y: top, Width: 1, Height: body.Height()})
		tui.DrawScrollbar(bar, len(p.lines), body.Height(), d.viewport.YOffset)
	}
}

// update scrolls the page.
func (d *document) update(msg tea.Msg) {
	switch msg := msg.(type) {
	case tui.ScrollMsg:
		if msg.Delta > 0 {
			d.viewport.LineDown(msg.Delta)
		} else {
			d.viewport.LineUp(-msg.Delta)
		}
	case tea.KeyMsg:
		d.viewport, _ = d.viewport.Update(msg)
	}
}
