package apps

import (
	"github.com/amiigood/folio/internal/canvas"
	"github.com/amiigood/folio/internal/catalog"
	"github.com/amiigood/folio/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

// text displays a text file. It renders nothing without one.
type text struct {
	doc *document
}

func newText() *text {
	return &text{doc: newDocument()}
}

func (t *text) Title(data any) string {
	if e, ok := entry(data); ok {
		return e.Name
	}
	return ""
}

func (t *text) Render(r *canvas.Region, data any) {
	e, ok := entry(data)
	if !ok {
		return
	}
	t.doc.render(r, 0, func(width int) *page {
		return t.page(width, e)
	})
}

func (t *text) page(width int, e *catalog.Entry) *page {
	p := &page{width: width}
	if src := e.ImageSource(); src != "" {
		p.add(0, "▣ "+src, tui.SubtleStyle)
		p.blank()
	}
	if e.Subtitle != "" {
		p.add(0, e.Subtitle, tui.HeadingStyle)
		p.blank()
	}
	for i, para := range e.Description {
		if i > 0 {
			p.blank()
		}
		p.add(0, para, tui.BodyStyle)
	}
	return p
}

func (t *text) Update(msg tea.Msg, _ any) tea.Cmd {
	t.doc.update(msg)
	return nil
}
