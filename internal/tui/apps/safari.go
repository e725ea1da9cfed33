package apps

import (
	"strings"

	"github.com/amiigood/folio/internal/canvas"
	"github.com/amiigood/folio/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

const addressBar = "⌕ Search or enter website name"

// safari is a browser showing the professional experience timeline.
type safari struct {
	svc tui.Services
	doc *document
}

func newSafari(svc tui.Services) *safari {
	return &safari{svc: svc, doc: newDocument()}
}

func (s *safari) Render(r *canvas.Region, _ any) {
	r.Text(max(0, (r.Width()-canvas.StringWidth(addressBar))/2), 0, addressBar, tui.SubtleStyle)
	s.doc.render(r, 2, s.page)
}

func (s *safari) page(width int) *page {
	p := &page{width: width}
	p.add(0, "Professional Experience", tui.HeadingStyle)
	if s.svc.Catalog.Headline != "" {
		p.add(0, s.svc.Catalog.Headline, tui.SubtleStyle)
	}
	for i, exp := range s.svc.Catalog.Experiences {
		p.blank()
		// Timeline: a dot for each experience, joined by a connector.
		connector := "│ "
		if i == len(s.svc.Catalog.Experiences)-1 {
			connector = "  "
		}
		p.add(0, "● "+exp.Position, tui.TitleStyle)
		p.add(2, exp.Company, tui.AccentStyle)
		p.add(2, exp.Period+" · "+exp.Location, tui.SubtleStyle)
		for _, item := range exp.Description {
			p.add(2, "• "+item, tui.BodyStyle)
		}
		if len(exp.Technologies) > 0 {
			p.add(2, "["+strings.Join(exp.Technologies, "] [")+"]", tui.LinkStyle)
		}
		p.lines = append(p.lines, line{text: connector, style: tui.SubtleStyle})
	}
	return p
}

func (s *safari) Update(msg tea.Msg, _ any) tea.Cmd {
	s.doc.update(msg)
	return nil
}
