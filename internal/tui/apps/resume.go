package apps

import (
	"github.com/amiigood/folio/internal/canvas"
	"github.com/amiigood/folio/internal/catalog"
	"github.com/amiigood/folio/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

// resume shows the owner's experience, education and skills.
type resume struct {
	svc tui.Services
	doc *document
}

func newResume(svc tui.Services) *resume {
	return &resume{svc: svc, doc: newDocument()}
}

func (r *resume) Render(region *canvas.Region, _ any) {
	r.doc.render(region, 0, r.page)
}

func (r *resume) page(width int) *page {
	cat := r.svc.Catalog
	p := &page{width: width}
	p.add(0, cat.Owner, tui.HeadingStyle)
	if cat.Email != "" {
		p.add(0, cat.Email, tui.LinkStyle)
	}
	if doc := r.document(); doc != nil && doc.Href != "" {
		p.add(0, doc.Name+": "+doc.Href, tui.SubtleStyle)
	}
	if len(cat.Experiences) > 0 {
		p.blank()
		p.add(0, "EXPERIENCE", tui.AccentStyle)
		for _, exp := range cat.Experiences {
			p.add(0, exp.Position+", "+exp.Company, tui.TitleStyle)
			p.add(2, exp.Period+" · "+exp.Location, tui.SubtleStyle)
			for _, item := range exp.Description {
				p.add(2, "• "+item, tui.BodyStyle)
			}
		}
	}
	if len(cat.Education) > 0 {
		p.blank()
		p.add(0, "EDUCATION", tui.AccentStyle)
		for _, edu := range cat.Education {
			p.add(0, edu.Degree, tui.TitleStyle)
			p.add(2, edu.Field, tui.BodyStyle)
			p.add(2, edu.Institution, tui.BodyStyle)
			p.add(2, edu.Period+" · "+edu.Location, tui.SubtleStyle)
		}
	}
	if len(cat.AdditionalSkills) > 0 {
		p.blank()
		p.add(0, "ADDITIONAL SKILLS", tui.AccentStyle)
		for _, skill := range cat.AdditionalSkills {
			p.add(2, "• "+skill, tui.BodyStyle)
		}
	}
	return p
}

// document returns the first PDF in the resume location.
func (r *resume) document() *catalog.Entry {
	loc, ok := r.svc.Catalog.Location("resume")
	if !ok {
		return nil
	}
	for _, e := range loc.Children {
		if e.FileType == catalog.PDFFile {
			return e
		}
	}
	return nil
}

func (r *resume) Update(msg tea.Msg, _ any) tea.Cmd {
	r.doc.update(msg)
	return nil
}
