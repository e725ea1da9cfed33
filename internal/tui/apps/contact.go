package apps

import (
	"fmt"

	"github.com/amiigood/folio/internal/canvas"
	"github.com/amiigood/folio/internal/tui"
	"github.com/amiigood/folio/internal/tui/keys"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// socialsTop is the row of the first social link.
const socialsTop = 4

// contact lists ways of getting in touch.
type contact struct {
	svc      tui.Services
	selected int
}

func newContact(svc tui.Services) *contact {
	return &contact{svc: svc}
}

func (c *contact) Render(r *canvas.Region, _ any) {
	cat := c.svc.Catalog
	r.Text(1, 0, "Let's Connect", tui.HeadingStyle)
	r.Text(1, 1, "Got an idea? A bug to squash? Or just want to talk tech?", tui.BodyStyle)
	if cat.Email != "" {
		r.Text(1, 2, "✉ "+cat.Email, tui.LinkStyle)
	}
	for i, s := range cat.Socials {
		style := tui.BodyStyle
		if i == c.selected {
			style = tui.SelectedStyle
		}
		r.Text(1, socialsTop+i, "↗ "+s.Text, style)
	}
}

func (c *contact) Update(msg tea.Msg, _ any) tea.Cmd {
	socials := c.svc.Catalog.Socials
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Navigation.LineUp):
			c.selected = max(0, c.selected-1)
		case key.Matches(msg, keys.Navigation.LineDown):
			c.selected = max(0, min(len(socials)-1, c.selected+1))
		case key.Matches(msg, keys.Navigation.Enter):
			return c.follow(c.selected)
		}
	case tui.ClickMsg:
		i := msg.Y - socialsTop
		if i >= 0 && i < len(socials) {
			c.selected = i
			return c.follow(i)
		}
	}
	return nil
}

// follow reports the link of the ith social.
func (c *contact) follow(i int) tea.Cmd {
	socials := c.svc.Catalog.Socials
	if i < 0 || i >= len(socials) {
		return nil
	}
	return tui.ReportInfo(fmt.Sprintf("%s: %s", socials[i].Text, socials[i].Link))
}
