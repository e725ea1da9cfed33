package apps

import (
	"path"

	"github.com/amiigood/folio/internal/canvas"
	"github.com/amiigood/folio/internal/catalog"
	"github.com/amiigood/folio/internal/tui"
	"github.com/amiigood/folio/internal/tui/keys"
	"github.com/amiigood/folio/internal/window"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// galleryTop is the row of the first gallery image.
const galleryTop = 2

// photos lists the photo albums and the gallery. Selecting a gallery image
// opens it in the image viewer.
type photos struct {
	svc      tui.Services
	selected int
}

func newPhotos(svc tui.Services) *photos {
	return &photos{svc: svc}
}

func (p *photos) Render(r *canvas.Region, _ any) {
	cat := p.svc.Catalog
	r.Text(1, 0, "Photos", tui.SubtleStyle)
	for i, album := range cat.Albums {
		style := tui.BodyStyle
		if i == 0 {
			style = tui.AccentStyle
		}
		r.Text(1, i+1, album.Title, style)
	}
	for y := 0; y < r.Height(); y++ {
		r.Text(sidebarWidth, y, "│", tui.SubtleStyle)
	}
	gallery := r.Sub(canvas.Rect{
		X:      sidebarWidth + 2,
		Width:  max(0, r.Width()-sidebarWidth-2),
		Height: r.Height(),
	})
	gallery.Text(0, 0, "Gallery", tui.HeadingStyle)
	for i, photo := range cat.Gallery {
		style := tui.BodyStyle
		if i == p.selected {
			style = tui.SelectedStyle
		}
		gallery.Text(0, galleryTop+i, "▣ "+path.Base(photo.Image), style)
	}
}

func (p *photos) Update(msg tea.Msg, _ any) tea.Cmd {
	gallery := p.svc.Catalog.Gallery
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Navigation.LineUp):
			p.selected = max(0, p.selected-1)
		case key.Matches(msg, keys.Navigation.LineDown):
			p.selected = max(0, min(len(gallery)-1, p.selected+1))
		case key.Matches(msg, keys.Navigation.Enter):
			return p.open(p.selected)
		}
	case tui.ClickMsg:
		i := msg.Y - galleryTop
		if msg.X > sidebarWidth && i >= 0 && i < len(gallery) {
			p.selected = i
			return p.open(i)
		}
	}
	return nil
}

// open opens the ith gallery image in the image viewer.
func (p *photos) open(i int) tea.Cmd {
	gallery := p.svc.Catalog.Gallery
	if i < 0 || i >= len(gallery) {
		return nil
	}
	return openWindow(p.svc, window.ImgFile, &catalog.Entry{
		Name:     path.Base(gallery[i].Image),
		Kind:     catalog.FileKind,
		FileType: catalog.ImageFile,
		ImageURL: gallery[i].Image,
	})
}
