package apps

import (
	"strings"

	"github.com/amiigood/folio/internal/canvas"
	"github.com/amiigood/folio/internal/catalog"
	"github.com/amiigood/folio/internal/tui"
	"github.com/amiigood/folio/internal/tui/keys"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const sidebarWidth = 14

// listTop is the row of the first entry in the folder listing.
const listTop = 2

type pane int

const (
	sidebarPane pane = iota
	listPane
)

// finder browses the catalog's locations and folders.
type finder struct {
	svc tui.Services

	location int
	// path is the folders opened beneath the location.
	path     []*catalog.Entry
	selected int
	pane     pane
	// rows is the number of entries visible in the listing when last
	// rendered.
	rows int
}

func newFinder(svc tui.Services) *finder {
	return &finder{svc: svc, pane: listPane}
}

// folder returns the folder currently being browsed, or nil if there are no
// locations.
func (f *finder) folder() *catalog.Entry {
	if n := len(f.path); n > 0 {
		return f.path[n-1]
	}
	if f.location < len(f.svc.Catalog.Locations) {
		return &f.svc.Catalog.Locations[f.location].Entry
	}
	return nil
}

func (f *finder) breadcrumbs() string {
	folder := f.folder()
	if folder == nil {
		return ""
	}
	names := []string{f.svc.Catalog.Locations[f.location].Name}
	for _, e := range f.path {
		names = append(names, e.Name)
	}
	return strings.Join(names, " / ")
}

func (f *finder) Title(any) string {
	return f.breadcrumbs()
}

func (f *finder) Render(r *canvas.Region, _ any) {
	r.Text(1, 0, "Favorites", tui.SubtleStyle)
	for i, loc := range f.svc.Catalog.Locations {
		style := tui.BodyStyle
		if i == f.location {
			style = tui.AccentStyle
			if f.pane == sidebarPane {
				style = tui.SelectedStyle
			}
		}
		r.Text(1, i+1, loc.Name, style)
	}
	for y := 0; y < r.Height(); y++ {
		r.Text(sidebarWidth, y, "│", tui.SubtleStyle)
	}

	list := r.Sub(canvas.Rect{
		X:      sidebarWidth + 2,
		Width:  max(0, r.Width()-sidebarWidth-2),
		Height: r.Height(),
	})
	folder := f.folder()
	if folder == nil {
		list.Text(0, 0, "No locations", tui.SubtleStyle)
		return
	}
	list.Text(0, 0, f.breadcrumbs(), tui.HeadingStyle)
	if len(folder.Children) == 0 {
		list.Text(0, listTop, "Empty", tui.SubtleStyle)
		return
	}
	f.rows = max(1, list.Height()-listTop)
	offset := f.offset()
	for i, e := range folder.Children[offset:] {
		if i >= f.rows {
			break
		}
		style := tui.BodyStyle
		if offset+i == f.selected && f.pane == listPane {
			style = tui.SelectedStyle
		}
		list.Text(0, listTop+i, icon(e)+" "+e.Name, style)
	}
}

// offset returns the index of the first visible entry, keeping the selected
// entry in view.
func (f *finder) offset() int {
	if f.rows == 0 {
		return 0
	}
	return max(0, f.selected-(f.rows-1))
}

func (f *finder) Update(msg tea.Msg, _ any) tea.Cmd {
	folder := f.folder()
	if folder == nil {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Navigation.SwitchPane):
			if f.pane == sidebarPane {
				f.pane = listPane
			} else {
				f.pane = sidebarPane
			}
		case key.Matches(msg, keys.Navigation.LineUp):
			if f.pane == sidebarPane {
				f.setLocation(f.location - 1)
			} else {
				f.selected = max(0, f.selected-1)
			}
		case key.Matches(msg, keys.Navigation.LineDown):
			if f.pane == sidebarPane {
				f.setLocation(f.location + 1)
			} else {
				f.selected = max(0, min(len(folder.Children)-1, f.selected+1))
			}
		case key.Matches(msg, keys.Navigation.Enter):
			if f.pane == sidebarPane {
				f.pane = listPane
				return nil
			}
			return f.activate(f.selected)
		case key.Matches(msg, keys.Navigation.Back):
			f.up()
		}
	case tui.ClickMsg:
		if msg.X < sidebarWidth {
			f.pane = sidebarPane
			f.setLocation(msg.Y - 1)
			return nil
		}
		if msg.Y == 0 {
			f.up()
			return nil
		}
		i := f.offset() + msg.Y - listTop
		if msg.Y < listTop || i >= len(folder.Children) {
			return nil
		}
		f.pane = listPane
		f.selected = i
		return f.activate(i)
	}
	return nil
}

func (f *finder) setLocation(i int) {
	if i < 0 || i >= len(f.svc.Catalog.Locations) {
		return
	}
	f.location = i
	f.path = nil
	f.selected = 0
}

// up goes to the parent folder.
func (f *finder) up() {
	if n := len(f.path); n > 0 {
		f.path = f.path[:n-1]
		f.selected = 0
	}
}

// activate opens the ith entry in the current folder: folders are browsed,
// and files are opened according to their type.
func (f *finder) activate(i int) tea.Cmd {
	children := f.folder().Children
	if i < 0 || i >= len(children) {
		return nil
	}
	e := children[i]
	if e.IsFolder() {
		f.path = append(f.path, e)
		f.selected = 0
		return nil
	}
	return openEntry(f.svc, e)
}
