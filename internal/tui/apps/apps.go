// Package apps provides the content of each of the desktop's windows.
package apps

import (
	"fmt"

	"github.com/amiigood/folio/internal/canvas"
	"github.com/amiigood/folio/internal/catalog"
	"github.com/amiigood/folio/internal/tui"
	"github.com/amiigood/folio/internal/window"
	tea "github.com/charmbracelet/bubbletea"
)

// Definitions returns the definition of every window, in the order of
// window.IDs.
func Definitions(svc tui.Services) []tui.Definition {
	return []tui.Definition{
		{
			ID:        window.Finder,
			Title:     "Finder",
			Placement: canvas.Rect{X: 2, Y: 1, Width: 64, Height: 16},
			New:       func() tui.Content { return newFinder(svc) },
		},
		{
			ID:        window.Contact,
			Title:     "Contact",
			Placement: canvas.Rect{X: 30, Y: 3, Width: 46, Height: 12},
			New:       func() tui.Content { return newContact(svc) },
		},
		{
			ID:        window.Resume,
			Title:     "Resume",
			Placement: canvas.Rect{X: 8, Y: 1, Width: 66, Height: 18},
			New:       func() tui.Content { return newResume(svc) },
		},
		{
			ID:        window.Safari,
			Title:     "Safari",
			Placement: canvas.Rect{X: 6, Y: 2, Width: 68, Height: 17},
			New:       func() tui.Content { return newSafari(svc) },
		},
		{
			ID:        window.Photos,
			Title:     "Photos",
			Placement: canvas.Rect{X: 14, Y: 2, Width: 58, Height: 15},
			New:       func() tui.Content { return newPhotos(svc) },
		},
		{
			ID:        window.Terminal,
			Title:     "Terminal",
			Placement: canvas.Rect{X: 4, Y: 3, Width: 62, Height: 15},
			New:       func() tui.Content { return newTerminal(svc) },
		},
		{
			ID:        window.TxtFile,
			Title:     "Text",
			Placement: canvas.Rect{X: 20, Y: 2, Width: 56, Height: 16},
			New:       func() tui.Content { return newText() },
		},
		{
			ID:        window.ImgFile,
			Title:     "Preview",
			Placement: canvas.Rect{X: 24, Y: 4, Width: 46, Height: 13},
			New:       func() tui.Content { return newImage() },
		},
	}
}

func openWindow(svc tui.Services, id window.ID, data any) tea.Cmd {
	if err := svc.Windows.Open(id, data); err != nil {
		return tui.ReportError(err, "opening window", "window", id)
	}
	return nil
}

// openEntry opens a file in the window appropriate to its type. Links are
// reported rather than followed.
func openEntry(svc tui.Services, e *catalog.Entry) tea.Cmd {
	switch e.FileType {
	case catalog.TextFile:
		return openWindow(svc, window.TxtFile, e)
	case catalog.ImageFile:
		return openWindow(svc, window.ImgFile, e)
	case catalog.PDFFile:
		return openWindow(svc, window.Resume, nil)
	case catalog.URLFile:
		return tui.ReportInfo(fmt.Sprintf("%s: %s", e.Name, e.Href))
	default:
		return tui.ReportError(fmt.Errorf("unsupported file type: %q", e.FileType), "opening file", "file", e.Name)
	}
}

// icon returns a single cell symbol for an entry.
func icon(e *catalog.Entry) string {
	if e.IsFolder() {
		return "▸"
	}
	switch e.FileType {
	case catalog.TextFile:
		return "≡"
	case catalog.ImageFile:
		return "▣"
	case catalog.URLFile:
		return "↗"
	case catalog.PDFFile:
		return "▤"
	default:
		return "·"
	}
}

// entry extracts a file record from a window's payload.
func entry(data any) (*catalog.Entry, bool) {
	e, ok := data.(*catalog.Entry)
	return e, ok && e != nil
}
