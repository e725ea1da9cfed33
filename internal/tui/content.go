package tui

import (
	"github.com/amiigood/folio/internal/canvas"
	"github.com/amiigood/folio/internal/window"
	tea "github.com/charmbracelet/bubbletea"
)

// Content draws the inside of a window. A fresh instance is constructed
// every time its window opens, and discarded when it closes.
type Content interface {
	// Render draws the content into the region, given the window's payload.
	// The payload is nil if the window has none.
	Render(r *canvas.Region, data any)
}

// Updater is implemented by content that responds to input. It receives key
// presses whilst its window is on top, and ClickMsg and ScrollMsg whenever
// the pointer acts on its window's body.
type Updater interface {
	Update(msg tea.Msg, data any) tea.Cmd
}

// Titler is implemented by content whose title depends on the payload. An
// empty title falls back to the window's default title.
type Titler interface {
	Title(data any) string
}

// DefaultPlacement is the position and size of a window without a placement
// of its own.
var DefaultPlacement = canvas.Rect{X: 4, Y: 2, Width: 60, Height: 16}

// Definition describes a window.
type Definition struct {
	ID    window.ID
	Title string
	// Placement is the window's position and size when it opens, relative to
	// the desktop's top left corner. The zero value means DefaultPlacement.
	Placement canvas.Rect
	// New constructs the window's content.
	New func() Content
}
