package tui

import (
	"log/slog"

	"github.com/amiigood/folio/internal/canvas"
	"github.com/amiigood/folio/internal/logging"
	"github.com/amiigood/folio/internal/resource"
	"github.com/amiigood/folio/internal/window"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// CloseControl is drawn on the left of a window's title bar.
const CloseControl = "●"

// closeOffset is the column of the close control within the title bar.
const closeOffset = 2

// Minimum frame dimensions, enough for the borders, the close control and a
// single line of content.
const (
	minFrameWidth  = 8
	minFrameHeight = 3
)

// Wrapper wraps a window's content, mounting it only whilst the window is
// open, and handles the window chrome: the frame, the title bar, dragging,
// focusing and closing.
type Wrapper struct {
	Definition

	store  WindowStore
	logger logging.Interface

	state   window.State
	desktop canvas.Rect
	mount   *Mount
}

// Mount is a mounted instance of a window's content.
type Mount struct {
	ID       resource.ID
	WindowID window.ID
	// Frame is the window's position and size on the screen.
	Frame canvas.Rect

	content Content
	drag    *drag
}

func (m *Mount) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", m.ID.String()),
		slog.Int("x", m.Frame.X),
		slog.Int("y", m.Frame.Y),
	)
}

// drag is a drag in progress.
type drag struct {
	// offset of the pointer from the frame's top left corner when the drag
	// began.
	dx, dy int
}

func NewWrapper(def Definition, store WindowStore, logger logging.Interface) *Wrapper {
	return &Wrapper{
		Definition: def,
		store:      store,
		logger:     logger,
		state:      window.State{ID: def.ID, ZIndex: window.BaseZIndex},
	}
}

// Sync brings the wrapper into line with the window's state: content is
// mounted when the window opens, in its initial placement, and discarded when
// it closes.
func (w *Wrapper) Sync(state window.State) {
	switch {
	case state.IsOpen && w.mount == nil:
		w.mount = &Mount{
			ID:       resource.NewID(resource.Mount),
			WindowID: w.ID,
			Frame:    w.placement(),
			content:  w.New(),
		}
		w.logger.Debug("mounted window", "mount", w.mount)
	case !state.IsOpen && w.mount != nil:
		w.logger.Debug("unmounted window", "mount", w.mount)
		w.mount = nil
	}
	w.state = state
}

// SetDesktop sets the area within which the window is placed and moved. A
// mounted window is moved, and if necessary shrunk, to fit.
func (w *Wrapper) SetDesktop(desktop canvas.Rect) {
	w.desktop = desktop
	if w.mount != nil {
		w.mount.Frame = w.fit(w.mount.Frame)
	}
}

func (w *Wrapper) State() window.State { return w.state }

func (w *Wrapper) Mounted() bool { return w.mount != nil }

// Mount returns the mounted content instance, or nil if the window is closed.
func (w *Wrapper) Mount() *Mount { return w.mount }

// Frame returns the window's position and size. It is empty when the window
// is closed.
func (w *Wrapper) Frame() canvas.Rect {
	if w.mount == nil {
		return canvas.Rect{}
	}
	return w.mount.Frame
}

// Contains determines whether the window covers the cell at (x, y).
func (w *Wrapper) Contains(x, y int) bool {
	return w.mount != nil && w.mount.Frame.Contains(x, y)
}

// Dragging is true whilst the window is being dragged.
func (w *Wrapper) Dragging() bool {
	return w.mount != nil && w.mount.drag != nil
}

// Title returns the window's title.
func (w *Wrapper) Title() string {
	if w.mount != nil {
		if t, ok := w.mount.content.(Titler); ok {
			if title := t.Title(w.state.Data); title != "" {
				return title
			}
		}
	}
	return w.Definition.Title
}

// HandleMouse handles a mouse event. It returns true if the event was
// consumed by the window, i.e. the event occurred over the window or the
// window is being dragged.
func (w *Wrapper) HandleMouse(msg tea.MouseMsg) (bool, tea.Cmd) {
	if w.mount == nil {
		return false, nil
	}
	if w.mount.drag != nil {
		switch msg.Action {
		case tea.MouseActionMotion:
			w.moveTo(msg.X-w.mount.drag.dx, msg.Y-w.mount.drag.dy)
		case tea.MouseActionRelease:
			w.logger.Debug("dragged window", "mount", w.mount)
			w.mount.drag = nil
		}
		return true, nil
	}
	frame := w.mount.Frame
	if !frame.Contains(msg.X, msg.Y) {
		return false, nil
	}
	if msg.Action != tea.MouseActionPress {
		return true, nil
	}
	body := w.body()
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		delta := 1
		if msg.Button == tea.MouseButtonWheelUp {
			delta = -1
		}
		return true, w.update(ScrollMsg{Delta: delta})
	case tea.MouseButtonLeft:
	default:
		return true, nil
	}
	// A press anywhere on the window brings it to the front.
	if err := w.store.Focus(w.ID); err != nil {
		return true, ReportError(err, "focusing window")
	}
	switch {
	case msg.Y == frame.Y && msg.X == frame.X+closeOffset:
		if err := w.store.Close(w.ID); err != nil {
			return true, ReportError(err, "closing window")
		}
	case msg.Y == frame.Y:
		w.mount.drag = &drag{dx: msg.X - frame.X, dy: msg.Y - frame.Y}
	case body.Contains(msg.X, msg.Y):
		return true, w.update(ClickMsg{X: msg.X - body.X, Y: msg.Y - body.Y})
	}
	return true, nil
}

// HandleKey forwards a key press to the content.
func (w *Wrapper) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if w.mount == nil {
		return nil
	}
	return w.update(msg)
}

// Move moves the window by the given number of cells, keeping it within the
// desktop.
func (w *Wrapper) Move(dx, dy int) {
	if w.mount == nil {
		return
	}
	w.moveTo(w.mount.Frame.X+dx, w.mount.Frame.Y+dy)
}

// Draw draws the window onto the canvas. Nothing is drawn when the window is
// closed. The active window is drawn with a highlighted border.
func (w *Wrapper) Draw(c *canvas.Canvas, active bool) {
	if w.mount == nil {
		return
	}
	frame := w.mount.Frame
	if frame.Width < minFrameWidth || frame.Height < minFrameHeight {
		return
	}
	borderStyle := BorderStyle
	if active {
		borderStyle = ActiveBorderStyle
	}
	c.Fill(frame, ' ', BodyStyle)
	r := c.Region(frame)
	DrawBorder(r, lipgloss.RoundedBorder(), borderStyle)
	r.Text(closeOffset, 0, CloseControl, CloseStyle)

	// Centre the title, leaving room for the close control.
	room := frame.Width - 2*(closeOffset+3)
	if room > 0 {
		title := truncate.StringWithTail(w.Title(), uint(room), "…")
		x := (frame.Width - canvas.StringWidth(title)) / 2
		r.Text(x-1, 0, " "+title+" ", TitleStyle)
	}
	body := w.body()
	w.mount.content.Render(c.Region(body), w.state.Data)
}

func (w *Wrapper) update(msg tea.Msg) tea.Cmd {
	if u, ok := w.mount.content.(Updater); ok {
		return u.Update(msg, w.state.Data)
	}
	return nil
}

// body returns the area within the frame's borders.
func (w *Wrapper) body() canvas.Rect {
	frame := w.mount.Frame
	return canvas.Rect{
		X:      frame.X + 1,
		Y:      frame.Y + 1,
		Width:  max(0, frame.Width-2),
		Height: max(0, frame.Height-2),
	}
}

func (w *Wrapper) moveTo(x, y int) {
	w.mount.Frame.X = x
	w.mount.Frame.Y = y
	w.mount.Frame = w.fit(w.mount.Frame)
}

// placement returns the frame of a newly mounted window.
func (w *Wrapper) placement() canvas.Rect {
	r := w.Placement
	if r.Empty() {
		r = DefaultPlacement
	}
	r.X += w.desktop.X
	r.Y += w.desktop.Y
	return w.fit(r)
}

// fit shrinks the frame to fit the desktop and moves it within the desktop.
func (w *Wrapper) fit(r canvas.Rect) canvas.Rect {
	if w.desktop.Empty() {
		return r
	}
	r.Width = max(min(r.Width, w.desktop.Width), min(minFrameWidth, w.desktop.Width))
	r.Height = max(min(r.Height, w.desktop.Height), min(minFrameHeight, w.desktop.Height))
	return r.Clamp(w.desktop)
}

// DrawBorder draws a border around the edge of the region.
func DrawBorder(r *canvas.Region, b lipgloss.Border, style canvas.Style) {
	w, h := r.Width(), r.Height()
	for x := 1; x < w-1; x++ {
		r.Text(x, 0, b.Top, style)
		r.Text(x, h-1, b.Bottom, style)
	}
	for y := 1; y < h-1; y++ {
		r.Text(0, y, b.Left, style)
		r.Text(w-1, y, b.Right, style)
	}
	r.Text(0, 0, b.TopLeft, style)
	r.Text(w-1, 0, b.TopRight, style)
	r.Text(0, h-1, b.BottomLeft, style)
	r.Text(w-1, h-1, b.BottomRight, style)
}
