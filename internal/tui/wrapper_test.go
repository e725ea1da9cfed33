package tui

import (
	"strings"
	"testing"

	"github.com/amiigood/folio/internal/canvas"
	"github.com/amiigood/folio/internal/logging"
	"github.com/amiigood/folio/internal/resource"
	"github.com/amiigood/folio/internal/window"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDesktop = canvas.Rect{X: 0, Y: 1, Width: 80, Height: 20}

type fakeContent struct {
	msgs []tea.Msg
}

func (f *fakeContent) Render(r *canvas.Region, data any) {
	s, _ := data.(string)
	r.Text(0, 0, "content:"+s, BodyStyle)
}

func (f *fakeContent) Update(msg tea.Msg, data any) tea.Cmd {
	f.msgs = append(f.msgs, msg)
	return nil
}

type titledContent struct{ fakeContent }

func (titledContent) Title(data any) string {
	s, _ := data.(string)
	return s
}

// countingStore counts calls to Focus.
type countingStore struct {
	*window.Store
	focused int
}

func (s *countingStore) Focus(id window.ID) error {
	s.focused++
	return s.Store.Focus(id)
}

type wrapperSetup struct {
	store   *countingStore
	wrapper *Wrapper
	content *fakeContent
}

func setupWrapper(t *testing.T, placement canvas.Rect) *wrapperSetup {
	t.Helper()

	s := &wrapperSetup{
		store: &countingStore{Store: window.NewStore(logging.Discard)},
	}
	s.wrapper = NewWrapper(Definition{
		ID:        window.Terminal,
		Title:     "Terminal",
		Placement: placement,
		New: func() Content {
			s.content = &fakeContent{}
			return s.content
		},
	}, s.store, logging.Discard)
	s.wrapper.SetDesktop(testDesktop)
	return s
}

// sync relays the window's current state to the wrapper, as the desktop does
// upon receiving an event from the store.
func (s *wrapperSetup) sync(t *testing.T) {
	t.Helper()

	state, err := s.store.Get(s.wrapper.ID)
	require.NoError(t, err)
	s.wrapper.Sync(state)
}

func (s *wrapperSetup) open(t *testing.T, data any) {
	t.Helper()

	require.NoError(t, s.store.Open(s.wrapper.ID, data))
	s.sync(t)
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

func TestWrapper_Closed(t *testing.T) {
	s := setupWrapper(t, canvas.Rect{})
	s.sync(t)

	assert.False(t, s.wrapper.Mounted())
	assert.Nil(t, s.content, "content should not have been constructed")
	assert.True(t, s.wrapper.Frame().Empty())

	c := canvas.New(80, 24, Palette())
	blank := c.Plain()
	s.wrapper.Draw(c, true)
	assert.Equal(t, blank, c.Plain())

	handled, _ := s.wrapper.HandleMouse(press(10, 5))
	assert.False(t, handled)
}

func TestWrapper_Mount(t *testing.T) {
	s := setupWrapper(t, canvas.Rect{X: 5, Y: 2, Width: 40, Height: 10})
	s.open(t, nil)

	require.True(t, s.wrapper.Mounted())
	mount := s.wrapper.Mount()
	assert.Equal(t, resource.Mount, mount.ID.Kind())
	assert.Equal(t, window.Terminal, mount.WindowID)
	// Placement is relative to the desktop.
	assert.Equal(t, canvas.Rect{X: 5, Y: 3, Width: 40, Height: 10}, s.wrapper.Frame())
}

func TestWrapper_DefaultPlacement(t *testing.T) {
	s := setupWrapper(t, canvas.Rect{})
	s.open(t, nil)

	want := DefaultPlacement
	want.Y += testDesktop.Y
	assert.Equal(t, want, s.wrapper.Frame())
}

func TestWrapper_PlacementShrunkToFitDesktop(t *testing.T) {
	s := setupWrapper(t, canvas.Rect{X: 70, Y: 15, Width: 100, Height: 50})
	s.open(t, nil)

	assert.Equal(t, testDesktop, s.wrapper.Frame())
}

func TestWrapper_Unmount(t *testing.T) {
	s := setupWrapper(t, canvas.Rect{})
	s.open(t, "hello")

	require.NoError(t, s.store.Close(s.wrapper.ID))
	s.sync(t)

	assert.False(t, s.wrapper.Mounted())
	assert.Nil(t, s.wrapper.State().Data)
}

func TestWrapper_ReopenResetsPosition(t *testing.T) {
	s := setupWrapper(t, canvas.Rect{X: 5, Y: 2, Width: 40, Height: 10})
	s.open(t, nil)
	first := s.wrapper.Mount()
	s.wrapper.Move(10, 3)
	require.Equal(t, 15, s.wrapper.Frame().X)

	require.NoError(t, s.store.Close(s.wrapper.ID))
	s.sync(t)
	s.open(t, nil)

	assert.NotEqual(t, first.ID, s.wrapper.Mount().ID, "expected a fresh mount")
	assert.Equal(t, 5, s.wrapper.Frame().X)
}

func TestWrapper_PressFocusesOnce(t *testing.T) {
	s := setupWrapper(t, canvas.Rect{X: 5, Y: 2, Width: 40, Height: 10})
	s.open(t, nil)
	require.NoError(t, s.store.Open(window.Finder, nil))

	handled, _ := s.wrapper.HandleMouse(press(20, 8))
	assert.True(t, handled)
	assert.Equal(t, 1, s.store.focused)

	top, ok := s.store.Top()
	require.True(t, ok)
	assert.Equal(t, window.Terminal, top.ID)
}

func TestWrapper_ClickForwardedToContent(t *testing.T) {
	s := setupWrapper(t, canvas.Rect{X: 5, Y: 2, Width: 40, Height: 10})
	s.open(t, nil)

	// body starts at (6, 4)
	s.wrapper.HandleMouse(press(10, 6))

	assert.Equal(t, []tea.Msg{ClickMsg{X: 4, Y: 2}}, s.content.msgs)
}

func TestWrapper_Scroll(t *testing.T) {
	s := setupWrapper(t, canvas.Rect{X: 5, Y: 2, Width: 40, Height: 10})
	s.open(t, nil)

	s.wrapper.HandleMouse(tea.MouseMsg{X: 10, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	s.wrapper.HandleMouse(tea.MouseMsg{X: 10, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})

	assert.Equal(t, []tea.Msg{ScrollMsg{Delta: 1}, ScrollMsg{Delta: -1}}, s.content.msgs)
	assert.Equal(t, 0, s.store.focused, "scrolling should not focus")
}

func TestWrapper_CloseControl(t *testing.T) {
	s := setupWrapper(t, canvas.Rect{X: 5, Y: 2, Width: 40, Height: 10})
	s.open(t, "payload")
	frame := s.wrapper.Frame()

	handled, _ := s.wrapper.HandleMouse(press(frame.X+closeOffset, frame.Y))
	assert.True(t, handled)

	state, err := s.store.Get(window.Terminal)
	require.NoError(t, err)
	assert.False(t, state.IsOpen)
	assert.Nil(t, state.Data)

	s.sync(t)
	assert.False(t, s.wrapper.Mounted())
}

func TestWrapper_Drag(t *testing.T) {
	s := setupWrapper(t, canvas.Rect{X: 5, Y: 2, Width: 40, Height: 10})
	s.open(t, nil)

	// Grab the title bar 10 cells from the left edge.
	s.wrapper.HandleMouse(press(15, 3))
	assert.True(t, s.wrapper.Dragging())

	s.wrapper.HandleMouse(motion(20, 5))
	assert.Equal(t, canvas.Rect{X: 10, Y: 5, Width: 40, Height: 10}, s.wrapper.Frame())

	s.wrapper.HandleMouse(motion(25, 8))
	s.wrapper.HandleMouse(release(25, 8))
	assert.False(t, s.wrapper.Dragging())
	assert.Equal(t, canvas.Rect{X: 15, Y: 8, Width: 40, Height: 10}, s.wrapper.Frame())

	// Further motion no longer moves the window.
	s.wrapper.HandleMouse(motion(30, 9))
	assert.Equal(t, 15, s.wrapper.Frame().X)

	assert.Equal(t, 1, s.store.focused, "dragging should focus only once")
}

func TestWrapper_DragClamped(t *testing.T) {
	s := setupWrapper(t, canvas.Rect{X: 5, Y: 2, Width: 40, Height: 10})
	s.open(t, nil)

	s.wrapper.HandleMouse(press(15, 3))
	s.wrapper.HandleMouse(motion(-50, -50))
	assert.Equal(t, canvas.Rect{X: 0, Y: 1, Width: 40, Height: 10}, s.wrapper.Frame())

	s.wrapper.HandleMouse(motion(500, 500))
	assert.Equal(t, canvas.Rect{X: 40, Y: 11, Width: 40, Height: 10}, s.wrapper.Frame())
}

func TestWrapper_Move(t *testing.T) {
	s := setupWrapper(t, canvas.Rect{X: 5, Y: 2, Width: 40, Height: 10})
	s.open(t, nil)

	s.wrapper.Move(-1, 1)
	assert.Equal(t, canvas.Rect{X: 4, Y: 4, Width: 40, Height: 10}, s.wrapper.Frame())

	s.wrapper.Move(-100, 0)
	assert.Equal(t, 0, s.wrapper.Frame().X)
}

func TestWrapper_HandleKey(t *testing.T) {
	s := setupWrapper(t, canvas.Rect{})
	s.open(t, nil)

	key := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}
	s.wrapper.HandleKey(key)

	assert.Equal(t, []tea.Msg{key}, s.content.msgs)
}

func TestWrapper_Draw(t *testing.T) {
	s := setupWrapper(t, canvas.Rect{X: 5, Y: 2, Width: 30, Height: 5})
	s.open(t, "hello")

	c := canvas.New(80, 24, Palette())
	s.wrapper.Draw(c, true)
	lines := strings.Split(c.Plain(), "\n")

	assert.True(t, strings.HasPrefix(lines[3], "     ╭─●─"), lines[3])
	assert.Contains(t, lines[3], " Terminal ")
	assert.Contains(t, lines[4], "│content:hello")
	assert.Contains(t, lines[7], "╰")
}

func TestWrapper_Title(t *testing.T) {
	store := window.NewStore(logging.Discard)
	w := NewWrapper(Definition{
		ID:    window.TxtFile,
		Title: "Text",
		New:   func() Content { return &titledContent{} },
	}, store, logging.Discard)
	w.SetDesktop(testDesktop)

	assert.Equal(t, "Text", w.Title())

	require.NoError(t, store.Open(window.TxtFile, "notes.txt"))
	state, err := store.Get(window.TxtFile)
	require.NoError(t, err)
	w.Sync(state)
	assert.Equal(t, "notes.txt", w.Title())

	require.NoError(t, store.Close(window.TxtFile))
	require.NoError(t, store.Open(window.TxtFile, nil))
	state, err = store.Get(window.TxtFile)
	require.NoError(t, err)
	w.Sync(state)
	assert.Equal(t, "Text", w.Title(), "expected default title without payload")
}
