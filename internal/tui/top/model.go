package top

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/amiigood/folio/internal/canvas"
	"github.com/amiigood/folio/internal/catalog"
	"github.com/amiigood/folio/internal/logging"
	"github.com/amiigood/folio/internal/resource"
	"github.com/amiigood/folio/internal/tui"
	"github.com/amiigood/folio/internal/tui/apps"
	"github.com/amiigood/folio/internal/tui/keys"
	"github.com/amiigood/folio/internal/window"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

const (
	clockFormat = "Mon Jan 2 3:04 PM"
	quitPrompt  = "Quit folio? (y/N): "
	// indicator marks the dock apps whose window is open.
	indicator = "•"
)

// clockMsg redraws the navbar clock.
type clockMsg time.Time

type model struct {
	windows tui.WindowStore
	catalog *catalog.Catalog
	logger  logging.Interface

	// wrappers are in window ID order; stack() orders them by z-index.
	wrappers []*tui.Wrapper
	welcome  *welcome
	layout   layout
	palette  []lipgloss.Style

	width  int
	height int

	showHelp       bool
	showQuitPrompt bool

	// Either an error or an informational message is rendered in the navbar.
	err  error
	info string

	now  func() time.Time
	dump *os.File
}

// Options for constructing the TUI.
type Options struct {
	Windows *window.Store
	Catalog *catalog.Catalog
	Logger  *logging.Logger
	// Now returns the time shown by the navbar clock. Defaults to time.Now.
	Now func() time.Time
	// Debug dumps every message to messages.log.
	Debug bool
	// NoMouse disables mouse support.
	NoMouse bool
}

// New constructs the top-level TUI model.
func New(opts Options) (model, error) {
	var dump *os.File
	if opts.Debug {
		var err error
		dump, err = os.OpenFile("messages.log", os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return model{}, fmt.Errorf("opening messages dump: %w", err)
		}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	svc := tui.Services{
		Windows:  opts.Windows,
		Catalog:  opts.Catalog,
		Logger:   opts.Logger,
		Messages: opts.Logger.List,
	}
	defs := apps.Definitions(svc)
	wrappers := make([]*tui.Wrapper, len(defs))
	for i, def := range defs {
		wrappers[i] = tui.NewWrapper(def, opts.Windows, opts.Logger)
	}
	welcome := newWelcome(
		opts.Catalog.Welcome.Subtitle,
		opts.Catalog.Welcome.Title,
		opts.Catalog.Welcome.SmallScreen,
	)
	return model{
		windows:  opts.Windows,
		catalog:  opts.Catalog,
		logger:   opts.Logger,
		wrappers: wrappers,
		welcome:  welcome,
		layout:   newLayout(0, 0, opts.Catalog, welcome),
		palette:  tui.Palette(),
		now:      now,
		dump:     dump,
	}, nil
}

func (m model) Init() tea.Cmd {
	return clock()
}

func clock() tea.Cmd {
	return tea.Every(time.Minute, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.dump != nil {
		spew.Fdump(m.dump, msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = newLayout(m.width, m.height, m.catalog, m.welcome)
		for _, w := range m.wrappers {
			w.SetDesktop(m.layout.desktop)
		}
	case resource.Event[window.State]:
		if w := m.wrapper(msg.Payload.ID); w != nil {
			w.Sync(msg.Payload)
		}
	case clockMsg:
		return m, clock()
	case welcomeTickMsg:
		return m, m.welcome.tick(time.Time(msg))
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tui.ErrorMsg:
		if msg.Error != nil {
			err := msg.Error
			msg := fmt.Sprintf(msg.Message, msg.Args...)

			// Both print error in navbar as well as log it.
			m.err = fmt.Errorf("%s: %w", msg, err)
			m.logger.Error(msg, "error", err)
		}
	case tui.InfoMsg:
		m.info = string(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showQuitPrompt {
		switch {
		case key.Matches(msg, keys.Global.Quit):
			// pressing ctrl-c again quits the app
			return m, tea.Quit
		case key.Matches(msg, localKeys.Yes):
			return m, tea.Quit
		default:
			// any other key closes the prompt and returns to the app
			m.showQuitPrompt = false
			m.info = "canceled quitting folio"
		}
		return m, nil
	}

	// Pressing any key makes any info/error message in the navbar disappear
	m.info = ""
	m.err = nil

	top := m.top()
	switch {
	case key.Matches(msg, keys.Global.Quit):
		m.showQuitPrompt = true
	case key.Matches(msg, keys.Global.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, keys.Global.Escape) && m.showHelp:
		m.showHelp = false
	case key.Matches(msg, keys.Global.NextWindow):
		// Raising the bottom window cycles through every open window.
		if stack := m.stack(); len(stack) > 1 {
			return m, m.focus(stack[0])
		}
	case key.Matches(msg, keys.Global.Launch):
		s := msg.String()
		return m, m.launch(int(s[len(s)-1] - '1'))
	case top == nil:
	case key.Matches(msg, keys.Global.Close):
		if err := m.windows.Close(top.ID); err != nil {
			return m, tui.ReportError(err, "closing window")
		}
	case key.Matches(msg, keys.Global.MoveUp):
		top.Move(0, -1)
	case key.Matches(msg, keys.Global.MoveDown):
		top.Move(0, 1)
	case key.Matches(msg, keys.Global.MoveLeft):
		top.Move(-1, 0)
	case key.Matches(msg, keys.Global.MoveRight):
		top.Move(1, 0)
	default:
		// Send other keys to the focused window.
		return m, top.HandleKey(msg)
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	// A window being dragged captures the mouse until released.
	for _, w := range m.wrappers {
		if w.Dragging() {
			_, cmd := w.HandleMouse(msg)
			return cmd
		}
	}
	// Windows are hit-tested from the top of the stack down.
	stack := m.stack()
	for i := len(stack) - 1; i >= 0; i-- {
		if handled, cmd := stack[i].HandleMouse(msg); handled {
			if msg.Action == tea.MouseActionMotion {
				return tea.Batch(cmd, m.welcome.leave())
			}
			return cmd
		}
	}
	switch msg.Action {
	case tea.MouseActionMotion:
		return m.welcome.hover(m.layout, msg.X, msg.Y)
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if i, ok := hit(m.layout.links, msg.X, msg.Y); ok {
			return m.follow(m.catalog.NavLinks[i])
		}
		if i, ok := hit(m.layout.apps, msg.X, msg.Y); ok {
			return m.launch(i)
		}
	}
	return nil
}

// launch opens the window of the i-th dock app. Apps that cannot be opened
// are ignored.
func (m model) launch(i int) tea.Cmd {
	if i < 0 || i >= len(m.catalog.Dock) {
		return nil
	}
	app := m.catalog.Dock[i]
	if !app.CanOpen {
		m.logger.Debug("ignoring dock app", "app", app.Name)
		return nil
	}
	id, err := window.ParseID(app.ID)
	if err != nil {
		return tui.ReportError(err, "launching %s", app.Name)
	}
	if err := m.windows.Open(id, nil); err != nil {
		return tui.ReportError(err, "launching %s", app.Name)
	}
	return nil
}

// follow opens the window of a nav link.
func (m model) follow(link catalog.NavLink) tea.Cmd {
	id, err := window.ParseID(link.Window)
	if err != nil {
		return tui.ReportError(err, "following %s", link.Name)
	}
	if err := m.windows.Open(id, nil); err != nil {
		return tui.ReportError(err, "following %s", link.Name)
	}
	return nil
}

func (m model) focus(w *tui.Wrapper) tea.Cmd {
	if err := m.windows.Focus(w.ID); err != nil {
		return tui.ReportError(err, "focusing window")
	}
	return nil
}

func (m model) wrapper(id window.ID) *tui.Wrapper {
	for _, w := range m.wrappers {
		if w.ID == id {
			return w
		}
	}
	return nil
}

// stack returns the mounted windows, bottom first.
func (m model) stack() []*tui.Wrapper {
	var stack []*tui.Wrapper
	for _, w := range m.wrappers {
		if w.Mounted() {
			stack = append(stack, w)
		}
	}
	slices.SortStableFunc(stack, func(a, b *tui.Wrapper) int {
		return a.State().ZIndex - b.State().ZIndex
	})
	return stack
}

// top returns the focused window, or nil if no window is open.
func (m model) top() *tui.Wrapper {
	stack := m.stack()
	if len(stack) == 0 {
		return nil
	}
	return stack[len(stack)-1]
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	c := canvas.New(m.width, m.height, m.palette)
	c.Fill(c.Bounds(), ' ', tui.DesktopStyle)

	m.welcome.draw(c, m.layout)
	stack := m.stack()
	for i, w := range stack {
		w.Draw(c, i == len(stack)-1)
	}
	m.drawDock(c)
	m.drawNavbar(c)
	if m.showHelp {
		drawHelp(c, m.layout)
	}
	return c.Render()
}

func (m model) drawNavbar(c *canvas.Canvas) {
	bar := canvas.Rect{Width: m.width, Height: navbarHeight}
	c.Fill(bar, ' ', tui.NavbarStyle)
	r := c.Region(bar)
	r.Text(1, 0, brand+m.catalog.Owner, tui.NavbarBoldStyle)

	status := 1 + canvas.StringWidth(brand+m.catalog.Owner) + 3
	for _, spot := range m.layout.links {
		r.Text(spot.rect.X, 0, m.catalog.NavLinks[spot.index].Name, tui.NavbarLinkStyle)
		status = spot.rect.X + spot.rect.Width + 3
	}

	now := m.now().Format(clockFormat)
	clockX := m.width - 1 - canvas.StringWidth(now)
	r.Text(clockX, 0, now, tui.NavbarStyle)

	// Render any prompt, error, or info message between the links and the
	// clock.
	var (
		text  string
		style canvas.Style
	)
	switch {
	case m.showQuitPrompt:
		text, style = quitPrompt, tui.AlertStyle
	case m.err != nil:
		text, style = "Error: "+m.err.Error(), tui.ErrorStyle
	case m.info != "":
		text, style = m.info, tui.InfoStyle
	default:
		return
	}
	r.Text(status, 0, fit(text, clockX-2-status), style)
}

func (m model) drawDock(c *canvas.Canvas) {
	dock := m.layout.dock
	c.Fill(dock, ' ', tui.DockStyle)
	tui.DrawBorder(c.Region(dock), lipgloss.RoundedBorder(), tui.DockBorderStyle)

	r := c.Region(c.Bounds())
	for _, spot := range m.layout.apps {
		app := m.catalog.Dock[spot.index]
		style := tui.DockItemStyle
		if !app.CanOpen {
			style = tui.DockDisabledStyle
		}
		r.Text(spot.rect.X, spot.rect.Y, " "+app.Name+" ", style)
		if w := m.wrapper(window.ID(app.ID)); w != nil && w.Mounted() {
			r.Text(spot.rect.X+spot.rect.Width/2, dock.Y+dock.Height-1, indicator, tui.DockItemStyle)
		}
	}
}
