package apps

import (
	"fmt"
	"slices"
	"strings"

	"github.com/amiigood/folio/internal/canvas"
	"github.com/amiigood/folio/internal/catalog"
	"github.com/amiigood/folio/internal/tui"
	"github.com/amiigood/folio/internal/tui/keys"
	"github.com/amiigood/folio/internal/window"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hokaccha/go-prettyjson"
)

const prompt = "❯ "

// maxLogLines is the number of log messages the logs command lists.
const maxLogLines = 10

type command struct {
	name string
	args string
	help string
	run  func(t *terminal, args []string) tea.Cmd
}

func terminalCommands() []command {
	return []command{
		{name: "help", help: "list commands", run: (*terminal).help},
		{name: "skills", help: "show the tech stack", run: (*terminal).skills},
		{name: "whoami", help: "about the owner", run: (*terminal).whoami},
		{name: "ls", args: "[location]", help: "list locations or a location's files", run: (*terminal).ls},
		{name: "open", args: "<window|file>", help: "open a window or a file", run: (*terminal).open},
		{name: "windows", help: "show the state of every window", run: (*terminal).windows},
		{name: "logs", help: "show recent log messages", run: (*terminal).logs},
		{name: "clear", help: "clear the screen", run: (*terminal).clear},
	}
}

// terminal is a command prompt for exploring the portfolio.
type terminal struct {
	svc    tui.Services
	input  textinput.Model
	output []line

	// history of commands entered, oldest first.
	history []string
	// recall is the index of the history entry being recalled; it is
	// len(history) when nothing is being recalled.
	recall int
}

func newTerminal(svc tui.Services) *terminal {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 200
	input.Focus()

	t := &terminal{svc: svc, input: input}
	t.execute("skills")
	return t
}

func (t *terminal) Render(r *canvas.Region, _ any) {
	p := &page{width: r.Width()}
	for _, l := range t.output {
		p.add(l.indent, l.text, l.style)
	}
	// Show the tail of the output, leaving the last row for the prompt.
	rows := max(0, r.Height()-1)
	visible := p.lines[max(0, len(p.lines)-rows):]
	for i, l := range visible {
		r.Text(l.indent, i, l.text, l.style)
	}

	y := len(visible)
	x := r.Text(0, y, prompt, tui.AccentStyle)
	value := []rune(t.input.Value())
	pos := min(t.input.Position(), len(value))
	x += r.Text(x, y, string(value[:pos]), tui.BodyStyle)
	under := " "
	if pos < len(value) {
		under = string(value[pos])
	}
	w := r.Text(x, y, under, tui.SelectedStyle)
	if pos+1 < len(value) {
		r.Text(x+w, y, string(value[pos+1:]), tui.BodyStyle)
	}
}

func (t *terminal) Update(msg tea.Msg, _ any) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(km, keys.Navigation.Enter):
		cmd := t.execute(t.input.Value())
		t.input.Reset()
		return cmd
	case key.Matches(km, keys.Navigation.LineUp):
		if t.recall > 0 {
			t.recall--
			t.input.SetValue(t.history[t.recall])
			t.input.CursorEnd()
		}
		return nil
	case key.Matches(km, keys.Navigation.LineDown):
		if t.recall < len(t.history) {
			t.recall++
		}
		if t.recall < len(t.history) {
			t.input.SetValue(t.history[t.recall])
			t.input.CursorEnd()
		} else {
			t.input.Reset()
		}
		return nil
	}
	// Cursor blinking is not rendered, so the returned command is not needed.
	t.input, _ = t.input.Update(km)
	return nil
}

// execute runs a command line, echoing it to the output.
func (t *terminal) execute(input string) tea.Cmd {
	t.print(prompt+input, tui.AccentStyle)
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil
	}
	t.history = append(t.history, input)
	t.recall = len(t.history)

	name := fields[0]
	commands := terminalCommands()
	i := slices.IndexFunc(commands, func(c command) bool { return c.name == name })
	if i < 0 {
		t.print("command not found: "+name+" (try help)", tui.AlertStyle)
		return nil
	}
	return commands[i].run(t, fields[1:])
}

func (t *terminal) print(text string, style canvas.Style) {
	t.printIndent(0, text, style)
}

func (t *terminal) printIndent(indent int, text string, style canvas.Style) {
	t.output = append(t.output, line{text: text, style: style, indent: indent})
}

func (t *terminal) help([]string) tea.Cmd {
	for _, c := range terminalCommands() {
		usage := strings.TrimSpace(c.name + " " + c.args)
		t.print(fmt.Sprintf("%-22s %s", usage, c.help), tui.BodyStyle)
	}
	return nil
}

func (t *terminal) skills([]string) tea.Cmd {
	stack := t.svc.Catalog.TechStack
	t.print(fmt.Sprintf("%-12s %s", "Category", "Technologies"), tui.HeadingStyle)
	for _, cat := range stack {
		t.print(fmt.Sprintf("%-12s %s", cat.Category, strings.Join(cat.Items, ", ")), tui.BodyStyle)
	}
	t.print(fmt.Sprintf("✓ %d of %d stacks loaded successfully (100%%)", len(stack), len(stack)), tui.AccentStyle)
	return nil
}

func (t *terminal) whoami([]string) tea.Cmd {
	cat := t.svc.Catalog
	t.print(cat.Owner, tui.TitleStyle)
	if cat.Headline != "" {
		t.print(cat.Headline, tui.BodyStyle)
	}
	if cat.Email != "" {
		t.print(cat.Email, tui.LinkStyle)
	}
	return nil
}

func (t *terminal) ls(args []string) tea.Cmd {
	cat := t.svc.Catalog
	if len(args) == 0 {
		for _, loc := range cat.Locations {
			t.print(fmt.Sprintf("%-8s %s", loc.Key, loc.Name), tui.BodyStyle)
		}
		return nil
	}
	name := strings.Join(args, " ")
	var folder *catalog.Entry
	if loc, ok := cat.Location(name); ok {
		folder = &loc.Entry
	} else if e, ok := cat.Find(name); ok && e.IsFolder() {
		folder = e
	}
	if folder == nil {
		t.print("ls: no such location or folder: "+name, tui.AlertStyle)
		return nil
	}
	for _, e := range folder.Children {
		t.print(icon(e)+" "+e.Name, tui.BodyStyle)
	}
	return nil
}

func (t *terminal) open(args []string) tea.Cmd {
	if len(args) == 0 {
		t.print("usage: open <window|file>", tui.AlertStyle)
		return nil
	}
	name := strings.Join(args, " ")
	if id, err := window.ParseID(name); err == nil {
		t.print("opening "+name, tui.SubtleStyle)
		return openWindow(t.svc, id, nil)
	}
	e, ok := t.svc.Catalog.Find(name)
	if !ok {
		t.print("open: no such window or file: "+name, tui.AlertStyle)
		return nil
	}
	t.print("opening "+e.Name, tui.SubtleStyle)
	if e.IsFolder() {
		return openWindow(t.svc, window.Finder, nil)
	}
	return openEntry(t.svc, e)
}

// windowView is the JSON representation of a window's state.
type windowView struct {
	ID     window.ID `json:"id"`
	Open   bool      `json:"open"`
	ZIndex int       `json:"zIndex"`
	Data   string    `json:"data,omitempty"`
}

func (t *terminal) windows([]string) tea.Cmd {
	var views []windowView
	for _, state := range t.svc.Windows.List() {
		view := windowView{ID: state.ID, Open: state.IsOpen, ZIndex: state.ZIndex}
		if e, ok := entry(state.Data); ok {
			view.Data = e.Name
		}
		views = append(views, view)
	}
	f := prettyjson.NewFormatter()
	f.DisabledColor = true
	f.Indent = 2
	b, err := f.Marshal(views)
	if err != nil {
		t.print("windows: "+err.Error(), tui.AlertStyle)
		return tui.ReportError(err, "rendering windows")
	}
	for _, l := range strings.Split(string(b), "\n") {
		// Preserve the indentation, which wrapping would otherwise lose.
		trimmed := strings.TrimLeft(l, " ")
		t.printIndent(len(l)-len(trimmed), trimmed, tui.BodyStyle)
	}
	return nil
}

func (t *terminal) logs([]string) tea.Cmd {
	if t.svc.Messages == nil {
		t.print("logs: unavailable", tui.AlertStyle)
		return nil
	}
	msgs := t.svc.Messages()
	if len(msgs) > maxLogLines {
		msgs = msgs[:maxLogLines]
	}
	// Messages are newest first; print oldest first.
	for i := len(msgs) - 1; i >= 0; i-- {
		t.print(msgs[i].String(), tui.SubtleStyle)
	}
	return nil
}

func (t *terminal) clear([]string) tea.Cmd {
	t.output = nil
	return nil
}
