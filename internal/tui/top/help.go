package top

import (
	"fmt"

	"github.com/amiigood/folio/internal/canvas"
	"github.com/amiigood/folio/internal/tui"
	"github.com/amiigood/folio/internal/tui/keys"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	heading  string
	bindings []key.Binding
}

type helpLine struct {
	text  string
	style canvas.Style
}

// helpLines renders each section as a heading followed by a row per binding,
// keys aligned in one column and descriptions in another.
func helpLines(sections ...helpSection) []helpLine {
	var keyWidth int
	for _, s := range sections {
		for _, b := range s.bindings {
			keyWidth = max(keyWidth, canvas.StringWidth(b.Help().Key))
		}
	}
	var lines []helpLine
	for i, s := range sections {
		if i > 0 {
			lines = append(lines, helpLine{style: tui.BodyStyle})
		}
		lines = append(lines, helpLine{text: s.heading, style: tui.HeadingStyle})
		for _, b := range s.bindings {
			text := fmt.Sprintf("%-*s  %s", keyWidth, b.Help().Key, b.Help().Desc)
			lines = append(lines, helpLine{text: text, style: tui.BodyStyle})
		}
	}
	return lines
}

// drawHelp draws the help in a box in the middle of the desktop.
func drawHelp(c *canvas.Canvas, l layout) {
	lines := helpLines(
		helpSection{heading: "DESKTOP", bindings: keys.KeyMapToSlice(keys.Global)},
		helpSection{heading: "WINDOWS", bindings: keys.KeyMapToSlice(keys.Navigation)},
		helpSection{heading: "MOUSE", bindings: []key.Binding{
			key.NewBinding(key.WithHelp("click", "open, focus")),
			key.NewBinding(key.WithHelp("drag title", "move window")),
			key.NewBinding(key.WithHelp(tui.CloseControl, "close window")),
		}},
	)
	var width int
	for _, line := range lines {
		width = max(width, canvas.StringWidth(line.text))
	}
	box := canvas.Rect{Width: width + 4, Height: len(lines) + 2}
	box.X = l.desktop.X + (l.desktop.Width-box.Width)/2
	box.Y = l.desktop.Y + (l.desktop.Height-box.Height)/2
	box = box.Clamp(c.Bounds())

	c.Fill(box, ' ', tui.BodyStyle)
	r := c.Region(box)
	tui.DrawBorder(r, lipgloss.RoundedBorder(), tui.ActiveBorderStyle)
	r.Text(2, 0, " Help ", tui.TitleStyle)
	for i, line := range lines {
		r.Text(2, i+1, line.text, line.style)
	}
}
