package top

import (
	"strings"
	"time"

	"github.com/amiigood/folio/internal/canvas"
	"github.com/amiigood/folio/internal/hovertext"
	"github.com/amiigood/folio/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
)

// frameInterval is the time between frames of the hover animation.
const frameInterval = time.Second / 30

// welcomeTickMsg advances the hover animation.
type welcomeTickMsg time.Time

// welcome is the greeting shown on the desktop, each character of which
// grows heavier as the pointer approaches it.
type welcome struct {
	subtitle *hovertext.Text
	title    *hovertext.Text
	notice   string

	// animating is true whilst a tick is scheduled.
	animating bool
	last      time.Time
}

func newWelcome(subtitle, title, notice string) *welcome {
	return &welcome{
		subtitle: hovertext.New(subtitle, hovertext.SubtitleProfile),
		title:    hovertext.New(title, hovertext.TitleProfile),
		notice:   notice,
	}
}

// hover sets the target weights for the pointer at (x, y). Outside of the
// hover zone the text returns to rest.
func (w *welcome) hover(l layout, x, y int) tea.Cmd {
	if l.small || !l.hoverZone(w).Contains(x, y) {
		return w.leave()
	}
	w.subtitle.Move(x-l.subtitle.x, y-l.subtitle.y)
	w.title.Move(x-l.title.x, y-l.title.y)
	return w.animate()
}

// leave returns the text to rest.
func (w *welcome) leave() tea.Cmd {
	w.subtitle.Leave()
	w.title.Leave()
	return w.animate()
}

// animate schedules the next frame, unless one is already scheduled.
func (w *welcome) animate() tea.Cmd {
	if w.animating {
		return nil
	}
	w.animating = true
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return welcomeTickMsg(t)
	})
}

// tick advances the animation to time t, scheduling another frame if any
// character is still in motion.
func (w *welcome) tick(t time.Time) tea.Cmd {
	elapsed := frameInterval
	if !w.last.IsZero() {
		elapsed = t.Sub(w.last)
	}
	w.last = t

	subtitle := w.subtitle.Tick(elapsed)
	title := w.title.Tick(elapsed)
	if subtitle || title {
		return tick()
	}
	w.animating = false
	w.last = time.Time{}
	return nil
}

func (w *welcome) draw(c *canvas.Canvas, l layout) {
	if l.small {
		// The notice is wrapped and centred on the desktop.
		lines := strings.Split(wordwrap.String(w.notice, max(1, l.desktop.Width-4)), "\n")
		y := l.desktop.Y + (l.desktop.Height-len(lines))/2
		r := c.Region(c.Bounds())
		for i, line := range lines {
			x := l.desktop.X + (l.desktop.Width-canvas.StringWidth(line))/2
			r.Text(x, y+i, line, tui.Weight(tui.WeightLevels-1))
		}
		return
	}
	// The subtitle uses every weight; the title only the heavier half.
	drawText(c, w.subtitle, l.subtitle, func(i int) canvas.Style {
		return tui.Weight(w.subtitle.Level(i, tui.WeightLevels))
	})
	drawText(c, w.title, l.title, func(i int) canvas.Style {
		return tui.Weight(tui.WeightLevels/2 + w.title.Level(i, tui.WeightLevels/2))
	})
}

func drawText(c *canvas.Canvas, t *hovertext.Text, at point, style func(i int) canvas.Style) {
	r := c.Region(c.Bounds())
	for i, u := range t.Units {
		r.Text(at.x+u.Col, at.y, string(u.Glyph()), style(i))
	}
}
