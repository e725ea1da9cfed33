package apps

import (
	"strings"
	"testing"

	"github.com/amiigood/folio/internal/canvas"
	"github.com/amiigood/folio/internal/catalog"
	"github.com/amiigood/folio/internal/logging"
	"github.com/amiigood/folio/internal/tui"
	"github.com/amiigood/folio/internal/window"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func setup(t *testing.T) (tui.Services, *window.Store) {
	t.Helper()

	cat, err := catalog.Default()
	require.NoError(t, err)
	store := window.NewStore(logging.Discard)
	return tui.Services{
		Windows: store,
		Catalog: cat,
		Logger:  logging.Discard,
	}, store
}

// render renders the content onto a blank canvas, returning each line with
// trailing whitespace removed.
func render(c tui.Content, width, height int, data any) []string {
	cv := canvas.New(width, height, tui.Palette())
	c.Render(cv.Region(cv.Bounds()), data)
	lines := strings.Split(cv.Plain(), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return lines
}

func joined(lines []string) string {
	return strings.Join(lines, "\n")
}

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// run runs a command, returning its message.
func run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func getState(t *testing.T, store *window.Store, id window.ID) window.State {
	t.Helper()

	state, err := store.Get(id)
	require.NoError(t, err)
	return state
}
