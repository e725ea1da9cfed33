package top

import (
	"strings"
	"testing"

	"github.com/amiigood/folio/internal/canvas"
	"github.com/amiigood/folio/internal/catalog"
	"github.com/amiigood/folio/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWelcome_WideRunes(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	w := newWelcome("日本 hi", "portfolio", "notice")
	l := newLayout(100, 30, cat, w)

	// Centred by cells, not runes.
	cx := l.desktop.X + l.desktop.Width/2
	assert.Equal(t, cx-7/2, l.subtitle.x)
	zone := l.hoverZone(w)
	assert.Equal(t, l.title.x-4, zone.X)
	assert.Equal(t, 9+8, zone.Width)

	c := canvas.New(100, 30, tui.Palette())
	w.draw(c, l)
	rows := strings.Split(c.Plain(), "\n")
	assert.Equal(t, "日本 hi", strings.TrimSpace(rows[l.subtitle.y]))
	assert.Equal(t, "portfolio", strings.TrimSpace(rows[l.title.y]))
}
