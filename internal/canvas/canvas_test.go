package canvas

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestCanvas_Plain(t *testing.T) {
	c := New(5, 2, nil)
	c.Region(Rect{X: 1, Y: 1, Width: 3, Height: 1}).Text(0, 0, "abcdef", 0)

	assert.Equal(t, "     \n abc ", c.Plain())
}

func TestCanvas_Overlap(t *testing.T) {
	c := New(6, 3, nil)

	bottom := c.Region(Rect{X: 0, Y: 0, Width: 4, Height: 2})
	bottom.Fill('a', 0)
	top := c.Region(Rect{X: 2, Y: 1, Width: 4, Height: 2})
	top.Fill('b', 0)

	want := strings.Join([]string{
		"aaaa  ",
		"aabbbb",
		"  bbbb",
	}, "\n")
	assert.Equal(t, want, c.Plain())
}

func TestCanvas_ClipsToCanvas(t *testing.T) {
	c := New(4, 1, nil)

	c.Region(Rect{X: -2, Y: 0, Width: 10, Height: 5}).Text(0, 0, "abcdefgh", 0)

	assert.Equal(t, "cdef", c.Plain())
}

func TestCanvas_WideRunes(t *testing.T) {
	t.Run("write", func(t *testing.T) {
		c := New(4, 1, nil)
		n := c.Region(c.Bounds()).Text(0, 0, "a👋b", 0)

		assert.Equal(t, 4, n)
		assert.Equal(t, "a👋b", c.Plain())
	})

	t.Run("no room for right half", func(t *testing.T) {
		c := New(2, 1, nil)
		c.Region(c.Bounds()).Text(0, 0, "a👋", 0)

		assert.Equal(t, "a ", c.Plain())
	})

	t.Run("overwrite right half", func(t *testing.T) {
		c := New(4, 1, nil)
		c.Region(c.Bounds()).Text(0, 0, "a👋b", 0)
		c.Region(c.Bounds()).Text(2, 0, "x", 0)

		assert.Equal(t, "a xb", c.Plain())
	})

	t.Run("overwrite left half", func(t *testing.T) {
		c := New(4, 1, nil)
		c.Region(c.Bounds()).Text(0, 0, "a👋b", 0)
		c.Region(c.Bounds()).Text(1, 0, "x", 0)

		assert.Equal(t, "ax b", c.Plain())
	})
}

func TestCanvas_Render(t *testing.T) {
	palette := []lipgloss.Style{
		lipgloss.NewStyle(),
		lipgloss.NewStyle().Bold(true),
	}
	c := New(8, 2, palette)
	c.Region(c.Bounds()).Text(0, 0, "folio", 1)
	c.Region(c.Bounds()).Text(0, 1, "👋", 1)

	rendered := c.Render()

	for _, line := range strings.Split(rendered, "\n") {
		assert.Equal(t, 8, ansi.PrintableRuneWidth(line))
	}
	assert.Equal(t, "folio   \n👋      ", c.Plain())
}

func TestRegion_Sub(t *testing.T) {
	c := New(6, 3, nil)
	outer := c.Region(Rect{X: 1, Y: 1, Width: 4, Height: 2})
	inner := outer.Sub(Rect{X: 2, Y: 1, Width: 10, Height: 10})
	inner.Text(0, 0, "xyz", 0)

	assert.Equal(t, "      \n      \n   xy ", c.Plain())
}

func TestRect(t *testing.T) {
	r := Rect{X: 2, Y: 2, Width: 4, Height: 3}

	assert.True(t, r.Contains(2, 2))
	assert.True(t, r.Contains(5, 4))
	assert.False(t, r.Contains(6, 4))
	assert.False(t, r.Contains(1, 2))

	assert.Equal(t, Rect{X: 4, Y: 2, Width: 2, Height: 3}, r.Intersect(Rect{X: 4, Y: 0, Width: 10, Height: 10}))
	assert.True(t, r.Intersect(Rect{X: 20, Y: 20, Width: 1, Height: 1}).Empty())

	bounds := Rect{X: 0, Y: 1, Width: 10, Height: 8}
	assert.Equal(t, Rect{X: 6, Y: 1, Width: 4, Height: 3}, Rect{X: 9, Y: -5, Width: 4, Height: 3}.Clamp(bounds))
	assert.Equal(t, Rect{X: 0, Y: 6, Width: 4, Height: 3}, Rect{X: -3, Y: 7, Width: 4, Height: 3}.Clamp(bounds))
}
