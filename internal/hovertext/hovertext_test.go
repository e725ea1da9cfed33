package hovertext

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	units := Split("Hi there")

	require.Len(t, units, 8)
	assert.Equal(t, NBSP, units[2].Rune)
	for i, u := range units {
		assert.Equal(t, i, u.Index)
	}
	assert.Equal(t, "Hi there", Join(units))
}

func TestSplit_Punctuation(t *testing.T) {
	const subtitle = "Hey, I'm Alexis! Welcome to my"

	units := Split(subtitle)

	assert.Len(t, units, len(subtitle))
	var spaces int
	for _, u := range units {
		assert.NotEqual(t, ' ', u.Rune)
		if u.Rune == NBSP {
			spaces++
		}
	}
	assert.Equal(t, 5, spaces)
	assert.Equal(t, subtitle, Join(units))
}

func TestSplit_Multibyte(t *testing.T) {
	units := Split("León 👋")

	assert.Len(t, units, 6)
	assert.Equal(t, "León 👋", Join(units))
}

func TestSplit_NonBreakingSpace(t *testing.T) {
	units := Split("Hi\u00a0there now")

	require.Len(t, units, 12)
	assert.False(t, units[2].Space)
	assert.True(t, units[8].Space)
	assert.Equal(t, NBSP, units[8].Rune)
	assert.Equal(t, "Hi\u00a0there now", Join(units))
}

func TestSplit_WideRunes(t *testing.T) {
	units := Split("日本 go")

	var cols []int
	for _, u := range units {
		cols = append(cols, u.Col)
	}
	assert.Equal(t, []int{0, 2, 4, 5, 6}, cols)
	assert.Equal(t, 7, Width(units))
	assert.Equal(t, ' ', units[2].Glyph())
	assert.Equal(t, 0, Width(nil))
}

func TestWeight(t *testing.T) {
	p := TitleProfile

	under := Weight(p, 5, 0, 5, 0)
	near := Weight(p, 6, 0, 5, 0)
	far := Weight(p, 60, 0, 5, 0)

	assert.Equal(t, p.Max, under)
	assert.Less(t, near, under)
	assert.Greater(t, near, far)
	assert.InDelta(t, p.Min, far, 1)

	// rows fall off faster than columns
	assert.Less(t, Weight(p, 5, 3, 5, 0), Weight(p, 8, 0, 5, 0))
}

func TestEase(t *testing.T) {
	got := Ease(100, 400, EaseDuration, EaseDuration)
	assert.Greater(t, got, 100.0)
	assert.Less(t, got, 400.0)

	assert.Equal(t, 400.0, Ease(100, 400, time.Hour, EaseDuration))
	assert.Equal(t, 400.0, Ease(100, 400, time.Millisecond, 0))
	assert.Equal(t, 400.0, Ease(399.8, 400, time.Millisecond, EaseDuration))
}

func TestText(t *testing.T) {
	text := New("portfolio", TitleProfile)

	for i := range text.Units {
		assert.Equal(t, TitleProfile.Base, text.Weight(i))
		assert.Equal(t, 0, text.Level(i, 4))
	}

	// pointer over the 'f'
	text.Move(4, 0)
	for text.Tick(time.Second) {
	}
	assert.Equal(t, TitleProfile.Max, text.Weight(4))
	assert.Equal(t, 3, text.Level(4, 4))
	assert.Greater(t, text.Weight(4), text.Weight(3))
	assert.Greater(t, text.Weight(3), text.Weight(0))

	text.Leave()
	for text.Tick(time.Second) {
	}
	for i := range text.Units {
		assert.Equal(t, TitleProfile.Base, text.Weight(i))
	}
	assert.Equal(t, "portfolio", text.String())
}

func TestText_MoveByCell(t *testing.T) {
	text := New("日本語", TitleProfile)

	// pointer over the second half of the second character
	text.Move(3, 0)
	for text.Tick(time.Second) {
	}
	assert.Greater(t, text.Weight(1), text.Weight(0))
	assert.Greater(t, text.Weight(1), text.Weight(2))
	assert.Equal(t, 6, text.Width())
}
