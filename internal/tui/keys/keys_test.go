package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
)

func Test_keyMapToSlice(t *testing.T) {
	type keyMap struct {
		Up   key.Binding
		Down key.Binding
	}
	got := KeyMapToSlice(keyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
	})
	want := []key.Binding{
		key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
	}
	assert.Equal(t, want, got)
}

func Test_keyMapToSlice_Global(t *testing.T) {
	got := KeyMapToSlice(Global)
	if assert.Len(t, got, 10) {
		assert.Equal(t, "next window", got[0].Help().Desc)
		assert.Equal(t, "help", got[9].Help().Desc)
	}
}

func Test_keyMapToSlice_NotStruct(t *testing.T) {
	assert.Nil(t, KeyMapToSlice("foo"))
}
