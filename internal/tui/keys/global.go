package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type global struct {
	NextWindow key.Binding
	Close      key.Binding
	MoveUp     key.Binding
	MoveDown   key.Binding
	MoveLeft   key.Binding
	MoveRight  key.Binding
	Launch     key.Binding
	Escape     key.Binding
	Quit       key.Binding
	Help       key.Binding
}

var Global = global{
	NextWindow: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next window"),
	),
	Close: key.NewBinding(
		key.WithKeys("ctrl+w"),
		key.WithHelp("^w", "close window"),
	),
	MoveUp: key.NewBinding(
		key.WithKeys("ctrl+up"),
		key.WithHelp("^↑", "move window up"),
	),
	MoveDown: key.NewBinding(
		key.WithKeys("ctrl+down"),
		key.WithHelp("^↓", "move window down"),
	),
	MoveLeft: key.NewBinding(
		key.WithKeys("ctrl+left"),
		key.WithHelp("^←", "move window left"),
	),
	MoveRight: key.NewBinding(
		key.WithKeys("ctrl+right"),
		key.WithHelp("^→", "move window right"),
	),
	Launch: key.NewBinding(
		key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9"),
		key.WithHelp("alt+1-9", "open dock app"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("^c", "exit"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "help"),
	),
}
