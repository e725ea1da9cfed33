package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// InfoMsg is an informational message rendered in the navbar.
type InfoMsg string

// ErrorMsg is an error rendered in the navbar and logged.
type ErrorMsg struct {
	Error   error
	Message string
	Args    []any
}

func NewErrorMsg(err error, msg string, args ...any) ErrorMsg {
	return ErrorMsg{
		Error:   err,
		Message: msg,
		Args:    args,
	}
}

// ReportError returns a command that reports the error.
func ReportError(err error, msg string, args ...any) tea.Cmd {
	return CmdHandler(NewErrorMsg(err, msg, args...))
}

// ReportInfo returns a command that reports an informational message.
func ReportInfo(msg string) tea.Cmd {
	return CmdHandler(InfoMsg(msg))
}

// CmdHandler wraps a message in a command.
func CmdHandler(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

// ClickMsg is a left click within a window's body, relative to the body's top
// left corner.
type ClickMsg struct {
	X, Y int
}

// ScrollMsg is a mouse wheel movement over a window's body. Delta is negative
// when scrolling up.
type ScrollMsg struct {
	Delta int
}
