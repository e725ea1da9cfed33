package tui

import (
	"github.com/amiigood/folio/internal/catalog"
	"github.com/amiigood/folio/internal/logging"
	"github.com/amiigood/folio/internal/window"
)

// WindowStore is the subset of the window store's actions available to the
// TUI.
type WindowStore interface {
	Open(id window.ID, data any) error
	Close(id window.ID) error
	Focus(id window.ID) error
	Get(id window.ID) (window.State, error)
	List() []window.State
}

// Services are made available to every window's content.
type Services struct {
	Windows WindowStore
	Catalog *catalog.Catalog
	Logger  logging.Interface
	// Messages lists recent log messages, newest first.
	Messages func() []logging.Message
}
