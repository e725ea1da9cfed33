// Package app is the main entrypoint into the application, responsible for
// configuring and starting the application, services, dependency injection,
// etc.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/amiigood/folio/internal/catalog"
	"github.com/amiigood/folio/internal/logging"
	"github.com/amiigood/folio/internal/tui/top"
	"github.com/amiigood/folio/internal/version"
	"github.com/amiigood/folio/internal/window"
)

// App is the constructed application, ready for the TUI to be started.
type App struct {
	Logger  *logging.Logger
	Windows *window.Store
	Catalog *catalog.Catalog

	logFile *os.File
}

// Start parses the config and starts the TUI, blocking until the user exits.
// Printing the version or the content graph exits without starting the TUI.
func Start(stdout, stderr io.Writer, args []string) error {
	cfg, err := Parse(stderr, args)
	if err != nil {
		return err
	}
	if cfg.Version {
		fmt.Fprintln(stdout, version.Version)
		return nil
	}
	if cfg.Graph {
		cat, err := catalog.Load(cfg.Content)
		if err != nil {
			return err
		}
		dot, err := cat.Graph()
		if err != nil {
			return fmt.Errorf("graphing content: %w", err)
		}
		fmt.Fprint(stdout, dot)
		return nil
	}

	app, err := New(cfg)
	if err != nil {
		return err
	}
	defer app.Cleanup()

	return top.Start(top.Options{
		Windows: app.Windows,
		Catalog: app.Catalog,
		Logger:  app.Logger,
		Debug:   cfg.Debug,
		NoMouse: cfg.NoMouse,
	})
}

// New constructs the application's services.
func New(cfg Config) (*App, error) {
	app := &App{}

	opts := cfg.Logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		app.logFile = f
		opts.AdditionalWriters = append(opts.AdditionalWriters, f)
	}
	app.Logger = logging.NewLogger(opts)
	slog.SetDefault(app.Logger.Slog())

	cat, err := catalog.Load(cfg.Content)
	if err != nil {
		app.Cleanup()
		return nil, err
	}
	app.Catalog = cat
	app.Windows = window.NewStore(app.Logger)

	// Log records referencing a window carry its current state.
	app.Logger.AddArgsUpdater(&logging.ReferenceUpdater[window.ID, window.State]{
		Getter: app.Windows,
		Name:   "window",
		Field:  "WindowID",
	})

	app.Logger.Info("loaded content", "owner", cat.Owner, "locations", len(cat.Locations))
	return app, nil
}

// Cleanup releases the application's resources.
func (a *App) Cleanup() {
	if a.Windows != nil {
		a.Windows.Shutdown()
	}
	if a.Logger != nil {
		a.Logger.Shutdown()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}
