package app

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/amiigood/folio/internal/logging"
	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/peterbourgon/ff/v4/ffyaml"
)

type Config struct {
	// Content is the path to a YAML or HCL catalog. The built-in catalog is
	// used if empty.
	Content string
	Debug   bool
	NoMouse bool
	LogFile string
	Logging logging.Options

	Graph   bool
	Version bool
}

// set config in order of precedence:
// 1. flags > 2. env vars > 3. .env file > 4. config file
func Parse(stderr io.Writer, args []string) (Config, error) {
	var cfg Config

	// Variables in a .env file in the working directory are loaded into the
	// environment, without overriding those already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env file: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("retrieving user's home directory: %w", err)
	}
	defaultConfigFile := filepath.Join(home, ".folio.yaml")

	fs := ff.NewFlagSet("folio")
	fs.StringVar(&cfg.Content, 0, "content", "", "Path to a YAML or HCL file of portfolio content.")
	fs.BoolVar(&cfg.Debug, 'd', "debug", "Log bubbletea messages to messages.log")
	fs.BoolVar(&cfg.NoMouse, 0, "no-mouse", "Disable mouse support.")
	fs.StringVar(&cfg.LogFile, 0, "log-file", "", "Write logs to file in addition to the terminal window.")
	fs.BoolVar(&cfg.Graph, 'g', "graph", "Print the content's folders and files as a Graphviz DOT graph.")
	fs.BoolVar(&cfg.Version, 'v', "version", "Print version.")
	_ = fs.String('c', "config", defaultConfigFile, "Path to config file.")

	{
		usage := fmt.Sprintf("Logging level (valid: %s).", strings.Join(logging.ValidLevels(), ","))
		fs.StringEnumVar(&cfg.Logging.Level, 'l', "log-level", usage, logging.ValidLevels()...)
	}

	err = ff.Parse(fs, args,
		ff.WithEnvVarPrefix("FOLIO"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ffyaml.Parse),
		ff.WithConfigAllowMissingFile(),
	)
	if err != nil {
		// ff.Parse returns an error if there is an error or if -h/--help is
		// passed; in either case print flag usage in addition to error message.
		fmt.Fprintln(stderr, ffhelp.Flags(fs))
		return Config{}, err
	}
	return cfg, nil
}
