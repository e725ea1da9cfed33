package app

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amiigood/folio/internal/logging"
	"github.com/amiigood/folio/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		dotenv string
		args   []string
		envs   []string
		want   func(t *testing.T, got Config)
	}{
		{
			"defaults",
			"",
			"",
			nil,
			nil,
			func(t *testing.T, got Config) {
				want := Config{
					Logging: logging.Options{
						Level: "info",
					},
				}
				assert.Equal(t, want, got)
			},
		},
		{
			"config file override default",
			"content: portfolio.hcl\n",
			"",
			nil,
			nil,
			func(t *testing.T, got Config) {
				assert.Equal(t, "portfolio.hcl", got.Content)
			},
		},
		{
			"env var override default",
			"",
			"",
			nil,
			[]string{"FOLIO_LOG_LEVEL=debug"},
			func(t *testing.T, got Config) {
				assert.Equal(t, "debug", got.Logging.Level)
			},
		},
		{
			"flag override default",
			"",
			"",
			[]string{"--no-mouse", "--log-file", "folio.log"},
			nil,
			func(t *testing.T, got Config) {
				assert.True(t, got.NoMouse)
				assert.Equal(t, "folio.log", got.LogFile)
			},
		},
		{
			"env var overrides config file",
			"log-level: warn\n",
			"",
			nil,
			[]string{"FOLIO_LOG_LEVEL=error"},
			func(t *testing.T, got Config) {
				assert.Equal(t, "error", got.Logging.Level)
			},
		},
		{
			"dotenv overrides config file",
			"log-level: warn\n",
			"FOLIO_LOG_LEVEL=debug\n",
			nil,
			nil,
			func(t *testing.T, got Config) {
				assert.Equal(t, "debug", got.Logging.Level)
			},
		},
		{
			"env var overrides dotenv",
			"",
			"FOLIO_LOG_LEVEL=debug\n",
			nil,
			[]string{"FOLIO_LOG_LEVEL=error"},
			func(t *testing.T, got Config) {
				assert.Equal(t, "error", got.Logging.Level)
			},
		},
		{
			"flag overrides both env var and config",
			"debug: false\n",
			"",
			[]string{"-d"},
			[]string{"FOLIO_DEBUG=false"},
			func(t *testing.T, got Config) {
				assert.True(t, got.Debug)
			},
		},
		{
			"short flags",
			"",
			"",
			[]string{"-g", "-v"},
			nil,
			func(t *testing.T, got Config) {
				assert.True(t, got.Graph)
				assert.True(t, got.Version)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Unset environment variables set on host computer
			testutils.Unsetenv(t,
				"FOLIO_CONTENT",
				"FOLIO_DEBUG",
				"FOLIO_NO_MOUSE",
				"FOLIO_LOG_FILE",
				"FOLIO_LOG_LEVEL",
				"FOLIO_GRAPH",
				"FOLIO_VERSION",
				"FOLIO_CONFIG",
			)
			t.Setenv("HOME", t.TempDir())

			// change into a temp dir in case the host computer has a .env
			// file
			testutils.ChTempDir(t, t.TempDir())

			// set env vars
			for _, ev := range tt.envs {
				name, val, _ := strings.Cut(ev, "=")
				t.Setenv(name, val)
			}

			// set config file
			if tt.file != "" {
				path := filepath.Join(os.Getenv("HOME"), ".folio.yaml")
				err := os.WriteFile(path, []byte(tt.file), 0o644)
				require.NoError(t, err)
			}

			// set .env file
			if tt.dotenv != "" {
				err := os.WriteFile(".env", []byte(tt.dotenv), 0o644)
				require.NoError(t, err)
			}

			// and pass in flags
			got, err := Parse(io.Discard, tt.args)
			require.NoError(t, err)

			tt.want(t, got)
		})
	}
}

func TestConfig_InvalidLogLevel(t *testing.T) {
	testutils.Unsetenv(t, "FOLIO_LOG_LEVEL")
	t.Setenv("HOME", t.TempDir())
	testutils.ChTempDir(t, t.TempDir())

	var usage strings.Builder
	_, err := Parse(&usage, []string{"--log-level", "loud"})

	assert.Error(t, err)
	assert.Contains(t, usage.String(), "--log-level")
}
