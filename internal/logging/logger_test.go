package logging

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/amiigood/folio/internal/resource"
	"github.com/mitchellh/iochan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidLevels(t *testing.T) {
	assert.Equal(t, []string{"info", "debug", "error", "warn"}, ValidLevels())
}

func TestLogger(t *testing.T) {
	logger := NewLogger(Options{Level: "debug"})
	sub := logger.Subscribe(context.Background())

	logger.Debug("opened window", "window", "finder")
	logger.Info("closed window", "window", "terminal")

	msgs := logger.List()
	require.Len(t, msgs, 2)
	// newest first
	assert.Equal(t, "closed window", msgs[0].Message)
	assert.Equal(t, "INFO", msgs[0].Level)
	assert.Equal(t, []Attr{{Key: "window", Value: "terminal"}}, msgs[0].Attributes)
	assert.Equal(t, "opened window", msgs[1].Message)
	assert.Equal(t, "DEBUG", msgs[1].Level)

	ev := <-sub
	assert.Equal(t, resource.CreatedEvent, ev.Type)
	assert.Equal(t, "opened window", ev.Payload.Message)
}

func TestLogger_Level(t *testing.T) {
	logger := NewLogger(Options{Level: "warn"})

	logger.Info("ignored")
	logger.Warn("kept")

	msgs := logger.List()
	require.Len(t, msgs, 1)
	assert.Equal(t, "kept", msgs[0].Message)
}

func TestLogger_AdditionalWriters(t *testing.T) {
	r, w := io.Pipe()
	logger := NewLogger(Options{
		Level:             DefaultLevel,
		AdditionalWriters: []io.Writer{w},
	})
	lines := iochan.DelimReader(r, '\n')

	go logger.Info("mounted window", "window", "photos")

	line := <-lines
	assert.True(t, strings.HasSuffix(line, "level=INFO msg=\"mounted window\" window=photos\n"), line)
}

func TestMessage_String(t *testing.T) {
	logger := NewLogger(Options{Level: DefaultLevel})
	logger.Info("opened window", "window", "finder", "z", 1001)

	msgs := logger.List()
	require.Len(t, msgs, 1)
	assert.True(t, strings.HasSuffix(msgs[0].String(), "INFO  opened window window=finder z=1001"), msgs[0].String())
}
