package logging

import (
	"io"
	"log/slog"
	"slices"

	"github.com/amiigood/folio/internal/pubsub"
	"golang.org/x/exp/maps"
)

const DefaultLevel = "info"

var levels = map[string]slog.Level{
	"debug":      slog.LevelDebug,
	DefaultLevel: slog.LevelInfo,
	"warn":       slog.LevelWarn,
	"error":      slog.LevelError,
}

// ValidLevels returns valid strings for choosing a log level. Returns the
// default log level first.
func ValidLevels() []string {
	keys := maps.Keys(levels)
	slices.SortFunc(keys, func(a, b string) int {
		if a == DefaultLevel {
			return -1
		}
		if b == DefaultLevel {
			return 1
		}
		// Sort remaining in alphabetical order.
		if a < b {
			return -1
		}
		return 1
	})
	return keys
}

// Interface is implemented by anything that can log, which permits passing a
// no-op logger in tests.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	AddArgsUpdater(updater ArgsUpdater)
}

type Options struct {
	// The log level of the logger
	Level string
	// Any additional writers the log handler should write to, e.g. a log
	// file.
	AdditionalWriters []io.Writer
}

// Logger wraps slog, providing further functionality such as emitting log
// records as events, and enriching records with further attributes.
type Logger struct {
	logger *slog.Logger
	writer *writer

	*pubsub.Broker[Message]
	*enricher
}

// NewLogger constructs Logger, a slog wrapper with additional functionality.
func NewLogger(opts Options) *Logger {
	logger := &Logger{enricher: &enricher{}}
	// The broker must not log via this logger: a log record emitted whilst
	// publishing a log record would deadlock the handler.
	logger.Broker = pubsub.NewBroker[Message](Discard)
	logger.writer = &writer{broker: logger.Broker}

	level, ok := levels[opts.Level]
	if !ok {
		level = levels[DefaultLevel]
	}
	handler := slog.NewTextHandler(
		io.MultiWriter(append(opts.AdditionalWriters, logger.writer)...),
		&slog.HandlerOptions{Level: level},
	)
	logger.logger = slog.New(handler)

	return logger
}

func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, l.enrich(args...)...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, l.enrich(args...)...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, l.enrich(args...)...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, l.enrich(args...)...)
}

// Slog returns the underlying slog logger, e.g. to set as the default.
func (l *Logger) Slog() *slog.Logger {
	return l.logger
}

// List lists the log messages received thus far, newest first.
func (l *Logger) List() []Message {
	msgs := l.writer.list()
	slices.SortFunc(msgs, BySerialDesc)
	return msgs
}
