// Package diag provides the default keyscope.DiagnosticSink: a small
// leveled, field-annotated logger, adapted from the surrounding
// application's own logging setup so registration warnings and handler
// panics read the same way as the rest of the host's log output.
package diag

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dshills/keyscope"
)

// Level is the severity of a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Sink is the default keyscope.DiagnosticSink: a leveled logger with
// chainable field annotation, an io.Writer output, and a package-level
// default instance so a host that doesn't care about logging can ignore
// this package entirely.
type Sink struct {
	mu     sync.Mutex
	level  Level
	output io.Writer
	prefix string
	fields map[string]any
}

var _ keyscope.DiagnosticSink = (*Sink)(nil)

// Config configures a Sink.
type Config struct {
	Level  Level
	Output io.Writer
	Prefix string
}

// DefaultConfig returns the default Sink configuration: warn level and
// above, written to stderr, prefixed "keyscope".
func DefaultConfig() Config {
	return Config{
		Level:  LevelWarn,
		Output: os.Stderr,
		Prefix: "keyscope",
	}
}

// New creates a Sink from cfg.
func New(cfg Config) *Sink {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	return &Sink{
		level:  cfg.Level,
		output: cfg.Output,
		prefix: cfg.Prefix,
		fields: make(map[string]any),
	}
}

// WithField returns a new Sink with the given field added.
func (s *Sink) WithField(key string, value any) *Sink {
	fields := make(map[string]any, len(s.fields)+1)
	for k, v := range s.fields {
		fields[k] = v
	}
	fields[key] = value
	return &Sink{level: s.level, output: s.output, prefix: s.prefix, fields: fields}
}

// WithComponent returns a new Sink with the "component" field set.
func (s *Sink) WithComponent(component string) *Sink {
	return s.WithField("component", component)
}

// Warn implements keyscope.DiagnosticSink.
func (s *Sink) Warn(format string, args ...any) {
	s.log(LevelWarn, format, args...)
}

// Error implements keyscope.DiagnosticSink.
func (s *Sink) Error(format string, args ...any) {
	s.log(LevelError, format, args...)
}

func (s *Sink) log(level Level, format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if level < s.level {
		return
	}

	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	ts := time.Now().Format("2006-01-02T15:04:05.000")
	line := fmt.Sprintf("%s [%s] %s: %s", ts, level, s.prefix, msg)

	if len(s.fields) > 0 {
		line += " {"
		first := true
		for k, v := range s.fields {
			if !first {
				line += ", "
			}
			line += fmt.Sprintf("%s=%v", k, v)
			first = false
		}
		line += "}"
	}

	fmt.Fprintln(s.output, line)
}

var (
	defaultSink     *Sink
	defaultSinkOnce sync.Once
)

// Default returns the package-wide default Sink, constructing it with
// DefaultConfig on first call.
func Default() *Sink {
	defaultSinkOnce.Do(func() {
		defaultSink = New(DefaultConfig())
	})
	return defaultSink
}
