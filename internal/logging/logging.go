// Package logging builds the charmbracelet/log logger shared by the CLI and
// carries it through command contexts.
package logging

import (
	"context"
	"io"
	"time"

	"soundingkit/sndprefs/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Options controls logger verbosity and styling.
type Options struct {
	Verbose bool
	Quiet   bool
	NoColor bool
}

// Level returns the log level selected by the options. Quiet wins over
// Verbose.
func (o Options) Level() log.Level {
	switch {
	case o.Quiet:
		return log.WarnLevel
	case o.Verbose:
		return log.DebugLevel
	default:
		return log.InfoLevel
	}
}

// New returns a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: opts.Verbose,
		TimeFormat:      time.Kitchen,
		Level:           opts.Level(),
	})

	if !opts.NoColor {
		s := log.DefaultStyles()
		s.Levels[log.DebugLevel] = levelStyle("DEBUG", styles.Muted)
		s.Levels[log.InfoLevel] = levelStyle("INFO", styles.Blue)
		s.Levels[log.WarnLevel] = levelStyle("WARN", styles.Yellow)
		s.Levels[log.ErrorLevel] = levelStyle("ERROR", styles.Red)
		logger.SetStyles(s)
	}
	return logger
}

func levelStyle(label string, color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().SetString(label).Foreground(color).Bold(true)
}

// WithContext returns a copy of ctx carrying logger.
func WithContext(ctx context.Context, logger *log.Logger) context.Context {
	return log.WithContext(ctx, logger)
}

// FromContext returns the logger stored in ctx, or a logger that discards
// everything when there is none.
func FromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(log.ContextKey).(*log.Logger); ok {
			return logger
		}
	}
	return log.New(io.Discard)
}
