package history

import (
	"io"

	"soundingkit/sndprefs/internal/preferences"

	"github.com/charmbracelet/log"
)

// Recorder saves preference writes to a Repository. Recording is
// best-effort: a failed save is logged and otherwise ignored.
type Recorder struct {
	repo   Repository
	logger *log.Logger
}

// NewRecorder returns a preferences.Recorder backed by repo.
func NewRecorder(repo Repository, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{repo: repo, logger: logger}
}

// Record implements preferences.Recorder.
func (r *Recorder) Record(c preferences.Change) {
	entry := &Entry{
		Action:  c.Action,
		Section: preferences.Section,
		Field:   c.Field,
		Value:   c.Value,
		Outcome: OutcomeSuccess,
	}
	if c.Err != nil {
		entry.Outcome = OutcomeError
		entry.Detail = c.Err.Error()
	}
	if err := r.repo.Save(entry); err != nil {
		r.logger.Warn("failed to record preference change", "field", c.Field, "error", err)
	}
}
