package prefs

import (
	"fmt"

	"soundingkit/sndprefs/internal/config"
	"soundingkit/sndprefs/internal/configstore"
	"soundingkit/sndprefs/internal/history"
	"soundingkit/sndprefs/internal/logging"
	"soundingkit/sndprefs/internal/preferences"

	"github.com/spf13/cobra"
)

// NewCommand returns the "prefs" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "View and change display and unit preferences",
		Long: "View and change the sounding display preferences: color style,\n" +
			"temperature, wind and precipitable water units, and the storm\n" +
			"motion vector used in calculations.\n\n" +
			"Missing preferences are filled with defaults on every run; values\n" +
			"you have set are never replaced.",
		SilenceUsage: true,
	}

	cmd.AddCommand(InitCommand())
	cmd.AddCommand(ShowCommand())
	cmd.AddCommand(SetCommand())
	cmd.AddCommand(StyleCommand())
	cmd.AddCommand(EditCommand())

	return cmd
}

// session is an open preferences service plus the resources behind it.
type session struct {
	svc     *preferences.Service
	backend string
	closers []func() error
}

func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		_ = s.closers[i]()
	}
}

// openSession opens the configured store and, unless disabled, the change
// history. When initialize is true the store is seeded before the history
// recorder is attached, so start-up seeding is not recorded.
func openSession(cmd *cobra.Command, initialize bool) (*session, error) {
	logger := logging.FromContext(cmd.Context())

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := configstore.Open(cfg.Backend(), cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open preference store: %w", err)
	}

	s := &session{
		svc:     preferences.NewService(store, logger),
		backend: cfg.Backend(),
		closers: []func() error{store.Close},
	}

	if initialize {
		if err := s.svc.Initialize(); err != nil {
			s.Close()
			return nil, err
		}
	}

	if cfg.HistoryEnabled() {
		repo, err := history.Open()
		if err != nil {
			logger.Warn("change history unavailable", "error", err)
		} else {
			s.svc.WithRecorder(history.NewRecorder(repo, logger))
			s.closers = append(s.closers, repo.Close)
		}
	}

	logger.Debug("preference store opened", "backend", s.backend)
	return s, nil
}
