package config

import (
	"soundingkit/sndprefs/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage sndprefs configuration",
		Long: "View and modify persistent sndprefs settings.\n\n" +
			"Configuration is stored at ~/.config/sndprefs/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
