package history

import "github.com/spf13/cobra"

// NewCommand returns the "history" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "View and manage preference change history",
		Long: "View a local log of preference writes and prune old entries.\n\n" +
			"History is stored locally in ~/.config/sndprefs/sndprefs.db.\n" +
			"Disable recording with 'sndprefs config set history off'.",
		SilenceUsage: true,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(PruneCommand())

	return cmd
}
