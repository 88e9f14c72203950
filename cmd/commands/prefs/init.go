package prefs

import (
	"fmt"

	"github.com/spf13/cobra"
)

// InitCommand returns the "prefs init" command.
func InitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Seed default preferences",
		Long: "Write the default value of every preference that is not set yet,\n" +
			"then bring the color fields in line with the stored color style.\n\n" +
			"Existing choices are kept. Running init again is harmless.",
		Args:         cobra.NoArgs,
		RunE:         runInit,
		SilenceUsage: true,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, false)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.svc.Initialize(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Preferences initialized (%s store)\n", s.backend)
	return nil
}
