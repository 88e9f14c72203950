package prefs

import (
	"errors"
	"fmt"
	"os"

	"soundingkit/sndprefs/internal/tui"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

// EditCommand returns the "prefs edit" command.
func EditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit preferences interactively",
		Long: "Open the preferences dialog. Choose a color style and units, then\n" +
			"Accept to save every choice or Cancel to leave preferences unchanged.\n\n" +
			"Set ACCESSIBLE=1 for a screen-reader friendly prompt.",
		Args:         cobra.NoArgs,
		RunE:         runEdit,
		SilenceUsage: true,
	}
}

func runEdit(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("prefs edit needs an interactive terminal; use 'prefs set' or 'prefs style' instead")
	}

	s, err := openSession(cmd, true)
	if err != nil {
		return err
	}
	defer s.Close()

	d, err := s.svc.OpenDialog()
	if err != nil {
		return err
	}

	accepted, err := tui.RunPreferencesForm(d, os.Getenv("ACCESSIBLE") != "")
	if errors.Is(err, tui.ErrAborted) {
		fmt.Fprintln(cmd.OutOrStdout(), "Preferences unchanged")
		return nil
	}
	if err != nil {
		return err
	}

	if accepted {
		fmt.Fprintln(cmd.OutOrStdout(), "Preferences saved")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "Preferences unchanged")
	}
	return nil
}
