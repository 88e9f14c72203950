package prefs

import (
	"fmt"
	"strings"

	"soundingkit/sndprefs/internal/preferences"

	"github.com/spf13/cobra"
)

// StyleCommand returns the "prefs style" command.
func StyleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "style <name>",
		Short: "Apply a color style",
		Long: "Apply a built-in color style. Every color field is replaced by the\n" +
			"style's preset values.\n\n" +
			"Styles: " + strings.Join(preferences.StyleNames(), ", ") + "\n\n" +
			"Example:\n" +
			"  sndprefs prefs style inverted",
		Args:         cobra.ExactArgs(1),
		ValidArgs:    preferences.StyleNames(),
		RunE:         runStyle,
		SilenceUsage: true,
	}
}

func runStyle(cmd *cobra.Command, args []string) error {
	style, err := preferences.ParseStyle(args[0])
	if err != nil {
		return err
	}

	s, err := openSession(cmd, true)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.svc.ApplyColorStyle(string(style)); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Color style set to %q\n", style)
	return nil
}
