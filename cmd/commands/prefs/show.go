package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	"soundingkit/sndprefs/internal/preferences"
	"soundingkit/sndprefs/internal/tui"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

// ShowCommand returns the "prefs show" command.
func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current preferences",
		Long: `Show every stored preference, or a single one with --field.

Examples:
  sndprefs prefs show
  sndprefs prefs show --field wind_units
  sndprefs prefs show -o json`,
		Args:         cobra.NoArgs,
		RunE:         runShow,
		SilenceUsage: true,
	}

	cmd.Flags().String("field", "", "Print a single preference value")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	field, _ := cmd.Flags().GetString("field")
	field = strings.TrimSpace(field)
	output, _ := cmd.Flags().GetString("output")

	if field != "" && !slices.Contains(preferences.Fields(), field) {
		return fmt.Errorf("unknown preference field %q (valid: %s)", field, strings.Join(preferences.Fields(), ", "))
	}
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	s, err := openSession(cmd, true)
	if err != nil {
		return err
	}
	defer s.Close()

	if field != "" {
		value, ok, err := s.svc.Get(field)
		if err != nil {
			return err
		}
		if !ok {
			value = "not set"
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	}

	set, err := s.svc.Load()
	if err != nil {
		return err
	}

	if output == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(set)
	}

	fmt.Fprint(cmd.OutOrStdout(), tui.RenderPreferences(set, colorOutput(cmd)))
	return nil
}

// colorOutput reports whether stdout is an interactive terminal that should
// get styled output.
func colorOutput(cmd *cobra.Command) bool {
	if cmd.OutOrStdout() != os.Stdout || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
