package prefs

import (
	"fmt"
	"strings"

	"soundingkit/sndprefs/internal/preferences"

	"github.com/spf13/cobra"
)

// SetCommand returns the "prefs set" command.
func SetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Set a single unit preference",
		Long: "Set one preference. Values must be one of the field's options:\n\n" +
			optionsHelp() +
			"\nSetting color_style applies the whole preset (see 'prefs style').\n\n" +
			"Examples:\n" +
			"  sndprefs prefs set temp_units Celsius\n" +
			"  sndprefs prefs set calc_vector \"Left Mover\"",
		Args:         cobra.ExactArgs(2),
		RunE:         runSet,
		SilenceUsage: true,
	}
}

func runSet(cmd *cobra.Command, args []string) error {
	field := strings.TrimSpace(args[0])
	value := strings.TrimSpace(args[1])

	if preferences.IsColorField(field) {
		return fmt.Errorf("%s is set by the color style; use 'sndprefs prefs style <name>'", field)
	}

	if field == preferences.FieldColorStyle {
		style, err := preferences.ParseStyle(value)
		if err != nil {
			return err
		}
		value = string(style)
	}

	s, err := openSession(cmd, true)
	if err != nil {
		return err
	}
	defer s.Close()

	if field == preferences.FieldColorStyle {
		err = s.svc.ApplyColorStyle(value)
	} else {
		err = s.svc.ApplyUnitChoice(field, value)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %q\n", field, value)
	return nil
}

// optionsHelp lists each unit field with its legal values.
func optionsHelp() string {
	var b strings.Builder
	fields := preferences.UnitFields()
	width := len(preferences.FieldColorStyle)
	for _, f := range fields {
		width = max(width, len(f.Name))
	}
	for _, f := range fields {
		fmt.Fprintf(&b, "  %-*s   %s\n", width, f.Name, strings.Join(f.Options, " | "))
	}
	fmt.Fprintf(&b, "  %-*s   %s\n", width, preferences.FieldColorStyle, strings.Join(preferences.StyleNames(), " | "))
	return b.String()
}
