package config

import (
	"fmt"
	"strings"

	"soundingkit/sndprefs/internal/config"
	"soundingkit/sndprefs/internal/util"

	"github.com/spf13/cobra"
)

// SetCommand returns the "config set" command.
func SetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: "Set a persistent configuration value.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  sndprefs config set store-backend sqlite\n" +
			"  sndprefs config set history off",
		Args:         cobra.ExactArgs(2),
		RunE:         runSet,
		SilenceUsage: true,
	}

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	spec := config.Lookup(util.NormalizeKey(args[0]))
	if spec == nil {
		return fmt.Errorf("unknown configuration key %q (valid: %s)", args[0], strings.Join(config.KeyNames(), ", "))
	}

	// Enumerated values are case-insensitive; free-form ones (paths) are not.
	value := strings.TrimSpace(args[1])
	if spec.Validate != nil {
		value = util.NormalizeKey(value)
		if err := spec.Validate(value); err != nil {
			return fmt.Errorf("%s: %w", spec.Name, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	spec.Set(cfg, value)
	if err := cfg.Save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %q\n", spec.Name, value)
	return nil
}
