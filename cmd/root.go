package cmd

import (
	"os"

	cfgcmd "soundingkit/sndprefs/cmd/commands/config"
	"soundingkit/sndprefs/cmd/commands/history"
	"soundingkit/sndprefs/cmd/commands/prefs"
	"soundingkit/sndprefs/internal/logging"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var opts logging.Options

	var cmd = &cobra.Command{
		Use:   "sndprefs",
		Short: "Manage display and unit preferences for sounding analysis",
		Long: `sndprefs manages the display and unit preferences used when plotting
and analysing atmospheric soundings: the color style of the plot and the
units for temperature, wind and precipitable water, plus the storm motion
vector used in calculations.

Missing preferences are seeded with defaults on every run.

Quick start:
  sndprefs prefs show                    # Show current preferences
  sndprefs prefs style inverted          # Switch to the inverted color style
  sndprefs prefs set wind_units m/s      # Change a single unit
  sndprefs prefs edit                    # Interactive preferences dialog`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if os.Getenv("NO_COLOR") != "" {
				opts.NoColor = true
			}
			logger := logging.New(cmd.ErrOrStderr(), opts)
			cmd.SetContext(logging.WithContext(cmd.Context(), logger))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show debug output")
	cmd.PersistentFlags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Only show warnings and errors")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "Disable colored log output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(prefs.NewCommand())
	cmd.AddCommand(history.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
