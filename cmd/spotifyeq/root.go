package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	opts := &convertOptions{}

	ctx := newCommandContext(&configFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:   "spotifyeq <input.plist> <output.plist> <preset | db1 ... db10>",
		Short: "Write 10-band equalizer gains into a Spotify preferences plist",
		Long: "spotifyeq converts decibel gains (-12 to +12) for the 31 Hz to 16 kHz bands into\n" +
			"the -1.0 to +1.0 values Spotify stores, and writes them into a copy of the\n" +
			"preferences plist. Only the equalizer values key changes.",
		Example: "  spotifyeq original.plist custom.plist bass_boost\n" +
			"  spotifyeq original.plist custom.plist 6 4 2 0 -2 -2 0 2 4 6",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			// Usage must print even when the config file is broken.
			if !cmd.HasParent() && len(args) < minConvertArgs {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, ctx, opts, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override the configured log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&opts.format, "format", "", "Output plist format: binary, xml, openstep, gnustep, or source")
	rootCmd.Flags().BoolVar(&opts.json, "json", false, "Print the result as JSON")
	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Show the values that would be written without writing the output file")
	// Stop at the first positional so negative gains such as -2 are not read as flags.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.AddCommand(newPresetsCommand(ctx))
	rootCmd.AddCommand(newInspectCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
