package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	quiet      bool
}

// NewRootCmd builds the base command. Called with two arguments it converts
// a CSV file to EDN, the same as the convert subcommand.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	conv := &convertFlags{}

	rootCmd := &cobra.Command{
		Use:   "cardtags [input_csv_path output_edn_path]",
		Short: "Convert card tag spreadsheets to EDN",
		Long: `Cardtags reads card-name-to-tag rows from a CSV file and writes them as an
EDN map of card name to tag vector.

Each row is card_name, tag1, tag2, ... (or card_name, ignored, tag1, ...
with --legacy). Empty cells are dropped and rows without a card name are
skipped. Overrides from the config file append known-missing tags after the
sheet is read.

An input path that matches a subcommand name (tags, config, ...) runs that
subcommand; use "cardtags convert <input> <output>" to convert such a file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch len(args) {
			case 0:
				return cmd.Help()
			case 2:
				return runConvert(cmd, flags, conv, args[0], args[1])
			default:
				return fmt.Errorf("expected <input_csv_path> <output_edn_path>, got %d argument", len(args))
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Configuration file path (default $XDG_CONFIG_HOME/cardtags/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, "Suppress progress output")
	conv.register(rootCmd)

	rootCmd.AddCommand(newConvertCmd(flags))
	rootCmd.AddCommand(newTagsCmd(flags))
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newValidateCmd(flags))
	rootCmd.AddCommand(newConfigCmd(flags))

	return rootCmd
}

// Execute builds the root command and runs it against os.Args
func Execute() error {
	return NewRootCmd().Execute()
}
