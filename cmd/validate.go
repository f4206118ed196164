package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardtags/internal/config"
	"github.com/arcanaland/cardtags/internal/validator"
)

func newValidateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [config_path]",
		Short: "Validate a cardtags config file",
		Long: `Validate checks the layout and the [[override]] entries of a config file.
Without an argument it checks the file given by --config, or the default
config location.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flags.configPath
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				path = config.GetConfigFilePath()
			}

			if _, err := os.Stat(path); os.IsNotExist(err) {
				return fmt.Errorf("config file not found: %s", path)
			}

			cfg, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("validation error: %w", err)
			}

			results := validator.NewValidator(cfg).Validate()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Validation Results:")
			fmt.Fprintln(out, "-------------------")

			if len(results.Errors) == 0 {
				fmt.Fprintf(out, "✅ Config '%s' is valid.\n", path)
			} else {
				fmt.Fprintf(out, "❌ Config '%s' has %d validation errors:\n", path, len(results.Errors))
				for i, err := range results.Errors {
					fmt.Fprintf(out, "%d. %s\n", i+1, err)
				}
				return fmt.Errorf("validation failed")
			}

			if len(results.Warnings) > 0 {
				fmt.Fprintln(out, "\nWarnings:")
				for i, warn := range results.Warnings {
					fmt.Fprintf(out, "%d. %s\n", i+1, warn)
				}
			}

			return nil
		},
	}
}
