package cmd

import (
	"fmt"
	"io"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardtags/internal/config"
	"github.com/arcanaland/cardtags/internal/pipeline"
	"github.com/arcanaland/cardtags/internal/tagtable"
)

type convertFlags struct {
	legacy      bool
	noOverrides bool
	indent      bool
}

func (f *convertFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.legacy, "legacy", false, "Ignore the column after the card name")
	cmd.Flags().BoolVar(&f.noOverrides, "no-overrides", false, "Do not apply configured tag overrides")
	cmd.Flags().BoolVar(&f.indent, "indent", false, "Write one card per line")
}

func newConvertCmd(flags *rootFlags) *cobra.Command {
	conv := &convertFlags{}

	convertCmd := &cobra.Command{
		Use:   "convert <input_csv_path> <output_edn_path>",
		Short: "Convert a card tag CSV file to EDN",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, flags, conv, args[0], args[1])
		},
	}
	conv.register(convertCmd)

	return convertCmd
}

// convertOptions merges the config file with command line flags
func convertOptions(flags *rootFlags, conv *convertFlags) (pipeline.Options, error) {
	// Only the implicit config location falls back to defaults
	if flags.configPath != "" {
		if _, err := os.Stat(flags.configPath); os.IsNotExist(err) {
			return pipeline.Options{}, fmt.Errorf("config file not found: %s", flags.configPath)
		}
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return pipeline.Options{}, err
	}

	layout, err := cfg.ParsedLayout()
	if err != nil {
		return pipeline.Options{}, err
	}
	if conv.legacy {
		layout = tagtable.LayoutLegacy
	}

	opts := pipeline.Options{
		Layout:    layout,
		Overrides: cfg.Overrides,
		Indent:    cfg.Indent || conv.indent,
	}
	if conv.noOverrides {
		opts.Overrides = nil
	}
	return opts, nil
}

func runConvert(cmd *cobra.Command, flags *rootFlags, conv *convertFlags, input, output string) error {
	opts, err := convertOptions(flags, conv)
	if err != nil {
		return err
	}
	opts.Input = input
	opts.Output = output

	res, err := pipeline.Run(opts)
	if err != nil {
		return err
	}

	if !flags.quiet {
		printSummary(cmd.ErrOrStderr(), opts, res)
	}
	return nil
}

func printSummary(w io.Writer, opts pipeline.Options, res pipeline.Result) {
	fmt.Fprintf(w, "%s %s -> %s\n", colorize.GreenString("✓"), opts.Input, opts.Output)
	fmt.Fprintf(w, "  %s %d (%s layout)\n", colorize.CyanString("Rows:      "), res.Rows, opts.Layout.Name)
	fmt.Fprintf(w, "  %s %d\n", colorize.CyanString("Skipped:   "), res.Skipped)
	fmt.Fprintf(w, "  %s %d\n", colorize.CyanString("Cards:     "), res.Cards)
	fmt.Fprintf(w, "  %s %d\n", colorize.CyanString("Overrides: "), res.Overridden)
}
