package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardtags/internal/pipeline"
)

func newTagsCmd(flags *rootFlags) *cobra.Command {
	conv := &convertFlags{}

	tagsCmd := &cobra.Command{
		Use:   "tags <input_csv_path>",
		Short: "List the distinct tags in a card tag CSV file",
		Long: `Tags reads a card tag CSV file the same way convert does, overrides
included, and lists every distinct tag with the number of cards carrying it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := convertOptions(flags, conv)
			if err != nil {
				return err
			}
			opts.Input = args[0]

			res, err := pipeline.Load(opts)
			if err != nil {
				return err
			}

			counts := res.Table.Tags()
			if len(counts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tags found.")
				return nil
			}

			// Leave room for borders and the count column
			fmt.Fprintln(cmd.OutOrStdout(), renderTagTable(counts, terminalWidth()-16))
			fmt.Fprintf(cmd.OutOrStdout(), "%d tags across %d cards\n", len(counts), res.Cards)
			return nil
		},
	}
	conv.register(tagsCmd)
	tagsCmd.Flags().Lookup("indent").Hidden = true

	return tagsCmd
}
