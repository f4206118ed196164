package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardtags/internal/ednout"
)

func newInspectCmd() *cobra.Command {
	var cardName string

	inspectCmd := &cobra.Command{
		Use:   "inspect <edn_path>",
		Short: "Display the cards and tags in an EDN tag file",
		Long: `Inspect reads an EDN file written by convert and prints each card with its
tags, sorted by card name.

Examples:
  cardtags inspect cardtags.edn
  cardtags inspect --card "Sure Gamble" cardtags.edn`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := ednout.ReadFile(args[0])
			if err != nil {
				return err
			}

			if cardName != "" {
				tags, ok := m[cardName]
				if !ok {
					return fmt.Errorf("card not found: %s", cardName)
				}
				m = map[string][]string{cardName: tags}
			}

			displayCards(cmd.OutOrStdout(), m, terminalWidth())
			return nil
		},
	}

	inspectCmd.Flags().StringVar(&cardName, "card", "", "Only show this card")

	return inspectCmd
}

// displayCards prints each card followed by its wrapped tag list
func displayCards(w io.Writer, m map[string][]string, width int) {
	if len(m) == 0 {
		fmt.Fprintln(w, "No cards found.")
		return
	}

	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintln(w, colorize.CyanString("Card: ")+colorize.HiWhiteString("%s", name))

		tags := m[name]
		if len(tags) == 0 {
			fmt.Fprintln(w, "  (no tags)")
			continue
		}
		for _, line := range wrapText(strings.Join(tags, ", "), width-2) {
			fmt.Fprintln(w, "  "+line)
		}
	}
}
