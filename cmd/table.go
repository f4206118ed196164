package cmd

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/arcanaland/cardtags/internal/tagtable"
)

// renderTagTable renders tag counts. A positive maxTag caps the tag column,
// which wraps instead of widening the table.
func renderTagTable(counts []tagtable.TagCount, maxTag int) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Tag", "Cards"})

	for _, tc := range counts {
		tw.AppendRow(table.Row{tc.Tag, strconv.Itoa(tc.Cards)})
	}

	tagColumn := table.ColumnConfig{Number: 1, Align: text.AlignLeft}
	if maxTag > 0 {
		tagColumn.WidthMax = maxTag
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		tagColumn,
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
