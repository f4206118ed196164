// Package pipeline runs the CSV to EDN conversion: read rows, build the tag
// table, apply overrides and write the result.
package pipeline

import (
	"fmt"

	"github.com/arcanaland/cardtags/internal/ednout"
	"github.com/arcanaland/cardtags/internal/rows"
	"github.com/arcanaland/cardtags/internal/tagtable"
)

// Options configures a single conversion run
type Options struct {
	Input     string
	Output    string
	Layout    tagtable.Layout
	Overrides []tagtable.Override
	Indent    bool
}

// Result summarizes a finished run
type Result struct {
	Rows       int
	Skipped    int
	Cards      int
	Overridden int
	Table      *tagtable.Table
}

// Load reads and builds the table from opts.Input and applies the overrides
func Load(opts Options) (Result, error) {
	r, err := rows.Open(opts.Input)
	if err != nil {
		return Result{}, err
	}
	defer r.Close()

	table, stats, err := tagtable.Build(r, opts.Layout)
	if err != nil {
		return Result{Rows: stats.Rows, Skipped: stats.Skipped}, err
	}

	if err := tagtable.Apply(table, opts.Overrides); err != nil {
		return Result{Rows: stats.Rows, Skipped: stats.Skipped, Table: table}, fmt.Errorf("error applying overrides: %w", err)
	}

	return Result{
		Rows:       stats.Rows,
		Skipped:    stats.Skipped,
		Cards:      table.Len(),
		Overridden: len(opts.Overrides),
		Table:      table,
	}, nil
}

// Run converts opts.Input to opts.Output
func Run(opts Options) (Result, error) {
	res, err := Load(opts)
	if err != nil {
		return res, err
	}

	if err := ednout.WriteFile(opts.Output, res.Table, ednout.Options{Indent: opts.Indent}); err != nil {
		return res, err
	}
	return res, nil
}
