package tagtable

import (
	"fmt"
	"io"

	"github.com/arcanaland/cardtags/internal/rows"
)

// Layout describes where tags start in a source row
type Layout struct {
	Name string
	// SkipColumns is the number of columns after the card name that are
	// not tags
	SkipColumns int
}

var (
	// LayoutUpdated treats every column after the name as a tag
	LayoutUpdated = Layout{Name: "updated", SkipColumns: 0}
	// LayoutLegacy ignores the column right after the name
	LayoutLegacy = Layout{Name: "legacy", SkipColumns: 1}
)

// ParseLayout returns the layout called name
func ParseLayout(name string) (Layout, error) {
	switch name {
	case "", LayoutUpdated.Name:
		return LayoutUpdated, nil
	case LayoutLegacy.Name:
		return LayoutLegacy, nil
	default:
		return Layout{}, fmt.Errorf("unknown layout: %s (supported: updated, legacy)", name)
	}
}

// RowSource yields rows until io.EOF
type RowSource interface {
	Next() (rows.Row, error)
}

// Stats counts what Build did with the rows it read
type Stats struct {
	Rows    int
	Skipped int
}

// Build reads every row from src into a new table
func Build(src RowSource, layout Layout) (*Table, Stats, error) {
	t := New()
	var stats Stats

	for {
		row, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, stats, err
		}
		stats.Rows++

		name := row.Name()
		if name == "" {
			stats.Skipped++
			continue
		}

		t.Set(name, nonEmpty(row.Tail(layout.SkipColumns)))
	}

	return t, stats, nil
}

func nonEmpty(fields []string) []string {
	tags := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			tags = append(tags, f)
		}
	}
	return tags
}
