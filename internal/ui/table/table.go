// Package table renders record sets produced by the grid pipeline. It
// supports an interactive TUI (free-text search, column sorting, page
// navigation, column expand/hide) plus plain text, JSON, and raw
// tab-separated output for non-interactive use.
//
// All cell text goes through grid.Value.Format, so what the user
// searches and sorts in the TUI is exactly what every output mode
// prints.
package table

import (
	"os"

	"golang.org/x/term"

	"github.com/gridkit/gridview/internal/grid"
)

// DisplayOptions controls how results are rendered.
type DisplayOptions struct {
	// JSON outputs results as a JSON array of objects.
	JSON bool
	// Raw outputs results as tab-separated values (for piping).
	Raw bool
	// NoPager forces plain table output even on a TTY.
	NoPager bool
	// PerPage overrides the initial page size in the interactive view.
	PerPage int
	// PageSizes overrides the choices offered by the page-size selector.
	PageSizes []int
}

// DisplayResults picks the right output mode based on options and
// environment, then renders the given columns and records. The title is
// shown in the interactive TUI header; non-interactive modes ignore it.
func DisplayResults(title string, columns []grid.Column, records []grid.Record, opts DisplayOptions) error {
	if opts.Raw {
		PrintRawRecords(columns, records)
		return nil
	}

	if opts.JSON {
		return PrintJSONRecords(columns, records)
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	if !isTTY || opts.NoPager || len(records) == 0 {
		PrintPlainTable(columns, records)
		return nil
	}

	return RunTableTUI(title, columns, records, opts)
}
