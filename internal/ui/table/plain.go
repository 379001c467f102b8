package table

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/gridkit/gridview/internal/grid"
)

// PrintJSONRecords outputs records as a JSON array of objects keyed by
// column title. Instants are emitted in their display form so JSON
// output matches the table text.
func PrintJSONRecords(columns []grid.Column, records []grid.Record) error {
	results := make([]map[string]interface{}, len(records))

	for i, rec := range records {
		obj := make(map[string]interface{}, len(columns))
		for _, col := range columns {
			val := rec.Cell(col.Field)
			text := val.Format()
			if text == "" {
				obj[col.Title] = nil
			} else {
				obj[col.Title] = text
			}
		}
		results[i] = obj
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// PrintRawRecords outputs records as tab-separated values (for piping).
func PrintRawRecords(columns []grid.Column, records []grid.Record) {
	for _, rec := range records {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = rec.Cell(col.Field).Format()
		}
		fmt.Println(strings.Join(cells, "\t"))
	}
}

// PrintPlainTable prints a properly aligned table for non-TTY output.
// Shows full content without truncation.
func PrintPlainTable(columns []grid.Column, records []grid.Record) {
	if len(columns) == 0 {
		fmt.Println("(0 rows)")
		return
	}

	// Column widths from actual content (no truncation)
	colWidths := make([]int, len(columns))
	for i, col := range columns {
		colWidths[i] = len(col.Title)
	}
	for _, rec := range records {
		for i, col := range columns {
			if w := len(rec.Cell(col.Field).Format()); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	// Header
	for i, col := range columns {
		if i > 0 {
			fmt.Print("  ")
		}
		fmt.Print(pad(col.Title, colWidths[i]))
	}
	fmt.Println()

	// Separator
	for i, w := range colWidths {
		if i > 0 {
			fmt.Print("  ")
		}
		fmt.Print(strings.Repeat("─", w))
	}
	fmt.Println()

	// Rows
	for _, rec := range records {
		for i, col := range columns {
			if i > 0 {
				fmt.Print("  ")
			}
			fmt.Print(pad(rec.Cell(col.Field).Format(), colWidths[i]))
		}
		fmt.Println()
	}

	fmt.Println()
	fmt.Printf("(%d rows)\n", len(records))
}

// pad adds spaces to reach the desired width (no truncation).
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// Truncate shortens a string to fit width, adding "..." if needed.
func Truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width > 3 {
		return s[:width-3] + "..."
	}
	return s[:width]
}

// PadOrTruncate pads or truncates to exact width (for TUI table).
func PadOrTruncate(s string, width int) string {
	if len(s) > width {
		return Truncate(s, width)
	}
	return s + strings.Repeat(" ", width-len(s))
}
