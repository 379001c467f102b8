package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gridkit/gridview/internal/source"
	"github.com/gridkit/gridview/internal/ui/table"
)

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <file.csv>",
		Short: "View a CSV file as an interactive table",
		Long: `View a CSV file as an interactive table.

The first row is treated as the header. Cell values are sniffed into
text, number, boolean, or date; dates sort chronologically and display
as MM-DD-YYYY. Search, sorting, and pagination all operate on the
displayed text.`,
		Args: cobra.ExactArgs(1),
		RunE: runView,
	}

	addDisplayFlags(cmd)

	return cmd
}

func runView(cmd *cobra.Command, args []string) error {
	path := args[0]

	opts, err := displayOpts(cmd)
	if err != nil {
		return err
	}

	columns, records, err := source.LoadCSV(path)
	if err != nil {
		return err
	}

	return table.DisplayResults(filepath.Base(path), columns, records, opts)
}
