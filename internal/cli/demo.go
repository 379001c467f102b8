package cli

import (
	"github.com/spf13/cobra"

	"github.com/gridkit/gridview/internal/source"
	"github.com/gridkit/gridview/internal/ui/table"
)

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Explore the viewer with generated sample data",
		Long: `Explore the viewer with generated sample data.

Generates a set of records with ULID identifiers, names, scores, and
join dates, then opens the interactive table. Useful for trying search,
sorting, and pagination without any input file.`,
		Args: cobra.NoArgs,
		RunE: runDemo,
	}

	cmd.Flags().Int("rows", 57, "Number of sample records to generate")
	addDisplayFlags(cmd)

	return cmd
}

func runDemo(cmd *cobra.Command, args []string) error {
	opts, err := displayOpts(cmd)
	if err != nil {
		return err
	}

	rows, _ := cmd.Flags().GetInt("rows")
	if rows < 0 {
		rows = 0
	}

	records := source.SampleRecords(rows)
	return table.DisplayResults("sample data", source.SampleColumns, records, opts)
}
