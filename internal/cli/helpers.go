package cli

import (
	"github.com/spf13/cobra"

	"github.com/gridkit/gridview/internal/config"
	"github.com/gridkit/gridview/internal/ui/table"
	"github.com/gridkit/gridview/internal/util"
)

// addDisplayFlags registers the output-mode flags shared by every
// command that renders a table.
func addDisplayFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output results as JSON array")
	cmd.Flags().Bool("raw", false, "Output raw tab-separated values (for piping)")
	cmd.Flags().Bool("no-pager", false, "Disable interactive table view")
	cmd.Flags().Int("page-size", 0, "Entries per page in the interactive view (default from config)")
}

// displayOpts reads the shared flags and merges in the configured
// default page size. An explicit non-positive --page-size is rejected.
func displayOpts(cmd *cobra.Command) (table.DisplayOptions, error) {
	jsonOut, _ := cmd.Flags().GetBool("json")
	raw, _ := cmd.Flags().GetBool("raw")
	noPager, _ := cmd.Flags().GetBool("no-pager")
	pageSize, _ := cmd.Flags().GetInt("page-size")

	if cmd.Flags().Changed("page-size") && pageSize < 1 {
		return table.DisplayOptions{}, util.BadPageSizeError(pageSize)
	}

	var pageSizes []int
	if cfg, err := config.Load(); err == nil {
		pageSizes = cfg.Table.PageSizes
		if pageSize == 0 {
			pageSize = cfg.Table.PerPage
		}
	}

	return table.DisplayOptions{
		JSON:      jsonOut,
		Raw:       raw,
		NoPager:   noPager,
		PerPage:   pageSize,
		PageSizes: pageSizes,
	}, nil
}
