package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridkit/gridview/internal/config"
	"github.com/gridkit/gridview/internal/ui/styles"
	"github.com/gridkit/gridview/internal/util"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	CommitSHA = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "gridview",
	Short: "An interactive table viewer for tabular data",
	Long: `gridview renders tabular data as an interactive table with free-text
search, column sorting, and page-based navigation.

Data can come from a CSV file, a PostgreSQL query, or the built-in
sample set. On a TTY the interactive viewer opens; piped output falls
back to a plain aligned table. Use --json or --raw for machine-readable
output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       Version,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		// Check if it's a structured GridError
		var gridErr *util.GridError
		if errors.As(err, &gridErr) {
			fmt.Fprintln(os.Stderr, gridErr.Format())
		} else {
			// Simple error - still format nicely
			fmt.Fprintln(os.Stderr, styles.ErrorMsg(err.Error()))
		}
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	rootCmd.SetVersionTemplate(fmt.Sprintf("gridview version %s\n  commit: %s\n  built:  %s\n", Version, CommitSHA, BuildDate))

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		noColor, _ := cmd.Flags().GetBool("no-color")
		if !noColor {
			if cfg, err := config.Load(); err == nil && cfg.Output.NoColor {
				noColor = true
			}
		}
		if noColor {
			os.Setenv("GRIDVIEW_NO_COLOR", "1")
		}
	}

	rootCmd.AddCommand(
		newViewCmd(),
		newSQLCmd(),
		newDemoCmd(),
		newConfigCmd(),
	)
}
