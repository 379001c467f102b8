package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/gridkit/gridview/internal/config"
	"github.com/gridkit/gridview/internal/ui/styles"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialize gridview settings",
		Long: `Show the effective gridview settings.

Settings live in a TOML file in the platform config directory. With
--init, a file with the default settings is written there so it can be
edited.`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}

	cmd.Flags().Bool("init", false, "Write a config file with default settings")

	return cmd
}

func runConfig(cmd *cobra.Command, args []string) error {
	initFile, _ := cmd.Flags().GetBool("init")

	if initFile {
		if _, err := os.Stat(config.Path()); err == nil {
			fmt.Println(styles.WarningMsg("Config file already exists: " + config.Path()))
			return nil
		}
		if err := config.Save(config.Default()); err != nil {
			return err
		}
		fmt.Println(styles.SuccessMsg("Wrote " + config.Path()))
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Println(styles.MutedMsg("# " + config.Path()))
	return toml.NewEncoder(os.Stdout).Encode(cfg)
}
