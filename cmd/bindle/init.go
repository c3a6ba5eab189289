// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"bindle/internal/config"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// scaffoldHeader is prepended to generated settings files.
const scaffoldHeader = `# bindle project settings.
# Module classification globs can be overridden under [module_globs];
# unset lists fall back to the built-in defaults.

`

// initCmd scaffolds a settings file in the working directory.
var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Scaffold a bindle.toml settings file",
	Long: `Create a bindle.toml in the working directory with the default settings.
The project name defaults to the directory name when not given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.ConfigFileName
		}

		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}

		cfg := config.DefaultConfig()
		cfg.Main = "./index.mjs"
		if len(args) == 1 {
			cfg.Name = args[0]
		} else {
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("determine working directory: %w", err)
			}
			cfg.Name = filepath.Base(wd)
		}

		data, err := toml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encode settings: %w", err)
		}

		if err := os.WriteFile(path, append([]byte(scaffoldHeader), data...), 0644); err != nil {
			return fmt.Errorf("write settings file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("created ")+NameStyle.Render(path))
		return nil
	},
}
