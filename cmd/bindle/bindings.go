// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"

	"bindle/internal/config"
	"bindle/pkg/assets"
	"bindle/pkg/bindings"

	"github.com/spf13/cobra"
)

// bindingsCmd assembles the configured asset bundle and prints its
// bindings as JSON.
var bindingsCmd = &cobra.Command{
	Use:   "bindings",
	Short: "Assemble the asset bundle and print its bindings",
	Long: `Build the configured asset bundle (modules or service-worker form) from
the settings file and print every resource binding as JSON, in the order
the deployment API receives them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		bound, err := buildBindings(cfg)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(bound)
	},
}

// buildBindings assembles the bundle form selected by cfg.Format and
// returns its bindings. The modules form classifies the upload directory
// first, since the bundle owns the manifest.
func buildBindings(cfg *config.Config) ([]bindings.Binding, error) {
	switch cfg.Format {
	case config.FormatServiceWorker:
		bundle, err := assets.NewServiceWorkerAssets(
			cfg.Script,
			cfg.WasmModules,
			cfg.KVNamespaces,
			cfg.DurableObjects,
			cfg.TextBlobs,
			cfg.PlainTexts,
		)
		if err != nil {
			return nil, err
		}
		logger.Debug("assembled service-worker bundle", "script", bundle.ScriptName())
		return bundle.Bindings(), nil

	default:
		modules, err := classify(cfg)
		if err != nil {
			return nil, err
		}
		bundle := assets.NewModulesAssets(
			cfg.Main,
			modules,
			cfg.KVNamespaces,
			cfg.DurableObjects,
			cfg.Migration,
			cfg.PlainTexts,
		)
		logger.Debug("assembled modules bundle", "main", bundle.MainModule)
		return bundle.Bindings(), nil
	}
}
