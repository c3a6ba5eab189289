// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"bindle/internal/config"
	"bindle/pkg/manifest"

	"github.com/spf13/cobra"
)

var (
	// manifestJSON switches the manifest listing to JSON output.
	manifestJSON bool

	// manifestCmd classifies the upload directory and prints the result.
	manifestCmd = &cobra.Command{
		Use:   "manifest",
		Short: "Classify the upload directory into typed modules",
		Long: `Walk the configured upload directory, classify every file against the
module-type globs, and print the resulting manifest sorted by name.

A file matching more than one module type fails the run; files matching
no type are excluded.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			modules, err := classify(cfg)
			if err != nil {
				return err
			}

			if manifestJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(modules)
			}

			fmt.Fprint(cmd.OutOrStdout(), renderManifest(modules))
			return nil
		},
	}
)

func init() {
	manifestCmd.Flags().BoolVar(&manifestJSON, "json", false, "print the manifest as JSON")
}

// classify runs the module classification for the configured upload
// directory and returns the manifest sorted by name.
func classify(cfg *config.Config) ([]manifest.Module, error) {
	modules, err := manifest.FindModules(cfg.UploadDir, cfg.ModuleGlobs, manifest.WalkOptions{
		FollowSymlinks: cfg.FollowSymlinks,
	})
	if err != nil {
		return nil, err
	}

	manifest.SortModules(modules)
	logger.Debug("classified upload directory", "dir", cfg.UploadDir, "modules", len(modules))
	return modules, nil
}

// renderManifest formats the manifest as aligned columns: name, type, and
// declared content type.
func renderManifest(modules []manifest.Module) string {
	if len(modules) == 0 {
		return SubtitleStyle.Render("no modules matched") + "\n"
	}

	nameWidth := len("NAME")
	typeWidth := len("TYPE")
	for _, m := range modules {
		nameWidth = max(nameWidth, len(m.Name))
		typeWidth = max(typeWidth, len(m.Type.String()))
	}

	var sb strings.Builder
	sb.WriteString(SubtitleStyle.Render(fmt.Sprintf("%-*s  %-*s  %s", nameWidth, "NAME", typeWidth, "TYPE", "CONTENT-TYPE")))
	sb.WriteString("\n")
	for _, m := range modules {
		sb.WriteString(fmt.Sprintf("%s  %-*s  %s\n",
			NameStyle.Render(fmt.Sprintf("%-*s", nameWidth, m.Name)),
			typeWidth, m.Type.String(),
			m.Type.ContentType(),
		))
	}
	return sb.String()
}
