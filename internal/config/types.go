// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"bindle/pkg/bindings"
	"bindle/pkg/manifest"
)

// Format selects which asset-bundle form an upload uses.
type Format string

const (
	// FormatModules uploads a classified module manifest anchored at a
	// main module.
	FormatModules Format = "modules"
	// FormatServiceWorker uploads a single script with part-style
	// resources, the legacy form.
	FormatServiceWorker Format = "service-worker"
)

var (
	// ErrMissingName is returned when the settings omit the project name.
	ErrMissingName = errors.New("project name is required")
	// ErrMissingMain is returned when the modules format has no main module.
	ErrMissingMain = errors.New("main module is required in modules format")
	// ErrMissingScript is returned when the service-worker format has no script path.
	ErrMissingScript = errors.New("script path is required in service-worker format")
	// ErrInvalidFormat is returned when format is neither modules nor service-worker.
	ErrInvalidFormat = errors.New("invalid upload format")
	// ErrUnnamedBinding is returned when a resource descriptor has an empty binding name.
	ErrUnnamedBinding = errors.New("binding name must not be empty")
)

// Config is the parsed settings file. It is the only externally visible
// schema of the tool; everything else is derived from it.
type Config struct {
	// Name identifies the project at the deployment API.
	Name string `mapstructure:"name" toml:"name"`
	// Format selects the upload form. Defaults to modules.
	Format Format `mapstructure:"format" toml:"format"`
	// Main is the canonical name of the entry module (modules format).
	Main string `mapstructure:"main" toml:"main,omitempty"`
	// Script is the path of the script file (service-worker format).
	Script string `mapstructure:"script" toml:"script,omitempty"`
	// UploadDir is the build-output directory classified into modules.
	UploadDir string `mapstructure:"upload_dir" toml:"upload_dir"`
	// FollowSymlinks makes the walk descend into symlinked directories.
	FollowSymlinks bool `mapstructure:"follow_symlinks" toml:"follow_symlinks,omitempty"`

	// ModuleGlobs overrides the per-type classification patterns.
	ModuleGlobs manifest.TypeGlobs `mapstructure:"module_globs" toml:"module_globs,omitempty"`

	KVNamespaces   []bindings.KVNamespace        `mapstructure:"kv_namespaces" toml:"kv_namespaces,omitempty"`
	DurableObjects []bindings.DurableObjectClass `mapstructure:"durable_objects" toml:"durable_objects,omitempty"`
	TextBlobs      []bindings.TextBlob           `mapstructure:"text_blobs" toml:"text_blobs,omitempty"`
	PlainTexts     []bindings.PlainText          `mapstructure:"plain_texts" toml:"plain_texts,omitempty"`
	WasmModules    []bindings.WasmModule         `mapstructure:"wasm_modules" toml:"wasm_modules,omitempty"`

	// Migration optionally describes durable-object storage changes for
	// this deployment.
	Migration *bindings.Migration `mapstructure:"migration" toml:"migration,omitempty"`
}

// DefaultConfig returns the settings used when a field is absent from the
// file.
func DefaultConfig() *Config {
	return &Config{
		Format:    FormatModules,
		UploadDir: "dist",
	}
}

// Validate checks the invariants the schema cannot express.
func (c *Config) Validate() error {
	if c.Name == "" {
		return ErrMissingName
	}

	switch c.Format {
	case FormatModules:
		if c.Main == "" {
			return ErrMissingMain
		}
	case FormatServiceWorker:
		if c.Script == "" {
			return ErrMissingScript
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}

	for _, kv := range c.KVNamespaces {
		if kv.Name == "" {
			return fmt.Errorf("kv_namespaces: %w", ErrUnnamedBinding)
		}
	}
	for _, class := range c.DurableObjects {
		if class.Name == "" {
			return fmt.Errorf("durable_objects: %w", ErrUnnamedBinding)
		}
	}
	for _, blob := range c.TextBlobs {
		if blob.Name == "" {
			return fmt.Errorf("text_blobs: %w", ErrUnnamedBinding)
		}
	}
	for _, text := range c.PlainTexts {
		if text.Name == "" {
			return fmt.Errorf("plain_texts: %w", ErrUnnamedBinding)
		}
	}
	for _, wm := range c.WasmModules {
		if wm.Name == "" {
			return fmt.Errorf("wasm_modules: %w", ErrUnnamedBinding)
		}
	}

	return nil
}
