// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"bindle/pkg/bindings"
)

// writeSettings writes content to a bindle.toml in a temp dir and returns
// its path.
func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFull(t *testing.T) {
	path := writeSettings(t, `
name = "my-worker"
main = "./index.mjs"
upload_dir = "build"
follow_symlinks = true

[module_globs]
esm = ["**/*.mjs"]
compiled_wasm = ["*.wasm"]

[[kv_namespaces]]
binding = "KV"
id = "0f2ac74b498b48028cb68387c421e279"

[[durable_objects]]
binding = "COUNTER"
class_name = "Counter"

[[text_blobs]]
name = "HTML"
path = "public/index.html"

[[plain_texts]]
name = "ENV"
value = "production"

[[wasm_modules]]
name = "WASM"
path = "build/lib.wasm"

[migration]
new_tag = "v1"
new_classes = ["Counter"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Name != "my-worker" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.Format != FormatModules {
		t.Errorf("Format = %q, want default modules", cfg.Format)
	}
	if cfg.UploadDir != "build" {
		t.Errorf("UploadDir = %q", cfg.UploadDir)
	}
	if !cfg.FollowSymlinks {
		t.Error("FollowSymlinks not set")
	}
	if len(cfg.ModuleGlobs.ESM) != 1 || cfg.ModuleGlobs.ESM[0] != "**/*.mjs" {
		t.Errorf("ModuleGlobs.ESM = %v", cfg.ModuleGlobs.ESM)
	}
	if len(cfg.ModuleGlobs.CompiledWasm) != 1 || cfg.ModuleGlobs.CompiledWasm[0] != "*.wasm" {
		t.Errorf("ModuleGlobs.CompiledWasm = %v", cfg.ModuleGlobs.CompiledWasm)
	}
	if cfg.ModuleGlobs.CJS != nil {
		t.Errorf("ModuleGlobs.CJS = %v, want nil (unset falls back to defaults)", cfg.ModuleGlobs.CJS)
	}
	if len(cfg.KVNamespaces) != 1 || cfg.KVNamespaces[0].Name != "KV" || cfg.KVNamespaces[0].ID != "0f2ac74b498b48028cb68387c421e279" {
		t.Errorf("KVNamespaces = %+v", cfg.KVNamespaces)
	}
	if len(cfg.DurableObjects) != 1 || cfg.DurableObjects[0].ClassName != "Counter" {
		t.Errorf("DurableObjects = %+v", cfg.DurableObjects)
	}
	if len(cfg.TextBlobs) != 1 || cfg.TextBlobs[0].Path != "public/index.html" {
		t.Errorf("TextBlobs = %+v", cfg.TextBlobs)
	}
	if len(cfg.PlainTexts) != 1 || cfg.PlainTexts[0].Value != "production" {
		t.Errorf("PlainTexts = %+v", cfg.PlainTexts)
	}
	if len(cfg.WasmModules) != 1 || cfg.WasmModules[0].Name != "WASM" {
		t.Errorf("WasmModules = %+v", cfg.WasmModules)
	}
	if cfg.Migration == nil || cfg.Migration.NewTag != "v1" || len(cfg.Migration.NewClasses) != 1 {
		t.Errorf("Migration = %+v", cfg.Migration)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeSettings(t, `
name = "my-worker"
main = "./index.mjs"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != FormatModules {
		t.Errorf("Format = %q, want modules", cfg.Format)
	}
	if cfg.UploadDir != "dist" {
		t.Errorf("UploadDir = %q, want dist", cfg.UploadDir)
	}
	if cfg.Migration != nil {
		t.Errorf("Migration = %+v, want nil", cfg.Migration)
	}
}

func TestLoadServiceWorkerFormat(t *testing.T) {
	path := writeSettings(t, `
name = "legacy-worker"
format = "service-worker"
script = "dist/main.js"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != FormatServiceWorker {
		t.Errorf("Format = %q", cfg.Format)
	}
	if cfg.Script != "dist/main.js" {
		t.Errorf("Script = %q", cfg.Script)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected an error for a missing settings file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expected error
	}{
		{
			name:     "missing name",
			cfg:      Config{Format: FormatModules, Main: "./index.mjs"},
			expected: ErrMissingName,
		},
		{
			name:     "modules format without main",
			cfg:      Config{Name: "w", Format: FormatModules},
			expected: ErrMissingMain,
		},
		{
			name:     "service-worker format without script",
			cfg:      Config{Name: "w", Format: FormatServiceWorker},
			expected: ErrMissingScript,
		},
		{
			name:     "unknown format",
			cfg:      Config{Name: "w", Format: "esm"},
			expected: ErrInvalidFormat,
		},
		{
			name: "unnamed kv binding",
			cfg: Config{
				Name: "w", Format: FormatModules, Main: "./index.mjs",
				KVNamespaces: []bindings.KVNamespace{{ID: "abc"}},
			},
			expected: ErrUnnamedBinding,
		},
		{
			name: "unnamed plain text",
			cfg: Config{
				Name: "w", Format: FormatModules, Main: "./index.mjs",
				PlainTexts: []bindings.PlainText{{Value: "prod"}},
			},
			expected: ErrUnnamedBinding,
		},
		{
			name: "valid modules config",
			cfg:  Config{Name: "w", Format: FormatModules, Main: "./index.mjs"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); !errors.Is(err, tt.expected) {
				t.Errorf("Validate() = %v, want %v", err, tt.expected)
			}
		})
	}
}
