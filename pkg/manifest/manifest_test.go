// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"errors"
	"testing"
)

func buildMatchers(t *testing.T, globs TypeGlobs) []*TypeMatcher {
	t.Helper()
	_, matchers, err := globs.BuildTypeMatchers()
	if err != nil {
		t.Fatal(err)
	}
	return matchers
}

func TestCreateManifestDefaultLayout(t *testing.T) {
	uploadDir := "/worker/dist"

	expected := []Module{
		{Name: "./bar.js", Path: "/worker/dist/bar.js", Type: CommonJS},
		{Name: "./foo/bar/index.mjs", Path: "/worker/dist/foo/bar/index.mjs", Type: ESModule},
		{Name: "./foo/baz.cjs", Path: "/worker/dist/foo/baz.cjs", Type: CommonJS},
		{Name: "./wat.bin", Path: "/worker/dist/wat.bin", Type: Data},
		{Name: "./wat.txt", Path: "/worker/dist/wat.txt", Type: Text},
	}

	candidates := make([]string, 0, len(expected))
	for _, m := range expected {
		candidates = append(candidates, m.Path)
	}

	modules, err := CreateManifest(candidates, uploadDir, buildMatchers(t, TypeGlobs{}))
	if err != nil {
		t.Fatal(err)
	}

	SortModules(modules)
	if len(modules) != len(expected) {
		t.Fatalf("got %d modules, want %d: %v", len(modules), len(expected), modules)
	}
	for i, m := range modules {
		if m != expected[i] {
			t.Errorf("module %d = %+v, want %+v", i, m, expected[i])
		}
	}
}

func TestCreateManifestConflict(t *testing.T) {
	globs := TypeGlobs{
		CJS:  []string{"*.js"},
		Text: []string{"shared.js"},
	}

	_, err := CreateManifest([]string{"/worker/dist/shared.js"}, "/worker/dist", buildMatchers(t, globs))
	if err == nil {
		t.Fatal("expected a conflict error")
	}

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected *ConflictError, got %T: %v", err, err)
	}
	if conflict.Path != "/worker/dist/shared.js" {
		t.Errorf("conflict names %q, want the shared.js path", conflict.Path)
	}
}

func TestCreateManifestZeroMatchesExcluded(t *testing.T) {
	candidates := []string{
		"/worker/dist/README.md",
		"/worker/dist/main.wasm", // no default pattern for wasm
	}

	modules, err := CreateManifest(candidates, "/worker/dist", buildMatchers(t, TypeGlobs{}))
	if err != nil {
		t.Fatal(err)
	}
	if len(modules) != 0 {
		t.Errorf("expected an empty manifest, got %v", modules)
	}
}

func TestCreateManifestOutsideUploadDir(t *testing.T) {
	_, err := CreateManifest([]string{"/elsewhere/foo.js"}, "/worker/dist", buildMatchers(t, TypeGlobs{}))
	if !errors.Is(err, ErrOutsideUploadDir) {
		t.Fatalf("expected ErrOutsideUploadDir, got %v", err)
	}
}

func TestCreateManifestIdempotent(t *testing.T) {
	candidates := []string{
		"/worker/dist/a.mjs",
		"/worker/dist/b.js",
		"/worker/dist/c.txt",
	}
	matchers := buildMatchers(t, TypeGlobs{})

	first, err := CreateManifest(candidates, "/worker/dist", matchers)
	if err != nil {
		t.Fatal(err)
	}
	second, err := CreateManifest(candidates, "/worker/dist", matchers)
	if err != nil {
		t.Fatal(err)
	}

	SortModules(first)
	SortModules(second)
	if len(first) != len(second) {
		t.Fatalf("manifests differ in size: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("module %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestSortModules(t *testing.T) {
	modules := []Module{
		{Name: "./z.js", Type: CommonJS},
		{Name: "./a/b.mjs", Type: ESModule},
		{Name: "./m.txt", Type: Text},
	}

	SortModules(modules)

	expected := []string{"./a/b.mjs", "./m.txt", "./z.js"}
	for i, m := range modules {
		if m.Name != expected[i] {
			t.Errorf("position %d holds %q, want %q", i, m.Name, expected[i])
		}
	}
}
