// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// ErrOutsideUploadDir is returned when a candidate path cannot be made
// relative to the upload root.
var ErrOutsideUploadDir = errors.New("module path escapes the upload directory")

// Module is one classified file destined for upload.
type Module struct {
	// Name is the canonical module name: the forward-slash path relative
	// to the upload root, prefixed with "./". Name is the identity key
	// within a manifest.
	Name string `json:"name"`
	// Path is the absolute location of the file on disk.
	Path string `json:"path"`
	// Type determines the content type the module is uploaded with.
	Type ModuleType `json:"type"`
}

// ConflictError reports a file that satisfied more than one module-type
// matcher in a single classification pass.
type ConflictError struct {
	Path string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("the module at %s matched multiple module type globs", e.Path)
}

// CreateManifest classifies candidate file paths against the per-type
// matchers and returns the module manifest. Candidates are expected to be
// regular files under uploadDir; walking, symlink policy and non-regular
// file filtering are the caller's concern (see FindModules), which keeps
// classification testable without a file system.
//
// Each candidate is evaluated against every matcher in declaration order.
// A candidate whitelisted by exactly one matcher is inserted under its
// canonical name; a second whitelist for the same name fails the whole
// build with a *ConflictError. Candidates matching no type are silently
// excluded. Output order is unspecified; use SortModules when determinism
// is needed.
func CreateManifest(candidates []string, uploadDir string, matchers []*TypeMatcher) ([]Module, error) {
	modules := make(map[string]Module)

	for _, p := range candidates {
		name, err := moduleName(p, uploadDir)
		if err != nil {
			return nil, err
		}
		rel := strings.TrimPrefix(name, "./")

		for _, m := range matchers {
			if !m.Whitelisted(rel) {
				continue
			}
			if _, exists := modules[name]; exists {
				return nil, &ConflictError{Path: p}
			}
			modules[name] = Module{Name: name, Path: p, Type: m.ModuleType()}
		}
	}

	out := make([]Module, 0, len(modules))
	for _, m := range modules {
		out = append(out, m)
	}
	return out, nil
}

// moduleName derives the canonical name for p relative to uploadDir:
// separators converted to forward slashes, prefixed with "./".
func moduleName(p, uploadDir string) (string, error) {
	rel, err := filepath.Rel(uploadDir, p)
	if err != nil {
		return "", fmt.Errorf("derive module name for %s: %w", p, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is not under %s: %w", p, uploadDir, ErrOutsideUploadDir)
	}
	return "./" + filepath.ToSlash(rel), nil
}

// SortModules orders a manifest lexicographically by name, breaking the
// unspecified map-iteration order for serialization and comparison.
func SortModules(modules []Module) {
	slices.SortFunc(modules, func(a, b Module) int {
		return strings.Compare(a.Name, b.Name)
	})
}
