// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// WalkOptions control how FindModules traverses the upload directory.
type WalkOptions struct {
	// FollowSymlinks descends into symlinked directories and admits
	// symlinked regular files as candidates. Module names stay anchored
	// at the upload root regardless of where a link points.
	FollowSymlinks bool
}

// FindModules builds the matchers for globs, walks uploadDir, and returns
// the classified module manifest. Only regular files become candidates,
// and only candidates selected by the combined matcher are classified.
func FindModules(uploadDir string, globs TypeGlobs, opts WalkOptions) ([]Module, error) {
	combined, matchers, err := globs.BuildTypeMatchers()
	if err != nil {
		return nil, err
	}

	root, err := filepath.Abs(uploadDir)
	if err != nil {
		return nil, fmt.Errorf("resolve upload directory %s: %w", uploadDir, err)
	}

	candidates, err := collectCandidates(root, combined, opts)
	if err != nil {
		return nil, err
	}

	return CreateManifest(candidates, root, matchers)
}

// collectCandidates walks root and returns every regular file selected by
// the combined matcher. The walk recurses manually so symlinked
// directories can be followed when requested; filepath.WalkDir never
// follows links.
func collectCandidates(root string, combined *CombinedMatcher, opts WalkOptions) ([]string, error) {
	var candidates []string

	// Resolved targets of symlinked directories already descended into,
	// guarding against link cycles when FollowSymlinks is set.
	visited := make(map[string]struct{})

	consider := func(p string) error {
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return fmt.Errorf("relativize %s: %w", p, err)
		}
		if combined.Matches(filepath.ToSlash(rel)) {
			candidates = append(candidates, p)
		}
		return nil
	}

	var walk func(dir string) error
	walk = func(dir string) error {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("walk upload directory: %w", err)
		}
		for _, entry := range entries {
			p := filepath.Join(dir, entry.Name())
			switch {
			case entry.Type()&fs.ModeSymlink != 0:
				if !opts.FollowSymlinks {
					continue
				}
				info, err := os.Stat(p)
				if err != nil {
					return fmt.Errorf("resolve symlink %s: %w", p, err)
				}
				if info.IsDir() {
					target, err := filepath.EvalSymlinks(p)
					if err != nil {
						return fmt.Errorf("resolve symlink %s: %w", p, err)
					}
					if _, seen := visited[target]; seen {
						continue
					}
					visited[target] = struct{}{}
					if err := walk(p); err != nil {
						return err
					}
					continue
				}
				if !info.Mode().IsRegular() {
					continue
				}
				if err := consider(p); err != nil {
					return err
				}
			case entry.IsDir():
				if err := walk(p); err != nil {
					return err
				}
			case entry.Type().IsRegular():
				if err := consider(p); err != nil {
					return err
				}
			}
			// Sockets, devices and other non-regular entries are never
			// module candidates.
		}
		return nil
	}

	if err := walk(root); err != nil {
		return nil, err
	}
	return candidates, nil
}
