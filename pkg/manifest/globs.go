// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// TypeGlobs configures which files are classified as which module type.
// Each field is an ordered list of doublestar glob patterns; a nil list
// falls back to the type's built-in defaults (CompiledWasm has none and
// matches nothing unless configured), while an explicitly empty list
// disables the type entirely.
//
// Two rules refine plain doublestar matching:
//   - a pattern without a path separator matches against the file's base
//     name, a pattern containing "/" matches against the full
//     forward-slash path relative to the upload root;
//   - a pattern prefixed with "!" is an exclusion: a file is selected by a
//     type iff at least one positive pattern matches and no exclusion does.
type TypeGlobs struct {
	ESM          []string `mapstructure:"esm" toml:"esm,omitempty" json:"esm,omitempty"`
	CJS          []string `mapstructure:"cjs" toml:"cjs,omitempty" json:"cjs,omitempty"`
	Text         []string `mapstructure:"text" toml:"text,omitempty" json:"text,omitempty"`
	Data         []string `mapstructure:"data" toml:"data,omitempty" json:"data,omitempty"`
	CompiledWasm []string `mapstructure:"compiled_wasm" toml:"compiled_wasm,omitempty" json:"compiled_wasm,omitempty"`
}

// typeGlobTable drives the matcher build: one row per module type, in
// declaration order, with the default patterns used when no list is
// configured.
var typeGlobTable = []struct {
	moduleType ModuleType
	defaults   []string
}{
	{ESModule, []string{"*.mjs"}},
	{CommonJS, []string{"*.js", "*.cjs"}},
	{CompiledWasm, nil}, // no default for the non-standard wasm module type
	{Text, []string{"*.txt"}},
	{Data, []string{"*.bin"}}, // provisional default, see DefaultGlobs
}

// DefaultGlobs returns a copy of the built-in pattern list used for t when
// no explicit list is configured. The Data default (*.bin) in particular
// is policy rather than contract; callers that disagree with it should
// configure the list explicitly.
func DefaultGlobs(t ModuleType) []string {
	for _, row := range typeGlobTable {
		if row.moduleType == t {
			out := make([]string, len(row.defaults))
			copy(out, row.defaults)
			return out
		}
	}
	return nil
}

// globsFor returns the configured pattern list for t, or nil when unset.
func (g TypeGlobs) globsFor(t ModuleType) []string {
	switch t {
	case ESModule:
		return g.ESM
	case CommonJS:
		return g.CJS
	case CompiledWasm:
		return g.CompiledWasm
	case Text:
		return g.Text
	case Data:
		return g.Data
	}
	return nil
}

// GlobError reports a glob pattern that failed to parse. Glob is empty
// when no single offending pattern could be identified.
type GlobError struct {
	Glob string
	Err  error
}

func (e *GlobError) Error() string {
	if e.Glob != "" {
		return fmt.Sprintf("encountered error while parsing the glob %q: %v", e.Glob, e.Err)
	}
	return fmt.Sprintf("encountered error while parsing globs: %v", e.Err)
}

func (e *GlobError) Unwrap() error { return e.Err }

// TypeMatcher classifies candidate paths as a single module type. Matchers
// are immutable once built and safe to reuse across classification runs.
type TypeMatcher struct {
	moduleType ModuleType
	includes   []string
	excludes   []string
}

// ModuleType returns the type this matcher classifies files as.
func (m *TypeMatcher) ModuleType() ModuleType { return m.moduleType }

// Whitelisted reports whether rel, a forward-slash path relative to the
// upload root, is selected by this matcher: at least one positive pattern
// matches and no exclusion pattern overrides it.
func (m *TypeMatcher) Whitelisted(rel string) bool {
	if !matchAny(m.includes, rel) {
		return false
	}
	return !matchAny(m.excludes, rel)
}

// CombinedMatcher shortlists walk candidates. It selects a path matched by
// any registered positive pattern across all types and must never be used
// for classification: exclusions are not consulted here, because a false
// positive only costs a classification pass that yields zero matches.
type CombinedMatcher struct {
	includes []string
}

// Matches reports whether rel is matched by any registered pattern.
func (m *CombinedMatcher) Matches(rel string) bool {
	return matchAny(m.includes, rel)
}

// matchAny reports whether rel matches any of the given patterns. All
// patterns have been validated at build time, so match errors cannot occur
// and a failed match is treated as no match.
func matchAny(patterns []string, rel string) bool {
	for _, pat := range patterns {
		target := rel
		if !strings.Contains(pat, "/") {
			target = path.Base(rel)
		}
		if ok, err := doublestar.Match(pat, target); err == nil && ok {
			return true
		}
	}
	return false
}

// BuildTypeMatchers compiles the configuration into one combined matcher
// used to enumerate candidate files and one matcher per module type, in
// declaration order, used to classify them. Every pattern is validated
// eagerly: an invalid pattern fails the whole build with a *GlobError
// naming the offending glob.
func (g TypeGlobs) BuildTypeMatchers() (*CombinedMatcher, []*TypeMatcher, error) {
	combined := &CombinedMatcher{}
	matchers := make([]*TypeMatcher, 0, len(typeGlobTable))

	for _, row := range typeGlobTable {
		globs := g.globsFor(row.moduleType)
		if globs == nil {
			globs = row.defaults
		}

		m := &TypeMatcher{moduleType: row.moduleType}
		for _, glob := range globs {
			pat, exclude := strings.CutPrefix(glob, "!")
			if pat == "" || !doublestar.ValidatePattern(pat) {
				return nil, nil, &GlobError{Glob: glob, Err: doublestar.ErrBadPattern}
			}
			if exclude {
				m.excludes = append(m.excludes, pat)
			} else {
				m.includes = append(m.includes, pat)
				combined.includes = append(combined.includes, pat)
			}
		}
		matchers = append(matchers, m)
	}

	return combined, matchers, nil
}
