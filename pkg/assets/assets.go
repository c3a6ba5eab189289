// SPDX-License-Identifier: MPL-2.0

// Package assets assembles the upload bundle for one deployment: the
// script or module manifest plus every resource binding the deployed
// script references. Bundles come in two forms, the legacy service-worker
// form and the modules form. Both are constructed once from validated
// settings, are read-only afterwards, and are discarded after the
// uploader consumes them.
package assets

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"bindle/pkg/bindings"
	"bindle/pkg/manifest"
)

// ErrEmptyScriptName is returned when no script name can be derived from
// the script path's file stem.
var ErrEmptyScriptName = errors.New("filename should not be empty")

// ServiceWorkerAssets is the legacy script-format bundle: one script plus
// every resource uploaded alongside it as named parts.
type ServiceWorkerAssets struct {
	scriptName string
	scriptPath string

	WasmModules          []bindings.WasmModule
	KVNamespaces         []bindings.KVNamespace
	DurableObjectClasses []bindings.DurableObjectClass
	TextBlobs            []bindings.TextBlob
	PlainTexts           []bindings.PlainText
}

// NewServiceWorkerAssets derives the script name from scriptPath's file
// stem and assembles the bundle. Construction fails only when the stem is
// empty.
func NewServiceWorkerAssets(
	scriptPath string,
	wasmModules []bindings.WasmModule,
	kvNamespaces []bindings.KVNamespace,
	durableObjectClasses []bindings.DurableObjectClass,
	textBlobs []bindings.TextBlob,
	plainTexts []bindings.PlainText,
) (*ServiceWorkerAssets, error) {
	stem := FileStem(scriptPath)
	if stem == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmptyScriptName, scriptPath)
	}

	return &ServiceWorkerAssets{
		scriptName:           stem,
		scriptPath:           scriptPath,
		WasmModules:          wasmModules,
		KVNamespaces:         kvNamespaces,
		DurableObjectClasses: durableObjectClasses,
		TextBlobs:            textBlobs,
		PlainTexts:           plainTexts,
	}, nil
}

// Bindings produces every binding in the bundle: wasm modules first, then
// KV namespaces, durable-object classes, text blobs, and plain texts.
func (a *ServiceWorkerAssets) Bindings() []bindings.Binding {
	out := make([]bindings.Binding, 0,
		len(a.WasmModules)+len(a.KVNamespaces)+len(a.DurableObjectClasses)+
			len(a.TextBlobs)+len(a.PlainTexts))

	for _, wm := range a.WasmModules {
		out = append(out, wm.Binding())
	}
	for _, kv := range a.KVNamespaces {
		out = append(out, kv.Binding())
	}
	for _, class := range a.DurableObjectClasses {
		out = append(out, class.Binding())
	}
	for _, blob := range a.TextBlobs {
		out = append(out, blob.Binding())
	}
	for _, text := range a.PlainTexts {
		out = append(out, text.Binding())
	}

	return out
}

// ScriptName returns the script name derived from the script path.
func (a *ServiceWorkerAssets) ScriptName() string { return a.scriptName }

// ScriptPath returns the file-system location of the script.
func (a *ServiceWorkerAssets) ScriptPath() string { return a.scriptPath }

// ModulesAssets is the modules-format bundle: a classified module
// manifest anchored at a main module, plus the resources the script
// references.
type ModulesAssets struct {
	MainModule           string
	Modules              []manifest.Module
	KVNamespaces         []bindings.KVNamespace
	DurableObjectClasses []bindings.DurableObjectClass
	Migration            *bindings.Migration
	PlainTexts           []bindings.PlainText
}

// NewModulesAssets assembles a modules-format bundle. Construction never
// fails; the manifest and descriptors arrive already validated.
func NewModulesAssets(
	mainModule string,
	modules []manifest.Module,
	kvNamespaces []bindings.KVNamespace,
	durableObjectClasses []bindings.DurableObjectClass,
	migration *bindings.Migration,
	plainTexts []bindings.PlainText,
) *ModulesAssets {
	return &ModulesAssets{
		MainModule:           mainModule,
		Modules:              modules,
		KVNamespaces:         kvNamespaces,
		DurableObjectClasses: durableObjectClasses,
		Migration:            migration,
		PlainTexts:           plainTexts,
	}
}

// Bindings produces every binding in the bundle: KV namespaces, then
// durable-object classes, then plain texts. Bindings that referenced a
// part of the uploaded script in the service-worker format are modules
// now and are not re-emitted here.
func (a *ModulesAssets) Bindings() []bindings.Binding {
	out := make([]bindings.Binding, 0,
		len(a.KVNamespaces)+len(a.DurableObjectClasses)+len(a.PlainTexts))

	for _, kv := range a.KVNamespaces {
		out = append(out, kv.Binding())
	}
	for _, class := range a.DurableObjectClasses {
		out = append(out, class.Binding())
	}
	for _, text := range a.PlainTexts {
		out = append(out, text.Binding())
	}

	return out
}

// FileStem returns the base name of path without its final extension.
// Dotfiles keep their full name. An empty result means no stem could be
// derived (empty path, root, or a bare separator).
func FileStem(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		// ".env" and friends: the whole name is the "extension".
		stem = base
	}
	if stem == "." || stem == string(filepath.Separator) || stem == "/" {
		return ""
	}
	return stem
}
