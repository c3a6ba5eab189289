// SPDX-License-Identifier: MPL-2.0

// Package manifest classifies a tree of build-output files into typed
// modules for upload to the deployment API.
//
// Classification is glob-driven: each module type owns an ordered list of
// patterns (see [TypeGlobs]), compiled into one matcher per type plus a
// combined matcher used to shortlist walk candidates. Every candidate file
// resolves to exactly zero or one module type; a file matched by more than
// one type's patterns fails the whole build. The resulting manifest is a
// set keyed by canonical module name, with no defined order.
package manifest

import (
	"encoding/json"
	"fmt"
)

// ModuleType identifies the upload format of a single module. The zero
// value is ESModule; declaration order is the order matchers are evaluated
// in and the order used for deterministic sorting.
type ModuleType int

const (
	// ESModule is an ECMAScript module.
	ESModule ModuleType = iota
	// CommonJS is a CommonJS script.
	CommonJS
	// CompiledWasm is a compiled WebAssembly module.
	CompiledWasm
	// Text is an arbitrary text file exposed to the script as a string.
	Text
	// Data is an arbitrary binary file exposed to the script as raw bytes.
	Data
)

// ContentType returns the content type declared for modules of this type
// in the upload metadata. It is presentation metadata only and plays no
// part in classification.
func (t ModuleType) ContentType() string {
	switch t {
	case ESModule:
		return "application/javascript+module"
	case CommonJS:
		return "application/javascript"
	case CompiledWasm:
		return "application/wasm"
	case Text:
		return "text/plain"
	case Data:
		return "application/octet-stream"
	}
	return ""
}

// String returns the settings-file key for the module type ("esm", "cjs",
// "compiled_wasm", "text" or "data").
func (t ModuleType) String() string {
	switch t {
	case ESModule:
		return "esm"
	case CommonJS:
		return "cjs"
	case CompiledWasm:
		return "compiled_wasm"
	case Text:
		return "text"
	case Data:
		return "data"
	}
	return fmt.Sprintf("ModuleType(%d)", int(t))
}

// MarshalJSON encodes the module type as its settings-file key.
func (t ModuleType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a settings-file key into a module type.
func (t *ModuleType) UnmarshalJSON(data []byte) error {
	var key string
	if err := json.Unmarshal(data, &key); err != nil {
		return err
	}
	parsed, err := ParseModuleType(key)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseModuleType maps a settings-file key back to its module type.
func ParseModuleType(key string) (ModuleType, error) {
	switch key {
	case "esm":
		return ESModule, nil
	case "cjs":
		return CommonJS, nil
	case "compiled_wasm":
		return CompiledWasm, nil
	case "text":
		return Text, nil
	case "data":
		return Data, nil
	}
	return 0, fmt.Errorf("unknown module type %q", key)
}
