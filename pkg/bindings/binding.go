// SPDX-License-Identifier: MPL-2.0

// Package bindings models the external resources a deployed script can
// reference at runtime: key-value namespaces, durable-object classes,
// inline text and data blobs, and compiled wasm modules.
//
// Each resource descriptor is constructed from validated settings and
// exposes exactly one capability, producing its Binding. The shape of a
// Binding belongs to the deployment protocol; this package carries it as
// a pass-through value and never inspects it.
package bindings

// Binding type discriminators, as the deployment API spells them.
const (
	TypeWasmModule    = "wasm_module"
	TypeKVNamespace   = "kv_namespace"
	TypeDurableObject = "durable_object_namespace"
	TypeTextBlob      = "text_blob"
	TypePlainText     = "plain_text"
)

// Binding is a named reference to an external resource in the shape the
// deployment API expects. Which fields are populated depends on Type.
type Binding struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Part        string `json:"part,omitempty"`
	NamespaceID string `json:"namespace_id,omitempty"`
	ClassName   string `json:"class_name,omitempty"`
	ScriptName  string `json:"script_name,omitempty"`
	Text        string `json:"text,omitempty"`
}

// Binder is the single capability every resource descriptor exposes:
// produce the binding the deployed script sees the resource under.
type Binder interface {
	Binding() Binding
}
