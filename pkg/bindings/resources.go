// SPDX-License-Identifier: MPL-2.0

package bindings

// KVNamespace exposes a key-value storage namespace to the script under
// Name.
type KVNamespace struct {
	Name string `mapstructure:"binding" toml:"binding" json:"binding"`
	ID   string `mapstructure:"id" toml:"id" json:"id"`
}

// Binding implements Binder.
func (kv KVNamespace) Binding() Binding {
	return Binding{Type: TypeKVNamespace, Name: kv.Name, NamespaceID: kv.ID}
}

// DurableObjectClass exposes a durable-object class to the script under
// Name. ScriptName is set when the class is implemented by a different
// deployed script.
type DurableObjectClass struct {
	Name       string `mapstructure:"binding" toml:"binding" json:"binding"`
	ClassName  string `mapstructure:"class_name" toml:"class_name" json:"class_name"`
	ScriptName string `mapstructure:"script_name" toml:"script_name,omitempty" json:"script_name,omitempty"`
}

// Binding implements Binder.
func (c DurableObjectClass) Binding() Binding {
	return Binding{Type: TypeDurableObject, Name: c.Name, ClassName: c.ClassName, ScriptName: c.ScriptName}
}

// TextBlob exposes the contents of a file as an inline text part. The
// part is uploaded under the binding name.
type TextBlob struct {
	Name string `mapstructure:"name" toml:"name" json:"name"`
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// Binding implements Binder.
func (b TextBlob) Binding() Binding {
	return Binding{Type: TypeTextBlob, Name: b.Name, Part: b.Name}
}

// PlainText exposes a literal string value to the script.
type PlainText struct {
	Name  string `mapstructure:"name" toml:"name" json:"name"`
	Value string `mapstructure:"value" toml:"value" json:"value"`
}

// Binding implements Binder.
func (t PlainText) Binding() Binding {
	return Binding{Type: TypePlainText, Name: t.Name, Text: t.Value}
}

// WasmModule exposes a compiled WebAssembly module uploaded as a separate
// part under the binding name. Only meaningful in the legacy script
// format; in the modules format wasm files are modules in their own right.
type WasmModule struct {
	Name string `mapstructure:"name" toml:"name" json:"name"`
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// Binding implements Binder.
func (w WasmModule) Binding() Binding {
	return Binding{Type: TypeWasmModule, Name: w.Name, Part: w.Name}
}
