// SPDX-License-Identifier: MPL-2.0

package manifest

import "testing"

func TestContentType(t *testing.T) {
	tests := []struct {
		moduleType ModuleType
		expected   string
	}{
		{ESModule, "application/javascript+module"},
		{CommonJS, "application/javascript"},
		{CompiledWasm, "application/wasm"},
		{Text, "text/plain"},
		{Data, "application/octet-stream"},
	}

	for _, tt := range tests {
		if got := tt.moduleType.ContentType(); got != tt.expected {
			t.Errorf("ContentType(%s) = %q, want %q", tt.moduleType, got, tt.expected)
		}
	}
}

func TestParseModuleTypeRoundTrip(t *testing.T) {
	for _, mt := range []ModuleType{ESModule, CommonJS, CompiledWasm, Text, Data} {
		parsed, err := ParseModuleType(mt.String())
		if err != nil {
			t.Fatalf("ParseModuleType(%q): %v", mt.String(), err)
		}
		if parsed != mt {
			t.Errorf("ParseModuleType(%q) = %s, want %s", mt.String(), parsed, mt)
		}
	}

	if _, err := ParseModuleType("jsx"); err == nil {
		t.Error("expected an error for an unknown key")
	}
}
