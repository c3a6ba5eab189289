// SPDX-License-Identifier: MPL-2.0

package bindings

// Migration describes how durable-object class storage is transformed
// between two deployments. It is carried opaquely alongside the bindings;
// interpretation belongs to the deployment API.
type Migration struct {
	OldTag             string             `mapstructure:"old_tag" toml:"old_tag,omitempty" json:"old_tag,omitempty"`
	NewTag             string             `mapstructure:"new_tag" toml:"new_tag,omitempty" json:"new_tag,omitempty"`
	NewClasses         []string           `mapstructure:"new_classes" toml:"new_classes,omitempty" json:"new_classes,omitempty"`
	DeletedClasses     []string           `mapstructure:"deleted_classes" toml:"deleted_classes,omitempty" json:"deleted_classes,omitempty"`
	RenamedClasses     []RenamedClass     `mapstructure:"renamed_classes" toml:"renamed_classes,omitempty" json:"renamed_classes,omitempty"`
	TransferredClasses []TransferredClass `mapstructure:"transferred_classes" toml:"transferred_classes,omitempty" json:"transferred_classes,omitempty"`
}

// RenamedClass renames a durable-object class within the same script.
type RenamedClass struct {
	From string `mapstructure:"from" toml:"from" json:"from"`
	To   string `mapstructure:"to" toml:"to" json:"to"`
}

// TransferredClass moves a durable-object class's storage from another
// script.
type TransferredClass struct {
	FromScript string `mapstructure:"from_script" toml:"from_script" json:"from_script"`
	From       string `mapstructure:"from" toml:"from" json:"from"`
	To         string `mapstructure:"to" toml:"to" json:"to"`
}
