// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates the project settings file
// (bindle.toml): the module classification globs, the resource descriptor
// lists, and the optional storage-migration directive.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// ConfigFileName is the settings file looked up in the working directory
// when no explicit path is given.
const ConfigFileName = "bindle.toml"

// Load reads the settings file at path, falling back to ConfigFileName in
// the working directory when path is empty, and returns the validated
// configuration.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	defaults := DefaultConfig()
	v.SetDefault("format", string(defaults.Format))
	v.SetDefault("upload_dir", defaults.UploadDir)

	if path == "" {
		path = ConfigFileName
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read settings file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse settings file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}

	return &cfg, nil
}
