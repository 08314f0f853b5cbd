// Copyright 2026 The PyScope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamic

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Settings holds the configuration switches this package consumes.
// The zero value disables everything; see DefaultSettings.
type Settings struct {
	// DynamicParams is the master switch for parameter inference.
	DynamicParams bool `toml:"dynamic_params"`

	// DynamicParamsForOtherModules enables directory-wide and
	// configured-path module discovery beyond already-parsed modules.
	DynamicParamsForOtherModules bool `toml:"dynamic_params_for_other_modules"`

	// AdditionalDynamicModules lists extra files always included as
	// discovery candidates.
	AdditionalDynamicModules []string `toml:"additional_dynamic_modules"`

	// DynamicFlowInformation is the master switch for flow narrowing.
	DynamicFlowInformation bool `toml:"dynamic_flow_information"`
}

// DefaultSettings returns the default configuration: both engines and
// cross-module discovery enabled, no extra modules.
func DefaultSettings() Settings {
	return Settings{
		DynamicParams:                true,
		DynamicParamsForOtherModules: true,
		DynamicFlowInformation:       true,
	}
}

// LoadSettings reads settings from a TOML file, applying defaults for
// absent keys. Unrecognized keys are ignored.
func LoadSettings(path string) (Settings, error) {
	cfg := DefaultSettings()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Settings{}, fmt.Errorf("load settings %s: %w", path, err)
	}
	return cfg, nil
}
