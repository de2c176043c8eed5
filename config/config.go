// Copyright 2026 the DICOM-viewer authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration loading for the viewer. It handles
// loading configuration from YAML files and provides default values,
// including the common radiology window presets.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/utevo/DICOM-viewer/imaging"
)

// Preset is a named window/level preset selectable from the command line.
type Preset struct {
	// Name identifies the preset, e.g. "bone"
	Name string `yaml:"name"`

	// Center is the window center value
	Center float64 `yaml:"center"`

	// Width is the window width value
	Width float64 `yaml:"width"`

	// Function is the DICOM VOI LUT Function defined term; empty means LINEAR
	Function string `yaml:"function"`
}

// Module converts the preset into a resolved windowing configuration.
func (p Preset) Module() imaging.VOILUTModule {
	return imaging.VOILUTModule{
		Window:   imaging.Window{Center: p.Center, Width: p.Width},
		Function: imaging.ParseVOIFunction(p.Function),
	}
}

// Config represents the viewer configuration loaded from YAML.
type Config struct {
	// Viewer parameters
	Viewer struct {
		// Output is the default path for exported images
		Output string `yaml:"output"`

		// AutoWindowLow and AutoWindowHigh bound the quantile range used by
		// auto-windowing
		AutoWindowLow  float64 `yaml:"autoWindowLow"`
		AutoWindowHigh float64 `yaml:"autoWindowHigh"`
	} `yaml:"viewer"`

	// Logging parameters
	Logging struct {
		// Level is the zerolog level name, e.g. "debug", "info", "warn"
		Level string `yaml:"level"`
	} `yaml:"logging"`

	// Presets are the selectable window presets
	Presets []Preset `yaml:"presets"`
}

// DefaultConfig returns a configuration with default values, including the
// usual CT viewing presets.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Viewer.Output = "out.png"
	cfg.Viewer.AutoWindowLow = 0.01
	cfg.Viewer.AutoWindowHigh = 0.99
	cfg.Logging.Level = "info"
	cfg.Presets = []Preset{
		{Name: "soft-tissue", Center: 40, Width: 400},
		{Name: "bone", Center: 400, Width: 2000},
		{Name: "lung", Center: -600, Width: 1500},
		{Name: "brain", Center: 50, Width: 350},
	}
	return cfg
}

// LoadConfig loads the configuration from a YAML file, applying the loaded
// values over the defaults. An empty path returns the defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Preset returns the named preset, if configured.
func (c *Config) Preset(name string) (Preset, bool) {
	for _, p := range c.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
