/*
 * Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License").
 * You may not use this file except in compliance with the License.
 * A copy of the License is located at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * or in the "license" file accompanying this file. This file is distributed
 * on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
 * express or implied. See the License for the specific language governing
 * permissions and limitations under the License.
 */

// Package config loads the optional YAML file that supplies defaults for
// the inspect command.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/amazon-ion/ion-inspect/internal/inspect"
	"github.com/goccy/go-yaml"
	"github.com/sirupsen/logrus"
)

// EnvVar names the environment variable holding the path of the config
// file used when none is given explicitly.
const EnvVar = "ION_INSPECT_CONFIG"

// Config holds the settings a config file can provide.
type Config struct {
	SkipBytes     int    `yaml:"skip-bytes"`
	LimitBytes    int    `yaml:"limit-bytes"`
	HideExpansion bool   `yaml:"hide-expansion"`
	Color         string `yaml:"color"`
	LogLevel      string `yaml:"log-level"`
}

// Default returns the settings used when there is no config file.
func Default() Config {
	return Config{
		Color:    inspect.ColorAuto.String(),
		LogLevel: logrus.WarnLevel.String(),
	}
}

// Load reads the config file at path. With an empty path it reads the file
// named by $ION_INSPECT_CONFIG, if that is set, and otherwise returns the
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses YAML config. Settings it omits keep their defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every setting has a usable value.
func (c Config) Validate() error {
	if c.SkipBytes < 0 {
		return errors.New("skip-bytes must not be negative")
	}
	if c.LimitBytes < 0 {
		return errors.New("limit-bytes must not be negative")
	}
	if _, err := c.ColorMode(); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ColorMode returns the configured color mode.
func (c Config) ColorMode() (inspect.ColorMode, error) {
	return inspect.ParseColorMode(c.Color)
}

// Inspect returns the inspector settings.
func (c Config) Inspect() inspect.Config {
	return inspect.Config{
		BytesToSkip:   c.SkipBytes,
		LimitBytes:    c.LimitBytes,
		HideExpansion: c.HideExpansion,
	}
}

// NewLogger returns a logger writing to w at the configured level.
func (c Config) NewLogger(w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	return l, nil
}
