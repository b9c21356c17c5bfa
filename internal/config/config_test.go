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

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/amazon-ion/ion-inspect/internal/inspect"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
skip-bytes: 16
limit-bytes: 64
hide-expansion: true
color: never
log-level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, Config{
		SkipBytes:     16,
		LimitBytes:    64,
		HideExpansion: true,
		Color:         "never",
		LogLevel:      "debug",
	}, cfg)
	assert.Equal(t, inspect.Config{BytesToSkip: 16, LimitBytes: 64, HideExpansion: true}, cfg.Inspect())

	mode, err := cfg.ColorMode()
	require.NoError(t, err)
	assert.Equal(t, inspect.ColorNever, mode)
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("limit-bytes: 10\n"))
	require.NoError(t, err)

	expected := Default()
	expected.LimitBytes = 10
	assert.Equal(t, expected, cfg)
}

func TestParseInvalid(t *testing.T) {
	test := func(name, yml string) {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(yml))
			assert.Error(t, err)
		})
	}

	test("negative skip", "skip-bytes: -1\n")
	test("negative limit", "limit-bytes: -1\n")
	test("color", "color: sometimes\n")
	test("log level", "log-level: loud\n")
	test("syntax", "skip-bytes: [1\n")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inspect.yaml")
	require.NoError(t, os.WriteFile(path, []byte("skip-bytes: 4\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.SkipBytes)

	t.Setenv(EnvVar, path)
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.SkipBytes)

	t.Setenv(EnvVar, "")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.LogLevel = "info"

	l, err := cfg.NewLogger(&buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())

	l.Debug("hidden")
	l.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
