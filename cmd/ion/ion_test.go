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

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/amazon-ion/ion-inspect/internal/config"
	"github.com/amazon-ion/ion-inspect/internal/hexreader"
	"github.com/amazon-ion/ion-inspect/internal/input"
	"github.com/amazon-ion/ion-inspect/internal/inspect"
	"github.com/amazon-ion/ion-inspect/ion"
	"github.com/scott-cotton/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseByteCount(t *testing.T) {
	n, err := parseByteCount("--skip-bytes", "128")
	require.NoError(t, err)
	assert.Equal(t, 128, n)

	n, err = parseByteCount("--limit-bytes", "0")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	for _, v := range []string{"-1", "ten", "", "1.5"} {
		_, err := parseByteCount("--skip-bytes", v)
		require.Error(t, err, v)
		assert.ErrorIs(t, err, cli.ErrUsage)
		assert.Contains(t, err.Error(), fmt.Sprintf("Invalid value for '--skip-bytes': '%s'", v))
	}
}

func intp(n int) *int       { return &n }
func strp(s string) *string { return &s }

func TestSettings(t *testing.T) {
	t.Setenv(config.EnvVar, "")

	cfg := &InspectConfig{MainConfig: &MainConfig{}}
	settings, err := cfg.settings()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), settings)

	path := filepath.Join(t.TempDir(), "inspect.yaml")
	require.NoError(t, os.WriteFile(path, []byte("skip-bytes: 8\nlimit-bytes: 16\ncolor: always\n"), 0644))

	cfg.ConfigPath = strp(path)
	settings, err = cfg.settings()
	require.NoError(t, err)
	assert.Equal(t, 8, settings.SkipBytes)
	assert.Equal(t, 16, settings.LimitBytes)
	assert.Equal(t, "always", settings.Color)

	never := inspect.ColorNever
	cfg.SkipBytes = intp(2)
	cfg.HideExpansion = true
	cfg.Color = &never
	settings, err = cfg.settings()
	require.NoError(t, err)
	assert.Equal(t, inspect.Config{BytesToSkip: 2, LimitBytes: 16, HideExpansion: true}, settings.Inspect())
	assert.Equal(t, "never", settings.Color)

	cfg.LogLevel = strp("loud")
	_, err = cfg.settings()
	assert.ErrorIs(t, err, cli.ErrUsage)
}

func TestInspectInput(t *testing.T) {
	in, err := input.FromHexString("0xe0, 0x01, 0x00, 0xea, 0x21, 0x01")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, inspectInput(inspect.NewPlainOutput(&buf), in, inspect.Config{}))

	table := buf.String()
	assert.Contains(t, table, "$ion_1_0 // Version marker")
	assert.Contains(t, table, "│            4 │            2 │ 21 01                   │ 1\n")
	assert.Contains(t, table, "// End of stream")
}

func TestInspectInputTextIsRejected(t *testing.T) {
	in, err := input.FromBytes("doc.ion", []byte("{a: 1}"))
	require.NoError(t, err)

	var buf bytes.Buffer
	err = inspectInput(inspect.NewPlainOutput(&buf), in, inspect.Config{})
	var uee *ion.UnsupportedEncodingError
	assert.ErrorAs(t, err, &uee)
	assert.Contains(t, err.Error(), "doc.ion")
}

func TestIgnoreBrokenPipe(t *testing.T) {
	assert.NoError(t, ignoreBrokenPipe(nil))
	assert.NoError(t, ignoreBrokenPipe(fmt.Errorf("input: x: %w", &os.PathError{Op: "write", Path: "/dev/stdout", Err: syscall.EPIPE})))

	other := errors.New("boom")
	assert.Equal(t, other, ignoreBrokenPipe(other))
}

func TestWriteVersion(t *testing.T) {
	defer func(c, b string) { gitCommit, buildTime = c, b }(gitCommit, buildTime)

	gitCommit = "abc123"
	buildTime = "2024-05-01T10:20:30Z"

	var buf bytes.Buffer
	require.NoError(t, writeVersion(&buf))
	assert.Equal(t, "{version: \"abc123\", build_time: 2024-05-01T10:20:30Z}\n", buf.String())

	buildTime = ""
	buf.Reset()
	require.NoError(t, writeVersion(&buf))
	assert.True(t, strings.HasSuffix(buf.String(), "build_time: \"unknown-buildtime\"}\n"))
}

func TestInspectHexVersionMarker(t *testing.T) {
	for _, hex := range []string{"E0 01 00 EA", "  e0 01\n00 ea\t", "0xE0,0x01,0x00,0xEA"} {
		in, err := input.FromHexString(hex)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, inspectInput(inspect.NewPlainOutput(&buf), in, inspect.Config{}))

		lines := strings.Split(buf.String(), "\n")
		require.Len(t, lines, 7, hex)
		assert.Equal(t, "│            0 │            4 │ e0 01 00 ea             │ $ion_1_0 // Version marker", lines[3])
		assert.Equal(t, "│            4 │              │                         │ // End of stream", lines[4])
	}
}

func openFrom(inputs map[string][]byte, opened *[]string) func(string) (*input.Input, error) {
	return func(name string) (*input.Input, error) {
		*opened = append(*opened, name)
		data, ok := inputs[name]
		if !ok {
			return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrNotExist}
		}
		return input.FromBytes(name, data)
	}
}

func TestInspectAllContinuesPastBadInputs(t *testing.T) {
	inputs := map[string][]byte{
		"a.ion": []byte("{a: 1}"),
		"b.10n": {0xE0, 0x01, 0x00, 0xEA, 0x21, 0x01},
	}
	var opened []string

	var buf bytes.Buffer
	err := inspectAll(inspect.NewPlainOutput(&buf), []string{"a.ion", "missing.10n", "b.10n"}, openFrom(inputs, &opened), inspect.Config{})
	require.Error(t, err)
	assert.Equal(t, []string{"a.ion", "missing.10n", "b.10n"}, opened)

	var uee *ion.UnsupportedEncodingError
	assert.ErrorAs(t, err, &uee)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "a.ion")
	assert.Contains(t, err.Error(), "missing.10n")
	assert.NotContains(t, err.Error(), "b.10n")

	assert.Contains(t, buf.String(), "│            4 │            2 │ 21 01                   │ 1\n")
}

type failingWriter struct {
	err error
}

func (w failingWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func TestInspectAllStopsOnOutputErrors(t *testing.T) {
	inputs := map[string][]byte{
		"a.10n": {0xE0, 0x01, 0x00, 0xEA, 0x21, 0x01},
		"b.10n": {0xE0, 0x01, 0x00, 0xEA, 0x21, 0x02},
	}

	var opened []string
	boom := errors.New("disk full")
	err := inspectAll(inspect.NewPlainOutput(failingWriter{boom}), []string{"a.10n", "b.10n"}, openFrom(inputs, &opened), inspect.Config{})
	assert.Equal(t, boom, err)
	assert.Equal(t, []string{"a.10n"}, opened)

	opened = nil
	epipe := &os.PathError{Op: "write", Path: "/dev/stdout", Err: syscall.EPIPE}
	err = inspectAll(inspect.NewPlainOutput(failingWriter{epipe}), []string{"a.10n", "b.10n"}, openFrom(inputs, &opened), inspect.Config{})
	assert.NoError(t, err)
	assert.Equal(t, []string{"a.10n"}, opened)
}

func TestInspectInputNamesReadErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "odd.hex")
	require.NoError(t, os.WriteFile(path, []byte("e0 01 00 e"), 0644))

	in, err := input.Open(path, input.Options{Hex: true})
	require.NoError(t, err)
	defer in.Close()

	var buf bytes.Buffer
	err = inspectInput(inspect.NewPlainOutput(&buf), in, inspect.Config{})
	var fe *hexreader.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, err.Error(), "input: "+path+": ")
}

func TestInspectAcceptsOutputOption(t *testing.T) {
	for _, flag := range []string{"-o", "--output"} {
		path := filepath.Join(t.TempDir(), "table.txt")

		cc := &cli.Context{}
		cmd := MainCommand().FindSub(cc, "inspect")
		require.NotNil(t, cmd)

		args, err := cmd.Parse(cc, []string{flag, path, "x.10n"})
		require.NoError(t, err, flag)
		assert.Equal(t, []string{"x.10n"}, args)

		require.NotNil(t, cc.Out)
		require.NoError(t, cc.Out.Close())
		assert.FileExists(t, path)
	}
}
