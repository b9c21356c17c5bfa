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

package input

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amazon-ion/ion-inspect/internal/hexreader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ivm = []byte{0xE0, 0x01, 0x00, 0xEA}

func gzipped(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func readAll(t *testing.T, in *Input) []byte {
	t.Helper()
	data, err := io.ReadAll(in)
	require.NoError(t, err)
	require.NoError(t, in.Close())
	return data
}

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.10n")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestOpenFile(t *testing.T) {
	path := writeFile(t, ivm)

	in, err := Open(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, path, in.Name())
	assert.Equal(t, NoCompression, in.Compression())
	assert.Equal(t, ivm, readAll(t, in))
}

func TestOpenGzippedFile(t *testing.T) {
	path := writeFile(t, gzipped(t, ivm))

	in, err := Open(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, Gzip, in.Compression())
	assert.Equal(t, ivm, readAll(t, in))
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"), Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenStdin(t *testing.T) {
	in, err := Open(Stdin, Options{Stdin: bytes.NewReader(ivm)})
	require.NoError(t, err)
	assert.Equal(t, "-", in.Name())
	assert.Equal(t, ivm, readAll(t, in))
}

func TestOpenHex(t *testing.T) {
	path := writeFile(t, []byte("0xE0 0x01 0x00 0xEA\n"))

	in, err := Open(path, Options{Hex: true})
	require.NoError(t, err)
	assert.Equal(t, ivm, readAll(t, in))
}

func TestHexString(t *testing.T) {
	in, err := FromHexString("e0 01 00 ea 21 01")
	require.NoError(t, err)
	assert.Equal(t, HexStringName, in.Name())
	assert.Equal(t, append(append([]byte{}, ivm...), 0x21, 0x01), readAll(t, in))

	// Hex that spells out a gzip stream is decompressed.
	var sb strings.Builder
	for _, b := range gzipped(t, ivm) {
		sb.WriteString(hexByte(b))
		sb.WriteByte(' ')
	}
	in, err = FromHexString(sb.String())
	require.NoError(t, err)
	assert.Equal(t, Gzip, in.Compression())
	assert.Equal(t, ivm, readAll(t, in))
}

func TestHexStringErrors(t *testing.T) {
	in, err := FromHexString("e0 01 00 e")
	if err == nil {
		_, err = io.ReadAll(in)
	}
	var fe *hexreader.FormatError
	assert.ErrorAs(t, err, &fe)
}

func TestEmptyInput(t *testing.T) {
	in, err := FromBytes("empty", nil)
	require.NoError(t, err)
	assert.Empty(t, readAll(t, in))
}

func hexByte(b byte) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[b>>4], digits[b&0x0F]})
}
