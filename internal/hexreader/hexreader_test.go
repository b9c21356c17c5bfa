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

package hexreader

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(s string) ([]byte, error) {
	return io.ReadAll(NewReader(strings.NewReader(s)))
}

func TestReadHexDigits(t *testing.T) {
	test := func(in string, expected []byte) {
		t.Run(in, func(t *testing.T) {
			actual, err := decode(in)
			require.NoError(t, err)
			assert.Equal(t, expected, actual)
		})
	}

	test("00010203", []byte{0, 1, 2, 3})
	test("00   01\n  02 \t \t\t  03 \r\n04", []byte{0, 1, 2, 3, 4})
	test("0x00 0x01 0x02", []byte{0, 1, 2})
	test("0x00,0x01,0x02", []byte{0, 1, 2})
	test("E0 01 00 EA", []byte{0xE0, 0x01, 0x00, 0xEA})
	test("e0,01, 00 ,ea", []byte{0xE0, 0x01, 0x00, 0xEA})
	test("0f0F", []byte{0x0F, 0x0F})
	test("", []byte{})
	test(" \n, ", []byte{})
}

func TestReadHexErrors(t *testing.T) {
	test := func(in, msg string) {
		t.Run(in, func(t *testing.T) {
			_, err := decode(in)
			require.Error(t, err)

			var fe *FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, msg, fe.Msg)
		})
	}

	test("0", "found an odd number of hex digits")
	test("000", "found an odd number of hex digits")
	test("0x", "found an odd number of hex digits")
	test("0 1", "unexpected whitespace when digit expected: ' '")
	test("0x 01", "unexpected whitespace when digit expected: ' '")
	test("0g", "not a valid hexadecimal digit: 'g'")
	test("xx", "not a valid hexadecimal digit: 'x'")
	test("0x0x", "not a valid hexadecimal digit: 'x'")
}

func TestReadSmallBuffer(t *testing.T) {
	r := NewReader(strings.NewReader("0a 0b 0c"))
	p := make([]byte, 2)

	n, err := r.Read(p)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0A, 0x0B}, p[:n])

	n, err = r.Read(p)
	assert.Equal(t, []byte{0x0C}, p[:n])
	assert.Equal(t, io.EOF, err)
}
