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

package ion

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ivm10 = []byte{0xE0, 0x01, 0x00, 0xEA}

// readFirstValue reads the first value following a 1.0 version marker.
func readFirstValue(t *testing.T, body ...byte) *Value {
	t.Helper()
	data := append(append([]byte{}, ivm10...), body...)

	r := NewReaderBytes(data)
	item, err := r.NextItem()
	require.NoError(t, err)
	require.Equal(t, VersionMarkerItem, item.Kind)

	item, err = r.NextItem()
	require.NoError(t, err)
	require.Equal(t, ValueItem, item.Kind, "item is a %v", item.Kind)
	return item.Value
}

func readValueError(t *testing.T, body ...byte) error {
	t.Helper()
	data := append(append([]byte{}, ivm10...), body...)

	r := NewReaderBytes(data)
	_, err := r.NextItem()
	require.NoError(t, err)

	_, err = r.NextItem()
	require.Error(t, err)
	return err
}

func TestDecodeNullsAndBools(t *testing.T) {
	v := readFirstValue(t, 0x0F)
	assert.Equal(t, NullType, v.Type())
	assert.True(t, v.IsNull())

	v = readFirstValue(t, 0x1F)
	assert.Equal(t, BoolType, v.Type())
	assert.True(t, v.IsNull())
	_, err := v.BoolValue()
	assert.Error(t, err)

	v = readFirstValue(t, 0x10)
	b, err := v.BoolValue()
	require.NoError(t, err)
	assert.False(t, b)

	v = readFirstValue(t, 0x11)
	b, err = v.BoolValue()
	require.NoError(t, err)
	assert.True(t, b)

	err = readValueError(t, 0x12)
	assert.IsType(t, &InvalidTagByteError{}, err)
}

func TestDecodeInts(t *testing.T) {
	test := func(bs []byte, expected int64) {
		v := readFirstValue(t, bs...)
		n, err := v.IntValue()
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(expected), n)
	}

	test([]byte{0x20}, 0)
	test([]byte{0x21, 0x01}, 1)
	test([]byte{0x31, 0x01}, -1)
	test([]byte{0x22, 0x01, 0x00}, 256)
	test([]byte{0x2E, 0x81, 0xFF}, 255)

	err := readValueError(t, 0x30)
	require.IsType(t, &SyntaxError{}, err)
	assert.Contains(t, err.Error(), "negative zero")
}

func TestDecodeFloats(t *testing.T) {
	v := readFirstValue(t, 0x40)
	f, err := v.FloatValue()
	require.NoError(t, err)
	assert.Equal(t, 0.0, f)

	v = readFirstValue(t, 0x44, 0x3F, 0x80, 0x00, 0x00)
	f, err = v.FloatValue()
	require.NoError(t, err)
	assert.Equal(t, 1.0, f)

	v = readFirstValue(t, 0x48, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00)
	f, err = v.FloatValue()
	require.NoError(t, err)
	assert.Equal(t, 2.0, f)

	err = readValueError(t, 0x42, 0x00, 0x00)
	assert.IsType(t, &SyntaxError{}, err)
}

func TestDecodeDecimals(t *testing.T) {
	test := func(bs []byte, expected string) {
		t.Run(expected, func(t *testing.T) {
			v := readFirstValue(t, bs...)
			d, err := v.DecimalValue()
			require.NoError(t, err)
			assert.Equal(t, expected, d.String())
		})
	}

	test([]byte{0x50}, "0.")
	test([]byte{0x51, 0x80}, "0.")
	test([]byte{0x52, 0xC1, 0x0F}, "1.5")
	test([]byte{0x52, 0x82, 0x01}, "1d2")
	test([]byte{0x52, 0xC1, 0x80}, "-0d-1")
}

func TestDecodeTimestamps(t *testing.T) {
	test := func(bs []byte, expected string, precision TimestampPrecision) {
		t.Run(expected, func(t *testing.T) {
			v := readFirstValue(t, bs...)
			ts, err := v.TimestampValue()
			require.NoError(t, err)
			assert.Equal(t, expected, ts.String())
			assert.Equal(t, precision, ts.Precision())
		})
	}

	test([]byte{0x63, 0xC0, 0x0F, 0xD7}, "2007T", Year)
	test([]byte{0x64, 0xC0, 0x0F, 0xD7, 0x82}, "2007-02T", Month)
	test([]byte{0x65, 0xC0, 0x0F, 0xD7, 0x82, 0x97}, "2007-02-23", Day)
	test([]byte{0x67, 0x80, 0x0F, 0xD7, 0x82, 0x97, 0x8C, 0x8E}, "2007-02-23T12:14Z", Minute)
	test([]byte{0x68, 0xC0, 0x0F, 0xD7, 0x82, 0x97, 0x8C, 0x8E, 0xA1}, "2007-02-23T12:14:33-00:00", Second)
	test([]byte{0x6A, 0x80, 0x0F, 0xD7, 0x82, 0x97, 0x8C, 0x8E, 0xA1, 0xC3, 0x01}, "2007-02-23T12:14:33.001Z", Fraction)

	// 2007-02-23T12:14 in UTC is 04:14 at -08:00.
	test([]byte{0x68, 0x43, 0xE0, 0x0F, 0xD7, 0x82, 0x97, 0x8C, 0x8E}, "2007-02-23T04:14-08:00", Minute)

	t.Run("hour without minute", func(t *testing.T) {
		err := readValueError(t, 0x66, 0xC0, 0x0F, 0xD7, 0x82, 0x97, 0x8C)
		assert.IsType(t, &SyntaxError{}, err)
	})

	t.Run("invalid day", func(t *testing.T) {
		err := readValueError(t, 0x65, 0xC0, 0x0F, 0xD7, 0x82, 0x9E)
		assert.IsType(t, &SyntaxError{}, err)
	})
}

func TestDecodeSymbols(t *testing.T) {
	v := readFirstValue(t, 0x71, 0x04)
	tok, err := v.SymbolValue()
	require.NoError(t, err)
	require.NotNil(t, tok.Text)
	assert.Equal(t, "name", *tok.Text)

	sid, ok := v.SymbolID()
	assert.True(t, ok)
	assert.Equal(t, int64(4), sid)

	v = readFirstValue(t, 0x70)
	tok, err = v.SymbolValue()
	require.NoError(t, err)
	assert.Nil(t, tok.Text)
	assert.Equal(t, int64(0), tok.LocalSID)

	err = readValueError(t, 0x71, 0x0A)
	require.IsType(t, &SyntaxError{}, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestDecodeTextAndLobs(t *testing.T) {
	v := readFirstValue(t, 0x83, 'f', 'o', 'o')
	s, err := v.StringValue()
	require.NoError(t, err)
	assert.Equal(t, "foo", s)

	err = readValueError(t, 0x81, 0xFF)
	assert.IsType(t, &SyntaxError{}, err)

	v = readFirstValue(t, 0x92, 'h', 'i')
	b, err := v.LobValue()
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), b)

	v = readFirstValue(t, 0xA3, 0x01, 0x02, 0x03)
	b, err = v.LobValue()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)

	_, err = v.StringValue()
	assert.IsType(t, &UsageError{}, err)
}

func TestDecodeEncodedSpans(t *testing.T) {
	// name::1
	v := readFirstValue(t, 0xE4, 0x81, 0x84, 0x21, 0x01)
	enc := v.Encoded()
	require.NotNil(t, enc)

	assert.True(t, enc.HasAnnotations())
	assert.Equal(t, Range{4, 6}, enc.AnnotationsHeader.Range())
	assert.Equal(t, []byte{0xE4, 0x81}, enc.AnnotationsHeader.Bytes)
	assert.Equal(t, Range{6, 7}, enc.AnnotationsSequence.Range())
	assert.Equal(t, []uint64{4}, enc.AnnotationSIDs())
	assert.Equal(t, Range{7, 8}, enc.Opcode.Range())
	assert.Equal(t, 0, enc.Length.Len())
	assert.Equal(t, Range{8, 9}, enc.Body.Range())
	assert.Equal(t, Range{4, 9}, enc.Range())
	assert.Equal(t, Range{7, 9}, enc.ValueRange())

	require.Len(t, v.Annotations(), 1)
	assert.Equal(t, "name", *v.Annotations()[0].Text)

	// A string long enough to need a length prefix.
	body := []byte{0x8E, 0x8E}
	for i := 0; i < 14; i++ {
		body = append(body, 'x')
	}
	v = readFirstValue(t, body...)
	enc = v.Encoded()
	assert.False(t, enc.HasAnnotations())
	assert.Equal(t, Range{4, 4}, enc.AnnotationsHeader.Range())
	assert.Equal(t, Range{5, 6}, enc.Length.Range())
	assert.Equal(t, 14, enc.Body.Len())
	assert.Equal(t, Range{4, 6}, enc.HeaderRange())
}

func TestDecodeBadAnnotations(t *testing.T) {
	t.Run("no annotations", func(t *testing.T) {
		err := readValueError(t, 0xE3, 0x80, 0x21, 0x01)
		assert.IsType(t, &SyntaxError{}, err)
	})

	t.Run("trailing bytes", func(t *testing.T) {
		err := readValueError(t, 0xE5, 0x81, 0x84, 0x21, 0x01, 0x0F)
		assert.IsType(t, &SyntaxError{}, err)
	})

	t.Run("nested wrapper", func(t *testing.T) {
		err := readValueError(t, 0xE6, 0x81, 0x84, 0xE3, 0x81, 0x84, 0x0F)
		assert.IsType(t, &SyntaxError{}, err)
	})
}

func TestDecodeTruncated(t *testing.T) {
	err := readValueError(t, 0x21)
	assert.IsType(t, &UnexpectedEOFError{}, err)

	// A list whose child claims more bytes than the list holds.
	v := readFirstValue(t, 0xB2, 0x22, 0x01, 0x00)
	it := v.Elements()
	assert.False(t, it.Next())
	assert.IsType(t, &SyntaxError{}, it.Err())
}

func TestDecodeContainers(t *testing.T) {
	// [1, 2]
	v := readFirstValue(t, 0xB4, 0x21, 0x01, 0x21, 0x02)
	assert.Equal(t, ListType, v.Type())

	var ints []int64
	it := v.Elements()
	for it.Next() {
		n, err := it.Expr().Value.IntValue()
		require.NoError(t, err)
		ints = append(ints, n.Int64())
	}
	require.NoError(t, it.Err())
	assert.Equal(t, []int64{1, 2}, ints)

	// {name: 1, version: 2}
	v = readFirstValue(t, 0xD6, 0x84, 0x21, 0x01, 0x85, 0x21, 0x02)
	var names []string
	var ranges []Range
	fs := v.Fields()
	for fs.Next() {
		f := fs.Field()
		names = append(names, *f.Name.Token.Text)
		r, ok := f.Range()
		require.True(t, ok)
		ranges = append(ranges, r)
	}
	require.NoError(t, fs.Err())
	assert.Equal(t, []string{"name", "version"}, names)
	assert.Equal(t, []Range{{5, 8}, {8, 11}}, ranges)

	// A sorted struct, whose length always follows the opcode.
	v = readFirstValue(t, 0xD1, 0x83, 0x84, 0x21, 0x01)
	assert.Equal(t, StructType, v.Type())
	assert.Equal(t, Range{4, 6}, v.Encoded().HeaderRange())

	// (), with NOP padding inside.
	v = readFirstValue(t, 0xC2, 0x01, 0xFF)
	it = v.Elements()
	require.True(t, it.Next())
	require.True(t, it.Expr().IsNop())
	assert.Equal(t, Range{5, 7}, it.Expr().Nop.Range())
	assert.False(t, it.Next())
	assert.NoError(t, it.Err())

	_, err := v.IntValue()
	assert.IsType(t, &UsageError{}, err)
	assert.IsType(t, &UsageError{}, v.Fields().Err())
}
