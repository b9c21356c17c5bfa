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

import "fmt"

type bitcode uint8

const (
	bitcodeNone bitcode = iota
	bitcodeNull
	bitcodeFalse
	bitcodeInt
	bitcodeNegInt
	bitcodeFloat
	bitcodeDecimal
	bitcodeTimestamp
	bitcodeSymbol
	bitcodeString
	bitcodeClob
	bitcodeBlob
	bitcodeList
	bitcodeSexp
	bitcodeStruct
	bitcodeAnnotation
)

func (b bitcode) String() string {
	switch b {
	case bitcodeNone:
		return "none"
	case bitcodeNull:
		return "null"
	case bitcodeFalse:
		return "bool"
	case bitcodeInt:
		return "int"
	case bitcodeNegInt:
		return "negint"
	case bitcodeFloat:
		return "float"
	case bitcodeDecimal:
		return "decimal"
	case bitcodeTimestamp:
		return "timestamp"
	case bitcodeSymbol:
		return "symbol"
	case bitcodeString:
		return "string"
	case bitcodeClob:
		return "clob"
	case bitcodeBlob:
		return "blob"
	case bitcodeList:
		return "list"
	case bitcodeSexp:
		return "sexp"
	case bitcodeStruct:
		return "struct"
	case bitcodeAnnotation:
		return "annotation"
	default:
		return fmt.Sprintf("<invalid bitcode 0x%2X>", uint8(b))
	}
}

// types maps bitcodes to the Type of the value they introduce.
var types = map[bitcode]Type{
	bitcodeNull:      NullType,
	bitcodeFalse:     BoolType,
	bitcodeInt:       IntType,
	bitcodeNegInt:    IntType,
	bitcodeFloat:     FloatType,
	bitcodeDecimal:   DecimalType,
	bitcodeTimestamp: TimestampType,
	bitcodeSymbol:    SymbolType,
	bitcodeString:    StringType,
	bitcodeClob:      ClobType,
	bitcodeBlob:      BlobType,
	bitcodeList:      ListType,
	bitcodeSexp:      SexpType,
	bitcodeStruct:    StructType,
}

var bitcodes = []bitcode{
	bitcodeNull,       // 0x00
	bitcodeFalse,      // 0x10
	bitcodeInt,        // 0x20
	bitcodeNegInt,     // 0x30
	bitcodeFloat,      // 0x40
	bitcodeDecimal,    // 0x50
	bitcodeTimestamp,  // 0x60
	bitcodeSymbol,     // 0x70
	bitcodeString,     // 0x80
	bitcodeClob,       // 0x90
	bitcodeBlob,       // 0xA0
	bitcodeList,       // 0xB0
	bitcodeSexp,       // 0xC0
	bitcodeStruct,     // 0xD0
	bitcodeAnnotation, // 0xE0
}

// parseTag parses a tag byte into a typecode and a length.
func parseTag(c byte) (bitcode, int) {
	high := int(c>>4) & 0x0F
	low := int(c) & 0x0F

	code := bitcodeNone
	if high < len(bitcodes) {
		code = bitcodes[high]
	}

	return code, low
}

// A header is the decoded type descriptor of a single value, split into
// the spans that make it up.
type header struct {
	code bitcode
	low  int
	null bool
	nop  bool

	opcode Span
	length Span
	body   Span
}

// A bitstream is a cursor over a window [pos, end) of a binary Ion buffer.
// Every read is bounds-checked against end, so a bitstream positioned on
// the body of a container can never read past that container.
type bitstream struct {
	data []byte
	pos  int
	end  int
}

func newBitstream(data []byte, start, end int) *bitstream {
	return &bitstream{data: data, pos: start, end: end}
}

func (b *bitstream) remaining() int {
	return b.end - b.pos
}

func (b *bitstream) atEnd() bool {
	return b.pos >= b.end
}

// overrun builds the error for a read that wanted n more bytes than remain.
func (b *bitstream) overrun(what string, n int) error {
	if b.end == len(b.data) {
		return &UnexpectedEOFError{uint64(len(b.data))}
	}
	msg := fmt.Sprintf("%v overruns its container: %v vs %v", what, n, b.remaining())
	return &SyntaxError{msg, uint64(b.pos)}
}

func (b *bitstream) read1() (byte, error) {
	if b.atEnd() {
		return 0, b.overrun("value", 1)
	}
	c := b.data[b.pos]
	b.pos++
	return c, nil
}

func (b *bitstream) readN(what string, n int) (Span, error) {
	if n > b.remaining() {
		return Span{}, b.overrun(what, n)
	}
	s := span(b.data, b.pos, b.pos+n)
	b.pos += n
	return s, nil
}

// readVarUintLen reads a VarUInt, returning its value and its encoded length.
func (b *bitstream) readVarUintLen() (uint64, int, error) {
	start := b.pos
	val := uint64(0)
	length := 0

	for {
		if length >= 10 {
			return 0, 0, &SyntaxError{"varuint too large", uint64(start)}
		}

		c, err := b.read1()
		if err != nil {
			return 0, 0, err
		}

		val <<= 7
		val ^= uint64(c & 0x7F)
		length++

		if c&0x80 != 0 {
			return val, length, nil
		}
	}
}

// readVarIntLen reads a VarInt, returning its value, whether it was a
// negative zero, and its encoded length.
func (b *bitstream) readVarIntLen() (int64, bool, int, error) {
	start := b.pos

	// Read the first byte, which contains the sign bit.
	c, err := b.read1()
	if err != nil {
		return 0, false, 0, err
	}

	neg := c&0x40 != 0
	val := int64(c & 0x3F)
	length := 1

	for c&0x80 == 0 {
		if length >= 10 {
			return 0, false, 0, &SyntaxError{"varint too large", uint64(start)}
		}

		c, err = b.read1()
		if err != nil {
			return 0, false, 0, err
		}

		val <<= 7
		val ^= int64(c & 0x7F)
		length++
	}

	if neg {
		return -val, val == 0, length, nil
	}
	return val, false, length, nil
}

// readHeader reads a type descriptor and its length prefix, and slices out
// the body that follows. The cursor is left at the end of the value.
func (b *bitstream) readHeader() (header, error) {
	start := b.pos
	c, err := b.read1()
	if err != nil {
		return header{}, err
	}

	code, low := parseTag(c)
	if code == bitcodeNone {
		return header{}, &InvalidTagByteError{c, uint64(start)}
	}

	h := header{code: code, low: low, opcode: span(b.data, start, b.pos)}

	switch code {
	case bitcodeNull:
		if low == 0x0F {
			h.null = true
			h.length = span(b.data, b.pos, b.pos)
			h.body = h.length
			return h, nil
		}
		// Anything else is NOP padding.
		h.nop = true

	case bitcodeFalse:
		// Booleans are a bit special; the 'length' stores the value.
		switch low {
		case 0, 1:
			h.length = span(b.data, b.pos, b.pos)
			h.body = h.length
			return h, nil
		case 0x0F:
		default:
			return header{}, &InvalidTagByteError{c, uint64(start)}
		}

	case bitcodeAnnotation:
		switch low {
		case 0:
			return header{}, &SyntaxError{"unexpected version marker", uint64(start)}
		case 1, 2, 0x0F:
			return header{}, &InvalidTagByteError{c, uint64(start)}
		}

	case bitcodeStruct:
		if low == 1 {
			// A sorted struct, whose length always follows as a varuint.
			low = 0x0E
		}
	}

	if low == 0x0F {
		// This value is actually a null.
		h.null = true
		h.length = span(b.data, b.pos, b.pos)
		h.body = h.length
		return h, nil
	}

	length := low
	lenStart := b.pos
	if low == 0x0E {
		n, _, err := b.readVarUintLen()
		if err != nil {
			return header{}, err
		}
		if n > uint64(b.remaining()) {
			return header{}, b.overrun(code.String(), int(n))
		}
		length = int(n)
	}
	h.length = span(b.data, lenStart, b.pos)

	h.body, err = b.readN(code.String(), length)
	if err != nil {
		return header{}, err
	}

	return h, nil
}
