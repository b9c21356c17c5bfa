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

// Package hexreader reinterprets hexadecimal text as the bytes it spells
// out, so that a stream can be pasted into a terminal as a hex dump.
package hexreader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode"
)

type digitState uint8

const (
	// empty is between bytes.
	empty digitState = iota
	// zero has seen a 0, which starts either 0H or 0xHH.
	zero
	// zeroX has seen 0x and expects the upper nibble.
	zeroX
	// upper has seen the upper nibble and expects the lower one.
	upper
)

// A FormatError reports input that is not a valid hex dump.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string {
	return "hex: " + e.Msg
}

// A Reader reads hex digit pairs, each optionally prefixed with 0x, and
// returns the bytes they encode. Whitespace and commas may separate pairs;
// any other character is an error, as is an unpaired digit at the end of
// the input.
type Reader struct {
	in     *bufio.Reader
	state  digitState
	nibble byte
	err    error
}

// NewReader returns a Reader decoding the hex text of in.
func NewReader(in io.Reader) *Reader {
	return &Reader{in: bufio.NewReader(in)}
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}

	n := 0
	for n < len(p) {
		c, err := r.in.ReadByte()
		if errors.Is(err, io.EOF) {
			if r.state != empty {
				r.err = &FormatError{"found an odd number of hex digits"}
			} else {
				r.err = io.EOF
			}
			return n, r.err
		}
		if err != nil {
			r.err = err
			return n, err
		}

		b, ok, err := r.step(c)
		if err != nil {
			r.err = err
			return n, err
		}
		if ok {
			p[n] = b
			n++
		}
	}
	return n, nil
}

// step advances the state machine by one character, returning a byte when
// c completes one.
func (r *Reader) step(c byte) (byte, bool, error) {
	v, isHex := hexValue(c)

	switch {
	case r.state == empty && (isSpace(c) || c == ','):
		return 0, false, nil
	case r.state == empty && c == '0':
		r.state = zero
		return 0, false, nil
	case r.state == zero && c == 'x':
		r.state = zeroX
		return 0, false, nil
	case (r.state == empty || r.state == zeroX) && isHex:
		r.state = upper
		r.nibble = v
		return 0, false, nil
	case r.state == zero && isHex:
		r.state = empty
		return v, true, nil
	case r.state == upper && isHex:
		r.state = empty
		return r.nibble<<4 | v, true, nil
	case isSpace(c):
		return 0, false, &FormatError{fmt.Sprintf("unexpected whitespace when digit expected: %q", rune(c))}
	default:
		return 0, false, &FormatError{fmt.Sprintf("not a valid hexadecimal digit: %q", rune(c))}
	}
}

func isSpace(c byte) bool {
	return unicode.IsSpace(rune(c))
}

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
