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
	"fmt"
	"math/big"
	"strings"
	"time"
	"unicode/utf8"
)

// readField reads a field name and its value. The value is NOP padding when
// the name only pads out the struct.
func readField(b *bitstream, st SymbolTable) (Field, error) {
	start := b.pos
	sid, _, err := b.readVarUintLen()
	if err != nil {
		return Field{}, err
	}
	name := span(b.data, start, b.pos)

	tok, err := resolveSymbol(st, sid, start)
	if err != nil {
		return Field{}, err
	}

	e, err := readOne(b, st)
	if err != nil {
		return Field{}, err
	}

	return Field{
		Name:  FieldName{Token: tok, Span: &name},
		Value: e,
	}, nil
}

// readOne reads a single encoded item, which is either a value or a run of
// NOP padding.
func readOne(b *bitstream, st SymbolTable) (Expr, error) {
	start := b.pos
	h, err := b.readHeader()
	if err != nil {
		return Expr{}, err
	}
	if h.nop {
		pad := span(b.data, start, b.pos)
		return Expr{Nop: &pad}, nil
	}

	var v *Value
	if h.code != bitcodeAnnotation {
		none := span(b.data, start, start)
		enc := &EncodedValue{
			AnnotationsHeader:   none,
			AnnotationsSequence: none,
			Opcode:              h.opcode,
			Length:              h.length,
			Body:                h.body,
		}
		v, err = decodeValue(b.data, h, enc, nil, st)
	} else {
		v, err = readAnnotated(b.data, start, h, st)
	}
	if err != nil {
		return Expr{}, err
	}
	return Expr{Value: v}, nil
}

// readAnnotated decodes the value inside an annotations wrapper.
func readAnnotated(data []byte, start int, h header, st SymbolTable) (*Value, error) {
	wrapper := h.body.Range()
	in := newBitstream(data, wrapper.Start, wrapper.End)

	alen, _, err := in.readVarUintLen()
	if err != nil {
		return nil, err
	}
	if alen == 0 {
		return nil, &SyntaxError{"annotation wrapper must have at least one annotation", uint64(start)}
	}
	if alen >= uint64(in.remaining()) {
		return nil, &SyntaxError{"annotations overrun their wrapper", uint64(start)}
	}
	header := span(data, start, in.pos)

	seqStart := in.pos
	seqEnd := seqStart + int(alen)
	seq := newBitstream(data, seqStart, seqEnd)

	var sids []uint64
	var anns []SymbolToken
	for !seq.atEnd() {
		pos := seq.pos
		sid, _, err := seq.readVarUintLen()
		if err != nil {
			return nil, err
		}
		tok, err := resolveSymbol(st, sid, pos)
		if err != nil {
			return nil, err
		}
		sids = append(sids, sid)
		anns = append(anns, tok)
	}
	in.pos = seqEnd

	vstart := in.pos
	vh, err := in.readHeader()
	if err != nil {
		return nil, err
	}
	if vh.nop || vh.code == bitcodeAnnotation {
		return nil, &SyntaxError{"annotation wrapper must wrap a value", uint64(vstart)}
	}
	if !in.atEnd() {
		return nil, &SyntaxError{"annotation wrapper length does not match its value", uint64(start)}
	}

	enc := &EncodedValue{
		AnnotationsHeader:   header,
		AnnotationsSequence: span(data, seqStart, seqEnd),
		Opcode:              vh.opcode,
		Length:              vh.length,
		Body:                vh.body,
		annotationSIDs:      sids,
	}
	return decodeValue(data, vh, enc, anns, st)
}

// decodeValue builds a Value from a decoded header. Scalars are decoded
// immediately; containers keep a reference to the input and decode their
// children on demand.
func decodeValue(data []byte, h header, enc *EncodedValue, anns []SymbolToken, st SymbolTable) (*Value, error) {
	v := &Value{
		typ:         types[h.code],
		null:        h.null,
		annotations: anns,
		encoded:     enc,
	}
	if h.code == bitcodeNull || h.null {
		v.null = true
		return v, nil
	}

	body := h.body.Bytes
	off := h.opcode.Offset

	switch h.code {
	case bitcodeFalse:
		v.scalar = h.low == 1

	case bitcodeInt:
		v.scalar = readUint(body)

	case bitcodeNegInt:
		n := readUint(body)
		if n.Sign() == 0 {
			return nil, &SyntaxError{"negative zero int is not allowed", uint64(off)}
		}
		v.scalar = n.Neg(n)

	case bitcodeFloat:
		f, ok := readFloat(body)
		if !ok {
			return nil, &SyntaxError{fmt.Sprintf("invalid float length %d", len(body)), uint64(off)}
		}
		v.scalar = f

	case bitcodeDecimal:
		d, err := readDecimal(data, h.body.Range())
		if err != nil {
			return nil, err
		}
		v.scalar = d

	case bitcodeTimestamp:
		ts, err := readTimestamp(data, h.body.Range())
		if err != nil {
			return nil, err
		}
		v.scalar = ts

	case bitcodeSymbol:
		sid, ok := readUint64(body)
		if !ok {
			return nil, &SyntaxError{"symbol ID too large", uint64(off)}
		}
		tok, err := resolveSymbol(st, sid, off)
		if err != nil {
			return nil, err
		}
		v.scalar = tok

	case bitcodeString:
		if !utf8.Valid(body) {
			return nil, &SyntaxError{"string is not valid UTF-8", uint64(off)}
		}
		v.scalar = string(body)

	case bitcodeClob, bitcodeBlob:
		v.scalar = body

	case bitcodeList, bitcodeSexp, bitcodeStruct:
		v.data = data
		v.symtab = st
	}

	return v, nil
}

// resolveSymbol maps a symbol ID to a token using the given table.
func resolveSymbol(st SymbolTable, sid uint64, off int) (SymbolToken, error) {
	if sid == 0 {
		return SymbolToken{LocalSID: 0}, nil
	}
	if sid > st.MaxID() {
		msg := fmt.Sprintf("symbol ID %d is out of range (max %d)", sid, st.MaxID())
		return SymbolToken{}, &SyntaxError{msg, uint64(off)}
	}
	if text, ok := st.FindByID(sid); ok {
		return SymbolToken{Text: &text, LocalSID: int64(sid)}, nil
	}
	return SymbolToken{LocalSID: int64(sid)}, nil
}

// readDecimal decodes a decimal body: a VarInt exponent followed by an Int
// coefficient.
func readDecimal(data []byte, body Range) (*Decimal, error) {
	b := newBitstream(data, body.Start, body.End)
	if b.atEnd() {
		return NewDecimal(new(big.Int), 0, false), nil
	}

	exp, _, _, err := b.readVarIntLen()
	if err != nil {
		return nil, err
	}

	coef, negZero := readSignedInt(data[b.pos:b.end])
	return NewDecimal(coef, int32(exp), negZero), nil
}

// readTimestamp decodes a timestamp body: a VarInt offset, then VarUInt
// components from year down to second, then an optional fractional second
// encoded like a decimal. Components are in UTC.
func readTimestamp(data []byte, body Range) (Timestamp, error) {
	b := newBitstream(data, body.Start, body.End)
	if b.atEnd() {
		return Timestamp{}, &SyntaxError{"timestamp has no year", uint64(body.Start)}
	}

	offset, unknownOffset, _, err := b.readVarIntLen()
	if err != nil {
		return Timestamp{}, err
	}

	ts := []int{1, 1, 1, 0, 0, 0}
	precision := NoPrecision
	for i := 0; !b.atEnd() && i < 6; i++ {
		val, _, err := b.readVarUintLen()
		if err != nil {
			return Timestamp{}, err
		}
		ts[i] = int(val)

		switch i {
		case 0:
			precision = Year
		case 1:
			precision = Month
		case 2:
			precision = Day
		case 3:
			// A timestamp with an hour must be followed by a minute.
			if b.atEnd() {
				return Timestamp{}, &SyntaxError{"timestamp hour cannot be present without minute", uint64(b.pos)}
			}
		case 4:
			precision = Minute
		case 5:
			precision = Second
		}
	}
	if precision == NoPrecision {
		return Timestamp{}, &SyntaxError{"timestamp has no year", uint64(body.Start)}
	}

	fraction := ""
	if !b.atEnd() {
		exp, _, _, err := b.readVarIntLen()
		if err != nil {
			return Timestamp{}, err
		}
		coef, _ := readSignedInt(data[b.pos:b.end])
		b.pos = b.end

		if coef.Sign() < 0 {
			return Timestamp{}, &SyntaxError{"timestamp fraction cannot be negative", uint64(body.Start)}
		}
		if exp >= 0 {
			if coef.Sign() != 0 {
				return Timestamp{}, &SyntaxError{"timestamp fraction must be less than one", uint64(body.Start)}
			}
		} else {
			digits := coef.String()
			places := int(-exp)
			if len(digits) > places {
				return Timestamp{}, &SyntaxError{"timestamp fraction must be less than one", uint64(body.Start)}
			}
			fraction = strings.Repeat("0", places-len(digits)) + digits
			precision = Fraction
		}
	}

	if ts[0] < 1 || ts[0] > 9999 {
		return Timestamp{}, &SyntaxError{fmt.Sprintf("timestamp year %d out of range", ts[0]), uint64(body.Start)}
	}
	utc := time.Date(ts[0], time.Month(ts[1]), ts[2], ts[3], ts[4], ts[5], 0, time.UTC)
	if !validDate(utc, ts[0], ts[1], ts[2], ts[3], ts[4], ts[5]) {
		return Timestamp{}, &SyntaxError{"invalid timestamp", uint64(body.Start)}
	}

	kind := Local
	switch {
	case unknownOffset:
		kind = Unspecified
	case offset == 0:
		kind = UTC
	}

	return NewTimestamp(utc, precision, kind, int(offset), fraction), nil
}
