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
	"encoding/base64"
	"strings"
)

var textNulls = map[Type]string{
	NoType:        "null",
	NullType:      "null",
	BoolType:      "null.bool",
	IntType:       "null.int",
	FloatType:     "null.float",
	DecimalType:   "null.decimal",
	TimestampType: "null.timestamp",
	SymbolType:    "null.symbol",
	StringType:    "null.string",
	ClobType:      "null.clob",
	BlobType:      "null.blob",
	ListType:      "null.list",
	SexpType:      "null.sexp",
	StructType:    "null.struct",
}

// A TextWriter renders single scalar values as compact text Ion. It keeps
// its buffer between values, so one TextWriter can be reused for every row
// of a rendering.
//
// Annotations are not written; callers that want them render them with
// FormatSymbol. Each value is followed by a single space separator, as a
// compact text stream would have.
type TextWriter struct {
	sb strings.Builder
}

// NewTextWriter returns an empty TextWriter.
func NewTextWriter() *TextWriter {
	w := &TextWriter{}
	w.sb.Grow(128)
	return w
}

// Reset discards everything written so far.
func (w *TextWriter) Reset() {
	w.sb.Reset()
}

// String returns everything written since the last Reset.
func (w *TextWriter) String() string {
	return w.sb.String()
}

// WriteValue writes the text form of a scalar or null value. Non-null
// containers cannot be written as a single row and are a UsageError.
func (w *TextWriter) WriteValue(v *Value) error {
	if v.IsNull() {
		w.sb.WriteString(textNulls[v.Type()])
		w.sb.WriteByte(' ')
		return nil
	}

	switch v.Type() {
	case BoolType:
		if v.scalar.(bool) {
			w.sb.WriteString("true")
		} else {
			w.sb.WriteString("false")
		}

	case IntType:
		n, _ := v.IntValue()
		w.sb.WriteString(n.String())

	case FloatType:
		f, _ := v.FloatValue()
		w.sb.WriteString(formatFloat(f))

	case DecimalType:
		d, _ := v.DecimalValue()
		w.sb.WriteString(d.String())

	case TimestampType:
		ts, _ := v.TimestampValue()
		w.sb.WriteString(ts.String())

	case SymbolType:
		tok, _ := v.SymbolValue()
		writeSymbolToken(&w.sb, tok)

	case StringType:
		s, _ := v.StringValue()
		w.sb.WriteByte('"')
		writeEscaped(&w.sb, s, '"')
		w.sb.WriteByte('"')

	case ClobType:
		b, _ := v.LobValue()
		w.sb.WriteString("{{\"")
		writeClob(&w.sb, b)
		w.sb.WriteString("\"}}")

	case BlobType:
		b, _ := v.LobValue()
		w.sb.WriteString("{{")
		w.sb.WriteString(base64.StdEncoding.EncodeToString(b))
		w.sb.WriteString("}}")

	default:
		return &UsageError{"TextWriter.WriteValue", "cannot write a " + v.Type().String() + " as a scalar"}
	}

	w.sb.WriteByte(' ')
	return nil
}
