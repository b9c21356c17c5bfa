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

import "math/big"

// An EncodedValue describes the bytes that encode a literal value. Spans
// that a value does not have (such as the annotations of an unannotated
// value, or the length prefix of a short value) are empty but positioned
// where they would have been.
type EncodedValue struct {
	// AnnotationsHeader holds the annotations wrapper's opcode, its length
	// prefix and the varuint length of the annotation sequence.
	AnnotationsHeader Span
	// AnnotationsSequence holds the annotation symbol IDs.
	AnnotationsSequence Span

	Opcode Span
	Length Span
	Body   Span

	annotationSIDs []uint64
}

// HasAnnotations returns true if the value is wrapped in annotations.
func (e *EncodedValue) HasAnnotations() bool {
	return !e.AnnotationsHeader.IsEmpty()
}

// AnnotationSIDs returns the symbol IDs of the value's annotations, in order.
func (e *EncodedValue) AnnotationSIDs() []uint64 {
	return e.annotationSIDs
}

// AnnotationsRange returns the range of the annotations header and sequence.
func (e *EncodedValue) AnnotationsRange() Range {
	return Range{Start: e.AnnotationsHeader.Offset, End: e.AnnotationsSequence.Range().End}
}

// HeaderRange returns the range of the value's opcode and length prefix.
func (e *EncodedValue) HeaderRange() Range {
	return Range{Start: e.Opcode.Offset, End: e.Length.Range().End}
}

// ValueRange returns the range from the value's opcode to the end of its
// body, excluding any annotations.
func (e *EncodedValue) ValueRange() Range {
	return Range{Start: e.Opcode.Offset, End: e.Body.Range().End}
}

// Range returns the range of the whole value, annotations included.
func (e *EncodedValue) Range() Range {
	r := e.ValueRange()
	if e.HasAnnotations() {
		r.Start = e.AnnotationsHeader.Offset
	}
	return r
}

// A Value is a single Ion value. Literal values were read from the input
// and carry an EncodedValue; ephemeral values were produced some other way
// (such as by expanding a macro) and do not.
type Value struct {
	typ         Type
	null        bool
	annotations []SymbolToken
	scalar      interface{}

	encoded  *EncodedValue
	variable string

	// Literal containers decode their children lazily from the input.
	data   []byte
	symtab SymbolTable

	// Ephemeral containers hold their children directly.
	elems  []Expr
	fields []Field
}

// Type returns the Ion type of the value.
func (v *Value) Type() Type {
	return v.typ
}

// IsNull returns true if the value is a (typed) null.
func (v *Value) IsNull() bool {
	return v.null
}

// HasAnnotations returns true if the value is annotated.
func (v *Value) HasAnnotations() bool {
	return len(v.annotations) > 0
}

// Annotations returns the value's annotations.
func (v *Value) Annotations() []SymbolToken {
	return v.annotations
}

// Encoded returns the encoding of a literal value, or nil for an ephemeral one.
func (v *Value) Encoded() *EncodedValue {
	return v.encoded
}

// IsEphemeral returns true if the value has no bytes of its own in the input.
func (v *Value) IsEphemeral() bool {
	return v.encoded == nil
}

// Variable returns the name of the template variable the value was
// substituted for, or "" if it was not.
func (v *Value) Variable() string {
	return v.variable
}

// Range returns the byte range of a literal value. The second return value
// is false for ephemeral values.
func (v *Value) Range() (Range, bool) {
	if v.encoded == nil {
		return Range{}, false
	}
	return v.encoded.Range(), true
}

// SymbolID returns the symbol ID a literal symbol value was encoded with.
func (v *Value) SymbolID() (int64, bool) {
	if v.typ != SymbolType || v.null || v.encoded == nil {
		return 0, false
	}
	tok := v.scalar.(SymbolToken)
	return tok.LocalSID, tok.HasSID()
}

func (v *Value) scalarOf(api string, t Type) (interface{}, error) {
	if v.typ != t {
		return nil, &UsageError{api, "value is a " + v.typ.String()}
	}
	if v.null {
		return nil, &UsageError{api, "value is null"}
	}
	return v.scalar, nil
}

// BoolValue returns the value of a bool.
func (v *Value) BoolValue() (bool, error) {
	s, err := v.scalarOf("Value.BoolValue", BoolType)
	if err != nil {
		return false, err
	}
	return s.(bool), nil
}

// IntValue returns the value of an int.
func (v *Value) IntValue() (*big.Int, error) {
	s, err := v.scalarOf("Value.IntValue", IntType)
	if err != nil {
		return nil, err
	}
	return s.(*big.Int), nil
}

// FloatValue returns the value of a float.
func (v *Value) FloatValue() (float64, error) {
	s, err := v.scalarOf("Value.FloatValue", FloatType)
	if err != nil {
		return 0, err
	}
	return s.(float64), nil
}

// DecimalValue returns the value of a decimal.
func (v *Value) DecimalValue() (*Decimal, error) {
	s, err := v.scalarOf("Value.DecimalValue", DecimalType)
	if err != nil {
		return nil, err
	}
	return s.(*Decimal), nil
}

// TimestampValue returns the value of a timestamp.
func (v *Value) TimestampValue() (Timestamp, error) {
	s, err := v.scalarOf("Value.TimestampValue", TimestampType)
	if err != nil {
		return Timestamp{}, err
	}
	return s.(Timestamp), nil
}

// SymbolValue returns the value of a symbol.
func (v *Value) SymbolValue() (SymbolToken, error) {
	s, err := v.scalarOf("Value.SymbolValue", SymbolType)
	if err != nil {
		return SymbolToken{}, err
	}
	return s.(SymbolToken), nil
}

// StringValue returns the value of a string.
func (v *Value) StringValue() (string, error) {
	s, err := v.scalarOf("Value.StringValue", StringType)
	if err != nil {
		return "", err
	}
	return s.(string), nil
}

// LobValue returns the bytes of a blob or clob.
func (v *Value) LobValue() ([]byte, error) {
	t := BlobType
	if v.typ == ClobType {
		t = ClobType
	}
	s, err := v.scalarOf("Value.LobValue", t)
	if err != nil {
		return nil, err
	}
	return s.([]byte), nil
}

// Elements returns an iterator over the children of a list or s-expression.
func (v *Value) Elements() *Elements {
	it := &Elements{}
	if v.typ != ListType && v.typ != SexpType {
		it.err = &UsageError{"Value.Elements", "value is a " + v.typ.String()}
		return it
	}
	if v.null {
		return it
	}
	if v.encoded != nil {
		body := v.encoded.Body.Range()
		it.b = newBitstream(v.data, body.Start, body.End)
		it.symtab = v.symtab
		return it
	}
	it.exprs = v.elems
	return it
}

// Fields returns an iterator over the fields of a struct.
func (v *Value) Fields() *Fields {
	it := &Fields{}
	if v.typ != StructType {
		it.err = &UsageError{"Value.Fields", "value is a " + v.typ.String()}
		return it
	}
	if v.null {
		return it
	}
	if v.encoded != nil {
		body := v.encoded.Body.Range()
		it.b = newBitstream(v.data, body.Start, body.End)
		it.symtab = v.symtab
		return it
	}
	it.fields = v.fields
	return it
}
