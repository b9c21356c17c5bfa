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

// The constructors below build ephemeral values: values that exist only as
// the result of evaluating a macro and have no bytes in the input.

// NewNull returns an ephemeral null of the given type.
func NewNull(t Type) *Value {
	if t == NoType {
		t = NullType
	}
	return &Value{typ: t, null: true}
}

// NewBool returns an ephemeral bool.
func NewBool(b bool) *Value {
	return &Value{typ: BoolType, scalar: b}
}

// NewInt returns an ephemeral int.
func NewInt(n int64) *Value {
	return &Value{typ: IntType, scalar: big.NewInt(n)}
}

// NewBigInt returns an ephemeral int.
func NewBigInt(n *big.Int) *Value {
	return &Value{typ: IntType, scalar: new(big.Int).Set(n)}
}

// NewFloat returns an ephemeral float.
func NewFloat(f float64) *Value {
	return &Value{typ: FloatType, scalar: f}
}

// NewDecimalValue returns an ephemeral decimal.
func NewDecimalValue(d *Decimal) *Value {
	return &Value{typ: DecimalType, scalar: d}
}

// NewTimestampValue returns an ephemeral timestamp.
func NewTimestampValue(ts Timestamp) *Value {
	return &Value{typ: TimestampType, scalar: ts}
}

// NewSymbol returns an ephemeral symbol with the given text.
func NewSymbol(text string) *Value {
	return &Value{typ: SymbolType, scalar: NewSymbolTokenText(text)}
}

// NewString returns an ephemeral string.
func NewString(s string) *Value {
	return &Value{typ: StringType, scalar: s}
}

// NewBlob returns an ephemeral blob.
func NewBlob(b []byte) *Value {
	return &Value{typ: BlobType, scalar: b}
}

// NewClob returns an ephemeral clob.
func NewClob(b []byte) *Value {
	return &Value{typ: ClobType, scalar: b}
}

// NewList returns an ephemeral list of the given expressions.
func NewList(elems ...Expr) *Value {
	return &Value{typ: ListType, elems: elems}
}

// NewSexp returns an ephemeral s-expression of the given expressions.
func NewSexp(elems ...Expr) *Value {
	return &Value{typ: SexpType, elems: elems}
}

// NewStruct returns an ephemeral struct with the given fields.
func NewStruct(fields ...Field) *Value {
	return &Value{typ: StructType, fields: fields}
}

// NewField returns an ephemeral field.
func NewField(name string, value Expr) Field {
	return Field{Name: FieldName{Token: NewSymbolTokenText(name)}, Value: value}
}

// WithAnnotations returns a copy of v with the given annotations.
func (v *Value) WithAnnotations(annotations ...string) *Value {
	cp := *v
	cp.annotations = make([]SymbolToken, len(annotations))
	for i, a := range annotations {
		cp.annotations[i] = NewSymbolTokenText(a)
	}
	return &cp
}

// WithVariable returns a copy of v marked as having been substituted for
// the named template variable. A literal value passed as a macro argument
// keeps its encoding, but is still shown as part of the expansion.
func (v *Value) WithVariable(name string) *Value {
	cp := *v
	cp.variable = name
	return &cp
}
