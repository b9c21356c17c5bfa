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

// An Expr is a value, an unevaluated macro invocation or a run of NOP
// padding. Exactly one of its fields is set.
type Expr struct {
	Value *Value
	Macro *MacroInvocation
	// Nop holds the bytes of the padding.
	Nop *Span
}

// ValueExpr wraps a value in an Expr.
func ValueExpr(v *Value) Expr {
	return Expr{Value: v}
}

// MacroExpr wraps a macro invocation in an Expr.
func MacroExpr(m *MacroInvocation) Expr {
	return Expr{Macro: m}
}

// IsMacro returns true if the expression is a macro invocation.
func (e Expr) IsMacro() bool {
	return e.Macro != nil
}

// IsNop returns true if the expression is NOP padding rather than data.
func (e Expr) IsNop() bool {
	return e.Nop != nil
}

// Range returns the byte range of the expression, if it has one.
func (e Expr) Range() (Range, bool) {
	if e.Nop != nil {
		return e.Nop.Range(), true
	}
	if e.Macro != nil {
		return e.Macro.Range()
	}
	if e.Value != nil {
		return e.Value.Range()
	}
	return Range{}, false
}

// A FieldName is the name of a struct field along with, for literal fields,
// the bytes that encode it.
type FieldName struct {
	Token SymbolToken
	Span  *Span
}

// IsEphemeral returns true if the name has no bytes in the input.
func (n FieldName) IsEphemeral() bool {
	return n.Span == nil
}

// A Field is a single name/value pair of a struct.
type Field struct {
	Name  FieldName
	Value Expr
}

// Range returns the byte range from the start of the field's name to the
// end of its value. Ephemeral fields have no range.
func (f Field) Range() (Range, bool) {
	if f.Name.Span == nil {
		return Range{}, false
	}
	r := f.Name.Span.Range()
	if vr, ok := f.Value.Range(); ok {
		r.End = vr.End
	}
	return r, true
}

// Elements iterates over the children of a list or s-expression. NOP
// padding between children is returned as an Expr of its own.
//
//	it := v.Elements()
//	for it.Next() {
//		e := it.Expr()
//		...
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
type Elements struct {
	b      *bitstream
	symtab SymbolTable

	exprs []Expr
	idx   int

	cur Expr
	err error
}

// Next advances to the next child, returning false when there are no more
// children or an error occurred.
func (it *Elements) Next() bool {
	if it.err != nil {
		return false
	}

	if it.b != nil {
		if it.b.atEnd() {
			return false
		}
		e, err := readOne(it.b, it.symtab)
		if err != nil {
			it.err = err
			return false
		}
		it.cur = e
		return true
	}

	if it.idx >= len(it.exprs) {
		return false
	}
	it.cur = it.exprs[it.idx]
	it.idx++
	return true
}

// Expr returns the current child.
func (it *Elements) Expr() Expr {
	return it.cur
}

// Err returns the error that stopped the iteration, if any.
func (it *Elements) Err() error {
	return it.err
}

// Fields iterates over the fields of a struct, in the order they appear.
// Padding inside a struct is returned as a field whose value is a NOP.
type Fields struct {
	b      *bitstream
	symtab SymbolTable

	fields []Field
	idx    int

	cur Field
	err error
}

// Next advances to the next field, returning false when there are no more
// fields or an error occurred.
func (it *Fields) Next() bool {
	if it.err != nil {
		return false
	}

	if it.b != nil {
		if it.b.atEnd() {
			return false
		}
		f, err := readField(it.b, it.symtab)
		if err != nil {
			it.err = err
			return false
		}
		it.cur = f
		return true
	}

	if it.idx >= len(it.fields) {
		return false
	}
	it.cur = it.fields[it.idx]
	it.idx++
	return true
}

// Field returns the current field.
func (it *Fields) Field() Field {
	return it.cur
}

// Err returns the error that stopped the iteration, if any.
func (it *Fields) Err() error {
	return it.err
}
