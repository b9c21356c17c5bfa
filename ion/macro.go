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

import "strconv"

// A Parameter is a named formal parameter of a macro.
type Parameter struct {
	Name string
}

// A Macro is a template that expands into zero or more values. Macros are
// referred to by name when they have one and by address otherwise.
type Macro struct {
	Name    string
	Address int
	Params  []Parameter
}

// IDText returns the macro's name, or its address if it is anonymous.
func (m *Macro) IDText() string {
	if m.Name != "" {
		return m.Name
	}
	return strconv.Itoa(m.Address)
}

// MacroKind distinguishes e-expressions from argument groups.
type MacroKind uint8

const (
	// EExpression is a macro invocation found in the data stream.
	EExpression MacroKind = iota
	// ArgGroup is a group of expressions passed together as a single
	// argument of an e-expression.
	ArgGroup
)

func (k MacroKind) String() string {
	if k == ArgGroup {
		return "argument group"
	}
	return "e-expression"
}

// A MacroInvocation is an unexpanded call of a macro, or an argument group
// within one. Args holds one expression per parameter of an e-expression,
// or the grouped expressions of an argument group.
type MacroInvocation struct {
	Kind  MacroKind
	Macro *Macro
	Args  []Expr

	// Span covers the whole invocation; it is nil for invocations that are
	// not backed by input bytes.
	Span *Span
	// Address holds the bytes that identify the invoked macro.
	Address Span
}

// NewEExp returns an e-expression invoking m with the given arguments.
// span and address describe the invocation's bytes in the input; span may
// be nil.
func NewEExp(m *Macro, span *Span, address Span, args ...Expr) *MacroInvocation {
	return &MacroInvocation{
		Kind:    EExpression,
		Macro:   m,
		Args:    args,
		Span:    span,
		Address: address,
	}
}

// NewArgGroup returns an argument group holding the given expressions.
func NewArgGroup(span *Span, args ...Expr) *MacroInvocation {
	return &MacroInvocation{
		Kind: ArgGroup,
		Args: args,
		Span: span,
	}
}

// Range returns the byte range of the invocation, if it has one.
func (m *MacroInvocation) Range() (Range, bool) {
	if m.Span == nil {
		return Range{}, false
	}
	return m.Span.Range(), true
}

// ParamName returns the name of the i-th parameter, or "" if the macro
// declares fewer parameters.
func (m *MacroInvocation) ParamName(i int) string {
	if m.Macro == nil || i >= len(m.Macro.Params) {
		return ""
	}
	return m.Macro.Params[i].Name
}
