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

// ItemKind identifies the kind of a top-level StreamItem.
type ItemKind uint8

const (
	// VersionMarkerItem is an Ion version marker.
	VersionMarkerItem ItemKind = iota + 1
	// SymbolTableItem is a local symbol table, which has already been
	// installed by the time it is returned.
	SymbolTableItem
	// ValueItem is an ordinary user value.
	ValueItem
	// EExpItem is an e-expression found at the top level.
	EExpItem
	// NopItem is a run of NOP padding between top-level values.
	NopItem
	// EndOfStreamItem marks the end of the input.
	EndOfStreamItem
)

func (k ItemKind) String() string {
	switch k {
	case VersionMarkerItem:
		return "version marker"
	case SymbolTableItem:
		return "symbol table"
	case ValueItem:
		return "value"
	case EExpItem:
		return "e-expression"
	case NopItem:
		return "nop padding"
	case EndOfStreamItem:
		return "end of stream"
	default:
		return "<unknown item>"
	}
}

// A VersionMarker is an Ion version marker.
type VersionMarker struct {
	Major int
	Minor int
	Span  Span
}

// Encoding returns the binary encoding the marker introduces.
func (m *VersionMarker) Encoding() Encoding {
	if m.Major == 1 && m.Minor == 1 {
		return Binary11
	}
	return Binary10
}

// A StreamItem is one top-level entry of a stream. Which of the pointer
// fields is set depends on Kind.
type StreamItem struct {
	Kind     ItemKind
	Encoding Encoding

	Marker *VersionMarker
	Value  *Value
	EExp   *MacroInvocation
	Nop    *Span

	// EndOffset is the position of the end of the stream.
	EndOffset int

	// Table is the symbol table a SymbolTableItem installed, and Prior the
	// one that was in force before it.
	Table SymbolTable
	Prior SymbolTable
}

// NewValueItem returns a value item wrapping v.
func NewValueItem(v *Value) StreamItem {
	return StreamItem{Kind: ValueItem, Encoding: Binary11, Value: v}
}

// NewEExpItem returns a top-level e-expression item.
func NewEExpItem(m *MacroInvocation) StreamItem {
	return StreamItem{Kind: EExpItem, Encoding: Binary11, EExp: m}
}

// Range returns the byte range of the item, if it has one.
func (i StreamItem) Range() (Range, bool) {
	switch i.Kind {
	case VersionMarkerItem:
		return i.Marker.Span.Range(), true
	case SymbolTableItem, ValueItem:
		return i.Value.Range()
	case EExpItem:
		return i.EExp.Range()
	case NopItem:
		return i.Nop.Range(), true
	default:
		return Range{}, false
	}
}

// IsEphemeral returns true for values that were produced by a macro
// expansion rather than read from the input.
func (i StreamItem) IsEphemeral() bool {
	return i.Kind == ValueItem && i.Value.IsEphemeral()
}
