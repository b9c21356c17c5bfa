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

package inspect

import "github.com/fatih/color"

// Styles are built fresh on every call so callers may add attributes to
// the result without affecting anyone else.

func headerStyle() *color.Color {
	return color.New(color.Bold)
}

func eexpStyle() *color.Color {
	return color.New(color.FgHiGreen, color.Bold)
}

func commentStyle() *color.Color {
	return color.New(color.Faint)
}

func ephemeralBytesStyle() *color.Color {
	return eexpStyle().Add(color.Faint)
}

func ephemeralValueStyle() *color.Color {
	return color.New(color.FgWhite)
}

func ephemeralFieldIDStyle() *color.Color {
	return fieldIDStyle().Add(color.Faint)
}

func textIonStyle() *color.Color {
	return color.RGB(255, 255, 255)
}

func fieldIDStyle() *color.Color {
	return color.New(color.FgHiCyan)
}

func annotationsStyle() *color.Color {
	return color.New(color.FgMagenta)
}

func ephemeralAnnotationsStyle() *color.Color {
	return annotationsStyle().Add(color.Faint)
}

// indentationStyle renders the depth guides in a muted gray.
func indentationStyle() *color.Color {
	return color.New(color.Bold).AddRGB(100, 100, 100)
}

// BytesKind identifies what a run of encoded bytes represents.
type BytesKind uint8

const (
	// MacroID is the address of the macro an e-expression invokes.
	MacroID BytesKind = iota
	// FieldID is the symbol ID that names a struct field.
	FieldID
	// Opcode is the type descriptor byte that begins a value.
	Opcode
	// TrailingLength is a length that follows the opcode as a VarUInt.
	TrailingLength
	// ValueBody is the encoded representation of a value.
	ValueBody
	// AnnotationsHeader is the opcode and lengths of an annotations wrapper.
	AnnotationsHeader
	// AnnotationsSequence is the symbol IDs of a value's annotations.
	AnnotationsSequence
	// VersionMarker is an Ion version marker.
	VersionMarker
	// NopPad is NOP padding, which encodes no data.
	NopPad
)

func (k BytesKind) String() string {
	switch k {
	case MacroID:
		return "macro id"
	case FieldID:
		return "field id"
	case Opcode:
		return "opcode"
	case TrailingLength:
		return "trailing length"
	case ValueBody:
		return "value body"
	case AnnotationsHeader:
		return "annotations header"
	case AnnotationsSequence:
		return "annotations sequence"
	case VersionMarker:
		return "version marker"
	case NopPad:
		return "nop padding"
	default:
		return "<unknown bytes>"
	}
}

// Style returns the style that bytes of kind k are printed with.
func (k BytesKind) Style() *color.Color {
	switch k {
	case VersionMarker:
		return color.New(color.FgHiYellow)
	case FieldID:
		return color.New(color.FgHiCyan)
	case Opcode:
		return color.New(color.Bold).AddRGB(0, 0, 0).AddBgRGB(255, 255, 255)
	case MacroID:
		return color.New(color.Bold).AddRGB(0, 0, 0).Add(color.BgHiGreen)
	case TrailingLength:
		return color.New(color.Bold, color.Underline, color.FgHiWhite)
	case AnnotationsHeader:
		return color.New(color.FgBlack, color.BgMagenta)
	case AnnotationsSequence:
		return color.New(color.FgMagenta)
	case NopPad:
		return color.New(color.Faint)
	default:
		return color.New(color.FgWhite)
	}
}
