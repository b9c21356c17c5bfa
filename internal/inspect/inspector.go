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

// Package inspect renders binary Ion streams as a table that shows each
// value's encoded bytes alongside its text Ion equivalent.
package inspect

import (
	"fmt"
	"strings"

	"github.com/amazon-ion/ion-inspect/ion"
	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

var fLogger logrus.FieldLogger = logrus.NewEntry(logrus.New())

// SetLogger sets the logger used to trace the walk.
func SetLogger(l logrus.FieldLogger) { fLogger = l }

// A Source yields the top-level items of a stream. *ion.Reader is one.
type Source interface {
	NextItem() (ion.StreamItem, error)
}

// commentFunc writes a trailing comment for v, reporting whether it wrote
// anything.
type commentFunc func(v *ion.Value) bool

// An Inspector walks the items of one stream, writing a row group for each.
type Inspector struct {
	out    *Output
	cfg    Config
	policy *policy
	text   *ion.TextWriter

	// ephemeralDepth counts the ephemeral containers being rendered.
	// Anything inside one is shown as ephemeral, even if it was encoded.
	ephemeralDepth int
}

// NewInspector returns an Inspector writing to out.
func NewInspector(out *Output, cfg Config) *Inspector {
	return &Inspector{
		out:    out,
		cfg:    cfg,
		policy: newPolicy(cfg),
		text:   ion.NewTextWriter(),
	}
}

// Inspect renders every item of src to out. Errors are reported with the
// name of the input.
func Inspect(name string, src Source, out *Output, cfg Config) error {
	if err := NewInspector(out, cfg).InspectTopLevel(src); err != nil {
		return fmt.Errorf("input: %s: %w", name, err)
	}
	return nil
}

// InspectTopLevel renders the stream as a table, one row group per
// top-level item.
func (in *Inspector) InspectTopLevel(src Source) error {
	in.writeTableHeader()

	first := true
	printedSkip := false
	for {
		item, err := src.NextItem()
		if err != nil {
			return err
		}
		if err := confirmEncoding(item); err != nil {
			return err
		}

		rng, hasRange := item.Range()
		fLogger.Debugf("stream item: %v %s", item.Kind, spew.Sprint(rng))

		last := item.Kind == ion.EndOfStreamItem

		action := in.selectAction(0, &printedSkip, rng, hasRange, "stream items", "ending")
		if action == Skip {
			if last {
				break
			}
			first = false
			continue
		}
		if action == LimitReached {
			break
		}

		if !first && !last && !item.IsEphemeral() {
			in.out.WriteString(rowSeparator)
		}

		switch item.Kind {
		case ion.EExpItem:
			err = in.inspectMacro(0, item.EExp)
		case ion.SymbolTableItem:
			err = in.inspectSymbolTable(item)
		case ion.ValueItem:
			if !(item.IsEphemeral() && in.cfg.HideExpansion) {
				err = in.inspectValue(0, "", item.Value, nil)
			}
		case ion.VersionMarkerItem:
			in.inspectVersionMarker(item.Marker)
		case ion.NopItem:
			in.inspectNop(0, nil, item.Nop)
		case ion.EndOfStreamItem:
			in.inspectEndOfStream(item.EndOffset)
		}
		if err != nil {
			return err
		}
		if err := in.out.Err(); err != nil {
			return err
		}
		if last {
			break
		}
		first = false
	}

	in.out.WriteString(endOfTable + "\n")
	return in.out.Err()
}

// confirmEncoding rejects the items that cannot be inspected: anything read
// from text Ion, and version markers for versions other than binary 1.0.
func confirmEncoding(item ion.StreamItem) error {
	switch item.Encoding {
	case ion.Text10, ion.Text11:
		return &ion.UnsupportedEncodingError{Encoding: item.Encoding}
	}
	if item.Kind == ion.VersionMarkerItem && item.Marker.Encoding() != ion.Binary10 {
		m := item.Marker
		return &ion.UnsupportedVersionError{Major: m.Major, Minor: m.Minor, Offset: uint64(m.Span.Offset)}
	}
	return nil
}

// selectAction decides what to do with the next item at the given depth.
// The first item skipped at each level gets a message saying so; printedSkip
// tracks that for the caller's level.
func (in *Inspector) selectAction(depth int, printedSkip *bool, rng ion.Range, hasRange bool, items, limitAction string) Action {
	action := in.chooseAction(rng, hasRange)
	fLogger.Debugf("depth %d: %v %s", depth, action, spew.Sprint(rng))

	switch action {
	case Skip:
		if !*printedSkip {
			in.writeSkippingMessage(depth, items)
			*printedSkip = true
		}
	case LimitReached:
		in.writeLimitingMessage(depth, limitAction)
	}
	return action
}

func (in *Inspector) chooseAction(rng ion.Range, hasRange bool) Action {
	if in.policy.shouldSkip(rng.End, hasRange) {
		return Skip
	}
	in.policy.skipComplete = true

	if in.policy.isPastLimit(rng.Start, hasRange) {
		return LimitReached
	}
	return Render
}

// isLiteral reports whether v should be shown with its encoding: it was
// read from the input, was not substituted for a template variable, and is
// not inside an ephemeral container.
func (in *Inspector) isLiteral(v *ion.Value) bool {
	return v.Encoded() != nil && v.Variable() == "" && in.ephemeralDepth == 0
}

func (in *Inspector) inspectVersionMarker(m *ion.VersionMarker) {
	in.newline()
	f := NewBytesFormatter(bytesPerRow, IonBytes{Kind: VersionMarker, Bytes: m.Span.Bytes})
	in.writeOffsetLengthAndBytes(0, m.Span.Offset, m.Span.Len(), f)
	in.out.Styled(VersionMarker.Style(), fmt.Sprintf("$ion_%d_%d", m.Major, m.Minor))
	in.out.Styled(commentStyle(), " // Version marker")
}

// inspectNop renders a run of NOP padding. Padding inside a struct follows
// a field ID, which shares its row.
func (in *Inspector) inspectNop(depth int, name *ion.Span, pad *ion.Span) {
	in.newline()
	start := pad.Offset
	var parts []IonBytes
	if name != nil {
		start = name.Offset
		parts = append(parts, IonBytes{Kind: FieldID, Bytes: name.Bytes})
	}
	parts = append(parts, IonBytes{Kind: NopPad, Bytes: pad.Bytes})

	f := NewBytesFormatter(bytesPerRow, parts...)
	in.writeOffsetLengthAndBytes(depth, start, pad.Range().End-start, f)
	in.out.Styled(commentStyle(), "// NOP padding")
	in.drainHeader(depth, f)
}

func (in *Inspector) inspectEndOfStream(offset int) {
	in.newline()
	in.writeOffsetLengthAndBytes(0, offset, "", NewBytesFormatter(bytesPerRow))
	in.out.Styled(commentStyle(), "// End of stream")
}

// inspectValue renders v and, recursively, its children. delimiter follows
// the value's text, and comment, if set, adds a trailing comment to v's
// first row.
func (in *Inspector) inspectValue(depth int, delimiter string, v *ion.Value, comment commentFunc) error {
	in.newline()
	if v.HasAnnotations() {
		in.inspectAnnotations(depth, v)
		in.newline()
	}

	if v.IsNull() {
		return in.inspectScalar(depth, delimiter, v, comment)
	}
	switch v.Type() {
	case ion.SexpType:
		return in.inspectSequence(depth, "(", "", ")", delimiter, v, comment)
	case ion.ListType:
		return in.inspectSequence(depth, "[", ",", "]", delimiter, v, comment)
	case ion.StructType:
		return in.inspectStruct(depth, delimiter, v, comment)
	default:
		return in.inspectScalar(depth, delimiter, v, comment)
	}
}

func (in *Inspector) inspectAnnotations(depth int, v *ion.Value) {
	enc := v.Encoded()
	if !in.isLiteral(v) || !enc.HasAnnotations() {
		in.writeBlankRow(depth)
		in.out.WithStyle(ephemeralAnnotationsStyle(), func() {
			for _, a := range v.Annotations() {
				in.out.WriteString(ion.FormatSymbol(a) + "::")
			}
		})
		return
	}

	f := NewBytesFormatter(bytesPerRow,
		IonBytes{Kind: AnnotationsHeader, Bytes: enc.AnnotationsHeader.Bytes},
		IonBytes{Kind: AnnotationsSequence, Bytes: enc.AnnotationsSequence.Bytes},
	)
	rng := enc.AnnotationsRange()
	in.writeOffsetLengthAndBytes(depth, rng.Start, rng.Len(), f)

	var sb strings.Builder
	for _, a := range v.Annotations() {
		sb.WriteString(ion.FormatSymbol(a))
		sb.WriteString("::")
	}
	in.out.Styled(annotationsStyle(), sb.String())

	in.out.WithStyle(commentStyle(), func() {
		in.out.WriteString(" // ")
		for i, a := range v.Annotations() {
			if i > 0 {
				in.out.WriteString(", ")
			}
			in.writeEncodedSymbol(a)
		}
	})

	for !f.IsEmpty() {
		in.newline()
		in.writeOffsetLengthAndBytes(depth, "", "", f)
	}
}

// writeEncodedSymbol says how a symbol was encoded: as a symbol ID or as
// inline text.
func (in *Inspector) writeEncodedSymbol(tok ion.SymbolToken) {
	if tok.HasSID() {
		in.out.Printf("$%d", tok.LocalSID)
	} else {
		in.out.WriteString("<text>")
	}
}

// formatScalar returns the text Ion form of a scalar.
func (in *Inspector) formatScalar(v *ion.Value) (string, error) {
	in.text.Reset()
	if err := in.text.WriteValue(v); err != nil {
		return "", err
	}
	return strings.TrimRight(in.text.String(), " \t\r\n"), nil
}

func (in *Inspector) inspectScalar(depth int, delimiter string, v *ion.Value, comment commentFunc) error {
	if in.isLiteral(v) {
		return in.inspectLiteralScalar(depth, delimiter, v, comment)
	}
	return in.inspectEphemeralScalar(depth, delimiter, v, comment)
}

func (in *Inspector) inspectLiteralScalar(depth int, delimiter string, v *ion.Value, comment commentFunc) error {
	enc := v.Encoded()
	f := NewBytesFormatter(bytesPerRow,
		IonBytes{Kind: Opcode, Bytes: enc.Opcode.Bytes},
		IonBytes{Kind: TrailingLength, Bytes: enc.Length.Bytes},
		IonBytes{Kind: ValueBody, Bytes: enc.Body.Bytes},
	)
	rng := enc.ValueRange()
	in.writeOffsetLengthAndBytes(depth, rng.Start, rng.Len(), f)

	text, err := in.formatScalar(v)
	if err != nil {
		return err
	}
	in.out.Styled(textIonStyle(), text+delimiter)

	in.out.WithStyle(commentStyle(), func() {
		wrote := comment != nil && comment(v)
		if sid, ok := v.SymbolID(); ok {
			if wrote {
				in.out.Printf(" ($%d)", sid)
			} else {
				in.out.Printf(" // $%d", sid)
			}
		}
	})

	for !f.IsEmpty() {
		in.newline()
		in.writeOffsetLengthAndBytes(depth, "", "", f)
	}
	return nil
}

func (in *Inspector) inspectEphemeralScalar(depth int, delimiter string, v *ion.Value, comment commentFunc) error {
	text, err := in.formatScalar(v)
	if err != nil {
		return err
	}

	style := ephemeralValueStyle()
	if name := v.Variable(); name != "" {
		in.writeOffsetLengthAndBytesComment(depth, "", "", name)
		style.Add(color.Underline)
	} else {
		in.writeBlankRow(depth)
	}

	in.out.Styled(style, text)
	in.out.Styled(ephemeralValueStyle(), delimiter)
	in.writeComment(v, comment)
	return nil
}

// openContainer writes the row that opens a container. For an ephemeral
// container it returns a function that must be called once its children
// have been rendered.
func (in *Inspector) openContainer(depth int, v *ion.Value, opening string, comment commentFunc) (literal bool, done func()) {
	if in.isLiteral(v) {
		f := in.writeContainerHeader(depth, v.Encoded())
		in.out.Styled(textIonStyle(), opening)
		in.writeComment(v, comment)
		in.drainHeader(depth, f)
		return true, func() {}
	}

	in.writeBlankRow(depth)
	in.out.Styled(ephemeralValueStyle(), opening)
	in.writeComment(v, comment)
	in.ephemeralDepth++
	return false, func() { in.ephemeralDepth-- }
}

func (in *Inspector) writeComment(v *ion.Value, comment commentFunc) {
	if comment == nil {
		return
	}
	in.out.WithStyle(commentStyle(), func() {
		comment(v)
	})
}

// writeContainerHeader writes the offset, length and header bytes of a
// container. The Length column counts only the header: the container's
// children report their own bytes.
func (in *Inspector) writeContainerHeader(depth int, enc *ion.EncodedValue) *BytesFormatter {
	f := NewBytesFormatter(bytesPerRow,
		IonBytes{Kind: Opcode, Bytes: enc.Opcode.Bytes},
		IonBytes{Kind: TrailingLength, Bytes: enc.Length.Bytes},
	)
	rng := enc.HeaderRange()
	in.writeOffsetLengthAndBytes(depth, rng.Start, rng.Len(), f)
	return f
}

func (in *Inspector) drainHeader(depth int, f *BytesFormatter) {
	for !f.IsEmpty() {
		in.newline()
		in.writeOffsetLengthAndBytes(depth, "", "", f)
	}
}

func (in *Inspector) closeContainer(depth int, literal bool, text string) {
	in.newline()
	in.writeBlankRow(depth)
	if literal {
		in.out.Styled(textIonStyle(), text)
	} else {
		in.out.Styled(ephemeralValueStyle(), text)
	}
}

func (in *Inspector) inspectSequence(depth int, opening, valueDelimiter, closing, trailing string, v *ion.Value, comment commentFunc) error {
	literal, done := in.openContainer(depth, v, opening, comment)
	defer done()

	if err := in.inspectSequenceBody(depth+1, valueDelimiter, v.Elements(), nil); err != nil {
		return err
	}

	in.closeContainer(depth, literal, closing+trailing)
	return nil
}

func (in *Inspector) inspectSequenceBody(depth int, delimiter string, it *ion.Elements, comment func() commentFunc) error {
	printedSkip := false
	for it.Next() {
		e := it.Expr()
		rng, hasRange := e.Range()

		action := in.selectAction(depth, &printedSkip, rng, hasRange, "values", "stepping out")
		if action == Skip {
			continue
		}
		if action == LimitReached {
			break
		}

		var err error
		if e.IsNop() {
			in.inspectNop(depth, nil, e.Nop)
		} else if e.IsMacro() {
			err = in.inspectMacro(depth, e.Macro)
		} else {
			var c commentFunc
			if comment != nil {
				c = comment()
			}
			err = in.inspectValue(depth, delimiter, e.Value, c)
		}
		if err != nil {
			return err
		}
	}
	return it.Err()
}

func (in *Inspector) inspectStruct(depth int, delimiter string, v *ion.Value, comment commentFunc) error {
	literal, done := in.openContainer(depth, v, "{", comment)
	defer done()

	if err := in.inspectStructBody(depth, v.Fields()); err != nil {
		return err
	}

	in.closeContainer(depth, literal, "}"+delimiter)
	return nil
}

func (in *Inspector) inspectStructBody(depth int, it *ion.Fields) error {
	printedSkip := false
	for it.Next() {
		f := it.Field()
		rng, hasRange := f.Range()

		action := in.selectAction(depth+1, &printedSkip, rng, hasRange, "fields", "stepping out")
		if action == Skip {
			continue
		}
		if action == LimitReached {
			break
		}
		if err := in.inspectField(depth+1, f); err != nil {
			return err
		}
	}
	return it.Err()
}

func (in *Inspector) inspectField(depth int, f ion.Field) error {
	if f.Value.IsNop() {
		in.inspectNop(depth, f.Name.Span, f.Value.Nop)
		return nil
	}
	in.inspectFieldName(depth, f.Name)
	if f.Value.IsMacro() {
		return in.inspectMacro(depth, f.Value.Macro)
	}
	return in.inspectValue(depth, ",", f.Value.Value, nil)
}

func (in *Inspector) inspectFieldName(depth int, name ion.FieldName) {
	in.newline()
	text := ion.FormatSymbol(name.Token)

	if name.IsEphemeral() || in.ephemeralDepth > 0 {
		in.writeBlankRow(depth)
		in.out.Styled(ephemeralFieldIDStyle(), text)
		in.out.WriteString(": ")
		return
	}

	f := NewBytesFormatter(bytesPerRow, IonBytes{Kind: FieldID, Bytes: name.Span.Bytes})
	in.writeOffsetLengthAndBytes(depth, name.Span.Offset, name.Span.Len(), f)
	in.out.Styled(fieldIDStyle(), text)
	in.out.WriteString(": ")
	in.out.WithStyle(commentStyle(), func() {
		in.out.WriteString(" // ")
		in.writeEncodedSymbol(name.Token)
	})
	in.drainHeader(depth, f)
}

// inspectSymbolTable renders a local symbol table. It is laid out like any
// other struct, except that the entries of its symbols list are annotated
// with the symbol IDs they define.
func (in *Inspector) inspectSymbolTable(item ion.StreamItem) error {
	fLogger.WithFields(logrus.Fields{
		"imports":  len(item.Table.Imports()),
		"symbols":  len(item.Table.Symbols()),
		"first_id": ion.FirstLocalID(item.Table),
		"max_id":   item.Table.MaxID(),
	}).Debugf("symbol table: %v", item.Table)

	v := item.Value
	if v.IsNull() || !in.isLiteral(v) {
		return in.inspectValue(0, "", v, nil)
	}

	if v.HasAnnotations() {
		in.newline()
		in.inspectAnnotations(0, v)
	}

	in.newline()
	f := in.writeContainerHeader(0, v.Encoded())
	in.out.Styled(textIonStyle(), "{")
	in.drainHeader(0, f)

	printedSkip := false
	it := v.Fields()
	for it.Next() {
		field := it.Field()
		rng, hasRange := field.Range()

		action := in.selectAction(1, &printedSkip, rng, hasRange, "fields", "stepping out")
		if action == Skip {
			continue
		}
		if action == LimitReached {
			break
		}

		var err error
		if isSymbolsField(field) {
			err = in.inspectSymbolsField(item, field)
		} else {
			err = in.inspectField(1, field)
		}
		if err != nil {
			return err
		}
	}
	if err := it.Err(); err != nil {
		return err
	}

	in.closeContainer(0, true, "}")
	return nil
}

func isSymbolsField(f ion.Field) bool {
	text := f.Name.Token.Text
	return text != nil && *text == "symbols" && f.Value.Value != nil
}

func (in *Inspector) inspectSymbolsField(item ion.StreamItem, field ion.Field) error {
	const depth = 1

	in.inspectFieldName(depth, field.Name)

	list := field.Value.Value
	if list.Type() != ion.ListType || list.IsNull() || !in.isLiteral(list) {
		return in.inspectValue(depth, ",", list, func(*ion.Value) bool {
			in.out.WriteString(" // Invalid, ignored")
			return true
		})
	}

	in.newline()
	if list.HasAnnotations() {
		in.inspectAnnotations(depth, list)
		in.newline()
	}
	f := in.writeContainerHeader(depth, list.Encoded())
	in.out.Styled(textIonStyle(), "[")
	in.drainHeader(depth, f)

	next := ion.FirstLocalID(item.Table)
	if ion.IsAppend(item.Value) && item.Prior != nil {
		next = item.Prior.MaxID() + 1
	}

	// Every entry defines a symbol ID, whether or not it is shown.
	nextComment := func() commentFunc {
		sid := next
		next++
		return func(v *ion.Value) bool {
			if v.Type() == ion.StringType && !v.IsNull() {
				in.out.Printf(" // -> $%d", sid)
			} else {
				in.out.Printf(" // -> $%d (no text)", sid)
			}
			return true
		}
	}

	if err := in.inspectSymbolsBody(depth+1, list.Elements(), nextComment); err != nil {
		return err
	}

	in.closeContainer(depth, true, "],")
	return nil
}

// inspectSymbolsBody renders the entries of a symbols list. Unlike other
// sequences, skipped entries still consume a symbol ID.
func (in *Inspector) inspectSymbolsBody(depth int, it *ion.Elements, nextComment func() commentFunc) error {
	printedSkip := false
	for it.Next() {
		e := it.Expr()
		var comment commentFunc
		if !e.IsNop() {
			comment = nextComment()
		}
		rng, hasRange := e.Range()

		action := in.selectAction(depth, &printedSkip, rng, hasRange, "values", "stepping out")
		if action == Skip {
			continue
		}
		if action == LimitReached {
			break
		}

		var err error
		if e.IsNop() {
			in.inspectNop(depth, nil, e.Nop)
		} else if e.IsMacro() {
			err = in.inspectMacro(depth, e.Macro)
		} else {
			err = in.inspectValue(depth, ",", e.Value, comment)
		}
		if err != nil {
			return err
		}
	}
	return it.Err()
}

// inspectMacro renders an e-expression and its arguments, or an argument
// group.
func (in *Inspector) inspectMacro(depth int, m *ion.MacroInvocation) error {
	if m.Kind == ion.ArgGroup {
		return in.inspectArgGroup(depth, m)
	}

	in.newline()
	if m.Span != nil && in.ephemeralDepth == 0 {
		f := NewBytesFormatter(bytesPerRow, IonBytes{Kind: MacroID, Bytes: m.Address.Bytes})
		in.writeOffsetLengthAndBytes(depth, m.Span.Offset, m.Address.Len(), f)
	} else {
		in.writeBlankRow(depth)
	}
	in.out.Styled(eexpStyle(), "(:"+m.Macro.IDText())

	if err := in.inspectArgs(depth+1, m); err != nil {
		return err
	}

	in.writeTextOnlyLine(depth, eexpStyle(), ")")
	return nil
}

func (in *Inspector) inspectArgGroup(depth int, m *ion.MacroInvocation) error {
	in.newline()
	in.writeBlankRow(depth)
	in.out.Styled(eexpStyle(), "(::")

	if err := in.inspectArgs(depth+1, m); err != nil {
		return err
	}

	in.writeTextOnlyLine(depth, eexpStyle(), ")")
	return nil
}

func (in *Inspector) inspectArgs(depth int, m *ion.MacroInvocation) error {
	for i, arg := range m.Args {
		if arg.IsMacro() {
			if err := in.inspectMacro(depth, arg.Macro); err != nil {
				return err
			}
			continue
		}

		var comment commentFunc
		if name := m.ParamName(i); name != "" {
			comment = func(*ion.Value) bool {
				in.out.Printf(" // %s", name)
				return true
			}
		}
		if err := in.inspectValue(depth, "", arg.Value, comment); err != nil {
			return err
		}
	}
	return nil
}
