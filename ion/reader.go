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
	"bytes"
	"io"
)

// A ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithCatalog sets the catalog used to resolve the shared symbol tables that
// local symbol tables import.
func WithCatalog(cat Catalog) ReaderOption {
	return func(r *Reader) {
		r.cat = cat
	}
}

// A Reader reads the top-level items of a binary Ion stream, reporting for
// each one the bytes it was encoded with.
//
//	r := ion.NewReaderBytes(data)
//	for {
//		item, err := r.NextItem()
//		if err != nil {
//			return err
//		}
//		if item.Kind == ion.EndOfStreamItem {
//			break
//		}
//		...
//	}
type Reader struct {
	data []byte
	b    *bitstream
	cat  Catalog

	enc    Encoding
	symtab SymbolTable

	started bool
	err     error
}

// NewReaderBytes creates a Reader over the given bytes.
func NewReaderBytes(data []byte, opts ...ReaderOption) *Reader {
	r := &Reader{
		data:   data,
		b:      newBitstream(data, 0, len(data)),
		symtab: V1SystemSymbolTable,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.cat == nil {
		r.cat = NewCatalog()
	}
	return r
}

// NewReader creates a Reader that reads all of in. Every Span the Reader
// hands out refers to that single buffer.
func NewReader(in io.Reader, opts ...ReaderOption) (*Reader, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(in); err != nil {
		return nil, &IOError{err}
	}
	return NewReaderBytes(buf.Bytes(), opts...), nil
}

// Encoding returns the encoding of the stream as of the last item read.
func (r *Reader) Encoding() Encoding {
	return r.enc
}

// SymbolTable returns the symbol table currently in force.
func (r *Reader) SymbolTable() SymbolTable {
	return r.symtab
}

// NextItem returns the next top-level item of the stream. Once the input is
// exhausted it returns an EndOfStreamItem on every call. Errors are sticky.
func (r *Reader) NextItem() (StreamItem, error) {
	if r.err != nil {
		return StreamItem{}, r.err
	}

	item, err := r.next()
	if err != nil {
		r.err = err
		return StreamItem{}, err
	}
	return item, nil
}

func (r *Reader) next() (StreamItem, error) {
	if !r.started {
		r.started = true
		if len(r.data) > 0 && r.data[0] != 0xE0 {
			r.enc = Text10
			return StreamItem{}, &UnsupportedEncodingError{Text10}
		}
		r.enc = Binary10
	}

	if r.b.atEnd() {
		return StreamItem{Kind: EndOfStreamItem, Encoding: r.enc, EndOffset: len(r.data)}, nil
	}

	if r.data[r.b.pos] == 0xE0 {
		return r.readVersionMarker()
	}

	e, err := readOne(r.b, r.symtab)
	if err != nil {
		return StreamItem{}, err
	}
	if e.Nop != nil {
		return StreamItem{Kind: NopItem, Encoding: r.enc, Nop: e.Nop}, nil
	}

	v := e.Value
	if isSymbolTable(v) {
		prior := r.symtab
		table, err := readLocalSymbolTable(v, prior, r.cat)
		if err != nil {
			return StreamItem{}, err
		}
		r.symtab = table
		return StreamItem{Kind: SymbolTableItem, Encoding: r.enc, Value: v, Table: table, Prior: prior}, nil
	}

	return StreamItem{Kind: ValueItem, Encoding: r.enc, Value: v}, nil
}

// readVersionMarker reads an Ion version marker and resets the symbol table.
func (r *Reader) readVersionMarker() (StreamItem, error) {
	start := r.b.pos
	s, err := r.b.readN("version marker", 4)
	if err != nil {
		return StreamItem{}, err
	}
	if s.Bytes[3] != 0xEA {
		return StreamItem{}, &SyntaxError{"invalid binary version marker", uint64(start)}
	}

	m := &VersionMarker{Major: int(s.Bytes[1]), Minor: int(s.Bytes[2]), Span: s}
	switch {
	case m.Major == 1 && m.Minor == 0:
		r.enc = Binary10
		r.symtab = SystemSymbolTable(Binary10)
	case m.Major == 1 && m.Minor == 1:
		// The marker itself is reported so callers can see what they were
		// handed, but nothing after it can be read.
		r.enc = Binary11
		r.err = &UnsupportedVersionError{m.Major, m.Minor, uint64(start)}
	default:
		return StreamItem{}, &UnsupportedVersionError{m.Major, m.Minor, uint64(start)}
	}

	return StreamItem{Kind: VersionMarkerItem, Encoding: r.enc, Marker: m}, nil
}

// isSymbolTable returns true if v is a local symbol table: a struct whose
// first annotation is $ion_symbol_table. A null.struct so annotated resets
// the table to the system symbols.
func isSymbolTable(v *Value) bool {
	if v.Type() != StructType || !v.HasAnnotations() {
		return false
	}
	ann := v.Annotations()[0]
	return ann.Text != nil && *ann.Text == "$ion_symbol_table"
}
