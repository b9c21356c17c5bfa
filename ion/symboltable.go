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
	"strings"
)

// A SymbolTable maps binary-representation symbol IDs to
// text-representation strings and vice versa.
type SymbolTable interface {
	// Imports returns the symbol tables this table imports.
	Imports() []SharedSymbolTable
	// Symbols returns the symbols this symbol table defines. Slots with
	// no known text are returned as empty strings.
	Symbols() []string
	// MaxID returns the maximum ID this symbol table defines.
	MaxID() uint64
	// FindByID finds the name of a symbol given its ID.
	FindByID(id uint64) (string, bool)
	// String returns an ion text representation of the symbol table.
	String() string
}

// A SharedSymbolTable is distributed out-of-band and referenced from
// a local SymbolTable to save space.
type SharedSymbolTable interface {
	SymbolTable

	// Name returns the name of this shared symbol table.
	Name() string
	// Version returns the version of this shared symbol table.
	Version() int
	// Adjust returns a new shared symbol table limited or extended to the given max ID.
	Adjust(maxID uint64) SharedSymbolTable
}

type sst struct {
	name    string
	version int
	symbols []string
	maxID   uint64
}

// NewSharedSymbolTable creates a new shared symbol table.
func NewSharedSymbolTable(name string, version int, symbols []string) SharedSymbolTable {
	syms := make([]string, len(symbols))
	copy(syms, symbols)

	return &sst{
		name:    name,
		version: version,
		symbols: syms,
		maxID:   uint64(len(syms)),
	}
}

func (s *sst) Name() string {
	return s.name
}

func (s *sst) Version() int {
	return s.version
}

func (s *sst) Imports() []SharedSymbolTable {
	return nil
}

func (s *sst) Symbols() []string {
	syms := make([]string, s.maxID)
	copy(syms, s.symbols)
	return syms
}

func (s *sst) MaxID() uint64 {
	return s.maxID
}

func (s *sst) Adjust(maxID uint64) SharedSymbolTable {
	if maxID == s.maxID {
		return s
	}

	if maxID > uint64(len(s.symbols)) {
		// Slots past the known symbols have no text.
		return &sst{
			name:    s.name,
			version: s.version,
			symbols: s.symbols,
			maxID:   maxID,
		}
	}

	return &sst{
		name:    s.name,
		version: s.version,
		symbols: s.symbols[:maxID],
		maxID:   maxID,
	}
}

func (s *sst) FindByID(id uint64) (string, bool) {
	if id <= 0 || id > uint64(len(s.symbols)) {
		return "", false
	}
	return s.symbols[id-1], true
}

func (s *sst) String() string {
	return fmt.Sprintf("$ion_shared_symbol_table::{name:%q,version:%d,max_id:%d}", s.name, s.version, s.maxID)
}

// V1SystemSymbolTable is the (implied) system symbol table for Ion v1.0.
var V1SystemSymbolTable = NewSharedSymbolTable("$ion", 1, []string{
	"$ion",
	"$ion_1_0",
	"$ion_symbol_table",
	"name",
	"version",
	"imports",
	"symbols",
	"max_id",
	"$ion_shared_symbol_table",
})

// SystemSymbolTable returns the system symbol table in force for the given encoding.
func SystemSymbolTable(enc Encoding) SharedSymbolTable {
	// Only the 1.0 system symbols are needed to read binary 1.0 streams.
	return V1SystemSymbolTable
}

// A bogusSST represents an SST imported by an LST that cannot be found in the
// catalog. It exists to reserve some part of the symbol ID space so other
// symbol tables get mapped to the right IDs.
type bogusSST struct {
	name    string
	version int
	maxID   uint64
}

var _ SharedSymbolTable = &bogusSST{}

func (s *bogusSST) Name() string {
	return s.name
}

func (s *bogusSST) Version() int {
	return s.version
}

func (s *bogusSST) Imports() []SharedSymbolTable {
	return nil
}

func (s *bogusSST) Symbols() []string {
	return nil
}

func (s *bogusSST) MaxID() uint64 {
	return s.maxID
}

func (s *bogusSST) Adjust(maxID uint64) SharedSymbolTable {
	return &bogusSST{
		name:    s.name,
		version: s.version,
		maxID:   maxID,
	}
}

func (s *bogusSST) FindByID(id uint64) (string, bool) {
	return "", false
}

func (s *bogusSST) String() string {
	return fmt.Sprintf("$ion_shared_symbol_table::bogus::{name:%q,version:%d,max_id:%d}", s.name, s.version, s.maxID)
}

// A lst is a local symbol table, transmitted in-band along with the binary
// data it describes. It may include SharedSymbolTables by reference. A nil
// entry in symbols reserves an ID whose text is unknown.
type lst struct {
	imports     []SharedSymbolTable
	offsets     []uint64
	maxImportID uint64

	symbols []*string
}

func newLocalSymbolTable(imports []SharedSymbolTable, symbols []*string) *lst {
	imps, offsets, maxID := processImports(imports)
	syms := make([]*string, len(symbols))
	copy(syms, symbols)

	return &lst{
		imports:     imps,
		offsets:     offsets,
		maxImportID: maxID,
		symbols:     syms,
	}
}

// extend returns a copy of t with the given symbols appended.
func (t *lst) extend(symbols []*string) *lst {
	syms := make([]*string, 0, len(t.symbols)+len(symbols))
	syms = append(syms, t.symbols...)
	syms = append(syms, symbols...)
	return newLocalSymbolTable(t.imports, syms)
}

func (t *lst) Imports() []SharedSymbolTable {
	imps := make([]SharedSymbolTable, len(t.imports))
	copy(imps, t.imports)
	return imps
}

func (t *lst) Symbols() []string {
	syms := make([]string, len(t.symbols))
	for i, sym := range t.symbols {
		if sym != nil {
			syms[i] = *sym
		}
	}
	return syms
}

func (t *lst) MaxID() uint64 {
	return t.maxImportID + uint64(len(t.symbols))
}

func (t *lst) FindByID(id uint64) (string, bool) {
	if id <= 0 {
		return "", false
	}
	if id <= t.maxImportID {
		return t.findByIDInImports(id)
	}

	// Local to this symbol table.
	idx := id - t.maxImportID - 1
	if idx < uint64(len(t.symbols)) && t.symbols[idx] != nil {
		return *t.symbols[idx], true
	}

	return "", false
}

func (t *lst) findByIDInImports(id uint64) (string, bool) {
	i := 1
	off := uint64(0)

	for ; i < len(t.imports); i++ {
		if id <= t.offsets[i] {
			break
		}
		off = t.offsets[i]
	}

	return t.imports[i-1].FindByID(id - off)
}

func (t *lst) String() string {
	buf := strings.Builder{}
	buf.WriteString("$ion_symbol_table::{")

	imps := t.imports
	if len(imps) > 0 && imps[0].Name() == "$ion" {
		imps = imps[1:]
	}
	if len(imps) > 0 {
		buf.WriteString("imports:[")
		for i, imp := range imps {
			if i > 0 {
				buf.WriteString(",")
			}
			fmt.Fprintf(&buf, "{name:%q,version:%d,max_id:%d}", imp.Name(), imp.Version(), imp.MaxID())
		}
		buf.WriteString("],")
	}

	buf.WriteString("symbols:[")
	for i, sym := range t.symbols {
		if i > 0 {
			buf.WriteString(",")
		}
		if sym == nil {
			buf.WriteString("null")
		} else {
			fmt.Fprintf(&buf, "%q", *sym)
		}
	}
	buf.WriteString("]}")

	return buf.String()
}

// FirstLocalID returns the first symbol ID that the local symbols of t are
// assigned, which is one past the IDs taken by the system table and imports.
func FirstLocalID(t SymbolTable) uint64 {
	imps := t.Imports()
	if len(imps) == 0 {
		return t.MaxID() + 1
	}
	id := uint64(1)
	for _, imp := range imps {
		id += imp.MaxID()
	}
	return id
}

// processImports processes a slice of imports, returning an (augmented) copy, a set of
// offsets for each import, and the overall max ID.
func processImports(imports []SharedSymbolTable) ([]SharedSymbolTable, []uint64, uint64) {
	// Add in V1SystemSymbolTable at the head of the list if it's not already included.
	var imps []SharedSymbolTable
	if len(imports) > 0 && imports[0].Name() == "$ion" {
		imps = make([]SharedSymbolTable, len(imports))
		copy(imps, imports)
	} else {
		imps = make([]SharedSymbolTable, len(imports)+1)
		imps[0] = V1SystemSymbolTable
		copy(imps[1:], imports)
	}

	maxID := uint64(0)
	offsets := make([]uint64, len(imps))
	for i, imp := range imps {
		offsets[i] = maxID
		maxID += imp.MaxID()
	}

	return imps, offsets, maxID
}
