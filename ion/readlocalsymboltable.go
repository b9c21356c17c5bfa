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

import "fmt"

// readLocalSymbolTable builds the symbol table declared by a top-level
// $ion_symbol_table struct. prior is the table in force before it.
func readLocalSymbolTable(v *Value, prior SymbolTable, cat Catalog) (SymbolTable, error) {
	var imps []SharedSymbolTable
	var syms []*string

	appending := false
	foundImport := false
	foundLocals := false

	it := v.Fields()
	for it.Next() {
		f := it.Field()
		if f.Name.Token.Text == nil || f.Value.Value == nil {
			continue
		}

		var err error
		switch *f.Name.Token.Text {
		case "symbols":
			if foundLocals {
				return nil, fmt.Errorf("ion: multiple symbol fields found within a single local symbol table")
			}
			foundLocals = true
			syms, err = readSymbols(f.Value.Value)
		case "imports":
			if foundImport {
				return nil, fmt.Errorf("ion: multiple imports fields found within a single local symbol table")
			}
			foundImport = true
			appending, imps, err = readImports(f.Value.Value, cat)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := it.Err(); err != nil {
		return nil, err
	}

	if appending {
		if l, ok := prior.(*lst); ok {
			return l.extend(syms), nil
		}
		return newLocalSymbolTable(nil, syms), nil
	}
	return newLocalSymbolTable(imps, syms), nil
}

// IsAppend reports whether a symbol table struct appends to the current
// table, which it does by importing the symbol $ion_symbol_table.
func IsAppend(v *Value) bool {
	it := v.Fields()
	for it.Next() {
		f := it.Field()
		if f.Name.Token.Text == nil || *f.Name.Token.Text != "imports" || f.Value.Value == nil {
			continue
		}
		return isAppendImport(f.Value.Value)
	}
	return false
}

func isAppendImport(v *Value) bool {
	if v.Type() != SymbolType || v.IsNull() {
		return false
	}
	tok := v.scalar.(SymbolToken)
	return tok.Text != nil && *tok.Text == "$ion_symbol_table"
}

// readImports reads the imports field of a local symbol table.
func readImports(v *Value, cat Catalog) (bool, []SharedSymbolTable, error) {
	if isAppendImport(v) {
		return true, nil, nil
	}
	if v.Type() != ListType || v.IsNull() {
		return false, nil, nil
	}

	var imps []SharedSymbolTable
	it := v.Elements()
	for it.Next() {
		e := it.Expr().Value
		if e == nil {
			continue
		}
		imp, err := readImport(e, cat)
		if err != nil {
			return false, nil, err
		}
		if imp != nil {
			imps = append(imps, imp)
		}
	}
	return false, imps, it.Err()
}

// readImport reads an import definition.
func readImport(v *Value, cat Catalog) (SharedSymbolTable, error) {
	if v.Type() != StructType || v.IsNull() {
		return nil, nil
	}

	name := ""
	version := -1
	maxID := int64(-1)

	it := v.Fields()
	for it.Next() {
		f := it.Field()
		fv := f.Value.Value
		if f.Name.Token.Text == nil || fv == nil || fv.IsNull() {
			continue
		}

		switch *f.Name.Token.Text {
		case "name":
			if s, err := fv.StringValue(); err == nil {
				name = s
			}
		case "version":
			if n, err := fv.IntValue(); err == nil && n.IsInt64() {
				version = int(n.Int64())
			}
		case "max_id":
			if n, err := fv.IntValue(); err == nil && n.IsInt64() {
				maxID = n.Int64()
			}
		}
	}
	if err := it.Err(); err != nil {
		return nil, err
	}

	if name == "" || name == "$ion" {
		return nil, nil
	}
	return resolveImport(cat, name, version, maxID)
}

// readSymbols reads the symbols field of a local symbol table. Entries that
// are not strings reserve a symbol ID with unknown text.
func readSymbols(v *Value) ([]*string, error) {
	if v.Type() != ListType || v.IsNull() {
		return nil, nil
	}

	var syms []*string
	it := v.Elements()
	for it.Next() {
		if it.Expr().IsNop() {
			continue
		}
		e := it.Expr().Value
		if e != nil && e.Type() == StringType && !e.IsNull() {
			s := e.scalar.(string)
			syms = append(syms, &s)
		} else {
			syms = append(syms, nil)
		}
	}
	return syms, it.Err()
}
