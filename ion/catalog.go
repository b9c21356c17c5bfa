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

// A Catalog provides access to shared symbol tables. The Reader consults it
// when a local symbol table imports a shared table by name.
type Catalog interface {
	FindExact(name string, version int) SharedSymbolTable
	FindLatest(name string) SharedSymbolTable
}

type catalogKey struct {
	name    string
	version int
}

// A memoryCatalog is an in-memory collection of shared symbol tables.
type memoryCatalog struct {
	tables map[catalogKey]SharedSymbolTable
	latest map[string]SharedSymbolTable
}

// NewCatalog creates a new in-memory catalog containing the given symbol tables.
func NewCatalog(ssts ...SharedSymbolTable) Catalog {
	cat := &memoryCatalog{
		tables: make(map[catalogKey]SharedSymbolTable, len(ssts)),
		latest: make(map[string]SharedSymbolTable, len(ssts)),
	}
	for _, t := range ssts {
		cat.tables[catalogKey{t.Name(), t.Version()}] = t
		if cur, ok := cat.latest[t.Name()]; !ok || t.Version() > cur.Version() {
			cat.latest[t.Name()] = t
		}
	}
	return cat
}

func (c *memoryCatalog) FindExact(name string, version int) SharedSymbolTable {
	return c.tables[catalogKey{name, version}]
}

func (c *memoryCatalog) FindLatest(name string) SharedSymbolTable {
	return c.latest[name]
}

// resolveImport finds the table an import refers to, reserving maxID slots
// with a placeholder table when the catalog does not have it. A negative
// maxID means the import did not declare one.
func resolveImport(cat Catalog, name string, version int, maxID int64) (SharedSymbolTable, error) {
	if version < 1 {
		version = 1
	}

	var imp SharedSymbolTable
	if cat != nil {
		imp = cat.FindExact(name, version)
		if imp == nil {
			imp = cat.FindLatest(name)
		}
	}

	if maxID < 0 {
		if imp == nil || version != imp.Version() {
			return nil, &SyntaxError{
				Msg: "import of shared table " + name + " lacks a valid max_id and is not in the catalog",
			}
		}
		maxID = int64(imp.MaxID())
	}

	if imp == nil {
		return &bogusSST{name: name, version: version, maxID: uint64(maxID)}, nil
	}
	return imp.Adjust(uint64(maxID)), nil
}
