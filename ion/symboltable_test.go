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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemSymbolTable(t *testing.T) {
	st := SystemSymbolTable(Binary10)
	assert.Equal(t, uint64(9), st.MaxID())

	sym, ok := st.FindByID(3)
	require.True(t, ok)
	assert.Equal(t, "$ion_symbol_table", sym)

	_, ok = st.FindByID(10)
	assert.False(t, ok)
	assert.Equal(t, uint64(10), FirstLocalID(st))
}

func TestLocalSymbolTable(t *testing.T) {
	foo := NewSharedSymbolTable("foo", 1, []string{"a", "b"})
	c, a := "c", "a"
	st := newLocalSymbolTable([]SharedSymbolTable{foo}, []*string{&c, &a})

	assert.Equal(t, uint64(13), st.MaxID())
	assert.Equal(t, uint64(12), FirstLocalID(st))
	assert.Equal(t, []string{"c", "a"}, st.Symbols())
	require.Len(t, st.Imports(), 2)
	assert.Equal(t, "$ion", st.Imports()[0].Name())

	sym, ok := st.FindByID(11)
	require.True(t, ok)
	assert.Equal(t, "b", sym)

	// A local symbol repeating an imported one still takes its own ID.
	sym, ok = st.FindByID(13)
	require.True(t, ok)
	assert.Equal(t, "a", sym)
}

func TestLocalSymbolTableUnknownText(t *testing.T) {
	text := "x"
	st := newLocalSymbolTable(nil, []*string{nil, &text})
	assert.Equal(t, uint64(11), st.MaxID())

	_, ok := st.FindByID(10)
	assert.False(t, ok)

	sym, ok := st.FindByID(11)
	require.True(t, ok)
	assert.Equal(t, "x", sym)

	grown := st.extend([]*string{&text})
	assert.Equal(t, uint64(12), grown.MaxID())
	assert.Equal(t, uint64(11), st.MaxID())
}

func TestResolveImport(t *testing.T) {
	foo1 := NewSharedSymbolTable("foo", 1, []string{"a"})
	foo2 := NewSharedSymbolTable("foo", 2, []string{"a", "b", "c"})
	cat := NewCatalog(foo1, foo2)

	imp, err := resolveImport(cat, "foo", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), imp.MaxID())
	assert.Equal(t, 2, imp.Version())

	imp, err = resolveImport(cat, "foo", 0, -1)
	require.NoError(t, err)
	assert.Equal(t, foo1, imp)

	// Missing tables reserve their symbol IDs.
	imp, err = resolveImport(cat, "bar", 1, 5)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), imp.MaxID())
	_, ok := imp.FindByID(1)
	assert.False(t, ok)

	_, err = resolveImport(cat, "bar", 1, -1)
	assert.IsType(t, &SyntaxError{}, err)

	// Without max_id the exact version has to be present.
	_, err = resolveImport(cat, "foo", 3, -1)
	assert.IsType(t, &SyntaxError{}, err)

	assert.Equal(t, foo2, cat.FindLatest("foo"))
}
