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

const (
	// SymbolIDUnknown is the placeholder for when a symbol token has no symbol ID.
	SymbolIDUnknown = -1
)

// A SymbolToken is the resolved form of a symbol value, field name or annotation.
// Tokens read from a binary stream always carry the symbol ID they were encoded
// with; Text is nil when the ID has no known text.
type SymbolToken struct {
	// The string text of the token or nil if unknown.
	Text *string
	// Local symbol ID associated with the token.
	LocalSID int64
}

// NewSymbolTokenText returns a token with the given text and no symbol ID.
func NewSymbolTokenText(text string) SymbolToken {
	return SymbolToken{Text: &text, LocalSID: SymbolIDUnknown}
}

// HasSID returns true if the token was encoded as a symbol ID.
func (st SymbolToken) HasSID() bool {
	return st.LocalSID != SymbolIDUnknown
}

func (st SymbolToken) String() string {
	text := "nil"
	if st.Text != nil {
		text = fmt.Sprintf("%q", *st.Text)
	}
	return fmt.Sprintf("{%s %d}", text, st.LocalSID)
}
