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
	"strconv"
	"strings"
)

const hexChars = "0123456789ABCDEF"

// FormatSymbol returns the text form of a symbol token: its text, quoted if
// necessary, or $<sid> when its text is unknown.
func FormatSymbol(tok SymbolToken) string {
	var sb strings.Builder
	writeSymbolToken(&sb, tok)
	return sb.String()
}

func writeSymbolToken(sb *strings.Builder, tok SymbolToken) {
	if tok.Text == nil {
		sb.WriteByte('$')
		sb.WriteString(strconv.FormatInt(tok.LocalSID, 10))
		return
	}
	writeSymbol(sb, *tok.Text)
}

// Does this symbol need to be quoted in text form?
func symbolNeedsQuoting(sym string) bool {
	switch sym {
	case "", "null", "true", "false", "nan":
		return true
	}

	// Text that looks like a symbol ID would be read back as one.
	if isSymbolRef(sym) {
		return true
	}

	if !isIdentifierStart(sym[0]) {
		return true
	}
	for i := 1; i < len(sym); i++ {
		if !isIdentifierPart(sym[i]) {
			return true
		}
	}
	return false
}

// Is this the text form of a symbol reference ($<integer>)?
func isSymbolRef(sym string) bool {
	if len(sym) < 2 || sym[0] != '$' {
		return false
	}
	for i := 1; i < len(sym); i++ {
		if !isDigit(sym[i]) {
			return false
		}
	}
	return true
}

func isIdentifierStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c == '$'
}

func isIdentifierPart(c byte) bool {
	return isIdentifierStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Formats a float64 in Ion text style.
func formatFloat(val float64) string {
	str := strconv.FormatFloat(val, 'e', -1, 64)

	// Ion uses lower case for special values.
	switch str {
	case "NaN":
		return "nan"
	case "+Inf":
		return "+inf"
	case "-Inf":
		return "-inf"
	}

	idx := strings.Index(str, "e")
	if idx < 0 {
		// Without an exponent it would read back as a decimal.
		return str + "e0"
	}

	// Strip the explicit '+' and any leading zero from the exponent.
	mant, exp := str[:idx], str[idx+1:]
	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimLeft(exp, "+-")
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	if neg {
		exp = "-" + exp
	}
	return mant + "e" + exp
}

// Write the given symbol out, quoting and escaping if necessary.
func writeSymbol(sb *strings.Builder, sym string) {
	if !symbolNeedsQuoting(sym) {
		sb.WriteString(sym)
		return
	}
	sb.WriteByte('\'')
	writeEscaped(sb, sym, '\'')
	sb.WriteByte('\'')
}

// Write the given text out, escaping control characters, backslashes and
// the quote character that delimits it.
func writeEscaped(sb *strings.Builder, text string, quote byte) {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < 32 || c == '\\' || c == quote || c == 0x7F {
			writeEscapedChar(sb, c)
		} else {
			sb.WriteByte(c)
		}
	}
}

// Write out the given character in escaped form.
func writeEscapedChar(sb *strings.Builder, c byte) {
	switch c {
	case 0:
		sb.WriteString("\\0")
	case '\a':
		sb.WriteString("\\a")
	case '\b':
		sb.WriteString("\\b")
	case '\t':
		sb.WriteString("\\t")
	case '\n':
		sb.WriteString("\\n")
	case '\f':
		sb.WriteString("\\f")
	case '\r':
		sb.WriteString("\\r")
	case '\v':
		sb.WriteString("\\v")
	case '\'':
		sb.WriteString("\\'")
	case '"':
		sb.WriteString("\\\"")
	case '\\':
		sb.WriteString("\\\\")
	default:
		sb.Write([]byte{'\\', 'x', hexChars[(c>>4)&0xF], hexChars[c&0xF]})
	}
}

// Write out clob contents, which are bytes rather than UTF-8 text: anything
// outside of printable ASCII is escaped.
func writeClob(sb *strings.Builder, b []byte) {
	for _, c := range b {
		if c < 32 || c >= 0x7F || c == '\\' || c == '"' {
			writeEscapedChar(sb, c)
		} else {
			sb.WriteByte(c)
		}
	}
}
