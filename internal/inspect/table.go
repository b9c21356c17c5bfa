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

import (
	"fmt"

	"github.com/fatih/color"
)

// The table is drawn with Unicode box-drawing characters.
const (
	verticalLine  = "│"
	startOfHeader = "┌──────────────┬──────────────┬─────────────────────────┬──────────────────────┐"
	endOfHeader   = "├──────────────┼──────────────┼─────────────────────────┼──────────────────────┘"
	rowSeparator  = "\n├──────────────┼──────────────┼─────────────────────────┤"
	endOfTable    = "\n└──────────────┴──────────────┴─────────────────────────┘"
)

// indentationGuide is written once per level of depth. The dot makes the
// depth of each row easy to see.
const indentationGuide = "· "

func (in *Inspector) newline() {
	in.out.WriteString("\n")
}

func (in *Inspector) writeTableHeader() {
	in.out.WriteString(startOfHeader)
	in.out.WriteString("\n" + verticalLine)
	in.out.Styled(headerStyle(), "    Offset    ")
	in.out.WriteString(verticalLine)
	in.out.Styled(headerStyle(), "    Length    ")
	in.out.WriteString(verticalLine)
	in.out.Styled(headerStyle(), "       Binary Ion        ")
	in.out.WriteString(verticalLine)
	in.out.Styled(headerStyle(), "       Text Ion       ")
	in.out.WriteString(verticalLine + "\n")
	in.out.WriteString(endOfHeader)
}

func (in *Inspector) writeIndentation(depth int) {
	if depth <= 0 {
		return
	}
	in.out.WithStyle(indentationStyle(), func() {
		for i := 0; i < depth; i++ {
			in.out.WriteString(indentationGuide)
		}
	})
}

// writeOffsetLengthAndBytes fills the first three columns of a row, taking
// the next row of bytes from f, and indents the Text Ion column. offset and
// length are usually ints, or "" to leave the column blank.
func (in *Inspector) writeOffsetLengthAndBytes(depth int, offset, length interface{}, f *BytesFormatter) {
	in.out.Printf("%s %12v %s %12v %s ", verticalLine, offset, verticalLine, length, verticalLine)
	f.WriteRow(in.out)
	in.out.WriteString(verticalLine + " ")
	in.writeIndentation(depth)
}

// writeOffsetLengthAndBytesComment is like writeOffsetLengthAndBytes, but
// shows text right-aligned in the Binary Ion column instead of bytes.
func (in *Inspector) writeOffsetLengthAndBytesComment(depth int, offset, length interface{}, text string) {
	in.out.Printf("%s %12v %s %12v %s ", verticalLine, offset, verticalLine, length, verticalLine)
	in.out.Styled(ephemeralBytesStyle(), fmt.Sprintf("%23s", text))
	in.out.WriteString(" " + verticalLine + " ")
	in.writeIndentation(depth)
}

// writeBlankRow writes a row with nothing in the first three columns.
func (in *Inspector) writeBlankRow(depth int) {
	in.writeOffsetLengthAndBytes(depth, "", "", NewBytesFormatter(bytesPerRow))
}

// writeTextOnlyLine starts a new row holding only text.
func (in *Inspector) writeTextOnlyLine(depth int, style *color.Color, text string) {
	in.newline()
	in.writeBlankRow(depth)
	in.out.Styled(style, text)
}

func (in *Inspector) writeEllipsisRow(depth int) {
	in.out.Printf("\n%s %12s %s %12s %s %-23s %s ", verticalLine, "...", verticalLine, "...", verticalLine, "...", verticalLine)
	in.writeIndentation(depth)
}

// writeSkippingMessage notes that items before --skip-bytes were passed over.
func (in *Inspector) writeSkippingMessage(depth int, items string) {
	in.writeEllipsisRow(depth)
	in.out.Styled(commentStyle(), "// ...skipping "+items+"...")
}

// writeLimitingMessage notes that the walk stopped at --limit-bytes.
func (in *Inspector) writeLimitingMessage(depth int, action string) {
	in.writeEllipsisRow(depth)
	in.out.WithStyle(commentStyle(), func() {
		in.out.Printf("// --limit-bytes %d reached, %s.", in.policy.limit, action)
	})
}
