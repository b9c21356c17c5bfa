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

import "strings"

// bytesPerRow is the number of hex-encoded bytes shown in each row of the
// Binary Ion column.
const bytesPerRow = 8

// An IonBytes is a run of encoded bytes to print, along with what those
// bytes represent and how many of them have been printed so far.
type IonBytes struct {
	Kind    BytesKind
	Bytes   []byte
	written int
}

func (b *IonBytes) remaining() int {
	return len(b.Bytes) - b.written
}

// A BytesFormatter prints a sequence of IonBytes as rows of colorized hex,
// remembering where to resume when the next row is needed.
type BytesFormatter struct {
	slices        []IonBytes
	slicesWritten int
	perRow        int
}

// NewBytesFormatter returns a formatter printing perRow bytes per row.
func NewBytesFormatter(perRow int, slices ...IonBytes) *BytesFormatter {
	return &BytesFormatter{slices: slices, perRow: perRow}
}

// IsEmpty returns true once every slice has been printed.
func (f *BytesFormatter) IsEmpty() bool {
	return f.slicesWritten == len(f.slices)
}

// WriteRow prints the next row of bytes, padding it out to the full width
// of a row if fewer bytes remain.
func (f *BytesFormatter) WriteRow(out *Output) {
	written := f.writeBytes(f.perRow, out)
	out.WriteString(strings.Repeat("   ", f.perRow-written))
}

func (f *BytesFormatter) writeBytes(n int, out *Output) int {
	remaining := n
	for remaining > 0 && !f.IsEmpty() {
		remaining -= f.writeFromCurrentSlice(remaining, out)
	}
	return n - remaining
}

// writeFromCurrentSlice prints up to n bytes of the current slice. A space
// follows the bytes if that finished the slice or the request.
func (f *BytesFormatter) writeFromCurrentSlice(n int, out *Output) int {
	slice := &f.slices[f.slicesWritten]
	if len(slice.Bytes) == 0 {
		f.slicesWritten++
		return 0
	}

	count := n
	if r := slice.remaining(); r < count {
		count = r
	}

	out.Styled(slice.Kind.Style(), hexContents(slice.Bytes[slice.written:slice.written+count]))
	slice.written += count

	if slice.remaining() == 0 || count == n {
		out.WriteString(" ")
	}
	if slice.remaining() == 0 {
		f.slicesWritten++
	}
	return count
}

const hexDigits = "0123456789abcdef"

// hexContents renders bs as space-separated lowercase hex.
func hexContents(bs []byte) string {
	var sb strings.Builder
	for i, b := range bs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(hexDigits[b>>4])
		sb.WriteByte(hexDigits[b&0x0F])
	}
	return sb.String()
}
