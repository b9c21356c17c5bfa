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

// A Range is a half-open interval [Start, End) of byte offsets in the input.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// A Span is a slice of the input along with the offset at which it begins.
type Span struct {
	Offset int
	Bytes  []byte
}

// Range returns the byte range the span occupies.
func (s Span) Range() Range {
	return Range{Start: s.Offset, End: s.Offset + len(s.Bytes)}
}

// Len returns the number of bytes in the span.
func (s Span) Len() int {
	return len(s.Bytes)
}

// IsEmpty returns true if the span holds no bytes.
func (s Span) IsEmpty() bool {
	return len(s.Bytes) == 0
}

// span slices data[start:end] into a Span.
func span(data []byte, start, end int) Span {
	return Span{Offset: start, Bytes: data[start:end:end]}
}
