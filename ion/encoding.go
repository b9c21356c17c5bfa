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

// An Encoding identifies the wire format a stream was written in.
type Encoding uint8

const (
	// UnknownEncoding is reported before anything has been read.
	UnknownEncoding Encoding = iota
	// Binary10 is binary Ion 1.0.
	Binary10
	// Binary11 is binary Ion 1.1.
	Binary11
	// Text10 is text Ion 1.0.
	Text10
	// Text11 is text Ion 1.1.
	Text11
)

// IsBinary returns true for the binary encodings.
func (e Encoding) IsBinary() bool {
	return e == Binary10 || e == Binary11
}

// String implements fmt.Stringer for Encoding.
func (e Encoding) String() string {
	switch e {
	case Binary10:
		return "binary Ion 1.0"
	case Binary11:
		return "binary Ion 1.1"
	case Text10:
		return "text Ion 1.0"
	case Text11:
		return "text Ion 1.1"
	default:
		return "unknown encoding"
	}
}

// Version returns the major and minor Ion version of the encoding.
func (e Encoding) Version() (int, int) {
	switch e {
	case Binary11, Text11:
		return 1, 1
	default:
		return 1, 0
	}
}
