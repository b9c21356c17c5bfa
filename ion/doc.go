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

// Package ion reads binary Ion 1.0 streams while keeping track of the bytes
// that encode each value.
//
// A Reader hands out StreamItems one at a time: version markers, symbol
// tables, values and a final end-of-stream marker. Values backed by the
// input carry an EncodedValue describing the spans of their annotations
// wrapper, opcode, length prefix and body. Values that have no bytes of
// their own (for example, values produced by a macro expansion) are
// ephemeral and carry no encoding at all.
package ion
