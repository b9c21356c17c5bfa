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
	"encoding/binary"
	"math"
	"math/big"
)

// readUint interprets b as a big-endian unsigned magnitude.
func readUint(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// readUint64 interprets b as a big-endian unsigned magnitude that must fit in
// a uint64. It returns false if it does not.
func readUint64(b []byte) (uint64, bool) {
	if len(b) > 8 {
		// Leading zero bytes are legal padding.
		for len(b) > 8 && b[0] == 0 {
			b = b[1:]
		}
		if len(b) > 8 {
			return 0, false
		}
	}

	val := uint64(0)
	for _, c := range b {
		val = (val << 8) | uint64(c)
	}
	return val, true
}

// readSignedInt interprets b as a sign-and-magnitude integer, where the high
// bit of the first byte is the sign. It reports whether the value was a
// negative zero.
func readSignedInt(b []byte) (*big.Int, bool) {
	if len(b) == 0 {
		return new(big.Int), false
	}

	neg := b[0]&0x80 != 0
	mag := make([]byte, len(b))
	copy(mag, b)
	mag[0] &= 0x7F

	ret := new(big.Int).SetBytes(mag)
	if neg {
		if ret.Sign() == 0 {
			return ret, true
		}
		ret.Neg(ret)
	}
	return ret, false
}

// readFloat decodes a 0, 4 or 8 byte IEEE-754 float body.
func readFloat(b []byte) (float64, bool) {
	switch len(b) {
	case 0:
		return 0, true
	case 4:
		return float64(math.Float32frombits(binary.BigEndian.Uint32(b))), true
	case 8:
		return math.Float64frombits(binary.BigEndian.Uint64(b)), true
	default:
		return 0, false
	}
}
