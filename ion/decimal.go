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
	"math/big"
	"strconv"
	"strings"
)

// Decimal is an arbitrary-precision decimal value, n * 10^-scale.
type Decimal struct {
	n         *big.Int
	scale     int32
	isNegZero bool
}

// NewDecimal creates a new decimal whose value is equal to n * 10^exp.
func NewDecimal(n *big.Int, exp int32, negZero bool) *Decimal {
	return &Decimal{
		n:         n,
		scale:     -exp,
		isNegZero: negZero,
	}
}

// NewDecimalInt creates a new decimal whose value is equal to n.
func NewDecimalInt(n int64) *Decimal {
	return NewDecimal(big.NewInt(n), 0, false)
}

// CoEx returns this decimal's coefficient and exponent.
func (d *Decimal) CoEx() (*big.Int, int32) {
	return d.n, -d.scale
}

// IsNegZero reports whether the decimal is -0 at some scale.
func (d *Decimal) IsNegZero() bool {
	return d.isNegZero
}

// String formats the decimal in Ion text notation.
func (d *Decimal) String() string {
	exp := strconv.Itoa(int(-d.scale))

	switch {
	case d.scale == 0:
		// Value is an unscaled integer. Just mark it as a decimal.
		if d.isNegZero {
			return "-0."
		}
		return d.n.String() + "."

	case d.scale < 0:
		// Value is a upscaled integer, nn'd'ss
		if d.isNegZero {
			return "-0d" + exp
		}
		return d.n.String() + "d" + exp

	default:
		// Value is a downscaled integer nn.nn('d'-ss)?
		str := d.n.String()
		if d.isNegZero {
			str = "-0"
		}

		idx := len(str) - int(d.scale)

		prefix := 1
		if str[0] == '-' {
			prefix++
		}

		if idx >= prefix {
			// Put the decimal point in the middle, no exponent.
			return str[:idx] + "." + str[idx:]
		}

		// Put the decimal point at the beginning and
		// add a (negative) exponent.
		b := strings.Builder{}
		b.WriteString(str[:prefix])
		if len(str) > prefix {
			b.WriteString(".")
			b.WriteString(str[prefix:])
		}
		b.WriteString("d")
		b.WriteString(strconv.Itoa(idx - prefix))

		return b.String()
	}
}
