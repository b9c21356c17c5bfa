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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecimalToString(t *testing.T) {
	test := func(n int64, scale int32, expected string) {
		t.Run(expected, func(t *testing.T) {
			d := Decimal{
				n:     big.NewInt(n),
				scale: scale,
			}
			assert.Equal(t, expected, d.String())
		})
	}

	test(0, 0, "0.")
	test(0, -1, "0d1")
	test(0, 1, "0d-1")

	test(1, 0, "1.")
	test(1, -1, "1d1")
	test(1, 1, "1d-1")

	test(-1, 0, "-1.")
	test(-1, -1, "-1d1")

	test(123, -5, "123d5")
	test(123, 1, "12.3")
	test(123, 2, "1.23")
	test(123, 3, "1.23d-1")

	test(-456, 2, "-4.56")
	test(-456, 4, "-4.56d-2")
}

func TestDecimalNegativeZero(t *testing.T) {
	assert.Equal(t, "-0.", NewDecimal(new(big.Int), 0, true).String())
	assert.Equal(t, "-0d2", NewDecimal(new(big.Int), 2, true).String())
	assert.True(t, NewDecimal(new(big.Int), 0, true).IsNegZero())
}

func TestDecimalCoEx(t *testing.T) {
	n, exp := NewDecimal(big.NewInt(15), -1, false).CoEx()
	assert.Equal(t, big.NewInt(15), n)
	assert.Equal(t, int32(-1), exp)

	n, exp = NewDecimalInt(7).CoEx()
	assert.Equal(t, big.NewInt(7), n)
	assert.Equal(t, int32(0), exp)
}
