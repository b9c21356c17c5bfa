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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimestampString(t *testing.T) {
	utc := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)

	test := func(precision TimestampPrecision, kind TimezoneKind, offset int, fraction, expected string) {
		t.Run(expected, func(t *testing.T) {
			ts := NewTimestamp(utc, precision, kind, offset, fraction)
			assert.Equal(t, expected, ts.String())
		})
	}

	test(Year, UTC, 0, "", "2021T")
	test(Month, UTC, 0, "", "2021-03T")
	test(Day, Local, 60, "", "2021-03-04")
	test(Minute, UTC, 0, "", "2021-03-04T05:06Z")
	test(Second, Unspecified, 0, "", "2021-03-04T05:06:07-00:00")
	test(Fraction, UTC, 0, "250", "2021-03-04T05:06:07.250Z")
	test(Second, Local, 90, "", "2021-03-04T06:36:07+01:30")
	test(Minute, Local, -300, "", "2021-03-04T00:06-05:00")

	// The fraction is dropped unless the precision calls for it.
	test(Second, UTC, 0, "5", "2021-03-04T05:06:07Z")
}

func TestTimestampKindByPrecision(t *testing.T) {
	ts := NewTimestamp(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), Day, UTC, 0, "")
	assert.Equal(t, Unspecified, ts.Kind())
	assert.Equal(t, Day, ts.Precision())
}
