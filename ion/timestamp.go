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
	"fmt"
	"strings"
	"time"
)

// TimestampPrecision is for tracking the precision of a timestamp
type TimestampPrecision uint8

// Possible TimestampPrecision values
const (
	NoPrecision TimestampPrecision = iota
	Year
	Month
	Day
	Minute
	Second
	Fraction
)

func (tp TimestampPrecision) String() string {
	switch tp {
	case NoPrecision:
		return "<no precision>"
	case Year:
		return "Year"
	case Month:
		return "Month"
	case Day:
		return "Day"
	case Minute:
		return "Minute"
	case Second:
		return "Second"
	case Fraction:
		return "Fraction"
	default:
		return fmt.Sprintf("<unknown precision %v>", uint8(tp))
	}
}

// TimezoneKind tracks the type of timezone.
type TimezoneKind uint8

const (
	// Unspecified is for dates without a known offset, written as -00:00.
	// Timestamps of year, month or day precision are always Unspecified.
	Unspecified TimezoneKind = iota

	// UTC is for dates with a zero offset, written with a trailing 'Z'.
	UTC

	// Local is for dates that have a non-zero offset from UTC.
	Local
)

// Timestamp is an Ion timestamp. DateTime holds the local date and time
// at the timestamp's offset; fields finer than the precision are zero.
type Timestamp struct {
	DateTime  time.Time
	precision TimestampPrecision
	kind      TimezoneKind
	fraction  string
}

// NewTimestamp constructs a timestamp from UTC components. offset is in
// minutes and ignored unless kind is Local. fraction holds the digits after
// the decimal point and is only used at Fraction precision.
func NewTimestamp(utc time.Time, precision TimestampPrecision, kind TimezoneKind, offset int, fraction string) Timestamp {
	if precision <= Day {
		kind = Unspecified
	}

	dt := utc
	switch kind {
	case Local:
		dt = utc.In(time.FixedZone("", offset*60))
	case UTC:
		dt = utc.UTC()
	}

	if precision != Fraction {
		fraction = ""
	}

	return Timestamp{DateTime: dt, precision: precision, kind: kind, fraction: fraction}
}

// Precision returns the precision of the timestamp.
func (ts Timestamp) Precision() TimestampPrecision {
	return ts.precision
}

// Kind returns the kind of timezone of the timestamp.
func (ts Timestamp) Kind() TimezoneKind {
	return ts.kind
}

// String formats the timestamp in Ion text notation.
func (ts Timestamp) String() string {
	dt := ts.DateTime
	b := strings.Builder{}

	fmt.Fprintf(&b, "%04d", dt.Year())
	if ts.precision == Year {
		b.WriteString("T")
		return b.String()
	}
	fmt.Fprintf(&b, "-%02d", int(dt.Month()))
	if ts.precision == Month {
		b.WriteString("T")
		return b.String()
	}
	fmt.Fprintf(&b, "-%02d", dt.Day())
	if ts.precision == Day {
		return b.String()
	}

	fmt.Fprintf(&b, "T%02d:%02d", dt.Hour(), dt.Minute())
	if ts.precision >= Second {
		fmt.Fprintf(&b, ":%02d", dt.Second())
	}
	if ts.precision == Fraction {
		b.WriteString(".")
		b.WriteString(ts.fraction)
	}

	switch ts.kind {
	case UTC:
		b.WriteString("Z")
	case Local:
		_, off := dt.Zone()
		sign := '+'
		if off < 0 {
			sign = '-'
			off = -off
		}
		fmt.Fprintf(&b, "%c%02d:%02d", sign, off/3600, (off%3600)/60)
	default:
		b.WriteString("-00:00")
	}

	return b.String()
}

// validDate reports whether the components name a real calendar date and time.
func validDate(t time.Time, year, month, day, hour, minute, second int) bool {
	return t.Year() == year && int(t.Month()) == month && t.Day() == day &&
		t.Hour() == hour && t.Minute() == minute && t.Second() == second
}
