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
	"math"

	"golang.org/x/exp/constraints"
)

// An Action is what the inspector does with the next item it encounters.
type Action uint8

const (
	// Render shows the item.
	Render Action = iota
	// Skip passes over an item that ends before the number of bytes to skip.
	Skip
	// LimitReached stops the walk at the current level: the item starts
	// after the requested number of bytes.
	LimitReached
)

func (a Action) String() string {
	switch a {
	case Skip:
		return "skip"
	case LimitReached:
		return "limit reached"
	default:
		return "render"
	}
}

// Config controls which part of a stream is rendered.
type Config struct {
	// BytesToSkip hides items that end at or before this offset.
	BytesToSkip int
	// LimitBytes stops the walk at the first item starting this many bytes
	// past BytesToSkip. Zero means no limit.
	LimitBytes int
	// HideExpansion omits the top-level values produced by macros.
	HideExpansion bool
}

// saturatingAdd returns a+b, or the largest value of T if that overflows.
// Both operands must be non-negative.
func saturatingAdd[T constraints.Integer](a, b, max T) T {
	if a > max-b {
		return max
	}
	return a + b
}

// policy decides, item by item, whether the walk is before, inside or past
// the window of bytes that was asked for.
type policy struct {
	skip         int
	limit        int
	skipComplete bool
}

func newPolicy(cfg Config) *policy {
	skip := cfg.BytesToSkip
	if skip < 0 {
		skip = 0
	}
	return &policy{skip: skip, limit: cfg.LimitBytes, skipComplete: skip == 0}
}

// shouldSkip reports whether an item lies entirely before the window. Items
// without a byte range come from macro expansions; they are skipped until
// some literal item has crossed into the window.
func (p *policy) shouldSkip(end int, hasRange bool) bool {
	if !hasRange {
		return !p.skipComplete
	}
	return end <= p.skip
}

// isPastLimit reports whether an item starts after the window. Items without
// a byte range are never past it: the e-expression that produced them was
// not.
func (p *policy) isPastLimit(start int, hasRange bool) bool {
	if !hasRange || p.limit <= 0 {
		return false
	}
	return start >= saturatingAdd(p.skip, p.limit, math.MaxInt)
}
