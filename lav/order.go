// Copyright 2026 go-lav Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lav

import (
	"cmp"
	"math"
	"slices"
)

// TotalCompare orders a and b by the IEEE 754 totalOrder predicate and
// returns -1, 0 or +1. Values are ordered as
//
//	-NaN < -Inf < negative finite < -0 < +0 < positive finite < +Inf < +NaN
//
// Unlike the < operator, TotalCompare distinguishes -0 from +0, and NaNs
// compare by sign and payload.
func TotalCompare[R Real](a, b R) int {
	return cmp.Compare(totalKey(a), totalKey(b))
}

// SortTotal sorts s in place by TotalCompare.
func SortTotal[R Real](s []R) {
	slices.SortFunc(s, TotalCompare[R])
}

// totalKey maps the bits of x to a signed integer whose natural order is
// the total order: negative values get all bits but the sign flipped.
func totalKey[R Real](x R) int64 {
	if is32[R]() {
		k := int32(math.Float32bits(float32(x)))
		k ^= int32(uint32(k>>31) >> 1)
		return int64(k)
	}
	k := int64(math.Float64bits(float64(x)))
	k ^= int64(uint64(k>>63) >> 1)
	return k
}
