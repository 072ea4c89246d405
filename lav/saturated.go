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

import "math/bits"

// This file provides saturated arithmetic on bit patterns.
// Saturated operations clamp results to the type's valid range instead of
// wrapping, and are computed without branches from the carry/borrow bit.

// SaturatingSub returns a - b, or 0 if b > a.
// For example, uint32: 10 - 20 = 0 (not 4294967286).
func SaturatingSub[T Bits](a, b T) T {
	if is32[T]() {
		d, borrow := bits.Sub32(uint32(a), uint32(b), 0)
		return T(d & (borrow - 1))
	}
	d, borrow := bits.Sub64(uint64(a), uint64(b), 0)
	return T(d & (borrow - 1))
}

// SaturatingAdd returns a + b, or the maximum value of T on overflow.
func SaturatingAdd[T Bits](a, b T) T {
	if is32[T]() {
		s, carry := bits.Add32(uint32(a), uint32(b), 0)
		return T(s | -carry)
	}
	s, carry := bits.Add64(uint64(a), uint64(b), 0)
	return T(s | -carry)
}

// AbsSub returns |a - b| as SaturatingSub(a, b) | SaturatingSub(b, a).
// At most one of the two terms is non-zero, so the result is exact and can
// never wrap.
func AbsSub[T Bits](a, b T) T {
	return SaturatingSub(a, b) | SaturatingSub(b, a)
}

// ULPDistance returns the distance between the bit patterns of a and b.
// For two finite values of the same sign this is the number of representable
// values between them, plus one.
func ULPDistance[R Real](a, b R) uint64 {
	return AbsSub(ToBits(a), ToBits(b))
}

// SaturatedSub performs element-wise subtraction with saturation.
func SaturatedSub[T Bits](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = SaturatingSub(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// SaturatedAdd performs element-wise addition with saturation.
func SaturatedAdd[T Bits](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = SaturatingAdd(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// AbsDiff computes max(a,b) - min(a,b) for each lane.
func AbsDiff[T Bits](a, b Vec[T]) Vec[T] {
	return Or(SaturatedSub(a, b), SaturatedSub(b, a))
}
