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
	"math"
	"unsafe"
)

// This file provides bit-pattern reinterpretation of Real values.
// Reinterpretation preserves the exact bits, including NaN payloads, and is
// distinct from a numeric conversion.

// ToBits32 reinterprets the bits of a float32 as a uint32.
func ToBits32(x float32) uint32 {
	return math.Float32bits(x)
}

// FromBits32 reinterprets a uint32 as the bits of a float32.
func FromBits32(b uint32) float32 {
	return math.Float32frombits(b)
}

// ToBits64 reinterprets the bits of a float64 as a uint64.
func ToBits64(x float64) uint64 {
	return math.Float64bits(x)
}

// FromBits64 reinterprets a uint64 as the bits of a float64.
func FromBits64(b uint64) float64 {
	return math.Float64frombits(b)
}

// ToBits reinterprets the bits of x as an unsigned integer.
// The bits of a float32 occupy the low 32 bits of the result.
func ToBits[R Real](x R) uint64 {
	if is32[R]() {
		return uint64(math.Float32bits(float32(x)))
	}
	return math.Float64bits(float64(x))
}

// FromBits is the inverse of ToBits. For float32, the high 32 bits of b are
// ignored.
func FromBits[R Real](b uint64) R {
	if is32[R]() {
		return R(math.Float32frombits(uint32(b)))
	}
	return R(math.Float64frombits(b))
}

// Signbit reports whether the sign bit of x is set. It distinguishes -0 from
// +0 and reports the stored sign of NaN values.
func Signbit[R Real](x R) bool {
	return ToBits(x)&signMask[R]() != 0
}

// BitSize returns the width of R in bits, 32 or 64.
func BitSize[R Lanes]() int {
	var zero R
	return int(unsafe.Sizeof(zero)) * 8
}

func is32[R Lanes]() bool {
	var zero R
	return unsafe.Sizeof(zero) == 4
}

func signMask[R Real]() uint64 {
	return 1 << (BitSize[R]() - 1)
}

func isNaN[R Real](x R) bool {
	return x != x
}

func abs[R Real](x R) R {
	return FromBits[R](ToBits(x) &^ signMask[R]())
}

// BitCastF32ToU32 reinterprets float32 lanes as uint32 lanes.
func BitCastF32ToU32(v Vec[float32]) Vec[uint32] {
	result := make([]uint32, len(v.data))
	for i, x := range v.data {
		result[i] = math.Float32bits(x)
	}
	return Vec[uint32]{data: result}
}

// BitCastU32ToF32 reinterprets uint32 lanes as float32 lanes.
func BitCastU32ToF32(v Vec[uint32]) Vec[float32] {
	result := make([]float32, len(v.data))
	for i, b := range v.data {
		result[i] = math.Float32frombits(b)
	}
	return Vec[float32]{data: result}
}

// BitCastF64ToU64 reinterprets float64 lanes as uint64 lanes.
func BitCastF64ToU64(v Vec[float64]) Vec[uint64] {
	result := make([]uint64, len(v.data))
	for i, x := range v.data {
		result[i] = math.Float64bits(x)
	}
	return Vec[uint64]{data: result}
}

// BitCastU64ToF64 reinterprets uint64 lanes as float64 lanes.
func BitCastU64ToF64(v Vec[uint64]) Vec[float64] {
	result := make([]float64, len(v.data))
	for i, b := range v.data {
		result[i] = math.Float64frombits(b)
	}
	return Vec[float64]{data: result}
}

// BitsOf reinterprets each lane of v with ToBits.
func BitsOf[R Real](v Vec[R]) Vec[uint64] {
	result := make([]uint64, len(v.data))
	for i, x := range v.data {
		result[i] = ToBits(x)
	}
	return Vec[uint64]{data: result}
}

// FromBitsOf is the inverse of BitsOf.
func FromBitsOf[R Real](v Vec[uint64]) Vec[R] {
	result := make([]R, len(v.data))
	for i, b := range v.data {
		result[i] = FromBits[R](b)
	}
	return Vec[R]{data: result}
}

// Widen zero-extends each lane of v to uint64.
func Widen[B Bits](v Vec[B]) Vec[uint64] {
	result := make([]uint64, len(v.data))
	for i, b := range v.data {
		result[i] = uint64(b)
	}
	return Vec[uint64]{data: result}
}
