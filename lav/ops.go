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

import "math"

// This file provides the pure Go lane operations the comparisons are built
// from. Binary operations use the lane count of the shorter operand.

// Load creates a vector of MaxLanes[T]() lanes from the front of src.
// If src is shorter, the vector has len(src) lanes.
func Load[T Lanes](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// LoadN creates a vector with exactly len(src) lanes.
func LoadN[T Lanes](src []T) Vec[T] {
	data := make([]T, len(src))
	copy(data, src)
	return Vec[T]{data: data}
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector of MaxLanes[T]() lanes all set to value.
func Set[T Lanes](value T) Vec[T] {
	return SetN(MaxLanes[T](), value)
}

// SetN creates a vector of n lanes all set to value.
func SetN[T Lanes](n int, value T) Vec[T] {
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector of MaxLanes[T]() lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] - b.data[i]
	}
	return Vec[T]{data: result}
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: result}
}

// Div performs element-wise division.
func Div[R Real](a, b Vec[R]) Vec[R] {
	n := min(len(b.data), len(a.data))
	result := make([]R, n)
	for i := range n {
		result[i] = a.data[i] / b.data[i]
	}
	return Vec[R]{data: result}
}

// MulAdd computes a*b + c with a single rounding in float64.
func MulAdd[R Real](a, b, c Vec[R]) Vec[R] {
	n := min(len(c.data), min(len(b.data), len(a.data)))
	result := make([]R, n)
	for i := range n {
		result[i] = R(math.FMA(float64(a.data[i]), float64(b.data[i]), float64(c.data[i])))
	}
	return Vec[R]{data: result}
}

// Neg negates all lanes, flipping the sign bit of zeros and NaNs too.
func Neg[R Real](v Vec[R]) Vec[R] {
	result := make([]R, len(v.data))
	for i, x := range v.data {
		result[i] = FromBits[R](ToBits(x) ^ signMask[R]())
	}
	return Vec[R]{data: result}
}

// Abs clears the sign bit of every lane. NaN lanes stay NaN.
func Abs[R Real](v Vec[R]) Vec[R] {
	result := make([]R, len(v.data))
	for i, x := range v.data {
		result[i] = abs(x)
	}
	return Vec[R]{data: result}
}

// ReduceSum sums all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for _, x := range v.data {
		sum += x
	}
	return sum
}

// Or performs element-wise bitwise OR.
func Or[T Bits](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] | b.data[i]
	}
	return Vec[T]{data: result}
}

// And performs element-wise bitwise AND.
func And[T Bits](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] & b.data[i]
	}
	return Vec[T]{data: result}
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] == b.data[i]
	}
	return Mask[T]{bits: bits}
}

// LessThan performs element-wise less-than comparison.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] < b.data[i]
	}
	return Mask[T]{bits: bits}
}

// LessEqual performs element-wise less-than-or-equal comparison.
// Lanes holding NaN compare false.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] <= b.data[i]
	}
	return Mask[T]{bits: bits}
}

// IsNaN returns a mask indicating which lanes contain NaN values.
func IsNaN[R Real](v Vec[R]) Mask[R] {
	bits := make([]bool, len(v.data))
	for i, x := range v.data {
		bits[i] = isNaN(x)
	}
	return Mask[R]{bits: bits}
}

// IsSignNegative returns a mask of the lanes whose sign bit is set,
// including -0, -Inf and NaNs with a negative sign bit.
func IsSignNegative[R Real](v Vec[R]) Mask[R] {
	bits := make([]bool, len(v.data))
	for i, x := range v.data {
		bits[i] = Signbit(x)
	}
	return Mask[R]{bits: bits}
}

// IsSignPositive returns MaskNot(IsSignNegative(v)).
func IsSignPositive[R Real](v Vec[R]) Mask[R] {
	bits := make([]bool, len(v.data))
	for i, x := range v.data {
		bits[i] = !Signbit(x)
	}
	return Mask[R]{bits: bits}
}

// MaskAnd returns the lane-wise a && b.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(b.bits), len(a.bits))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.bits[i] && b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskOr returns the lane-wise a || b.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(b.bits), len(a.bits))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.bits[i] || b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskXor returns the lane-wise a != b.
func MaskXor[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(b.bits), len(a.bits))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.bits[i] != b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskNot returns the lane-wise !m.
func MaskNot[T Lanes](m Mask[T]) Mask[T] {
	bits := make([]bool, len(m.bits))
	for i, b := range m.bits {
		bits[i] = !b
	}
	return Mask[T]{bits: bits}
}

// IfThenElse selects a where mask is true and b elsewhere.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := min(len(b.data), min(len(a.data), len(mask.bits)))
	result := make([]T, n)
	for i := range n {
		if mask.bits[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// NegateIf negates the lanes of v where mask is true.
func NegateIf[R Real](mask Mask[R], v Vec[R]) Vec[R] {
	return IfThenElse(mask, Neg(v), v)
}
