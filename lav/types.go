package lav

import "golang.org/x/exp/constraints"

// Real is a constraint for the floating-point lane types.
type Real interface {
	constraints.Float
}

// Bits is a constraint for the unsigned bit-pattern types of Real values.
// uint32 holds the bits of a float32, uint64 those of a float64.
type Bits interface {
	~uint32 | ~uint64
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Real | Bits
}

// Vec is a portable vector of lanes.
//
// Vec instances should not be created directly; use Load, LoadN, Set, SetN
// or Zero instead.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Lane returns the value of lane i.
// Panics if i is out of range.
func (v Vec[T]) Lane(i int) T {
	return v.data[i]
}

// WithLane returns a copy of v with lane i set to value.
// Panics if i is out of range.
func (v Vec[T]) WithLane(i int, value T) Vec[T] {
	data := make([]T, len(v.data))
	copy(data, v.data)
	data[i] = value
	return Vec[T]{data: data}
}

// Store writes the vector's data to a slice.
// This is the method form of the lav.Store function.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Mask represents the result of a lane-wise comparison.
//
// Mask instances should not be created directly; use comparison operations
// like LessEqual or LanesApproxEqual instead.
type Mask[T Lanes] struct {
	// bit i is set if lane i is active.
	bits []bool
}

// MaskOf builds a mask from explicit lane values.
func MaskOf[T Lanes](bits ...bool) Mask[T] {
	b := make([]bool, len(bits))
	copy(b, bits)
	return Mask[T]{bits: b}
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// Bits returns a copy of the lane values.
func (m Mask[T]) Bits() []bool {
	b := make([]bool, len(m.bits))
	copy(b, m.bits)
	return b
}

// AllTrue returns true if all lanes in the mask are active.
// An empty mask is all true.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}

// RebindMask reinterprets a mask computed on lanes of type U as a mask on
// lanes of type T. Used to combine comparisons on floats with comparisons on
// their bit patterns.
func RebindMask[T, U Lanes](m Mask[U]) Mask[T] {
	return Mask[T]{bits: m.bits}
}
