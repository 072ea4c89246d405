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

// SignGate selects how the ULP path of an approximate comparison checks that
// the signs of the two operands agree.
type SignGate int

const (
	// SignGateOperands admits a pair to the ULP path only if both sign bits
	// are equal. This is the default of all ApproxEqual functions.
	SignGateOperands SignGate = iota

	// SignGateSelf compares an operand's sign bit with itself, so the gate
	// always passes and mixed-sign pairs reach the ULP distance test.
	// Because bit patterns of opposite signs are at least 2^31 (float32) or
	// 2^63 (float64) apart, this only changes results for huge ulp values.
	SignGateSelf
)

// String returns the name of the gate.
func (g SignGate) String() string {
	switch g {
	case SignGateOperands:
		return "operands"
	case SignGateSelf:
		return "self"
	default:
		return "unknown"
	}
}

// ApproxEqual reports whether a and b are within epsilon of each other, or
// whether neither is NaN, their sign bits agree and their bit patterns are
// at most ulp apart.
//
// For float32, ulp values above math.MaxUint32 behave like math.MaxUint32.
//
// Special cases are:
//
//	ApproxEqual(+0, -0, 0, 0) = true (epsilon path)
//	ApproxEqual(±Inf, ±Inf, e, u) = true (ULP path, same sign)
//	ApproxEqual(x, NaN, e, u) = false
//	ApproxEqual(NaN, x, e, u) = false
func ApproxEqual[R Real](a, b, epsilon R, ulp uint64) bool {
	return approxEqual(a, b, epsilon, ulp, SignGateOperands)
}

// ApproxNotEqual returns !ApproxEqual(a, b, epsilon, ulp): both the epsilon
// and the ULP test fail.
func ApproxNotEqual[R Real](a, b, epsilon R, ulp uint64) bool {
	return !approxEqual(a, b, epsilon, ulp, SignGateOperands)
}

// ApproxEqualGated is ApproxEqual with an explicit sign gate.
func ApproxEqualGated[R Real](a, b, epsilon R, ulp uint64, gate SignGate) bool {
	return approxEqual(a, b, epsilon, ulp, gate)
}

// ApproxEqual32 is ApproxEqual for float32 with a matching uint32 ulp.
func ApproxEqual32(a, b, epsilon float32, ulp uint32) bool {
	return approxEqual(a, b, epsilon, uint64(ulp), SignGateOperands)
}

// ApproxNotEqual32 returns !ApproxEqual32(a, b, epsilon, ulp).
func ApproxNotEqual32(a, b, epsilon float32, ulp uint32) bool {
	return !ApproxEqual32(a, b, epsilon, ulp)
}

// ApproxEqual64 is ApproxEqual for float64.
func ApproxEqual64(a, b, epsilon float64, ulp uint64) bool {
	return approxEqual(a, b, epsilon, ulp, SignGateOperands)
}

// ApproxNotEqual64 returns !ApproxEqual64(a, b, epsilon, ulp).
func ApproxNotEqual64(a, b, epsilon float64, ulp uint64) bool {
	return !ApproxEqual64(a, b, epsilon, ulp)
}

func approxEqual[R Real](a, b, epsilon R, ulp uint64, gate SignGate) bool {
	// NaN differences compare false, so NaN inputs never pass here.
	if abs(a-b) <= epsilon {
		return true
	}
	if isNaN(a) || isNaN(b) {
		return false
	}
	if gate == SignGateOperands && Signbit(a) != Signbit(b) {
		return false
	}
	return AbsSub(ToBits(a), ToBits(b)) <= ulp
}

// LanesApproxEqual applies ApproxEqual to each lane, with per-lane epsilon
// and ulp. The ulp lanes may be of any Bits width; they are zero-extended.
func LanesApproxEqual[R Real, B Bits](a, b, epsilon Vec[R], ulp Vec[B]) Mask[R] {
	return lanesApproxEqual(a, b, epsilon, Widen(ulp), SignGateOperands)
}

// LanesApproxNotEqual returns the lane-wise negation of LanesApproxEqual.
func LanesApproxNotEqual[R Real, B Bits](a, b, epsilon Vec[R], ulp Vec[B]) Mask[R] {
	return MaskNot(LanesApproxEqual(a, b, epsilon, ulp))
}

// LanesApproxEqualGated is LanesApproxEqual with an explicit sign gate.
func LanesApproxEqualGated[R Real, B Bits](a, b, epsilon Vec[R], ulp Vec[B], gate SignGate) Mask[R] {
	return lanesApproxEqual(a, b, epsilon, Widen(ulp), gate)
}

// LanesApproxEqual32 is LanesApproxEqual for float32 lanes.
func LanesApproxEqual32(a, b, epsilon Vec[float32], ulp Vec[uint32]) Mask[float32] {
	return LanesApproxEqual(a, b, epsilon, ulp)
}

// LanesApproxNotEqual32 is LanesApproxNotEqual for float32 lanes.
func LanesApproxNotEqual32(a, b, epsilon Vec[float32], ulp Vec[uint32]) Mask[float32] {
	return LanesApproxNotEqual(a, b, epsilon, ulp)
}

// LanesApproxEqual64 is LanesApproxEqual for float64 lanes.
func LanesApproxEqual64(a, b, epsilon Vec[float64], ulp Vec[uint64]) Mask[float64] {
	return LanesApproxEqual(a, b, epsilon, ulp)
}

// LanesApproxNotEqual64 is LanesApproxNotEqual for float64 lanes.
func LanesApproxNotEqual64(a, b, epsilon Vec[float64], ulp Vec[uint64]) Mask[float64] {
	return LanesApproxNotEqual(a, b, epsilon, ulp)
}

func lanesApproxEqual[R Real](a, b, epsilon Vec[R], ulp Vec[uint64], gate SignGate) Mask[R] {
	withinEpsilon := LessEqual(Abs(Sub(a, b)), epsilon)

	eligible := MaskNot(MaskOr(IsNaN(a), IsNaN(b)))
	if gate == SignGateOperands {
		signsDiffer := MaskXor(IsSignNegative(a), IsSignNegative(b))
		eligible = MaskAnd(eligible, MaskNot(signsDiffer))
	}
	withinULP := RebindMask[R](LessEqual(AbsDiff(BitsOf(a), BitsOf(b)), ulp))

	return MaskOr(withinEpsilon, MaskAnd(eligible, withinULP))
}

// AllApproxEqual reports whether every lane pair of a and b is approximately
// equal under the same epsilon and ulp. Vectors of different lane counts
// are never equal.
func AllApproxEqual[R Real](a, b Vec[R], epsilon R, ulp uint64) bool {
	n := a.NumLanes()
	if b.NumLanes() != n {
		return false
	}
	return lanesApproxEqual(a, b, SetN(n, epsilon), SetN(n, ulp), SignGateOperands).AllTrue()
}
