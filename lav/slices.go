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

// ApproxEqualSlices sets dst[i] = ApproxEqual(a[i], b[i], epsilon, ulp)
// for every index of a, comparing one vector of lanes at a time.
// Panics if a and b differ in length or dst is shorter.
func ApproxEqualSlices[R Real](dst []bool, a, b []R, epsilon R, ulp uint64) {
	if len(a) != len(b) {
		panic("lav: ApproxEqualSlices: slice lengths do not match")
	}
	if len(dst) < len(a) {
		panic("lav: ApproxEqualSlices: dst slice too short")
	}
	forEachChunk(a, b, epsilon, ulp, func(offset int, m Mask[R]) bool {
		copy(dst[offset:], m.bits)
		return true
	})
}

// AllApproxEqualSlices reports whether every pair a[i], b[i] is
// approximately equal. Slices of different lengths are never equal.
func AllApproxEqualSlices[R Real](a, b []R, epsilon R, ulp uint64) bool {
	if len(a) != len(b) {
		return false
	}
	all := true
	forEachChunk(a, b, epsilon, ulp, func(_ int, m Mask[R]) bool {
		all = m.AllTrue()
		return all
	})
	return all
}

// CountApproxEqual returns the number of indices i where a[i] and b[i] are
// approximately equal.
// Panics if a and b differ in length.
func CountApproxEqual[R Real](a, b []R, epsilon R, ulp uint64) int {
	if len(a) != len(b) {
		panic("lav: CountApproxEqual: slice lengths do not match")
	}
	count := 0
	forEachChunk(a, b, epsilon, ulp, func(_ int, m Mask[R]) bool {
		count += m.CountTrue()
		return true
	})
	return count
}

// forEachChunk compares a and b one vector at a time and hands every mask to
// fn until fn returns false. a and b must have the same length.
func forEachChunk[R Real](a, b []R, epsilon R, ulp uint64, fn func(offset int, m Mask[R]) bool) {
	lanes := MaxLanes[R]()
	eps := SetN(lanes, epsilon)
	ulps := SetN(lanes, ulp)
	done := false

	ProcessWithTail[R](len(a),
		func(offset int) {
			if done {
				return
			}
			m := lanesApproxEqual(Load(a[offset:]), Load(b[offset:]), eps, ulps, SignGateOperands)
			done = !fn(offset, m)
		},
		func(offset, count int) {
			if done {
				return
			}
			end := offset + count
			m := lanesApproxEqual(LoadN(a[offset:end]), LoadN(b[offset:end]), eps, ulps, SignGateOperands)
			done = !fn(offset, m)
		},
	)
}
