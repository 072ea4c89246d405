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

// Package lav provides approximate floating-point comparison for float32 and
// float64 values, either one pair at a time or lane-wise over vectors.
//
// Two values compare approximately equal when their absolute difference is
// within an epsilon, or when their bit patterns are within a number of
// representation steps (ULPs) of each other. The ULP path only applies to
// non-NaN values whose sign bits agree:
//
//	lav.ApproxEqual64(1.0, math.Nextafter(1, 2), 0, 1) // true
//	lav.ApproxEqual64(1.0, math.Nextafter(1, 2), 0, 0) // false
//	lav.ApproxEqual64(0.0, math.Copysign(0, -1), 0, 0) // true, epsilon path
//	lav.ApproxEqual64(math.NaN(), math.NaN(), 1, 1000) // false
//
// Lane-wise comparisons work on Vec values and produce a Mask:
//
//	a := lav.LoadN([]float32{1, 2, 3, 4})
//	b := lav.LoadN([]float32{1, 2, 3, 5})
//	m := lav.LanesApproxEqual32(a, b, lav.SetN[float32](4, 0), lav.SetN[uint32](4, 1))
//	m.AllTrue() // false, lane 3 differs
//	m.CountTrue() // 3
//
// All functions are pure and safe for concurrent use.
package lav
