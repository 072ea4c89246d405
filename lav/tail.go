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

// ProcessWithTail walks a slice of the given size in vector-sized steps.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of
//     MaxLanes[T]()
//
// Example:
//
//	lav.ProcessWithTail[float32](len(a),
//	    func(offset int) {
//	        m := lav.LanesApproxEqual32(lav.Load(a[offset:]), lav.Load(b[offset:]), eps, ulp)
//	        // ...
//	    },
//	    func(offset, count int) {
//	        m := lav.LanesApproxEqual32(lav.LoadN(a[offset:offset+count]), lav.LoadN(b[offset:offset+count]), eps, ulp)
//	        // ...
//	    },
//	)
func ProcessWithTail[T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	maxLanes := MaxLanes[T]()

	fullVectors := size / maxLanes
	for i := range fullVectors {
		fullFn(i * maxLanes)
	}

	remaining := size % maxLanes
	if remaining > 0 {
		tailFn(fullVectors*maxLanes, remaining)
	}
}

// AlignedSize rounds up size to the next multiple of MaxLanes[T]().
func AlignedSize[T Lanes](size int) int {
	maxLanes := MaxLanes[T]()
	return ((size + maxLanes - 1) / maxLanes) * maxLanes
}
