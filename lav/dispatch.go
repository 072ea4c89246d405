package lav

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel represents the instruction set the lane width is sized for.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go lanes of 16 bytes.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Set by init() in dispatch_*.go files.
var (
	currentLevel DispatchLevel
	currentWidth int
)

// CurrentLevel returns the detected dispatch level.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the vector width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current target.
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv reports whether the LAV_NO_SIMD environment variable is set.
// When set, vectors use the 16-byte scalar width regardless of CPU
// capabilities. Any non-empty value that does not parse as a bool counts
// as set.
func NoSimdEnv() bool {
	val := os.Getenv("LAV_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16
}

// MaxLanes returns the number of lanes of type T that fit the current width.
//
// With AVX2 (32 bytes):
//   - float32, uint32: 8 lanes
//   - float64, uint64: 4 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	return currentWidth / int(unsafe.Sizeof(dummy))
}
