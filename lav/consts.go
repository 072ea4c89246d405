package lav

import "math"

// Bit patterns of special values and precision constants.
const (
	maxBits32     = 0x7f7fffff
	maxBits64     = 0x7fefffffffffffff
	infBits32     = 0x7f800000
	infBits64     = 0x7ff0000000000000
	nanBits32     = 0x7fc00000
	nanBits64     = 0x7ff8000000000001
	minNormBits32 = 0x00800000
	minNormBits64 = 0x0010000000000000
	epsilon32     = 0x1p-23
	epsilon64     = 0x1p-52
	sqrtEpsilon32 = 3.4526698e-04
	sqrtEpsilon64 = 1.4901161193847656e-08
	cbrtEpsilon32 = 4.9215667e-03
	cbrtEpsilon64 = 6.0554544523933395e-06
)

// Epsilon returns the machine epsilon of R, the difference between 1 and
// the next larger representable value.
func Epsilon[R Real]() R {
	if is32[R]() {
		return R(epsilon32)
	}
	return R(epsilon64)
}

// SqrtEpsilon returns the square root of Epsilon[R]().
func SqrtEpsilon[R Real]() R {
	if is32[R]() {
		return R(sqrtEpsilon32)
	}
	return R(sqrtEpsilon64)
}

// CbrtEpsilon returns the cube root of Epsilon[R]().
func CbrtEpsilon[R Real]() R {
	if is32[R]() {
		return R(cbrtEpsilon32)
	}
	return R(cbrtEpsilon64)
}

// MaxValue returns the largest finite value of R.
func MaxValue[R Real]() R {
	return specialValue[R](maxBits32, maxBits64)
}

// MinPositive returns the smallest positive normal value of R.
func MinPositive[R Real]() R {
	return specialValue[R](minNormBits32, minNormBits64)
}

// SmallestNonzero returns the smallest positive subnormal value of R.
func SmallestNonzero[R Real]() R {
	return FromBits[R](1)
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf[R Real](sign int) R {
	inf := specialValue[R](infBits32, infBits64)
	if sign < 0 {
		return -inf
	}
	return inf
}

// NaN returns a quiet NaN of R.
func NaN[R Real]() R {
	return specialValue[R](nanBits32, nanBits64)
}

func specialValue[R Real](bits32 uint32, bits64 uint64) R {
	if is32[R]() {
		return FromBits[R](uint64(bits32))
	}
	return FromBits[R](bits64)
}

// NextAfter returns the next representable value after x towards y.
// If x == y, x is returned; if either is NaN, NaN is returned.
func NextAfter[R Real](x, y R) R {
	if is32[R]() {
		return R(math.Nextafter32(float32(x), float32(y)))
	}
	return R(math.Nextafter(float64(x), float64(y)))
}
