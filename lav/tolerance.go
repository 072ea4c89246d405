package lav

// Tolerance bundles the epsilon and ulp arguments of ApproxEqual.
type Tolerance[R Real] struct {
	// Epsilon bounds the absolute difference.
	Epsilon R
	// ULP bounds the bit-pattern distance of same-signed, non-NaN values.
	ULP uint64
}

// Tolerance presets, from bit-exact to transcendental-approximation level.
const (
	ULPExact  = 0
	ULPHigh   = 2
	ULPMedium = 10
	ULPLow    = 100
)

// Exact only accepts bit-identical values and signed zeros.
func Exact[R Real]() Tolerance[R] {
	return Tolerance[R]{}
}

// High suits results of a few correctly rounded operations.
func High[R Real]() Tolerance[R] {
	return Tolerance[R]{Epsilon: 4 * Epsilon[R](), ULP: ULPHigh}
}

// Medium suits reductions and other accumulated results.
func Medium[R Real]() Tolerance[R] {
	return Tolerance[R]{Epsilon: SqrtEpsilon[R](), ULP: ULPMedium}
}

// Low suits polynomial approximations of transcendental functions.
func Low[R Real]() Tolerance[R] {
	return Tolerance[R]{Epsilon: CbrtEpsilon[R](), ULP: ULPLow}
}

// Equal reports ApproxEqual(a, b, t.Epsilon, t.ULP).
func (t Tolerance[R]) Equal(a, b R) bool {
	return ApproxEqual(a, b, t.Epsilon, t.ULP)
}

// NotEqual reports ApproxNotEqual(a, b, t.Epsilon, t.ULP).
func (t Tolerance[R]) NotEqual(a, b R) bool {
	return ApproxNotEqual(a, b, t.Epsilon, t.ULP)
}

// Lanes compares a and b lane-wise with t applied to every lane.
func (t Tolerance[R]) Lanes(a, b Vec[R]) Mask[R] {
	n := min(a.NumLanes(), b.NumLanes())
	return lanesApproxEqual(a, b, SetN(n, t.Epsilon), SetN(n, t.ULP), SignGateOperands)
}

// Looser returns the tolerance whose epsilon and ulp are the larger of t's
// and o's. Everything t or o accepts through a single path, it accepts too.
func (t Tolerance[R]) Looser(o Tolerance[R]) Tolerance[R] {
	return Tolerance[R]{Epsilon: max(t.Epsilon, o.Epsilon), ULP: max(t.ULP, o.ULP)}
}
