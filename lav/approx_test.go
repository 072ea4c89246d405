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
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	negZero64 = math.Copysign(0, -1)
	negZero32 = float32(math.Copysign(0, -1))
)

// randomBits64 returns values drawn from raw bit patterns, so NaNs,
// infinities, zeros and subnormals all show up, mixed with a few ordinary
// values near 1.
func randomBits64(r *rand.Rand, n int) []float64 {
	special := []float64{
		0, negZero64, 1, -1, math.Inf(1), math.Inf(-1), math.NaN(),
		math.MaxFloat64, -math.MaxFloat64, math.SmallestNonzeroFloat64,
		math.Nextafter(1, 2), math.Nextafter(1, 0),
	}
	out := make([]float64, n)
	for i := range out {
		switch r.IntN(3) {
		case 0:
			out[i] = special[r.IntN(len(special))]
		case 1:
			out[i] = 1 + (r.Float64()-0.5)*1e-12
		default:
			out[i] = math.Float64frombits(r.Uint64())
		}
	}
	return out
}

func randomBits32(r *rand.Rand, n int) []float32 {
	special := []float32{
		0, negZero32, 1, -1, float32(math.Inf(1)), float32(math.Inf(-1)), float32(math.NaN()),
		math.MaxFloat32, -math.MaxFloat32, math.SmallestNonzeroFloat32,
		math.Nextafter32(1, 2), math.Nextafter32(1, 0),
	}
	out := make([]float32, n)
	for i := range out {
		switch r.IntN(3) {
		case 0:
			out[i] = special[r.IntN(len(special))]
		case 1:
			out[i] = 1 + float32(r.Float64()-0.5)*1e-5
		default:
			out[i] = math.Float32frombits(r.Uint32())
		}
	}
	return out
}

var (
	testEpsilons64 = []float64{0, math.SmallestNonzeroFloat64, 1e-300, 1e-9, 1, math.Inf(1)}
	testULPs       = []uint64{0, 1, 4, 1000, 1 << 40, math.MaxUint64}
)

func TestApproxEqualConcreteScenario(t *testing.T) {
	a := 1.0
	b := 1.0 + math.Ldexp(1, -52)
	require.Equal(t, math.Nextafter(1, 2), b)

	assert.True(t, ApproxEqual64(a, b, 0, 1))
	assert.False(t, ApproxEqual64(a, b, 0, 0))
	assert.True(t, ApproxNotEqual64(a, b, 0, 0))
}

func TestApproxEqualReflexivity(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, x := range randomBits64(r, 2000) {
		want := !math.IsNaN(x)
		assert.Equal(t, want, ApproxEqual64(x, x, 0, 0), "x=%v bits=%#x", x, math.Float64bits(x))
	}
	for _, x := range randomBits32(r, 2000) {
		want := x == x
		assert.Equal(t, want, ApproxEqual32(x, x, 0, 0), "x=%v bits=%#x", x, math.Float32bits(x))
	}
}

func TestApproxEqualSymmetry(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	as := randomBits64(r, 500)
	bs := randomBits64(r, 500)
	for i := range as {
		a, b := as[i], bs[i]
		for _, eps := range testEpsilons64 {
			for _, ulp := range testULPs {
				if ApproxEqual64(a, b, eps, ulp) != ApproxEqual64(b, a, eps, ulp) {
					t.Errorf("asymmetric: a=%v b=%v eps=%v ulp=%d", a, b, eps, ulp)
				}
			}
		}
	}
}

func TestApproxEqualEpsilonMonotonic(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	as := randomBits64(r, 500)
	bs := randomBits64(r, 500)
	for i := range as {
		a, b := as[i], bs[i]
		for _, ulp := range testULPs {
			for j, e1 := range testEpsilons64 {
				if !ApproxEqual64(a, b, e1, ulp) {
					continue
				}
				for _, e2 := range testEpsilons64[j:] {
					assert.True(t, ApproxEqual64(a, b, e2, ulp), "a=%v b=%v e1=%v e2=%v ulp=%d", a, b, e1, e2, ulp)
				}
			}
		}
	}
}

func TestApproxEqualULPMonotonic(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	as := randomBits64(r, 500)
	bs := randomBits64(r, 500)
	for i := range as {
		a, b := as[i], bs[i]
		for j, u1 := range testULPs {
			// Zero epsilon isolates the ULP path except for exact differences of zero.
			if !ApproxEqual64(a, b, 0, u1) {
				continue
			}
			for _, u2 := range testULPs[j:] {
				assert.True(t, ApproxEqual64(a, b, 0, u2), "a=%v b=%v u1=%d u2=%d", a, b, u1, u2)
			}
		}
	}
}

func TestApproxNotEqualIsNegation(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 10))
	as := randomBits32(r, 300)
	bs := randomBits32(r, 300)
	for i := range as {
		a, b := as[i], bs[i]
		for _, eps := range []float32{0, 1e-6, 1, float32(math.Inf(1))} {
			for _, ulp := range []uint32{0, 1, 100, math.MaxUint32} {
				assert.Equal(t, !ApproxEqual32(a, b, eps, ulp), ApproxNotEqual32(a, b, eps, ulp))
				assert.Equal(t, !ApproxEqual(a, b, eps, uint64(ulp)), ApproxNotEqual(a, b, eps, uint64(ulp)))
			}
		}
	}
}

func TestApproxEqualSignedZero(t *testing.T) {
	assert.True(t, ApproxEqual64(0, negZero64, 0, 0))
	assert.True(t, ApproxEqual64(negZero64, 0, 0, 0))
	assert.True(t, ApproxEqual32(0, negZero32, 0, 0))
	assert.True(t, ApproxEqualGated(0, negZero64, 0, 0, SignGateSelf))

	// With a negative epsilon only the ULP path is left, and the sign bits differ.
	assert.False(t, ApproxEqual64(0, negZero64, -1, 0))
	assert.False(t, ApproxEqual64(0, negZero64, -1, 1<<62))
}

func TestApproxEqualNaN(t *testing.T) {
	nan := math.NaN()
	assert.False(t, ApproxEqual64(1.0, nan, 1.0, 1000))
	assert.False(t, ApproxEqual64(nan, 1.0, 1.0, 1000))
	assert.False(t, ApproxEqual64(nan, nan, 0, 0))
	assert.False(t, ApproxEqual64(nan, nan, math.Inf(1), math.MaxUint64))
	assert.False(t, ApproxEqualGated(nan, nan, math.Inf(1), math.MaxUint64, SignGateSelf))
	assert.False(t, ApproxEqual32(float32(nan), 1, 1, math.MaxUint32))

	// Identical payloads are still not equal.
	payload := math.Float64frombits(0x7ff8000000000042)
	assert.False(t, ApproxEqual64(payload, payload, 0, math.MaxUint64))
}

func TestApproxEqualInfinities(t *testing.T) {
	inf := math.Inf(1)
	assert.True(t, ApproxEqual64(inf, inf, 0, 0))
	assert.True(t, ApproxEqual64(-inf, -inf, 0, 0))
	assert.False(t, ApproxEqual64(inf, -inf, 1, 1000))
	assert.False(t, ApproxEqual64(inf, math.MaxFloat64, 1e300, 0))
	assert.True(t, ApproxEqual64(inf, math.MaxFloat64, 0, 1))

	inf32 := float32(inf)
	assert.True(t, ApproxEqual32(inf32, inf32, 0, 0))
	assert.True(t, ApproxEqual32(-inf32, -inf32, 0, 0))
	assert.True(t, ApproxEqual32(inf32, math.MaxFloat32, 0, 1))
}

func TestApproxEqualAdjacentRepresentable(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 12))
	for _, x := range randomBits64(r, 3000) {
		if math.IsNaN(x) || math.IsInf(x, 0) || x == 0 {
			continue
		}
		next := math.Nextafter(x, math.Copysign(math.Inf(1), x))
		assert.True(t, ApproxEqual64(x, next, 0, 1), "x=%v", x)
		assert.False(t, ApproxEqual64(x, next, 0, 0), "x=%v", x)
		assert.Equal(t, uint64(1), ULPDistance(x, next))
	}
	for _, x := range randomBits32(r, 3000) {
		if x != x || math.IsInf(float64(x), 0) || x == 0 {
			continue
		}
		next := NextAfter(x, Inf[float32](int(math.Copysign(1, float64(x)))))
		assert.True(t, ApproxEqual32(x, next, 0, 1), "x=%v", x)
		assert.False(t, ApproxEqual32(x, next, 0, 0), "x=%v", x)
	}
}

func TestApproxEqualSubnormals(t *testing.T) {
	tiny := math.SmallestNonzeroFloat64
	assert.True(t, ApproxEqual64(0, tiny, 0, 1))
	assert.False(t, ApproxEqual64(0, tiny, 0, 0))
	assert.True(t, ApproxEqual64(tiny, 3*tiny, 0, 2))
	// -0 and the smallest positive subnormal are one step apart in value but
	// their bit patterns differ in the sign bit.
	assert.False(t, ApproxEqual64(negZero64, tiny, 0, 1000))
	assert.True(t, ApproxEqual64(negZero64, tiny, tiny, 0))
}

func TestApproxEqualSignGates(t *testing.T) {
	// Mixed signs only reach the ULP path under SignGateSelf, and their bit
	// patterns are far apart, so the gates differ only for huge ulp values.
	pairs := [][2]float64{{1, -1}, {1e300, -1e300}, {math.MaxFloat64, -math.MaxFloat64}, {2.5, -1e-300}}
	for _, p := range pairs {
		a, b := p[0], p[1]
		for _, gate := range []SignGate{SignGateOperands, SignGateSelf} {
			assert.False(t, ApproxEqualGated(a, b, 0, 1000, gate), "%v a=%v b=%v", gate, a, b)
			assert.False(t, ApproxEqualGated(a, b, 0, 1<<62, gate), "%v a=%v b=%v", gate, a, b)
		}
		assert.False(t, ApproxEqualGated(a, b, 0, math.MaxUint64, SignGateOperands))
		assert.True(t, ApproxEqualGated(a, b, 0, math.MaxUint64, SignGateSelf))
		assert.False(t, ApproxEqual64(a, b, 0, math.MaxUint64))
	}

	assert.False(t, ApproxEqualGated[float32](1, -1, 0, math.MaxUint32, SignGateOperands))
	assert.True(t, ApproxEqualGated[float32](1, -1, 0, math.MaxUint32, SignGateSelf))

	// Same-sign pairs are unaffected by the gate.
	r := rand.New(rand.NewPCG(13, 14))
	as := randomBits64(r, 500)
	bs := randomBits64(r, 500)
	for i := range as {
		a, b := as[i], bs[i]
		if math.Signbit(a) != math.Signbit(b) {
			continue
		}
		for _, ulp := range testULPs {
			assert.Equal(t,
				ApproxEqualGated(a, b, 0, ulp, SignGateOperands),
				ApproxEqualGated(a, b, 0, ulp, SignGateSelf))
		}
	}
	assert.Equal(t, "operands", SignGateOperands.String())
	assert.Equal(t, "self", SignGateSelf.String())
}

func TestApproxEqualNegativeEpsilon(t *testing.T) {
	assert.True(t, ApproxEqual64(1, 1, -1, 0))
	assert.False(t, ApproxEqual64(1, math.Nextafter(1, 2), -1, 0))
	assert.True(t, ApproxEqual64(1, math.Nextafter(1, 2), -1, 1))
}

func TestApproxEqualFloat32ULPWidening(t *testing.T) {
	// Every float32 bit distance fits in a uint32, so a ulp above MaxUint32 is
	// the same as MaxUint32.
	a, b := float32(1e-30), float32(1e30)
	assert.True(t, ApproxEqual(a, b, 0, math.MaxUint32))
	assert.True(t, ApproxEqual(a, b, 0, math.MaxUint64))
	assert.Equal(t, ApproxEqual32(a, b, 0, 1000), ApproxEqual(a, b, 0, 1000))
}

type celsius float64

func TestApproxEqualNamedType(t *testing.T) {
	a := celsius(21.5)
	b := NextAfter(a, 100)
	assert.True(t, ApproxEqual(a, b, 0, 1))
	assert.False(t, ApproxEqual(a, b, 0, 0))
	assert.True(t, ApproxEqual(a, b+0.01, 0.02, 0))
}

func TestLanesApproxEqualMatchesScalar(t *testing.T) {
	r := rand.New(rand.NewPCG(15, 16))
	as := randomBits64(r, 400)
	bs := randomBits64(r, 400)
	for i := range as {
		a, b := as[i], bs[i]
		for _, eps := range testEpsilons64 {
			for _, ulp := range testULPs {
				m := LanesApproxEqual64(SetN(4, a), SetN(4, b), SetN(4, eps), SetN(4, ulp))
				want := ApproxEqual64(a, b, eps, ulp)
				if m.AllTrue() != want || m.AnyTrue() != want {
					t.Errorf("lanes disagree with scalar: a=%v b=%v eps=%v ulp=%d", a, b, eps, ulp)
				}
				assert.Equal(t, want, AllApproxEqual(SetN(4, a), SetN(4, b), eps, ulp))
			}
		}
	}

	as32 := randomBits32(r, 400)
	bs32 := randomBits32(r, 400)
	for i := range as32 {
		a, b := as32[i], bs32[i]
		for _, ulp := range []uint32{0, 1, 1000, math.MaxUint32} {
			m := LanesApproxEqual32(SetN(8, a), SetN(8, b), SetN[float32](8, 1e-6), SetN(8, ulp))
			assert.Equal(t, ApproxEqual32(a, b, 1e-6, ulp), m.AllTrue())
		}
	}
}

func TestLanesApproxEqualPerLane(t *testing.T) {
	inf := math.Inf(1)
	nan := math.NaN()
	one := math.Nextafter(1, 2)

	a := LoadN([]float64{1, 1, 0, inf, nan, 1, 2.0, -1})
	b := LoadN([]float64{1, one, negZero64, inf, nan, 1.5, 2.1, 1})
	eps := LoadN([]float64{0, 0, 0, 0, 1, 0.5, 0.01, 0})
	ulp := LoadN([]uint64{0, 1, 0, 0, 100, 0, 0, math.MaxUint64})

	m := LanesApproxEqual64(a, b, eps, ulp)
	want := []bool{true, true, true, true, false, true, false, false}
	assert.Equal(t, want, m.Bits())
	assert.Equal(t, 5, m.CountTrue())
	assert.False(t, m.AllTrue())
	assert.True(t, m.AnyTrue())

	ne := LanesApproxNotEqual64(a, b, eps, ulp)
	for i, w := range want {
		assert.Equal(t, !w, ne.GetBit(i), "lane %d", i)
	}

	self := LanesApproxEqualGated(a, b, eps, ulp, SignGateSelf)
	assert.True(t, self.GetBit(7), "mixed sign lane passes the self gate with max ulp")
}

func TestLanesApproxEqualMixedWidthULP(t *testing.T) {
	a := LoadN([]float64{1, 1})
	b := LoadN([]float64{math.Nextafter(1, 2), math.Nextafter(math.Nextafter(1, 2), 2)})
	m := LanesApproxEqual(a, b, SetN[float64](2, 0), LoadN([]uint32{1, 1}))
	assert.Equal(t, []bool{true, false}, m.Bits())

	m32 := LanesApproxNotEqual32(LoadN([]float32{1}), LoadN([]float32{1}), SetN[float32](1, 0), SetN[uint32](1, 0))
	assert.False(t, m32.AnyTrue())
}

func TestAllApproxEqualLaneCountMismatch(t *testing.T) {
	a := LoadN([]float64{1, 2, 3})
	b := LoadN([]float64{1, 2})
	assert.False(t, AllApproxEqual(a, b, 1, math.MaxUint64))
	assert.True(t, AllApproxEqual(LoadN[float64](nil), LoadN[float64](nil), 0, 0))
}

func BenchmarkApproxEqual64(b *testing.B) {
	x := 1.0
	y := math.Nextafter(1, 2)
	var sink bool
	for b.Loop() {
		sink = ApproxEqual64(x, y, 0, 1)
	}
	_ = sink
}

func BenchmarkLanesApproxEqual32(b *testing.B) {
	n := MaxLanes[float32]()
	x := SetN[float32](n, 1)
	y := SetN(n, math.Nextafter32(1, 2))
	eps := SetN[float32](n, 0)
	ulp := SetN[uint32](n, 1)
	var sink Mask[float32]
	for b.Loop() {
		sink = LanesApproxEqual32(x, y, eps, ulp)
	}
	_ = sink
}
