package geom

import "github.com/qu1x/go-lav/lav"

// Point3 is a homogeneous 3D point with weight w and coordinates X, Y, Z.
// The zero value has no lanes; use NewPoint3.
type Point3[R lav.Real] struct {
	wXYZ lav.Vec[R]
}

// NewPoint3 returns the point with weight w at (X, Y, Z).
func NewPoint3[R lav.Real](w, X, Y, Z R) Point3[R] {
	return Point3[R]{wXYZ: lanes4(w, X, Y, Z)}
}

// WXYZ returns the lanes of p.
func (p Point3[R]) WXYZ() [4]R {
	var out [4]R
	lav.Store(p.wXYZ, out[:])
	return out
}

func (p Point3[R]) W() R { return p.wXYZ.Lane(0) }
func (p Point3[R]) X() R { return p.wXYZ.Lane(1) }
func (p Point3[R]) Y() R { return p.wXYZ.Lane(2) }
func (p Point3[R]) Z() R { return p.wXYZ.Lane(3) }

// Add returns p + o lane-wise.
func (p Point3[R]) Add(o Point3[R]) Point3[R] {
	return Point3[R]{wXYZ: lav.Add(p.wXYZ, o.wXYZ)}
}

// Sub returns p - o lane-wise.
func (p Point3[R]) Sub(o Point3[R]) Point3[R] {
	return Point3[R]{wXYZ: lav.Sub(p.wXYZ, o.wXYZ)}
}

// Neg returns -p.
func (p Point3[R]) Neg() Point3[R] {
	return Point3[R]{wXYZ: lav.Neg(p.wXYZ)}
}

// Scale returns p with every lane multiplied by s.
func (p Point3[R]) Scale(s R) Point3[R] {
	return Point3[R]{wXYZ: lav.Mul(p.wXYZ, lav.SetN(4, s))}
}

// Norm returns |w|.
func (p Point3[R]) Norm() R {
	if w := p.W(); lav.Signbit(w) {
		return -w
	}
	return p.W()
}

// Unit returns p divided by its norm, giving it weight ±1.
func (p Point3[R]) Unit() Point3[R] {
	return Point3[R]{wXYZ: lav.Div(p.wXYZ, lav.SetN(4, p.Norm()))}
}

// ApproxEqual reports whether every lane of p is approximately equal to the
// matching lane of o.
func (p Point3[R]) ApproxEqual(o Point3[R], epsilon R, ulp uint64) bool {
	return lav.AllApproxEqual(p.wXYZ, o.wXYZ, epsilon, ulp)
}
