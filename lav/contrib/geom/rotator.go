// Package geom implements 3D rotations on four-lane vectors, compared with
// the approximate equality of package lav.
//
// A Rotator3 is a quaternion stored as w, x, y, z lanes. A Point3 is a
// homogeneous point stored as w, X, Y, Z lanes, with w = 1 for a normalised
// point.
//
//	r := geom.NewRotator3(math.Pi/2, 1.0, 0, 0)
//	p := r.Rotate(geom.NewPoint3(1.0, 0, 5, 0))
//	p.ApproxEqual(geom.NewPoint3(1.0, 0, 0, 5), 1e-12, 0) // true
package geom

import (
	"math"

	"github.com/qu1x/go-lav/lav"
)

// Rotator3 is a quaternion w + xi + yj + zk. Unit rotators are rotations.
// The zero value has no lanes; use NewRotator3 or Identity.
type Rotator3[R lav.Real] struct {
	wxyz lav.Vec[R]
}

func lanes4[R lav.Real](a, b, c, d R) lav.Vec[R] {
	return lav.LoadN([]R{a, b, c, d})
}

// NewRotator3 returns the unit rotator turning by alpha radians about the
// axis (x, y, z), counter-clockwise when looking against the axis. The axis
// need not be normalised.
func NewRotator3[R lav.Real](alpha, x, y, z R) Rotator3[R] {
	s, c := math.Sincos(float64(alpha) / 2)
	axis := Rotator3[R]{wxyz: lanes4(0, x, y, z)}.Unit()
	return axis.Scale(R(s)).WithW(R(c))
}

// Identity returns the rotator that leaves every point unchanged.
func Identity[R lav.Real]() Rotator3[R] {
	return Rotator3[R]{wxyz: lanes4[R](1, 0, 0, 0)}
}

// Rotator3FromWXYZ returns the rotator with the given lanes.
func Rotator3FromWXYZ[R lav.Real](wxyz [4]R) Rotator3[R] {
	return Rotator3[R]{wxyz: lav.LoadN(wxyz[:])}
}

// WXYZ returns the lanes of r.
func (r Rotator3[R]) WXYZ() [4]R {
	var out [4]R
	lav.Store(r.wxyz, out[:])
	return out
}

func (r Rotator3[R]) W() R { return r.wxyz.Lane(0) }
func (r Rotator3[R]) X() R { return r.wxyz.Lane(1) }
func (r Rotator3[R]) Y() R { return r.wxyz.Lane(2) }
func (r Rotator3[R]) Z() R { return r.wxyz.Lane(3) }

// WithW returns r with its scalar lane replaced.
func (r Rotator3[R]) WithW(w R) Rotator3[R] {
	return Rotator3[R]{wxyz: r.wxyz.WithLane(0, w)}
}

// Add returns r + o lane-wise.
func (r Rotator3[R]) Add(o Rotator3[R]) Rotator3[R] {
	return Rotator3[R]{wxyz: lav.Add(r.wxyz, o.wxyz)}
}

// Sub returns r - o lane-wise.
func (r Rotator3[R]) Sub(o Rotator3[R]) Rotator3[R] {
	return Rotator3[R]{wxyz: lav.Sub(r.wxyz, o.wxyz)}
}

// Neg returns -r, which performs the same rotation as r.
func (r Rotator3[R]) Neg() Rotator3[R] {
	return Rotator3[R]{wxyz: lav.Neg(r.wxyz)}
}

// Scale returns r with every lane multiplied by s.
func (r Rotator3[R]) Scale(s R) Rotator3[R] {
	return Rotator3[R]{wxyz: lav.Mul(r.wxyz, lav.SetN(4, s))}
}

// Mul returns the product r·o, the rotation o followed by r.
func (r Rotator3[R]) Mul(o Rotator3[R]) Rotator3[R] {
	lw, lx, ly, lz := r.W(), r.X(), r.Y(), r.Z()
	rw, rx, ry, rz := o.W(), o.X(), o.Y(), o.Z()

	wxyz := lav.Mul(lav.SetN(4, lz), lanes4(-rz, -ry, rx, rw))
	wxyz = lav.MulAdd(lav.SetN(4, ly), lanes4(-ry, rz, rw, -rx), wxyz)
	wxyz = lav.MulAdd(lav.SetN(4, lx), lanes4(-rx, rw, -rz, ry), wxyz)
	wxyz = lav.MulAdd(lav.SetN(4, lw), o.wxyz, wxyz)
	return Rotator3[R]{wxyz: wxyz}
}

// NormSquared returns w² + x² + y² + z².
func (r Rotator3[R]) NormSquared() R {
	return lav.ReduceSum(lav.Mul(r.wxyz, r.wxyz))
}

// Norm returns the Euclidean norm of the lanes of r.
func (r Rotator3[R]) Norm() R {
	return R(math.Sqrt(float64(r.NormSquared())))
}

// Unit returns r scaled to unit norm.
func (r Rotator3[R]) Unit() Rotator3[R] {
	return Rotator3[R]{wxyz: lav.Div(r.wxyz, lav.SetN(4, r.Norm()))}
}

// Rev returns the conjugate w - xi - yj - zk, the inverse rotation.
func (r Rotator3[R]) Rev() Rotator3[R] {
	return Rotator3[R]{wxyz: lav.NegateIf(lav.MaskOf[R](false, true, true, true), r.wxyz)}
}

// Inv returns the multiplicative inverse of r.
func (r Rotator3[R]) Inv() Rotator3[R] {
	return Rotator3[R]{wxyz: lav.Div(r.Rev().wxyz, lav.SetN(4, r.NormSquared()))}
}

// Constrain returns whichever of r and -r has a non-negative scalar lane,
// so that it takes the shorter way around.
func (r Rotator3[R]) Constrain() Rotator3[R] {
	if lav.Signbit(r.W()) {
		return r.Neg()
	}
	return r
}

// ApproxEqual reports whether every lane of r is approximately equal to the
// matching lane of o.
func (r Rotator3[R]) ApproxEqual(o Rotator3[R], epsilon R, ulp uint64) bool {
	return lav.AllApproxEqual(r.wxyz, o.wxyz, epsilon, ulp)
}

// Rotate returns p rotated by r. A rotator of norm n also scales the
// homogeneous weight of p by n².
func (r Rotator3[R]) Rotate(p Point3[R]) Point3[R] {
	return r.PointFunc()(p)
}

// PointFunc returns a function rotating points by r. The rotation matrix is
// computed once, so prefer it over Rotate for many points.
func (r Rotator3[R]) PointFunc() func(Point3[R]) Point3[R] {
	w, x, y, z := r.W(), r.X(), r.Y(), r.Z()
	ww, xx, yy, zz := w*w, x*x, y*y, z*z
	wx, wy, wz := w*x, w*y, w*z
	xy, xz, yz := x*y, x*z, y*z

	// Columns of the homogeneous rotation matrix.
	c0 := lanes4(ww+xx+yy+zz, ww+xx-yy-zz, 2*(xy+wz), 2*(xz-wy))
	c1 := lanes4(0, 2*(xy-wz), ww-xx+yy-zz, 2*(yz+wx))
	c2 := lanes4(0, 2*(xz+wy), 2*(yz-wx), ww-xx-yy+zz)

	return func(p Point3[R]) Point3[R] {
		pw, pX, pY, pZ := p.W(), p.X(), p.Y(), p.Z()
		v := lav.Mul(c2, lanes4(0, pZ, pZ, pZ))
		v = lav.MulAdd(c1, lanes4(0, pY, pY, pY), v)
		v = lav.MulAdd(c0, lanes4(pw, pX, pX, pX), v)
		return Point3[R]{wXYZ: v}
	}
}
