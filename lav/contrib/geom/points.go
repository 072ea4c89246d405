package geom

import (
	"github.com/qu1x/go-lav/lav"
	"github.com/qu1x/go-lav/lav/contrib/workerpool"
)

// RotateAll rotates every point in place by r, spread across pool.
// A nil pool rotates on the calling goroutine.
func RotateAll[R lav.Real](pool *workerpool.Pool, r Rotator3[R], points []Point3[R]) {
	rotate := r.PointFunc()
	work := func(start, end int) {
		for i := start; i < end; i++ {
			points[i] = rotate(points[i])
		}
	}
	if pool == nil {
		work(0, len(points))
		return
	}
	pool.ParallelForAtomicBatched(len(points), 64, work)
}

// PointsFromXYZ builds normalised points from consecutive X, Y, Z triples.
// Panics if len(xyz) is not a multiple of three.
func PointsFromXYZ[R lav.Real](xyz []R) []Point3[R] {
	if len(xyz)%3 != 0 {
		panic("geom: PointsFromXYZ: length is not a multiple of 3")
	}
	points := make([]Point3[R], 0, len(xyz)/3)
	for i := 0; i < len(xyz); i += 3 {
		points = append(points, NewPoint3(1, xyz[i], xyz[i+1], xyz[i+2]))
	}
	return points
}
