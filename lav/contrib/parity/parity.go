// Copyright 2026 go-lav Authors. SPDX-License-Identifier: Apache-2.0

// Package parity compares a computed slice against a reference slice and
// summarises how far apart they are.
//
// It is meant for checking a vectorised or ported kernel against a scalar
// reference:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	tol, _ := parity.ToleranceFor[float32]("softmax")
//	report := parity.Compare(pool, want, got, tol)
//	if !report.OK() {
//	    t.Error(report)
//	}
package parity

import (
	"fmt"
	"sync"

	"github.com/qu1x/go-lav/lav"
	"github.com/qu1x/go-lav/lav/contrib/workerpool"
)

// Report summarises a comparison of two slices.
type Report[R lav.Real] struct {
	// Len is the number of compared pairs.
	Len int
	// Tolerance is the tolerance the pairs were checked against.
	Tolerance lav.Tolerance[R]
	// MaxAbsError is the largest |expected - actual| over pairs without NaN.
	MaxAbsError R
	// MaxULPError is the largest bit-pattern distance over same-signed pairs
	// without NaN.
	MaxULPError uint64
	// Mismatches counts the pairs that are not approximately equal.
	Mismatches int
	// FirstMismatch is the lowest mismatching index, or -1.
	FirstMismatch int
}

// OK reports whether every pair is within tolerance.
func (r Report[R]) OK() bool {
	return r.Mismatches == 0
}

// String returns a one-line summary of r.
func (r Report[R]) String() string {
	if r.OK() {
		return fmt.Sprintf("parity: %d values ok (max abs %g, max ulp %d)", r.Len, r.MaxAbsError, r.MaxULPError)
	}
	return fmt.Sprintf("parity: %d of %d values differ, first at %d (max abs %g, max ulp %d, tolerance eps %g ulp %d)",
		r.Mismatches, r.Len, r.FirstMismatch, r.MaxAbsError, r.MaxULPError, r.Tolerance.Epsilon, r.Tolerance.ULP)
}

// merge folds o, computed over a later or earlier chunk, into r.
func (r *Report[R]) merge(o Report[R]) {
	r.MaxAbsError = max(r.MaxAbsError, o.MaxAbsError)
	r.MaxULPError = max(r.MaxULPError, o.MaxULPError)
	r.Mismatches += o.Mismatches
	if o.FirstMismatch >= 0 && (r.FirstMismatch < 0 || o.FirstMismatch < r.FirstMismatch) {
		r.FirstMismatch = o.FirstMismatch
	}
}

// Compare checks expected[i] against actual[i] with tol for every index,
// splitting the work across pool. A nil pool compares on the calling
// goroutine.
// Panics if expected and actual differ in length.
func Compare[R lav.Real](pool *workerpool.Pool, expected, actual []R, tol lav.Tolerance[R]) Report[R] {
	if len(expected) != len(actual) {
		panic("parity: Compare: slice lengths do not match")
	}

	report := Report[R]{Len: len(expected), Tolerance: tol, FirstMismatch: -1}
	if pool == nil {
		report.merge(compareRange(expected, actual, tol, 0, len(expected)))
		return report
	}

	var mu sync.Mutex
	pool.ParallelForAligned(len(expected), lav.MaxLanes[R](), func(start, end int) {
		part := compareRange(expected, actual, tol, start, end)
		mu.Lock()
		report.merge(part)
		mu.Unlock()
	})
	return report
}

func compareRange[R lav.Real](expected, actual []R, tol lav.Tolerance[R], start, end int) Report[R] {
	part := Report[R]{FirstMismatch: -1}
	e, a := expected[start:end], actual[start:end]

	ok := make([]bool, len(e))
	lav.ApproxEqualSlices(ok, e, a, tol.Epsilon, tol.ULP)

	for i := range e {
		if !ok[i] {
			part.Mismatches++
			if part.FirstMismatch < 0 {
				part.FirstMismatch = start + i
			}
		}
		if e[i] != e[i] || a[i] != a[i] {
			continue
		}
		if d := e[i] - a[i]; d > part.MaxAbsError {
			part.MaxAbsError = d
		} else if -d > part.MaxAbsError {
			part.MaxAbsError = -d
		}
		if lav.Signbit(e[i]) == lav.Signbit(a[i]) {
			part.MaxULPError = max(part.MaxULPError, lav.ULPDistance(e[i], a[i]))
		}
	}
	return part
}
