package parity

import (
	"maps"
	"slices"

	"github.com/qu1x/go-lav/lav"
)

// Operation tolerance classes.
const (
	classExact = iota
	classHigh
	classMedium
	classLow
)

var operationClasses = map[string]int{
	"add":        classExact,
	"multiply":   classExact,
	"abs_sub":    classExact,
	"gemm":       classHigh,
	"conv2d":     classHigh,
	"rotate":     classHigh,
	"reduce_sum": classMedium,
	"softmax":    classMedium,
	"norm":       classMedium,
	"gelu":       classLow,
	"exp":        classLow,
	"log":        classLow,
}

// Loosened one class on NEON, where reductions pair lanes differently.
var neonLoosened = map[string]bool{
	"reduce_sum": true,
	"softmax":    true,
	"norm":       true,
}

// ToleranceFor returns the tolerance preset for a named operation and
// whether the name is known. Unknown names get lav.Medium.
func ToleranceFor[R lav.Real](operation string) (lav.Tolerance[R], bool) {
	class, ok := operationClasses[operation]
	if !ok {
		return lav.Medium[R](), false
	}
	if lav.CurrentLevel() == lav.DispatchNEON && neonLoosened[operation] {
		class = min(class+1, classLow)
	}
	return classTolerance[R](class), true
}

// Operations returns the sorted names ToleranceFor knows.
func Operations() []string {
	return slices.Sorted(maps.Keys(operationClasses))
}

func classTolerance[R lav.Real](class int) lav.Tolerance[R] {
	switch class {
	case classExact:
		return lav.Exact[R]()
	case classHigh:
		return lav.High[R]()
	case classMedium:
		return lav.Medium[R]()
	default:
		return lav.Low[R]()
	}
}
