package solver

import "math"

// Secant solves f(x)=0 from two starting estimates a and b. No bracketing is
// required or checked: the pair is simply the seed of the secant recurrence
//
//	c = a − f(a)·(a−b) / (f(a)−f(b))
//
// after which (a,b) shifts to (c,a).
//
// Stops early when two successive estimates differ by less than tol, otherwise
// runs the full maxIter. The division is unguarded: if f(a) and f(b) become
// (nearly) equal away from a root the iteration can diverge or produce
// non-finite values. That is a documented property of the method, not an
// error — the result is returned as computed, with a nil error, and the
// caller is expected to check the residual when convergence matters.
//
// Errors are validation-only: ErrNilFunc, ErrBadTolerance, ErrBadMaxIter.
//
// Complexity: O(maxIter) evaluations of f, O(1) memory.
func Secant(f Func, a, b, tol float64, maxIter int) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}
	if !(tol > 0) {
		return 0, ErrBadTolerance
	}
	if maxIter <= 0 {
		return 0, ErrBadMaxIter
	}

	var c float64
	for iter := 0; iter < maxIter; iter++ {
		fa, fb := f(a), f(b)
		c = a - fa*(a-b)/(fa-fb)
		if math.Abs(c-a) < tol {
			return c, nil
		}
		a, b = c, a
	}
	return c, nil
}
