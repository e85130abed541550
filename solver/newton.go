package solver

import "math"

// Newton solves f(x)=0 by Newton–Raphson iteration from the initial guess x0.
//
// Algorithm outline:
//  1. dx = f(x)/f′(x); if f′(x) is exactly zero, fall back to dx = f(x)
//     (a degeneracy guard — not a true Newton step, but it keeps the
//     iteration moving instead of dividing by zero).
//  2. x -= dx.
//  3. Stop when |dx| < tol, or after maxIter iterations.
//
// Near a simple root the method converges quadratically: the number of
// correct digits roughly doubles each iteration.
//
// Reporting policy: exhausting maxIter is NOT an error. The last iterate is
// returned with a nil error, and the caller cannot tell "converged" from
// "ran out of budget" without re-checking |f(x)|. Errors are validation-only:
// ErrNilFunc, ErrBadTolerance, ErrBadMaxIter.
//
// Complexity: O(maxIter) evaluations of f and df, O(1) memory.
func Newton(f, df Func, x0, tol float64, maxIter int) (float64, error) {
	if f == nil || df == nil {
		return 0, ErrNilFunc
	}
	if !(tol > 0) {
		return 0, ErrBadTolerance
	}
	if maxIter <= 0 {
		return 0, ErrBadMaxIter
	}

	var (
		x   = x0
		fx  float64
		dfx float64
		dx  float64
	)
	for iter := 0; iter < maxIter; iter++ {
		fx = f(x)
		dfx = df(x)
		if dfx == 0 {
			dx = fx
		} else {
			dx = fx / dfx
		}
		x -= dx
		if math.Abs(dx) < tol {
			break
		}
	}
	return x, nil
}

// NewtonNumeric is Newton with f′ replaced by a central-difference estimate of
// step h. It composes Newton with CentralDifference rather than duplicating
// the loop, so the control flow and reporting policy are identical to Newton.
//
// Each iteration costs three evaluations of f (one direct, two for the
// derivative stencil).
//
// Errors: those of Newton, plus ErrBadStep when h <= 0.
func NewtonNumeric(f Func, x0, tol, h float64, maxIter int) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}
	if !(h > 0) {
		return 0, ErrBadStep
	}
	return Newton(f, CentralDifference(f, h), x0, tol, maxIter)
}
