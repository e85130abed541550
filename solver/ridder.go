package solver

import "math"

// Ridder solves f(x)=0 on a genuine sign-change bracket [a,b] by Ridder's
// method: bisection refined by an exponential correction factor.
//
// Algorithm outline:
//  1. Verify the bracket. An endpoint that is already an exact root is
//     returned immediately; same-sign endpoints return ErrInvalidBracket.
//  2. Each iteration takes the midpoint c and the corrected estimate
//     x = c + sign(f(a)−f(b))·(c−a)·f(c) / sqrt(f(c)² − f(a)·f(b)),
//     falling back to linear interpolation across the bracket when the
//     square-root denominator vanishes.
//  3. Convergence: |x − xPrev| < tol·max(|x|,1), so the test stays
//     meaningful for roots near zero.
//  4. Re-bracket by a three-way sign test that keeps the tightest interval
//     still containing a root.
//
// Reporting policy: exhausting maxIter returns ErrNoConvergence with the last
// estimate.
//
// Complexity: O(maxIter) evaluations of f (two per iteration), O(1) memory.
func Ridder(f Func, a, b, tol float64, maxIter int) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}
	if !(tol > 0) {
		return 0, ErrBadTolerance
	}
	if maxIter <= 0 {
		return 0, ErrBadMaxIter
	}

	fa, fb := f(a), f(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if fa*fb > 0 {
		return 0, ErrInvalidBracket
	}

	var (
		x     float64
		xPrev = math.Inf(1)
	)
	for iter := 0; iter < maxIter; iter++ {
		c := (a + b) / 2
		fc := f(c)

		s := math.Sqrt(fc*fc - fa*fb)
		if s == 0 {
			// Degenerate correction; fall back to linear interpolation.
			x = a - fa*(a-b)/(fa-fb)
		} else {
			x = c + math.Copysign(1, fa-fb)*(c-a)*fc/s
		}

		if math.Abs(x-xPrev) < tol*math.Max(math.Abs(x), 1) {
			return x, nil
		}
		xPrev = x

		fx := f(x)
		if fx == 0 {
			return x, nil
		}

		// Keep the tightest bracket still containing a sign change.
		switch {
		case fc*fx < 0:
			a, fa = c, fc
			b, fb = x, fx
		case fa*fx < 0:
			b, fb = x, fx
		default:
			a, fa = x, fx
		}
	}
	return x, ErrNoConvergence
}
