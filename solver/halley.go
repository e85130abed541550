package solver

import "math"

// Halley solves f(x)=0 by Halley's method, the cubic-order refinement of
// Newton that also uses the second derivative.
//
// Algorithm outline:
//  1. Stop when |f(x)| < tol (residual test — unlike Newton's step test).
//  2. Otherwise update x -= 2·f·f′ / (2·f′² − f·f″).
//
// Reporting policy: exhausting maxIter without meeting the residual test
// returns ErrNoConvergence together with the last iterate — unlike Newton,
// which returns silently. The asymmetry is intentional.
//
// Complexity: O(maxIter) evaluations of f, df and ddf, O(1) memory.
func Halley(f, df, ddf Func, x0, tol float64, maxIter int) (float64, error) {
	if f == nil || df == nil || ddf == nil {
		return 0, ErrNilFunc
	}
	if !(tol > 0) {
		return 0, ErrBadTolerance
	}
	if maxIter <= 0 {
		return 0, ErrBadMaxIter
	}

	var (
		x  = x0
		fx float64
		d1 float64
		d2 float64
	)
	for iter := 0; iter < maxIter; iter++ {
		fx = f(x)
		if math.Abs(fx) < tol {
			return x, nil
		}
		d1 = df(x)
		d2 = ddf(x)
		x -= 2 * fx * d1 / (2*d1*d1 - fx*d2)
	}
	return x, ErrNoConvergence
}

// HalleyNumeric is Halley with f′ and f″ estimated by the standard central
// first- and second-difference stencils of step h. Both stencils read the same
// three points f(x−h), f(x), f(x+h); the adapters share the analytic control
// flow of Halley, including its residual test and ErrNoConvergence policy.
//
// Errors: those of Halley, plus ErrBadStep when h <= 0.
func HalleyNumeric(f Func, x0, tol, h float64, maxIter int) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}
	if !(h > 0) {
		return 0, ErrBadStep
	}
	return Halley(f, CentralDifference(f, h), CentralSecondDifference(f, h), x0, tol, maxIter)
}
