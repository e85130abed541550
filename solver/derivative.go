package solver

// CentralDifference returns a Func estimating f′ by the symmetric two-point
// stencil (f(x+h) − f(x−h)) / (2h).
//
// The returned Func is a drop-in replacement for an analytic derivative, which
// is how NewtonNumeric and HalleyNumeric reuse their analytic counterparts'
// control flow without duplicating it. Costs two evaluations of f per call.
//
// Contract: h > 0 (validated by the callers that expose h to users).
//
// Complexity: O(1) per call.
func CentralDifference(f Func, h float64) Func {
	return func(x float64) float64 {
		return (f(x+h) - f(x-h)) / (2 * h)
	}
}

// CentralSecondDifference returns a Func estimating f″ by the three-point
// stencil (f(x+h) − 2f(x) + f(x−h)) / h².
//
// Costs three evaluations of f per call.
//
// Complexity: O(1) per call.
func CentralSecondDifference(f Func, h float64) Func {
	return func(x float64) float64 {
		return (f(x+h) - 2*f(x) + f(x-h)) / (h * h)
	}
}
