// Package leastsq fits model parameters to data with the Gauss–Newton
// method for nonlinear least squares.
//
// 🚀 What is Gauss–Newton?
//
//	Given data points (xs[i], ys[i]) and a model m(xs, β), the method
//	repeatedly linearizes the residual r = ys − m(xs, β) around the current
//	parameters and solves the normal equations
//
//	  JᵀJ·Δ = Jᵀr,    β ← β + Δ
//
//	where J is the numeric Jacobian ∂m/∂β assembled column by column from
//	forward differences of step h. The linear solve goes through a QR
//	factorization of JᵀJ.
//
// ✨ Key contracts:
//   - Convergence on the step: ‖Δ‖ < tol stops the iteration.
//   - Exhausting maxIter is NOT an error — the last β comes back silently,
//     like Newton and unlike Halley/Ridder.
//   - A rank-deficient Jacobian makes the normal equations singular; that
//     IS an error (ErrSingularSystem), because no step can be computed.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlopt/leastsq"
//
//	// Fit y = β0·exp(β1·x).
//	model := func(xs, beta []float64) []float64 {
//	    out := make([]float64, len(xs))
//	    for i, x := range xs {
//	        out[i] = beta[0] * math.Exp(beta[1]*x)
//	    }
//	    return out
//	}
//	beta, err := leastsq.GaussNewton(xs, ys, model, []float64{1, 0}, 1e-10, 1e-6, 100)
//
// Errors: ErrNilModel, ErrDataMismatch, ErrEmptyParams, ErrModelShape,
// ErrBadTolerance, ErrBadStep, ErrBadMaxIter, ErrSingularSystem.
//
// Performance: O(maxIter·(p·n + p³)) for n data points and p parameters,
// O(n·p) memory for the Jacobian.
package leastsq
