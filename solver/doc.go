// Package solver finds roots of scalar functions f(x)=0 with the classic
// iterative methods: Newton, Halley, bisection, secant, and Ridder.
//
// 🚀 What is solver?
//
//	Seven entry points over two families:
//	  • Derivative-based: Newton, NewtonNumeric, Halley, HalleyNumeric —
//	    fast local convergence near a simple root, need a good initial guess.
//	  • Bracketing: Bisection, Secant, Ridder — work from an interval
//	    (bisection and Ridder require a sign change; secant does not).
//
// ✨ Key contracts:
//   - Newton converges on step size (|dx| < tol) and NEVER reports
//     non-convergence: an exhausted budget returns the last iterate, nil error.
//   - Halley converges on residual (|f(x)| < tol) and DOES report
//     ErrNoConvergence on an exhausted budget. The asymmetry is deliberate
//     and pinned by tests; do not "fix" one policy to match the other.
//   - Bisection precomputes its iteration count from the bracket width and
//     tolerance; Ridder checks convergence relative to max(|x|,1).
//   - The *Numeric variants synthesize derivatives by central differences and
//     reuse the analytic control flow unchanged (see derivative.go).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlopt/solver"
//
//	f := func(x float64) float64 { return x*x - 2 }
//	df := func(x float64) float64 { return 2 * x }
//
//	root, err := solver.Newton(f, df, 1.5, 1e-12, 100)    // ≈ √2
//	root, err = solver.Bisection(f, 0, 2, 1e-12)          // ≈ √2
//	root, err = solver.Ridder(f, 0, 2, 1e-12, 100)        // ≈ √2
//
// Errors: see types.go — ErrNilFunc, ErrBadTolerance, ErrBadMaxIter,
// ErrBadStep, ErrInvalidBracket, ErrNoConvergence.
//
// Performance: every method is O(maxIter) function evaluations and O(1)
// memory; no allocations on the iteration path.
package solver
