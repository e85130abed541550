// Package golden minimizes a unimodal scalar function on an interval with
// golden-section search.
//
// 🚀 What is golden-section search?
//
//	A bracketing minimizer that shrinks [a,b] by the golden ratio each step.
//	Because the interior probe points are placed at golden-ratio fractions,
//	one of the two previous function evaluations is always reused — every
//	iteration costs exactly ONE new evaluation of f. That reuse is the
//	algorithm's defining property.
//
// ✨ Key contracts:
//   - f must be unimodal (a single minimum) on [a,b]; otherwise the result
//     is some local structure of f, with no guarantee attached.
//   - The number of iterations is computed in closed form up front,
//     n = ceil(ln(tol/(b−a)) / ln(1/φ)), so the loop carries no
//     convergence test.
//   - The result is the midpoint of the final sub-bracket holding the lower
//     of the last two probe values, and lies within tol of the minimizer.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlopt/golden"
//
//	f := func(x float64) float64 { return (x - 2) * (x - 2) }
//	x, err := golden.Minimize(f, -5, 5, 1e-8) // x ≈ 2
//
// Errors: ErrNilFunc, ErrBadTolerance (validation only — the search itself
// cannot fail).
//
// Performance: O(log((b−a)/tol)) evaluations of f, O(1) memory.
package golden
