// Package neldermead minimizes multivariate functions without derivatives
// using the Nelder–Mead downhill-simplex method.
//
// 🚀 What is Nelder–Mead?
//
//	A direct-search optimizer that walks a simplex of n+1 vertices through
//	n-dimensional space, repeatedly replacing the worst vertex by one of
//	four geometric moves:
//	  • Reflection  (α=1)   — mirror the worst vertex through the centroid
//	  • Expansion   (γ=2)   — push further when the reflection is a new best
//	  • Contraction (ρ=0.5) — pull inward when the reflection is poor
//	  • Shrink      (σ=0.5) — collapse every vertex toward the best one
//
// Iteration structure:
//  1. Re-sort the vertices ascending by function value into a fresh
//     ordering (no aliasing of the previous iteration's order).
//  2. Terminate when the standard deviation of the n+1 values OR the mean
//     pairwise vertex distance drops below Tol; return the best vertex.
//  3. Otherwise compute the centroid of all vertices but the worst and
//     branch on the reflected value exactly as listed above.
//
// ✨ Key contracts:
//   - Derivative-free: only objective evaluations, strictly sequential.
//   - Exhausting MaxIter is NOT an error — the best vertex so far comes
//     back silently, matching the method's heuristic nature.
//   - Deterministic: no randomness anywhere in the iteration.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlopt/neldermead"
//
//	rosenbrock := func(x []float64) float64 {
//	    return (1-x[0])*(1-x[0]) + 100*(x[1]-x[0]*x[0])*(x[1]-x[0]*x[0])
//	}
//	res, err := neldermead.Minimize(rosenbrock, []float64{2, -1}, nil)
//	// res.X ≈ [1, 1], res.F ≈ 0
//
// Errors: validation only — ErrNilObjective, ErrEmptyStart,
// ErrBadSimplexSize, ErrBadTolerance, ErrBadMaxIter.
//
// Performance: O(MaxIter·n) evaluations worst case (shrink re-evaluates n
// vertices), O(n²) memory for the simplex.
package neldermead
