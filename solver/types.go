// Package solver - shared types and sentinel errors for univariate root finders.
//
// Design principles (shared by every algorithm in this package):
//   - Strict sentinels: invalid input and detectable runtime failure map to the
//     errors below; no fmt.Errorf where a sentinel suffices.
//   - Asymmetric reporting: only the algorithms that can meaningfully detect
//     failure (Halley, Ridder, Bisection) surface ErrNoConvergence or
//     ErrInvalidBracket at runtime. Newton and Secant return their last iterate
//     with a nil error even when the budget runs out; callers that need a
//     uniform "did this converge" answer must re-check |f(x)| themselves.
//   - Determinism: no randomness, no global state; identical inputs yield
//     bit-identical outputs.
package solver

import "errors"

// Func is a scalar real function y = f(x). It is evaluated repeatedly and is
// assumed side-effect free: identical x must yield identical y. The package
// never retains a Func beyond the call it was passed to.
type Func func(x float64) float64

var (
	// ErrNilFunc indicates a required function argument is nil.
	ErrNilFunc = errors.New("solver: function must be non-nil")
	// ErrBadTolerance indicates tol <= 0 (or NaN).
	ErrBadTolerance = errors.New("solver: tolerance must be positive")
	// ErrBadMaxIter indicates maxIter <= 0.
	ErrBadMaxIter = errors.New("solver: maximum iterations must be positive")
	// ErrBadStep indicates a non-positive finite-difference step.
	ErrBadStep = errors.New("solver: finite-difference step must be positive")
	// ErrInvalidBracket indicates [a,b] does not bracket a sign change.
	ErrInvalidBracket = errors.New("solver: interval does not bracket a root")
	// ErrNoConvergence indicates the iteration budget was exhausted before the
	// algorithm's convergence test was met.
	ErrNoConvergence = errors.New("solver: did not converge within iteration budget")
)
