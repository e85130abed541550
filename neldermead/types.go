// Package neldermead - options, result type and sentinel errors.
package neldermead

import (
	"errors"
	"log/slog"
)

// Objective is a real function of an n-dimensional point. It is evaluated
// repeatedly and assumed side-effect free: identical input must yield
// identical output. The slice passed to an Objective is owned by the
// optimizer and must not be retained or mutated.
type Objective func(x []float64) float64

var (
	// ErrNilObjective indicates the objective is nil.
	ErrNilObjective = errors.New("neldermead: objective must be non-nil")
	// ErrEmptyStart indicates the starting point has zero dimensions.
	ErrEmptyStart = errors.New("neldermead: starting point must be non-empty")
	// ErrBadSimplexSize indicates SimplexSize <= 0.
	ErrBadSimplexSize = errors.New("neldermead: simplex size must be positive")
	// ErrBadTolerance indicates Tol <= 0.
	ErrBadTolerance = errors.New("neldermead: tolerance must be positive")
	// ErrBadMaxIter indicates MaxIter <= 0.
	ErrBadMaxIter = errors.New("neldermead: maximum iterations must be positive")
)

// Options configures one Minimize call. The zero value is NOT usable; start
// from DefaultOptions and override what you need. Passing nil to Minimize is
// equivalent to DefaultOptions().
//
// Fields:
//   - SimplexSize — edge length of the initial unit-axis simplex around x0.
//   - Tol         — convergence threshold applied to BOTH termination tests
//     (standard deviation of vertex values, mean pairwise vertex distance).
//   - MaxIter     — iteration budget; exhaustion is NOT an error, the best
//     vertex found so far is returned.
//   - Verbose     — when true, per-iteration state is logged at debug level.
//   - Logger      — destination for Verbose output; nil means slog.Default().
type Options struct {
	SimplexSize float64
	Tol         float64
	MaxIter     int
	Verbose     bool
	Logger      *slog.Logger
}

// DefaultOptions returns the reference configuration: simplex size 0.1,
// tolerance 1e-10, 1000 iterations, quiet.
func DefaultOptions() Options {
	return Options{
		SimplexSize: 0.1,
		Tol:         1e-10,
		MaxIter:     1000,
	}
}

// validate maps bad option values to sentinels.
func (o *Options) validate() error {
	if !(o.SimplexSize > 0) {
		return ErrBadSimplexSize
	}
	if !(o.Tol > 0) {
		return ErrBadTolerance
	}
	if o.MaxIter <= 0 {
		return ErrBadMaxIter
	}
	return nil
}

// Result holds the outcome of a Minimize call.
type Result struct {
	// X is the best vertex found.
	X []float64
	// F is the objective value at X.
	F float64
	// Iterations is the number of simplex iterations performed.
	Iterations int
}
