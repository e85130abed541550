// Package pswarm - options, particle state and sentinel errors.
package pswarm

import "errors"

var (
	// ErrNilObjective indicates the objective is nil.
	ErrNilObjective = errors.New("pswarm: objective must be non-nil")
	// ErrBadBounds indicates lb/ub are empty, differ in length, or some
	// lb[i] >= ub[i].
	ErrBadBounds = errors.New("pswarm: bounds must satisfy lb[i] < ub[i] elementwise")
	// ErrBadSwarmSize indicates Particles <= 0.
	ErrBadSwarmSize = errors.New("pswarm: swarm size must be positive")
	// ErrBadTolerance indicates Tol <= 0.
	ErrBadTolerance = errors.New("pswarm: tolerance must be positive")
	// ErrBadMaxIter indicates MaxIter <= 0.
	ErrBadMaxIter = errors.New("pswarm: maximum iterations must be positive")
)

// Particle is one member of the swarm: current position and velocity plus
// the best position this particle has ever seen.
type Particle struct {
	Pos   []float64
	Vel   []float64
	F     float64
	Best  []float64
	BestF float64
}

// Options configures one Minimize call. Start from DefaultOptions; nil in
// Minimize means DefaultOptions().
//
// Fields:
//   - Particles — swarm size.
//   - Inertia, Cognitive, Social — the ω, c1, c2 velocity coefficients
//     (defaults are the constriction values 0.729 / 1.49445 / 1.49445).
//   - Tol — a sweep improving the swarm best by less than Tol counts as a
//     stall; the run stops after 20 consecutive stalled sweeps.
//   - MaxIter — sweep budget; exhaustion is NOT an error.
//   - Seed — xorwow seed; the same seed reproduces the run bit for bit.
type Options struct {
	Particles int
	Inertia   float64
	Cognitive float64
	Social    float64
	Tol       float64
	MaxIter   int
	Seed      uint32
}

// DefaultOptions returns the standard constriction-coefficient swarm:
// 30 particles, ω=0.729, c1=c2=1.49445, tolerance 1e-10, 1000 sweeps, seed 1.
func DefaultOptions() Options {
	return Options{
		Particles: 30,
		Inertia:   0.729,
		Cognitive: 1.49445,
		Social:    1.49445,
		Tol:       1e-10,
		MaxIter:   1000,
		Seed:      1,
	}
}

func (o *Options) validate() error {
	if o.Particles <= 0 {
		return ErrBadSwarmSize
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
	// X is the best position any particle visited.
	X []float64
	// F is the objective value at X.
	F float64
	// Iterations is the number of full sweeps performed.
	Iterations int
}
