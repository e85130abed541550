package neldermead

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Simplex transformation coefficients (the standard Nelder–Mead values).
const (
	alpha = 1.0 // reflection
	gamma = 2.0 // expansion
	rho   = 0.5 // contraction
	sigma = 0.5 // shrink
)

// vertex pairs a simplex position with its cached objective value. Vertices
// are owned exclusively by one Minimize call; positions never alias caller
// memory or each other.
type vertex struct {
	x []float64
	f float64
}

// Minimize runs Nelder–Mead from x0 with the given options (nil means
// DefaultOptions). The simplex starts as x0 plus one vertex per axis offset
// by opts.SimplexSize, and iterates until either termination test passes or
// the budget runs out — in which case the best vertex so far is returned
// with a nil error.
//
// See the package documentation for the full iteration structure.
//
// Complexity: O(MaxIter·n) objective evaluations worst case, O(n²) memory.
func Minimize(f Objective, x0 []float64, opts *Options) (Result, error) {
	if f == nil {
		return Result{}, ErrNilObjective
	}
	if len(x0) == 0 {
		return Result{}, ErrEmptyStart
	}
	var o Options
	if opts == nil {
		o = DefaultOptions()
	} else {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}

	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}

	n := len(x0)

	// Initial simplex: x0 plus a unit-axis offset per dimension.
	simplex := make([]vertex, n+1)
	simplex[0] = vertex{x: clone(x0)}
	simplex[0].f = f(simplex[0].x)
	for i := 1; i <= n; i++ {
		x := clone(x0)
		x[i-1] += o.SimplexSize
		simplex[i] = vertex{x: x, f: f(x)}
	}

	// Scratch buffers reused across iterations.
	var (
		fvals     = make([]float64, n+1)
		centroid  = make([]float64, n)
		direction = make([]float64, n)
	)

	for iter := 0; iter < o.MaxIter; iter++ {
		// Fresh ascending order by function value each iteration.
		sort.Slice(simplex, func(i, j int) bool { return simplex[i].f < simplex[j].f })

		if o.Verbose {
			logger.Debug("nelder-mead iteration",
				"iter", iter, "best", simplex[0].f, "worst", simplex[n].f)
		}

		for i, v := range simplex {
			fvals[i] = v.f
		}
		if stat.PopStdDev(fvals, nil) < o.Tol || meanPairwiseDistance(simplex) < o.Tol {
			return Result{X: clone(simplex[0].x), F: simplex[0].f, Iterations: iter}, nil
		}

		// Centroid of all vertices except the worst.
		zero(centroid)
		for i := 0; i < n; i++ {
			floats.Add(centroid, simplex[i].x)
		}
		floats.Scale(1/float64(n), centroid)

		best, secondWorst, worst := simplex[0].f, simplex[n-1].f, &simplex[n]

		// Reflection: centroid + α·(centroid − worst).
		floats.SubTo(direction, centroid, worst.x)
		reflection := make([]float64, n)
		floats.AddScaledTo(reflection, centroid, alpha, direction)
		fReflection := f(reflection)

		switch {
		case best <= fReflection && fReflection < secondWorst:
			*worst = vertex{x: reflection, f: fReflection}

		case fReflection < best:
			// Expansion: centroid + γ·(reflection − centroid).
			floats.SubTo(direction, reflection, centroid)
			expansion := make([]float64, n)
			floats.AddScaledTo(expansion, centroid, gamma, direction)
			if fExpansion := f(expansion); fExpansion <= fReflection {
				*worst = vertex{x: expansion, f: fExpansion}
			} else {
				*worst = vertex{x: reflection, f: fReflection}
			}

		default:
			// Contraction: centroid + ρ·(worst − centroid).
			floats.SubTo(direction, worst.x, centroid)
			contraction := make([]float64, n)
			floats.AddScaledTo(contraction, centroid, rho, direction)
			if fContraction := f(contraction); fContraction < worst.f {
				*worst = vertex{x: contraction, f: fContraction}
			} else {
				// Shrink every vertex toward the best one and re-evaluate.
				for i := 1; i <= n; i++ {
					floats.SubTo(direction, simplex[i].x, simplex[0].x)
					floats.AddScaledTo(simplex[i].x, simplex[0].x, sigma, direction)
					simplex[i].f = f(simplex[i].x)
				}
			}
		}
	}

	// Budget exhausted: return the best vertex known, no failure signal.
	sort.Slice(simplex, func(i, j int) bool { return simplex[i].f < simplex[j].f })
	return Result{X: clone(simplex[0].x), F: simplex[0].f, Iterations: o.MaxIter}, nil
}

// meanPairwiseDistance averages the Euclidean distance over all ordered
// vertex pairs, zero diagonal included, mirroring the simplex-size metric of
// the termination test.
func meanPairwiseDistance(simplex []vertex) float64 {
	var sum float64
	for i := range simplex {
		for j := range simplex {
			if i != j {
				sum += floats.Distance(simplex[i].x, simplex[j].x, 2)
			}
		}
	}
	m := float64(len(simplex))
	return sum / (m * m)
}

func clone(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	return out
}

func zero(x []float64) {
	for i := range x {
		x[i] = 0
	}
}
