package pswarm

import (
	"math"

	"github.com/katalvlaran/lvlopt/neldermead"
	"github.com/katalvlaran/lvlopt/xorwow"
)

// stallSweeps is how many consecutive sweeps may improve the swarm best by
// less than Tol before the run is considered converged. A single flat sweep
// is common mid-run; a run of them means the swarm has collapsed.
const stallSweeps = 20

// Minimize runs particle-swarm optimization of f over the box [lb,ub] with
// the given options (nil means DefaultOptions).
//
// The swarm initializes from the seeded xorwow stream: positions uniform in
// the box, velocities uniform in ±(ub−lb). Each sweep updates every
// particle's velocity from its inertia, its own best and the swarm best,
// clamps the new position to the box, and re-evaluates. The run stops once
// stallSweeps consecutive sweeps each improve the swarm best by less than
// Tol, or after MaxIter sweeps — either way the swarm best is returned with
// a nil error.
//
// Complexity: O(MaxIter·Particles·dim) time, O(Particles·dim) memory.
func Minimize(f neldermead.Objective, lb, ub []float64, opts *Options) (Result, error) {
	if f == nil {
		return Result{}, ErrNilObjective
	}
	if len(lb) == 0 || len(lb) != len(ub) {
		return Result{}, ErrBadBounds
	}
	for i := range lb {
		if !(lb[i] < ub[i]) {
			return Result{}, ErrBadBounds
		}
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

	var (
		dim   = len(lb)
		rng   = xorwow.New(o.Seed)
		swarm = make([]Particle, o.Particles)

		gBest  []float64
		gBestF = math.Inf(1)
	)

	for p := range swarm {
		pos := make([]float64, dim)
		vel := make([]float64, dim)
		for j := 0; j < dim; j++ {
			span := ub[j] - lb[j]
			pos[j] = lb[j] + span*rng.Float64()
			vel[j] = span * (2*rng.Float64() - 1)
		}
		fx := f(pos)
		swarm[p] = Particle{
			Pos:   pos,
			Vel:   vel,
			F:     fx,
			Best:  clone(pos),
			BestF: fx,
		}
		if fx < gBestF {
			gBestF = fx
			gBest = clone(pos)
		}
	}

	var (
		iterations = o.MaxIter
		stalled    = 0
	)
	for iter := 0; iter < o.MaxIter; iter++ {
		sweepStartBest := gBestF

		for p := range swarm {
			pt := &swarm[p]
			for j := 0; j < dim; j++ {
				r1 := rng.Float64()
				r2 := rng.Float64()
				pt.Vel[j] = o.Inertia*pt.Vel[j] +
					o.Cognitive*r1*(pt.Best[j]-pt.Pos[j]) +
					o.Social*r2*(gBest[j]-pt.Pos[j])
				pt.Pos[j] = clamp(pt.Pos[j]+pt.Vel[j], lb[j], ub[j])
			}
			pt.F = f(pt.Pos)
			if pt.F < pt.BestF {
				pt.BestF = pt.F
				copy(pt.Best, pt.Pos)
			}
			if pt.F < gBestF {
				gBestF = pt.F
				copy(gBest, pt.Pos)
			}
		}

		if sweepStartBest-gBestF < o.Tol {
			stalled++
		} else {
			stalled = 0
		}
		if stalled >= stallSweeps {
			iterations = iter + 1
			break
		}
	}

	return Result{X: gBest, F: gBestF, Iterations: iterations}, nil
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func clone(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	return out
}
