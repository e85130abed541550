package pswarm_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlopt/pswarm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sphere(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v * v
	}
	return s
}

// shiftedBowl has its minimum at (1, -2, 3), inside the test box.
func shiftedBowl(x []float64) float64 {
	dx := x[0] - 1
	dy := x[1] + 2
	dz := x[2] - 3
	return dx*dx + dy*dy + dz*dz
}

// TestMinimize_Sphere verifies convergence near the origin on a convex bowl
// with the default (deterministic) seed.
func TestMinimize_Sphere(t *testing.T) {
	res, err := pswarm.Minimize(sphere, []float64{-5, -5}, []float64{5, 5}, nil)
	require.NoError(t, err)
	assert.Less(t, res.F, 1e-4, "swarm best value")
	assert.Less(t, math.Hypot(res.X[0], res.X[1]), 1e-2, "distance to origin")
}

// TestMinimize_ShiftedBowl verifies an interior off-center minimum is found
// in three dimensions.
func TestMinimize_ShiftedBowl(t *testing.T) {
	lb := []float64{-10, -10, -10}
	ub := []float64{10, 10, 10}

	res, err := pswarm.Minimize(shiftedBowl, lb, ub, nil)
	require.NoError(t, err)
	assert.Less(t, res.F, 1e-4)
	assert.InDelta(t, 1, res.X[0], 1e-2)
	assert.InDelta(t, -2, res.X[1], 1e-2)
	assert.InDelta(t, 3, res.X[2], 1e-2)
}

// TestMinimize_Determinism verifies equal seeds reproduce the run bit for
// bit, and a different seed changes it.
func TestMinimize_Determinism(t *testing.T) {
	lb, ub := []float64{-5, -5}, []float64{5, 5}

	r1, err := pswarm.Minimize(sphere, lb, ub, nil)
	require.NoError(t, err)
	r2, err := pswarm.Minimize(sphere, lb, ub, nil)
	require.NoError(t, err)
	assert.Equal(t, r1, r2, "same seed, same run")

	opts := pswarm.DefaultOptions()
	opts.Seed = 99
	r3, err := pswarm.Minimize(sphere, lb, ub, &opts)
	require.NoError(t, err)
	assert.NotEqual(t, r1.X, r3.X, "different seed, different trajectory")
}

// TestMinimize_RespectsBounds verifies every coordinate of the result lies
// inside the box even when the unconstrained minimum is outside it.
func TestMinimize_RespectsBounds(t *testing.T) {
	// Minimum of shiftedBowl is (1,-2,3); box it away from that point.
	lb := []float64{-1, -1, -1}
	ub := []float64{0.5, 0.5, 0.5}

	res, err := pswarm.Minimize(shiftedBowl, lb, ub, nil)
	require.NoError(t, err)
	for i := range res.X {
		assert.GreaterOrEqual(t, res.X[i], lb[i], "coordinate %d below box", i)
		assert.LessOrEqual(t, res.X[i], ub[i], "coordinate %d above box", i)
	}
}

// TestMinimize_SilentExhaustion pins the reporting policy: the budget running
// out is not an error.
func TestMinimize_SilentExhaustion(t *testing.T) {
	opts := pswarm.DefaultOptions()
	opts.MaxIter = 2

	res, err := pswarm.Minimize(sphere, []float64{-5, -5}, []float64{5, 5}, &opts)
	assert.NoError(t, err)
	assert.Equal(t, 2, res.Iterations)
}

// TestMinimize_Validation covers the sentinel errors.
func TestMinimize_Validation(t *testing.T) {
	lb, ub := []float64{-1, -1}, []float64{1, 1}

	_, err := pswarm.Minimize(nil, lb, ub, nil)
	assert.ErrorIs(t, err, pswarm.ErrNilObjective)

	_, err = pswarm.Minimize(sphere, []float64{-1}, ub, nil)
	assert.ErrorIs(t, err, pswarm.ErrBadBounds)

	_, err = pswarm.Minimize(sphere, []float64{1, 1}, []float64{-1, -1}, nil)
	assert.ErrorIs(t, err, pswarm.ErrBadBounds)

	opts := pswarm.DefaultOptions()
	opts.Particles = 0
	_, err = pswarm.Minimize(sphere, lb, ub, &opts)
	assert.ErrorIs(t, err, pswarm.ErrBadSwarmSize)

	opts = pswarm.DefaultOptions()
	opts.Tol = 0
	_, err = pswarm.Minimize(sphere, lb, ub, &opts)
	assert.ErrorIs(t, err, pswarm.ErrBadTolerance)

	opts = pswarm.DefaultOptions()
	opts.MaxIter = -1
	_, err = pswarm.Minimize(sphere, lb, ub, &opts)
	assert.ErrorIs(t, err, pswarm.ErrBadMaxIter)
}
