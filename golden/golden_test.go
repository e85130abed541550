package golden_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlopt/golden"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fct is the reference function sin(x)/x + e^x; its minimum on [-7,-1] lies
// at x = -4.54295618675514754103476876324 (30 digits).
func fct(x float64) float64 {
	if x == 0 {
		return 2
	}
	return math.Sin(x)/x + math.Exp(x)
}

const refMin = -4.54295618675514754103476876324

// TestMinimize_ReferenceProblem reproduces the reference minimization of
// fct on [-7,-1].
func TestMinimize_ReferenceProblem(t *testing.T) {
	x, err := golden.Minimize(fct, -7, -1, 1e-10)
	require.NoError(t, err)
	assert.InDelta(t, refMin, x, 1e-8, "golden section on [-7,-1] finds the fct minimum")
}

// TestMinimize_Parabola checks the textbook case (x−2)² on [−5,5].
func TestMinimize_Parabola(t *testing.T) {
	f := func(x float64) float64 { return (x - 2) * (x - 2) }
	x, err := golden.Minimize(f, -5, 5, 1e-8)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, x, 1e-8)
}

// TestMinimize_SwappedEndpoints verifies (b,a) behaves like (a,b).
func TestMinimize_SwappedEndpoints(t *testing.T) {
	f := func(x float64) float64 { return (x - 2) * (x - 2) }
	x, err := golden.Minimize(f, 5, -5, 1e-8)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, x, 1e-8)
}

// TestMinimize_TightBracket verifies the degenerate bracket short-circuit:
// when b−a <= tol the midpoint comes back without evaluating f.
func TestMinimize_TightBracket(t *testing.T) {
	calls := 0
	f := func(x float64) float64 { calls++; return x * x }

	x, err := golden.Minimize(f, 1.0, 1.0+1e-12, 1e-8)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, x, 1e-8)
	assert.Zero(t, calls, "tight bracket must not evaluate the objective")
}

// TestMinimize_SingleEvaluationPerIteration pins the evaluation-reuse
// property: after the two seed probes, each iteration evaluates f once, and
// the total matches the closed-form iteration count.
func TestMinimize_SingleEvaluationPerIteration(t *testing.T) {
	calls := 0
	f := func(x float64) float64 { calls++; return (x - 2) * (x - 2) }

	a, b, tol := -5.0, 5.0, 1e-8
	_, err := golden.Minimize(f, a, b, tol)
	require.NoError(t, err)

	invPhi := (math.Sqrt(5) - 1) / 2
	n := int(math.Ceil(math.Log(tol/(b-a)) / math.Log(invPhi)))
	assert.Equal(t, n+2, calls, "2 seed probes + 1 evaluation per iteration")
}

// TestMinimize_Validation covers the sentinel errors.
func TestMinimize_Validation(t *testing.T) {
	_, err := golden.Minimize(nil, 0, 1, 1e-8)
	assert.ErrorIs(t, err, golden.ErrNilFunc)

	_, err = golden.Minimize(func(x float64) float64 { return x }, 0, 1, 0)
	assert.ErrorIs(t, err, golden.ErrBadTolerance)
}
