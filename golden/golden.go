package golden

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvlopt/solver"
)

var (
	// ErrNilFunc indicates the objective is nil.
	ErrNilFunc = errors.New("golden: objective must be non-nil")
	// ErrBadTolerance indicates tol <= 0 (or NaN).
	ErrBadTolerance = errors.New("golden: tolerance must be positive")
)

// invPhi is 1/φ and invPhi2 is 1/φ², the golden-section interval fractions.
var (
	invPhi  = (math.Sqrt(5) - 1) / 2
	invPhi2 = (3 - math.Sqrt(5)) / 2
)

// Minimize locates the minimum of a unimodal f on [a,b] to within tol by
// golden-section search.
//
// Algorithm outline:
//  1. Order the endpoints; if b−a <= tol the midpoint is already the answer.
//  2. n = ceil(ln(tol/(b−a)) / ln(1/φ)) iterations shrink the bracket below
//     tol; no convergence test runs inside the loop.
//  3. Two interior probes c = a + (b−a)/φ² and d = a + (b−a)/φ are kept in
//     golden ratio to the bracket, so each shrink reuses the surviving probe's
//     value and evaluates f exactly once.
//  4. Return the midpoint of whichever final sub-bracket holds the lower of
//     the two last-compared values.
//
// Complexity: O(log((b−a)/tol)) evaluations of f, O(1) memory.
func Minimize(f solver.Func, a, b, tol float64) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}
	if !(tol > 0) {
		return 0, ErrBadTolerance
	}
	if a > b {
		a, b = b, a
	}

	h := b - a
	if h <= tol {
		return (a + b) / 2, nil
	}

	n := int(math.Ceil(math.Log(tol/h) / math.Log(invPhi)))

	c := a + invPhi2*h
	d := a + invPhi*h
	yc := f(c)
	yd := f(d)

	for iter := 0; iter < n; iter++ {
		if yc < yd {
			// Minimum is in [a,d]: d becomes the new upper probe, c's value
			// survives as the new d-value, only the new c is evaluated.
			b = d
			d = c
			yd = yc
			h = invPhi * h
			c = a + invPhi2*h
			yc = f(c)
		} else {
			a = c
			c = d
			yc = yd
			h = invPhi * h
			d = a + invPhi*h
			yd = f(d)
		}
	}

	if yc < yd {
		return (a + d) / 2, nil
	}
	return (c + b) / 2, nil
}
