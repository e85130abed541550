package solver

import "math"

// Bisection solves f(x)=0 on [a,b], which must bracket a sign change:
// f(a)·f(b) < 0.
//
// Algorithm outline:
//  1. Order the endpoints; an endpoint that is already an exact root is
//     returned directly, and same-sign endpoints return ErrInvalidBracket.
//  2. The number of halvings needed is known in advance:
//     n = ceil(log2((b−a)/tol)) — no per-iteration convergence test.
//  3. Each step bisects the bracket and keeps whichever half still shows a
//     sign change. An exact zero at the midpoint is returned immediately; if
//     neither half shows a sign change (numerical degeneracy), the bracket
//     has been lost and ErrInvalidBracket is returned.
//  4. The result is the midpoint of the final bracket, so |x−root| < tol.
//
// Complexity: O(log2((b−a)/tol)) evaluations of f, O(1) memory.
func Bisection(f Func, a, b, tol float64) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}
	if !(tol > 0) {
		return 0, ErrBadTolerance
	}
	lo, hi := math.Min(a, b), math.Max(a, b)

	fl, fh := f(lo), f(hi)
	if fl == 0 {
		return lo, nil
	}
	if fh == 0 {
		return hi, nil
	}
	if fl*fh > 0 {
		return 0, ErrInvalidBracket
	}

	n := int(math.Ceil(math.Log2((hi - lo) / tol)))
	var mid, fm float64
	for iter := 0; iter < n; iter++ {
		mid = (lo + hi) / 2
		fm = f(mid)
		switch {
		case fl*fm < 0:
			hi, fh = mid, fm
		case fm*fh < 0:
			lo, fl = mid, fm
		case fm == 0:
			return mid, nil
		default:
			return 0, ErrInvalidBracket
		}
	}
	return (lo + hi) / 2, nil
}
