package leastsq

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Model evaluates a parameterized curve at every abscissa in xs for the
// parameter vector beta, returning one value per point. It must be
// side-effect free and must not retain or mutate its arguments.
type Model func(xs, beta []float64) []float64

var (
	// ErrNilModel indicates the model is nil.
	ErrNilModel = errors.New("leastsq: model must be non-nil")
	// ErrDataMismatch indicates xs and ys are empty or differ in length.
	ErrDataMismatch = errors.New("leastsq: xs and ys must be non-empty and equal length")
	// ErrEmptyParams indicates beta0 has no parameters.
	ErrEmptyParams = errors.New("leastsq: initial parameters must be non-empty")
	// ErrModelShape indicates the model returned a slice whose length does
	// not match the data.
	ErrModelShape = errors.New("leastsq: model output length must match data length")
	// ErrBadTolerance indicates tol <= 0.
	ErrBadTolerance = errors.New("leastsq: tolerance must be positive")
	// ErrBadStep indicates a non-positive Jacobian step h.
	ErrBadStep = errors.New("leastsq: finite-difference step must be positive")
	// ErrBadMaxIter indicates maxIter <= 0.
	ErrBadMaxIter = errors.New("leastsq: maximum iterations must be positive")
	// ErrSingularSystem indicates the normal equations JᵀJ·Δ = Jᵀr could not
	// be solved (rank-deficient Jacobian).
	ErrSingularSystem = errors.New("leastsq: singular normal equations")
)

// GaussNewton fits beta so that model(xs, beta) approximates ys in the
// least-squares sense, starting from beta0.
//
// Each iteration assembles the numeric Jacobian by forward differences of
// step h (one extra model evaluation per parameter), solves the normal
// equations through QR, and applies the step. Iteration stops when the step
// norm drops below tol; running out of maxIter is silent and returns the
// last parameters with a nil error.
//
// Complexity: O(maxIter·(p·n + p³)) for n points and p parameters.
func GaussNewton(xs, ys []float64, model Model, beta0 []float64, tol, h float64, maxIter int) ([]float64, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	if len(xs) == 0 || len(xs) != len(ys) {
		return nil, ErrDataMismatch
	}
	if len(beta0) == 0 {
		return nil, ErrEmptyParams
	}
	if !(tol > 0) {
		return nil, ErrBadTolerance
	}
	if !(h > 0) {
		return nil, ErrBadStep
	}
	if maxIter <= 0 {
		return nil, ErrBadMaxIter
	}

	var (
		nPts  = len(xs)
		nDims = len(beta0)

		beta   = make([]float64, nDims)
		betaDx = make([]float64, nDims)
		resid  = make([]float64, nPts)

		jac = mat.NewDense(nPts, nDims, nil)
		jtj mat.Dense
		jtr mat.VecDense
		qr  mat.QR
	)
	copy(beta, beta0)

	for iter := 0; iter < maxIter; iter++ {
		fBeta := model(xs, beta)
		if len(fBeta) != nPts {
			return nil, ErrModelShape
		}
		floats.SubTo(resid, ys, fBeta)

		// Jacobian column j: (model(β + h·eⱼ) − model(β)) / h.
		for j := 0; j < nDims; j++ {
			copy(betaDx, beta)
			betaDx[j] += h
			fDx := model(xs, betaDx)
			if len(fDx) != nPts {
				return nil, ErrModelShape
			}
			for i := 0; i < nPts; i++ {
				jac.Set(i, j, (fDx[i]-fBeta[i])/h)
			}
		}

		// Normal equations JᵀJ·Δ = Jᵀr, solved via QR.
		jtj.Mul(jac.T(), jac)
		jtr.MulVec(jac.T(), mat.NewVecDense(nPts, resid))
		qr.Factorize(&jtj)

		var delta mat.VecDense
		if err := qr.SolveVecTo(&delta, false, &jtr); err != nil {
			return nil, ErrSingularSystem
		}

		floats.Add(beta, delta.RawVector().Data)

		if mat.Norm(&delta, 2) < tol {
			break
		}
	}
	return beta, nil
}
