// Package lvlopt is your numerical toolbox for solving f(x)=0 and
// minimizing f(x) when no closed-form answer exists — from classic
// scalar root finders to derivative-free multivariate optimizers.
//
// 🚀 What is lvlopt?
//
//	A compact, deterministic library of iterative numerical algorithms:
//		• Root finding: Newton, Halley (analytic & numeric derivatives),
//		  bisection, secant, Ridder
//		• 1-D minimization: golden-section search
//		• Multivariate minimization: Nelder–Mead simplex, particle swarm
//		• Curve fitting: Gauss–Newton nonlinear least squares
//		• Reproducible randomness: the xorwow generator
//
// ✨ Why choose lvlopt?
//
//   - Honest error contracts — every algorithm documents whether it can
//     report non-convergence or silently returns its best iterate
//   - Deterministic — same inputs, same seed, bit-identical results
//   - Pure functions — no global state, no configuration singletons
//   - Small API — one entry point per algorithm, options where needed
//
// The module is organized as one package per algorithm family:
//
//	solver/     — univariate root finders (Newton, Halley, bisection, secant, Ridder)
//	golden/     — golden-section search for unimodal 1-D minimization
//	neldermead/ — derivative-free simplex optimizer for n dimensions
//	pswarm/     — particle-swarm minimizer over box bounds
//	leastsq/    — Gauss–Newton nonlinear least-squares fitting
//	xorwow/     — seeded deterministic PRNG used by the stochastic methods
//
// Quick taste:
//
//	root, err := solver.Bisection(f, -5, 1, 1e-10)
//	min, err  := golden.Minimize(f, -7, -1, 1e-10)
//	res, err  := neldermead.Minimize(rosenbrock, []float64{2, -1}, nil)
//
// Dive into each package's doc.go for the algorithm outline, contracts,
// complexity, and error taxonomy.
//
//	go get github.com/katalvlaran/lvlopt
package lvlopt
