package main

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlopt/golden"
	"github.com/katalvlaran/lvlopt/leastsq"
	"github.com/katalvlaran/lvlopt/neldermead"
	"github.com/katalvlaran/lvlopt/pswarm"
	"github.com/katalvlaran/lvlopt/solver"
)

// Reference values to 30 digits for the shared test function
// f(x) = sin(x)/x + e^x, extended continuously through x=0.
const (
	refRoot1 = -3.26650043678562449167148755288
	refRoot2 = -6.27133405258685307845641527902
	refMin   = -4.54295618675514754103476876324
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run every algorithm against its reference problem",
	Long: `Runs the full reference suite: each solver and optimizer is applied to a
problem with an independently computed answer, and the result is compared
against it. Exits non-zero if any check fails.`,
	RunE: runChecks,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func fct(x float64) float64 {
	if x == 0 {
		return 2
	}
	return math.Sin(x)/x + math.Exp(x)
}

func dfct(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Exp(x) + math.Cos(x)/x - math.Sin(x)/(x*x)
}

func ddfct(x float64) float64 {
	if x == 0 {
		return 2.0 / 3.0
	}
	x2 := x * x
	return math.Exp(x) - (x2-2)*math.Sin(x)/(x2*x) - 2*math.Cos(x)/x2
}

func rosenbrock(x []float64) float64 {
	a := 1 - x[0]
	b := x[1] - x[0]*x[0]
	return a*a + 100*b*b
}

func sphere(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v * v
	}
	return s
}

// check records one pass/fail line and returns 1 on pass so the caller can
// tally results the simple way.
func check(name string, got, want, tol float64, err error) int {
	switch {
	case err != nil:
		fmt.Printf("%-32s failed : %v\n", name, err)
		return 0
	case math.Abs(got-want) < tol:
		fmt.Printf("%-32s passed\n", name)
		slog.Debug("check detail", "name", name, "x", got, "residual", got-want)
		return 1
	default:
		fmt.Printf("%-32s failed : expected %v, got %v\n", name, want, got)
		return 0
	}
}

func runChecks(cmd *cobra.Command, args []string) error {
	const (
		tol     = 1e-10
		hNum    = 1e-6
		maxIter = 100
	)
	passed, total := 0, 0
	tally := func(n int) { passed += n; total++ }

	fmt.Println("Univariate solvers")
	x, err := solver.Newton(fct, dfct, 1.0, tol, maxIter)
	tally(check("Newton's method", x, refRoot1, tol, err))
	x, err = solver.NewtonNumeric(fct, 1.0, tol, hNum, maxIter)
	tally(check("Newton's method (numeric)", x, refRoot1, 1e-8, err))
	x, err = solver.Halley(fct, dfct, ddfct, 1.0, tol, maxIter)
	tally(check("Halley's method", x, refRoot2, tol, err))
	x, err = solver.HalleyNumeric(fct, 1.0, tol, hNum, maxIter)
	tally(check("Halley's method (numeric)", x, refRoot2, 1e-8, err))
	x, err = solver.Bisection(fct, -5, 1, tol)
	tally(check("Bisection method", x, refRoot1, tol, err))
	x, err = solver.Secant(fct, -1, 1, tol, maxIter)
	tally(check("Secant method", x, refRoot1, 1e-9, err))
	x, err = solver.Ridder(fct, -5, 1, tol, maxIter)
	tally(check("Ridder's method", x, refRoot1, 1e-9, err))

	fmt.Println("Univariate minimizers")
	x, err = golden.Minimize(fct, -7, -1, tol)
	tally(check("Golden section search", x, refMin, tol*1e2, err))

	fmt.Println("Multivariate optimizers")
	nmRes, err := neldermead.Minimize(rosenbrock, []float64{2, -1}, nil)
	if err != nil {
		tally(check("Nelder-Mead", 0, 0, 0, err))
	} else {
		dist := math.Hypot(nmRes.X[0]-1, nmRes.X[1]-1)
		tally(check("Nelder-Mead", dist, 0, 1e-4, nil))
	}
	psRes, err := pswarm.Minimize(sphere, []float64{-5, -5}, []float64{5, 5}, nil)
	if err != nil {
		tally(check("Particle swarm", 0, 0, 0, err))
	} else {
		tally(check("Particle swarm", psRes.F, 0, 1e-4, nil))
	}

	fmt.Println("Least squares")
	expModel := func(xs, beta []float64) []float64 {
		out := make([]float64, len(xs))
		for i, v := range xs {
			out[i] = beta[0] * math.Exp(beta[1]*v)
		}
		return out
	}
	truth := []float64{2.5, 0.3}
	xs := make([]float64, 10)
	for i := range xs {
		xs[i] = float64(i) * 0.5
	}
	beta, err := leastsq.GaussNewton(xs, expModel(xs, truth), expModel, []float64{1, 0.1}, tol, hNum, maxIter)
	if err != nil {
		tally(check("Gauss-Newton fit", 0, 0, 0, err))
	} else {
		tally(check("Gauss-Newton fit", math.Hypot(beta[0]-truth[0], beta[1]-truth[1]), 0, 1e-6, nil))
	}

	fmt.Printf("Tests passed: %d/%d (%.0f %%)\n", passed, total, float64(passed)/float64(total)*100)
	if passed != total {
		return fmt.Errorf("%d of %d checks failed", total-passed, total)
	}
	return nil
}
