package numerics

import (
	"fmt"
	"math"

	"github.com/gonum/matrix/mat64"
)

/* Fixed-cost alternatives to the adaptive rule. */

// FixedQuad integrates f over [a, b] with a single Gauss-Legendre rule of
// order n (1 to 10). No subdivision, no error estimate: a deliberate
// fixed-cost alternative to Quad.
func FixedQuad(f Integrand, a, b float64, n int) (float64, error) {
	if n < 1 || n > maxGLOrder {
		return 0, fmt.Errorf("fixedquad: order %d outside [1, %d]", n, maxGLOrder)
	}
	center := 0.5 * (a + b)
	half := 0.5 * (b - a)
	fv := make([]float64, n)
	for i, x := range glNodes[n] {
		fv[i] = safeEval(f, center+half*x)
	}
	w := mat64.NewVector(n, glWeights[n])
	return half * mat64.Dot(w, mat64.NewVector(n, fv)), nil
}

// Romberg integrates f over [a, b] by Richardson extrapolation of the
// composite trapezoid rule. Terminates early once two consecutive diagonal
// entries agree within tol (default 1e-8), otherwise runs to maxLevels
// (default 10) and reports the residual diagonal difference as the error
// estimate.
func Romberg(f Integrand, a, b, tol float64, maxLevels int) QuadResult {
	if tol <= 0 {
		tol = 1e-8
	}
	if maxLevels <= 0 {
		maxLevels = 10
	}
	if a == b {
		return QuadResult{}
	}

	table := mat64.NewDense(maxLevels+1, maxLevels+1, nil)
	h := b - a
	table.Set(0, 0, 0.5*h*(safeEval(f, a)+safeEval(f, b)))
	nfev := 2

	diag := table.At(0, 0)
	residual := math.Inf(1)
	steps := 1
	for i := 1; i <= maxLevels; i++ {
		// Trapezoid at half the step, reusing all previous samples.
		h *= 0.5
		sum := 0.0
		for k := 1; k <= steps; k++ {
			sum += safeEval(f, a+float64(2*k-1)*h)
		}
		nfev += steps
		steps *= 2
		table.Set(i, 0, 0.5*table.At(i-1, 0)+h*sum)

		// Richardson extrapolation across the row.
		p4 := 1.0
		for k := 1; k <= i; k++ {
			p4 *= 4
			table.Set(i, k, (p4*table.At(i, k-1)-table.At(i-1, k-1))/(p4-1))
		}

		residual = math.Abs(table.At(i, i) - diag)
		diag = table.At(i, i)
		if residual <= tol {
			break
		}
	}
	return QuadResult{Value: diag, Error: residual, Evaluations: nfev}
}
