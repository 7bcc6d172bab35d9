package numerics

import (
	"math"

	"github.com/gonum/floats"
)

const (
	// machEps is the double precision machine epsilon.
	machEps = 2.220446049250313e-16
)

// Integrand is a caller-supplied real function of one real variable. It may
// panic; every evaluation site recovers and substitutes zero for that call.
type Integrand func(x float64) float64

// Derivative computes dy/dt at (t, y). Same fallibility policy as Integrand.
type Derivative func(t float64, y []float64) []float64

// DerivativeYT is the reversed-argument derivative convention used by OdeInt.
type DerivativeYT func(y []float64, t float64) []float64

// safeEval calls the integrand, substituting zero when it panics.
func safeEval(f Integrand, x float64) (v float64) {
	defer func() {
		if recover() != nil {
			v = 0
		}
	}()
	return f(x)
}

// safeDeriv calls the derivative, substituting a zero vector when the callback
// panics or returns a vector of the wrong dimension.
func safeDeriv(f Derivative, t float64, y []float64, n int) (dy []float64) {
	defer func() {
		if recover() != nil || len(dy) != n {
			dy = make([]float64, n)
		}
	}()
	return f(t, y)
}

// rmsNorm returns the scaled RMS norm of the local error estimate, the step
// acceptance criterion of the embedded methods.
func rmsNorm(errEst, y, yNew []float64, atol, rtol float64) float64 {
	sum := 0.0
	for i, e := range errEst {
		scale := atol + rtol*math.Max(math.Abs(y[i]), math.Abs(yNew[i]))
		r := e / scale
		sum += r * r
	}
	return math.Sqrt(sum / float64(len(errEst)))
}

// rmsMagnitude returns the RMS magnitude of a state vector.
func rmsMagnitude(v []float64) float64 {
	return floats.Norm(v, 2) / math.Sqrt(float64(len(v)))
}

// linterp interpolates linearly between two trajectory points.
func linterp(t0, t1 float64, y0, y1 []float64, t float64) []float64 {
	out := make([]float64, len(y0))
	if floats.EqualWithinAbs(t1, t0, machEps) {
		copy(out, y1)
		return out
	}
	w := (t - t0) / (t1 - t0)
	for i := range out {
		out[i] = y0[i] + w*(y1[i]-y0[i])
	}
	return out
}
