package numerics

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestQuadPolynomial(t *testing.T) {
	res := Quad(func(x float64) float64 { return x * x }, 0, 1, QuadConfig{})
	if !floats.EqualWithinAbs(res.Value, 1./3, 1e-12) {
		t.Fatalf("quad(x², 0, 1) = %.15f", res.Value)
	}
	if res.Error > 1e-9 {
		t.Fatalf("error estimate too large: %g", res.Error)
	}
	if res.Evaluations < 15 {
		t.Fatalf("expected at least one rule evaluation, got %d", res.Evaluations)
	}
}

func TestQuadGaussian(t *testing.T) {
	gauss := func(x float64) float64 { return math.Exp(-x * x) }
	res := Quad(gauss, math.Inf(-1), math.Inf(1), QuadConfig{})
	if !floats.EqualWithinAbs(res.Value, math.Sqrt(math.Pi), 1e-6) {
		t.Fatalf("full line: got %.10f, want √π", res.Value)
	}
	upper := Quad(gauss, 0, math.Inf(1), QuadConfig{})
	if !floats.EqualWithinAbs(upper.Value, math.Sqrt(math.Pi)/2, 1e-6) {
		t.Fatalf("half line up: got %.10f", upper.Value)
	}
	lower := Quad(gauss, math.Inf(-1), 0, QuadConfig{})
	if !floats.EqualWithinAbs(lower.Value, math.Sqrt(math.Pi)/2, 1e-6) {
		t.Fatalf("half line down: got %.10f", lower.Value)
	}
}

func TestQuadDegenerateInterval(t *testing.T) {
	res := Quad(func(x float64) float64 { panic("must not be called") }, 2, 2, QuadConfig{})
	if res.Value != 0 || res.Error != 0 || res.Evaluations != 0 {
		t.Fatalf("quad(f, a, a) should be the zero result, got %+v", res)
	}
}

func TestQuadReversedBounds(t *testing.T) {
	res := Quad(func(x float64) float64 { return x * x }, 1, 0, QuadConfig{})
	if !floats.EqualWithinAbs(res.Value, -1./3, 1e-12) {
		t.Fatalf("quad(x², 1, 0) = %.15f", res.Value)
	}
}

func TestQuadSubdivisionBudget(t *testing.T) {
	// 1/√x needs heavy subdivision near zero; the budget caps the work and
	// the call still returns a finite value.
	f := func(x float64) float64 { return 1 / math.Sqrt(x) }
	for _, limit := range []int{1, 5, 20} {
		res := Quad(f, 0, 1, QuadConfig{Limit: limit})
		// One evaluation for the seed interval plus two per subdivision.
		if maxEvals := 15 * (2*limit + 1); res.Evaluations > maxEvals {
			t.Fatalf("limit %d: %d evaluations exceeds cap %d", limit, res.Evaluations, maxEvals)
		}
		if math.IsNaN(res.Value) || math.IsInf(res.Value, 0) {
			t.Fatalf("limit %d: non-finite value %g", limit, res.Value)
		}
	}
	// With a generous budget the estimate approaches the true value 2.
	res := Quad(f, 0, 1, QuadConfig{})
	if !floats.EqualWithinAbs(res.Value, 2, 1e-2) {
		t.Fatalf("got %.6f, want ≈2", res.Value)
	}
}

func TestQuadCallbackPanicSubstitution(t *testing.T) {
	// A callback failure degrades to a zero sample instead of aborting.
	res := Quad(func(x float64) float64 { panic("host-side fault") }, 0, 1, QuadConfig{})
	if res.Value != 0 {
		t.Fatalf("all-panicking integrand should integrate to 0, got %g", res.Value)
	}
	// Partial failures keep the remaining samples.
	res = Quad(func(x float64) float64 {
		if x > 0.99 {
			panic("host-side fault")
		}
		return 1
	}, 0, 1, QuadConfig{})
	if res.Value <= 0.5 || res.Value > 1 {
		t.Fatalf("partially failing integrand gave %g", res.Value)
	}
}

func TestQuadNaNPropagates(t *testing.T) {
	res := Quad(func(x float64) float64 { return math.NaN() }, 0, 1, QuadConfig{Limit: 1})
	if !math.IsNaN(res.Value) {
		t.Fatalf("NaN should propagate untouched, got %g", res.Value)
	}
}

func TestGK15AgainstFixedRule(t *testing.T) {
	// Kronrod and the order-7 Gauss rule agree exactly on low-degree
	// polynomials, so the local error estimate must vanish.
	_, abserr := gk15(func(x float64) float64 { return 3*x*x*x - x + 1 }, -2, 5)
	if abserr > 1e-10 {
		t.Fatalf("cubic should carry no Kronrod/Gauss disagreement, got %g", abserr)
	}
}
