package numerics

import (
	"testing"

	"github.com/gonum/floats"
)

func TestTrapezoidKnownBias(t *testing.T) {
	// Samples of x² at x=0..3. The rule's bias is part of its contract:
	// 9.5, not the exact integral 9.
	val, err := Trapezoid([]float64{0, 1, 4, 9}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if val != 9.5 {
		t.Fatalf("trapezoid([0,1,4,9], dx=1) = %g, want exactly 9.5", val)
	}
}

func TestTrapezoidNonUniform(t *testing.T) {
	// y = x sampled at irregular abscissae integrates exactly.
	val, err := TrapezoidX([]float64{0, 1, 3}, []float64{0, 1, 3})
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(val, 4.5, 1e-12) {
		t.Fatalf("got %g, want 4.5", val)
	}
}

func TestSimpsonOddCount(t *testing.T) {
	// Simpson is exact on quadratics.
	val, err := Simpson([]float64{0, 1, 4, 9, 16}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(val, 64./3, 1e-12) {
		t.Fatalf("got %.12f, want 64/3", val)
	}
}

func TestSimpsonEvenCount(t *testing.T) {
	// Even count: Simpson over the first pair of intervals, trapezoid over
	// the final one.
	val, err := Simpson([]float64{0, 1, 4, 9}, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := 8./3 + 6.5
	if !floats.EqualWithinAbs(val, want, 1e-12) {
		t.Fatalf("got %.12f, want %.12f", val, want)
	}
}

func TestSimpsonNonUniform(t *testing.T) {
	// Quadratic sampled at unequal spacing stays exact.
	x := []float64{0, 0.5, 2, 2.5, 4}
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = xi * xi
	}
	val, err := SimpsonX(y, x)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(val, 64./3, 1e-12) {
		t.Fatalf("got %.12f, want 64/3", val)
	}
}

func TestSampledContracts(t *testing.T) {
	if _, err := Trapezoid([]float64{1}, 1); err == nil {
		t.Fatal("trapezoid must reject fewer than 2 samples")
	}
	if _, err := Simpson([]float64{1, 2}, 1); err == nil {
		t.Fatal("simpson must reject fewer than 3 samples")
	}
	if _, err := TrapezoidX([]float64{1, 2}, []float64{0}); err == nil {
		t.Fatal("trapezoid must reject mismatched coordinates")
	}
	if _, err := SimpsonX([]float64{1, 2, 3}, []float64{0, 1}); err == nil {
		t.Fatal("simpson must reject mismatched coordinates")
	}
}
