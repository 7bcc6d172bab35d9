package numerics

import (
	"errors"
	"fmt"
)

/* Integration of pre-sampled values, no function calls involved. */

// Trapezoid integrates uniformly spaced samples with spacing dx.
func Trapezoid(y []float64, dx float64) (float64, error) {
	if len(y) < 2 {
		return 0, errors.New("trapezoid: need at least 2 samples")
	}
	sum := 0.5 * (y[0] + y[len(y)-1])
	for _, v := range y[1 : len(y)-1] {
		sum += v
	}
	return sum * dx, nil
}

// TrapezoidX integrates samples y taken at coordinates x, which need not be
// uniformly spaced.
func TrapezoidX(y, x []float64) (float64, error) {
	if len(y) < 2 {
		return 0, errors.New("trapezoid: need at least 2 samples")
	}
	if len(x) != len(y) {
		return 0, fmt.Errorf("trapezoid: %d samples but %d coordinates", len(y), len(x))
	}
	sum := 0.0
	for i := 0; i < len(y)-1; i++ {
		sum += 0.5 * (x[i+1] - x[i]) * (y[i] + y[i+1])
	}
	return sum, nil
}

// Simpson integrates uniformly spaced samples with the composite Simpson
// rule. With an even sample count the rule covers all but the final interval,
// which gets a trapezoid correction since Simpson needs interval pairs.
func Simpson(y []float64, dx float64) (float64, error) {
	if len(y) < 3 {
		return 0, errors.New("simpson: need at least 3 samples")
	}
	n := len(y)
	if n%2 == 0 {
		head, _ := Simpson(y[:n-1], dx)
		return head + 0.5*dx*(y[n-2]+y[n-1]), nil
	}
	sum := y[0] + y[n-1]
	for i := 1; i < n-1; i++ {
		if i%2 == 1 {
			sum += 4 * y[i]
		} else {
			sum += 2 * y[i]
		}
	}
	return sum * dx / 3, nil
}

// SimpsonX integrates samples y taken at coordinates x, applying the unequal
// interval Simpson formula pairwise. Even sample counts get the same final
// trapezoid correction as Simpson.
func SimpsonX(y, x []float64) (float64, error) {
	if len(y) < 3 {
		return 0, errors.New("simpson: need at least 3 samples")
	}
	if len(x) != len(y) {
		return 0, fmt.Errorf("simpson: %d samples but %d coordinates", len(y), len(x))
	}
	n := len(y)
	if n%2 == 0 {
		head, err := SimpsonX(y[:n-1], x[:n-1])
		if err != nil {
			return 0, err
		}
		return head + 0.5*(x[n-1]-x[n-2])*(y[n-2]+y[n-1]), nil
	}
	sum := 0.0
	for i := 0; i < n-2; i += 2 {
		h0 := x[i+1] - x[i]
		h1 := x[i+2] - x[i+1]
		hs := h0 + h1
		sum += hs / 6 * ((2-h1/h0)*y[i] + hs*hs/(h0*h1)*y[i+1] + (2-h0/h1)*y[i+2])
	}
	return sum, nil
}
