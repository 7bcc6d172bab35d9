package numerics

import (
	"fmt"
	"strings"
)

// Method defines an enum of Runge-Kutta methods.
type Method uint8

const (
	// RK45 is the Dormand-Prince 5(4) embedded pair, the default.
	RK45 Method = iota
	// RK23 is the Bogacki-Shampine 3(2) embedded pair.
	RK23
	// RK4 is the classical fixed-step fourth-order method, no error estimate.
	RK4
)

func (m Method) String() string {
	switch m {
	case RK45:
		return "RK45"
	case RK23:
		return "RK23"
	case RK4:
		return "RK4"
	}
	panic("cannot stringify unknown method")
}

// MethodFromString parses a method name, case insensitively.
func MethodFromString(s string) (Method, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "RK45", "DOPRI5", "":
		return RK45, nil
	case "RK23":
		return RK23, nil
	case "RK4":
		return RK4, nil
	}
	return RK45, fmt.Errorf("unknown method %q", s)
}

// tableau returns the coefficient set of the method. Each method stays a
// distinct tableau-driven stepper; the embedded pairs are never unified.
func (m Method) tableau() Tableau {
	switch m {
	case RK23:
		return rk23Tableau
	case RK4:
		return rk4Tableau
	default:
		return rk45Tableau
	}
}

// rkStep advances one Runge-Kutta step of size h: stage i is evaluated at
// t + C[i]·h with input state y + h·Σ_{j<i} A[i][j]·k[j]. errEst is nil when
// the tableau carries no embedded error weights. nfev is the number of
// derivative calls.
func rkStep(tab Tableau, f Derivative, t float64, y []float64, h float64) (yNew, errEst []float64, nfev int) {
	n := len(y)
	stages := tab.Stages()
	k := make([][]float64, stages)
	yc := make([]float64, n)

	for i := 0; i < stages; i++ {
		copy(yc, y)
		for j := 0; j < i; j++ {
			if tab.A[i][j] == 0 {
				continue
			}
			for d := 0; d < n; d++ {
				yc[d] += h * tab.A[i][j] * k[j][d]
			}
		}
		k[i] = safeDeriv(f, t+tab.C[i]*h, yc, n)
	}

	yNew = make([]float64, n)
	copy(yNew, y)
	for i := 0; i < stages; i++ {
		if tab.B[i] == 0 {
			continue
		}
		for d := 0; d < n; d++ {
			yNew[d] += h * tab.B[i] * k[i][d]
		}
	}

	if tab.E != nil {
		errEst = make([]float64, n)
		for i := 0; i < stages; i++ {
			if tab.E[i] == 0 {
				continue
			}
			for d := 0; d < n; d++ {
				errEst[d] += h * tab.E[i] * k[i][d]
			}
		}
	}
	return yNew, errEst, stages
}
