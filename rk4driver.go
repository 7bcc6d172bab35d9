package numerics

import (
	"os"

	kitlog "github.com/go-kit/kit/log"
)

/* Handles fixed-step propagation of stateful systems. */

// Integrable defines a system driven by the fixed-step RK4 propagator. The
// propagator pulls the state, evaluates the derivative through Func, pushes
// the updated state back, and asks Stop whether to keep going.
type Integrable interface {
	GetState() []float64
	SetState(t float64, s []float64)
	Func(t float64, s []float64) []float64
	Stop(t float64) bool
}

// RK4Propagator advances an Integrable at a fixed step with the classical
// fourth-order method. No error control: the step is the caller's promise.
type RK4Propagator struct {
	X0       float64
	Step     float64
	System   Integrable
	StateOut chan<- State // optional streaming of every accepted state
	logger   kitlog.Logger
}

// NewRK4 returns a fixed-step RK4 propagator starting at x0.
func NewRK4(x0, step float64, system Integrable) *RK4Propagator {
	var logger kitlog.Logger
	if numConfig().verbose {
		logger = kitlog.With(kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout)), "subsys", "rk4")
	} else {
		logger = kitlog.NewNopLogger()
	}
	return &RK4Propagator{X0: x0, Step: step, System: system, logger: logger}
}

// Solve propagates until the system requests a stop. Blocking. It returns the
// number of steps taken.
func (p *RK4Propagator) Solve() int {
	p.logger.Log("level", "info", "status", "start", "x0", p.X0, "step", p.Step)
	t := p.X0
	steps := 0
	for !p.System.Stop(t) {
		y := p.System.GetState()
		yNew, _, _ := rkStep(rk4Tableau, p.System.Func, t, y, p.Step)
		t += p.Step
		p.System.SetState(t, yNew)
		if p.StateOut != nil {
			p.StateOut <- State{T: t, Y: append([]float64(nil), yNew...)}
		}
		steps++
	}
	p.logger.Log("level", "notice", "status", "finished", "t", t, "steps", steps)
	return steps
}
