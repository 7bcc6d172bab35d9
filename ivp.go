package numerics

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"

	kitlog "github.com/go-kit/kit/log"
	"github.com/gonum/matrix/mat64"
)

/* Handles the adaptive initial-value problem integration. */

const (
	// completionTol is the relative tolerance on reaching the final time.
	completionTol = 1e-12
	// maxGrowth and minShrink bound the step size controller.
	maxGrowth = 5.0
	minShrink = 0.1
	// safety is the classical step controller safety factor.
	safety = 0.9
)

// IVPConfig configures SolveIVP. The zero value selects RK45, RTol=1e-3,
// ATol=1e-6, an unbounded MaxStep and an estimated first step.
type IVPConfig struct {
	Method    Method
	TEval     []float64 // optional output grid, ordered along the integration direction
	MaxStep   float64
	RTol      float64
	ATol      float64
	FirstStep float64
	Logger    kitlog.Logger // optional, key-value
	Export    ExportConfig  // optional trajectory streaming
}

// finalized returns the configuration with every unset field defaulted.
func (c IVPConfig) finalized() IVPConfig {
	if c.MaxStep <= 0 {
		c.MaxStep = math.Inf(1)
	}
	if c.RTol <= 0 {
		c.RTol = 1e-3
	}
	if c.ATol <= 0 {
		c.ATol = 1e-6
	}
	if c.Logger == nil {
		if numConfig().verbose {
			c.Logger = kitlog.With(kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout)), "subsys", "ivp")
		} else {
			c.Logger = kitlog.NewNopLogger()
		}
	}
	return c
}

// ODEResult is the final record of one SolveIVP call. Success=false means the
// step attempt budget ran out before tf was reached, not a crash: T and Y
// then hold the partial trajectory.
type ODEResult struct {
	T       []float64
	Y       [][]float64
	Success bool
	Message string
	NFev    int
}

// Dense returns the trajectory as a (len(T) x dim) matrix, one state per row.
func (r ODEResult) Dense() *mat64.Dense {
	if len(r.Y) == 0 {
		return &mat64.Dense{}
	}
	m := mat64.NewDense(len(r.Y), len(r.Y[0]), nil)
	for i, row := range r.Y {
		m.SetRow(i, row)
	}
	return m
}

// SolveIVP integrates dy/dt = f(t, y) from t0 to tf starting at y0, with
// adaptive step control for the embedded methods and fixed stepping for RK4.
// Input contract violations are returned as errors before any stepping;
// running out of the step attempt budget is reported via Success=false with
// the partial trajectory.
func SolveIVP(f Derivative, t0, tf float64, y0 []float64, cfg IVPConfig) (ODEResult, error) {
	if len(y0) == 0 {
		return ODEResult{}, errors.New("ivp: empty initial state")
	}
	cfg = cfg.finalized()
	if err := checkTEval(cfg.TEval, t0, tf); err != nil {
		return ODEResult{}, err
	}

	n := len(y0)
	tab := cfg.Method.tableau()
	dir := 1.0
	if tf < t0 {
		dir = -1
	}
	span := math.Abs(tf - t0)

	t := t0
	y := append([]float64(nil), y0...)
	ts := []float64{t0}
	ys := [][]float64{append([]float64(nil), y0...)}
	nfev := 0

	// Optional trajectory streaming, one state per accepted step.
	var histChan chan State
	var wg sync.WaitGroup
	if !cfg.Export.IsUseless() {
		histChan = make(chan State, 1000)
		wg.Add(1)
		go func() {
			defer wg.Done()
			StreamStates(cfg.Export, histChan)
		}()
		histChan <- State{T: t0, Y: append([]float64(nil), y0...)}
	}

	h := cfg.FirstStep
	if h <= 0 {
		var f0 []float64
		f0, nfev = safeDeriv(f, t0, y0, n), 1
		h = estimateFirstStep(y0, f0, span, cfg.MaxStep)
	}

	cfg.Logger.Log("level", "info", "status", "start", "method", cfg.Method,
		"t0", t0, "tf", tf, "h0", h)

	maxIter := numConfig().ivpMaxIter
	success := false
	message := "completed"
	for attempts := 0; attempts < maxIter; attempts++ {
		if math.Abs(tf-t) <= completionTol*math.Max(1, math.Abs(tf)) {
			success = true
			break
		}
		// Clamp the candidate step so it never overshoots tf.
		step := math.Min(h, math.Abs(tf-t))
		yNew, errEst, nf := rkStep(tab, f, t, y, dir*step)
		nfev += nf

		if errEst != nil {
			norm := rmsNorm(errEst, y, yNew, cfg.ATol, cfg.RTol)
			if norm > 1 {
				// Rejected: shrink and retry without advancing time.
				h = step * math.Max(minShrink, safety*math.Pow(norm, -0.25))
				continue
			}
			factor := maxGrowth
			if norm > 0 {
				factor = math.Min(maxGrowth, safety*math.Pow(norm, -tab.ErrExp))
			}
			h = math.Min(step*factor, cfg.MaxStep)
		}

		t += dir * step
		y = yNew
		ts = append(ts, t)
		ys = append(ys, append([]float64(nil), y...))
		if histChan != nil {
			histChan <- State{T: t, Y: append([]float64(nil), y...)}
		}
	}

	if histChan != nil {
		close(histChan)
		wg.Wait()
	}

	if !success {
		message = fmt.Sprintf("maximum number of step attempts (%d) reached", maxIter)
		cfg.Logger.Log("level", "critical", "status", "iteration limit", "t", t, "tf", tf)
	} else {
		cfg.Logger.Log("level", "notice", "status", "finished", "steps", len(ts)-1, "nfev", nfev)
	}

	res := ODEResult{T: ts, Y: ys, Success: success, Message: message, NFev: nfev}
	if success && cfg.TEval != nil {
		res.T, res.Y = resample(ts, ys, cfg.TEval, dir)
	}
	return res, nil
}

// estimateFirstStep sizes the initial step from the derivative magnitude
// relative to the state magnitude, capped at a tenth of the span and MaxStep.
func estimateFirstStep(y0, f0 []float64, span, maxStep float64) float64 {
	d0 := rmsMagnitude(y0)
	d1 := rmsMagnitude(f0)
	h := 1e-6
	if d0 > 1e-12 && d1 > 1e-12 {
		h = 0.01 * d0 / d1
	}
	h = math.Min(h, span/10)
	return math.Min(h, maxStep)
}

// checkTEval rejects output grids that leave the integration span or run
// against the integration direction.
func checkTEval(tEval []float64, t0, tf float64) error {
	if tEval == nil {
		return nil
	}
	lo, hi := math.Min(t0, tf), math.Max(t0, tf)
	tol := completionTol * math.Max(1, math.Max(math.Abs(lo), math.Abs(hi)))
	dir := 1.0
	if tf < t0 {
		dir = -1
	}
	for i, te := range tEval {
		if te < lo-tol || te > hi+tol {
			return fmt.Errorf("ivp: tEval[%d]=%g outside [%g, %g]", i, te, lo, hi)
		}
		if i > 0 && dir*(te-tEval[i-1]) < 0 {
			return fmt.Errorf("ivp: tEval not ordered along the integration direction at index %d", i)
		}
	}
	return nil
}

// resample maps the natural adaptive trajectory onto an explicit grid by
// pairwise linear interpolation between the two bracketing natural steps. The
// trade-off is deliberate: no re-solving happens here.
func resample(ts []float64, ys [][]float64, tEval []float64, dir float64) ([]float64, [][]float64) {
	outT := append([]float64(nil), tEval...)
	outY := make([][]float64, len(tEval))
	idx := 0
	for i, te := range tEval {
		if len(ts) == 1 {
			outY[i] = append([]float64(nil), ys[0]...)
			continue
		}
		for idx < len(ts)-2 && dir*(ts[idx+1]-te) < 0 {
			idx++
		}
		outY[i] = linterp(ts[idx], ts[idx+1], ys[idx], ys[idx+1], te)
	}
	return outT, outY
}

// OdeIntConfig configures OdeInt. The zero value selects RTol=ATol=1.49e-8.
type OdeIntConfig struct {
	RTol, ATol float64
}

// OdeInt integrates dy/dt = f(y, t) across the caller-supplied time grid,
// chaining one SolveIVP call per consecutive grid pair and seeding each call
// with the final state of the previous one. It returns one state row per grid
// point. Note the reversed f(y, t) callback convention.
func OdeInt(f DerivativeYT, y0 []float64, tGrid []float64, cfg OdeIntConfig) ([][]float64, error) {
	if len(tGrid) < 2 {
		return nil, errors.New("odeint: need at least 2 grid points")
	}
	if len(y0) == 0 {
		return nil, errors.New("odeint: empty initial state")
	}
	if cfg.RTol <= 0 {
		cfg.RTol = 1.49e-8
	}
	if cfg.ATol <= 0 {
		cfg.ATol = 1.49e-8
	}

	fwd := func(t float64, y []float64) []float64 { return f(y, t) }
	out := make([][]float64, len(tGrid))
	out[0] = append([]float64(nil), y0...)
	y := out[0]
	for j := 0; j < len(tGrid)-1; j++ {
		res, err := SolveIVP(fwd, tGrid[j], tGrid[j+1], y, IVPConfig{
			Method: RK45, RTol: cfg.RTol, ATol: cfg.ATol,
		})
		if err != nil {
			return nil, err
		}
		if !res.Success {
			return nil, fmt.Errorf("odeint: between t=%g and t=%g: %s", tGrid[j], tGrid[j+1], res.Message)
		}
		y = res.Y[len(res.Y)-1]
		out[j+1] = append([]float64(nil), y...)
	}
	return out, nil
}
