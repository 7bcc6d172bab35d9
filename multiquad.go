package numerics

/* Handles nested multi-dimensional integration. */

// Integrand2D is a real function of two variables, inner variable first.
type Integrand2D func(y, x float64) float64

// Integrand3D is a real function of three variables, innermost first.
type Integrand3D func(z, y, x float64) float64

// BoundFunc maps the outer variable to an inner integration limit.
type BoundFunc func(x float64) float64

// BoundFunc2D maps the two outer variables to an innermost integration limit.
type BoundFunc2D func(x, y float64) float64

// FixedBound wraps a constant limit as a BoundFunc.
func FixedBound(v float64) BoundFunc {
	return func(float64) float64 { return v }
}

// FixedBound2D wraps a constant limit as a BoundFunc2D.
func FixedBound2D(v float64) BoundFunc2D {
	return func(float64, float64) float64 { return v }
}

// DblQuad integrates f(y, x) for x in [xa, xb] and y in [ya(x), yb(x)]. Each
// outer sample triggers a full adaptive integration of the inner variable;
// only the outer Kronrod/Gauss disagreement feeds the returned error estimate.
// Evaluations counts calls to f.
func DblQuad(f Integrand2D, xa, xb float64, ya, yb BoundFunc, cfg QuadConfig) QuadResult {
	nfev := 0
	outer := func(x float64) float64 {
		inner := Quad(func(y float64) float64 { return f(y, x) }, ya(x), yb(x), cfg)
		nfev += inner.Evaluations
		return inner.Value
	}
	res := Quad(outer, xa, xb, cfg)
	res.Evaluations = nfev
	return res
}

// TplQuad integrates f(z, y, x) for x in [xa, xb], y in [ya(x), yb(x)] and
// z in [za(x, y), zb(x, y)], nesting DblQuad under the outer adaptive rule.
func TplQuad(f Integrand3D, xa, xb float64, ya, yb BoundFunc, za, zb BoundFunc2D, cfg QuadConfig) QuadResult {
	nfev := 0
	outer := func(x float64) float64 {
		inner := DblQuad(func(z, y float64) float64 { return f(z, y, x) },
			ya(x), yb(x),
			func(y float64) float64 { return za(x, y) },
			func(y float64) float64 { return zb(x, y) },
			cfg)
		nfev += inner.Evaluations
		return inner.Value
	}
	res := Quad(outer, xa, xb, cfg)
	res.Evaluations = nfev
	return res
}
