package numerics

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/gonum/stat/distmv"
)

// MCQuad estimates the integral of f over the axis-aligned box described by
// bounds, from n uniform samples. The Error field of the result is the
// standard error of the mean scaled by the box volume, and shrinks as 1/√n.
// A nil src seeds a new generator from the wall clock.
func MCQuad(f func(x []float64) float64, bounds []distmv.Bound, n int, src *rand.Rand) (QuadResult, error) {
	if len(bounds) == 0 {
		return QuadResult{}, errors.New("mcquad: empty bounds")
	}
	if n < 2 {
		return QuadResult{}, errors.New("mcquad: need at least 2 samples")
	}
	volume := 1.0
	for _, b := range bounds {
		if b.Max < b.Min {
			return QuadResult{}, errors.New("mcquad: bound with max < min")
		}
		volume *= b.Max - b.Min
	}
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	u := distmv.NewUniform(bounds, src)

	eval := func(x []float64) (v float64) {
		defer func() {
			if recover() != nil {
				v = 0
			}
		}()
		return f(x)
	}

	x := make([]float64, len(bounds))
	var sum, sumSq float64
	for i := 0; i < n; i++ {
		u.Rand(x)
		v := eval(x)
		sum += v
		sumSq += v * v
	}
	mean := sum / float64(n)
	variance := math.Max(0, sumSq/float64(n)-mean*mean)
	stderr := volume * math.Sqrt(variance/float64(n))
	return QuadResult{Value: volume * mean, Error: stderr, Evaluations: n}, nil
}
