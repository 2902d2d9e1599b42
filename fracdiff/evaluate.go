package fracdiff

import (
	"fmt"
	"math"
)

// Evaluate computes the causal GL convolution
//
//	out[i] = step^(-order) * sum(k=0..i) weights[k] * Ys[i-k]
//
// over the sampled function. Output index 0 is the single-term sum; no
// sample after index i contributes to out[i]. Cost is O(n*n) for a full
// recompute, which is why callers coalesce triggers instead of calling
// this per input event.
func Evaluate(sampled SampledFunction, weights WeightSequence, order float64) (rs ResultSequence, err error) {
	if err = sampled.Validate(); err != nil {
		return
	}

	if math.IsNaN(order) || math.IsInf(order, 0) {
		err = fmt.Errorf("%w: order %v", ErrNumeric, order)

		return
	}

	if len(weights) != sampled.Domain.SampleCount {
		err = fmt.Errorf("%w: %d weights for %d samples", ErrNumeric,
			len(weights), sampled.Domain.SampleCount)

		return
	}

	scale := math.Pow(sampled.Domain.Step(), -order)
	if math.IsNaN(scale) || math.IsInf(scale, 0) {
		err = fmt.Errorf("%w: step %v at order %v", ErrNumeric, sampled.Domain.Step(), order)

		return
	}

	rs = make(ResultSequence, sampled.Domain.SampleCount)

	for i := range rs {
		var acc float64

		for k := 0; k <= i; k++ {
			acc += weights[k] * sampled.Ys[i-k]
		}

		rs[i] = scale * acc
	}

	return
}
