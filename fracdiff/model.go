package fracdiff

import (
	"fmt"
	"math"
)

// Domain describes the uniform sampling interval. Immutable once handed
// to the sampler or evaluator.
type Domain struct {
	Start       float64 `yaml:"start"`
	End         float64 `yaml:"end"`
	SampleCount int     `yaml:"sampleCount"`
}

func (d Domain) Step() float64 {
	if d.SampleCount < 2 {
		return 0
	}

	return (d.End - d.Start) / float64(d.SampleCount-1)
}

func (d Domain) Validate() (err error) {
	if d.SampleCount < 2 {
		err = fmt.Errorf("%w: sample count %d", ErrNumeric, d.SampleCount)

		return
	}

	if math.IsNaN(d.Start) || math.IsInf(d.Start, 0) ||
		math.IsNaN(d.End) || math.IsInf(d.End, 0) {
		err = fmt.Errorf("%w: interval [%v, %v]", ErrNumeric, d.Start, d.End)

		return
	}

	if d.Step() <= 0 {
		err = fmt.Errorf("%w: step %v on [%v, %v]", ErrNumeric, d.Step(), d.Start, d.End)

		return
	}

	return
}

// Xs materializes the sample abscissas, strictly increasing and evenly
// spaced.
func (d Domain) Xs() []float64 {
	xs := make([]float64, d.SampleCount)

	step := d.Step()

	for idx := range xs {
		xs[idx] = d.Start + float64(idx)*step
	}

	return xs
}

// SampledFunction is a function tabulated over a Domain.
type SampledFunction struct {
	Domain Domain    `yaml:"domain"`
	Xs     []float64 `yaml:"xs"`
	Ys     []float64 `yaml:"ys"`
}

func (sf SampledFunction) Validate() (err error) {
	if err = sf.Domain.Validate(); err != nil {
		return
	}

	if len(sf.Xs) != sf.Domain.SampleCount || len(sf.Ys) != sf.Domain.SampleCount {
		err = fmt.Errorf("%w: %d xs, %d ys for %d samples", ErrNumeric,
			len(sf.Xs), len(sf.Ys), sf.Domain.SampleCount)

		return
	}

	return
}

// WeightSequence holds the GL coefficients, index k for lag k.
// Regenerated wholesale when order or length changes, never mutated.
type WeightSequence []float64

// ResultSequence is the differintegral at each domain point. Transient:
// every recompute supersedes the previous one.
type ResultSequence []float64
