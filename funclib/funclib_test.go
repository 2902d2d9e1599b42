package funclib

import (
	"math"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libfraccalc/fracdiff"
	"github.com/stretchr/testify/assert"
)

func TestSampleSin(t *testing.T) {
	d := fracdiff.Domain{Start: 0, End: 2 * math.Pi, SampleCount: 200}

	sf, err := Sample(FunctionSin, nil, d)
	assert.Nil(t, err)
	assert.Nil(t, sf.Validate())
	assert.EqualValues(t, 200, len(sf.Ys))

	for idx, x := range sf.Xs {
		assert.InDelta(t, math.Sin(x), sf.Ys[idx], 1e-12)
	}

	// Deterministic for identical inputs.
	sf2, err := Sample(FunctionSin, nil, d)
	assert.Nil(t, err)
	assert.EqualValues(t, sf.Ys, sf2.Ys)
}

func TestSampleMonomialParams(t *testing.T) {
	d := fracdiff.Domain{Start: 0.5, End: 2, SampleCount: 4}

	sf, err := Sample(FunctionMonomial, Params{ParamConst: 3, ParamPower: "2"}, d)
	assert.Nil(t, err)

	for idx, x := range sf.Xs {
		assert.InDelta(t, 3*x*x, sf.Ys[idx], 1e-12)
	}

	// Missing params fall back to c=1, k=1.
	sf, err = Sample(FunctionMonomial, nil, d)
	assert.Nil(t, err)

	for idx, x := range sf.Xs {
		assert.InDelta(t, x, sf.Ys[idx], 1e-12)
	}
}

func TestSamplePoleRejected(t *testing.T) {
	d := fracdiff.Domain{Start: -1, End: 1, SampleCount: 21}

	_, err := Sample(FunctionRecip, nil, d)
	assert.ErrorIs(t, err, fracdiff.ErrDomain)

	// Negative base with a fractional power is undefined over the reals.
	_, err = Sample(FunctionMonomial, Params{ParamPower: 0.5}, d)
	assert.ErrorIs(t, err, fracdiff.ErrDomain)

	// Same function away from the pole is fine.
	_, err = Sample(FunctionRecip, nil, fracdiff.Domain{Start: 1, End: 2, SampleCount: 21})
	assert.Nil(t, err)
}

func TestSampleUnknownFunction(t *testing.T) {
	d := fracdiff.Domain{Start: 0, End: 1, SampleCount: 2}

	_, err := Sample("no-such", nil, d)
	assert.ErrorIs(t, err, fracdiff.ErrDomain)
	assert.ErrorIs(t, err, commerr.ErrNotFound)
}

func TestSampleBadDomain(t *testing.T) {
	_, err := Sample(FunctionSin, nil, fracdiff.Domain{Start: 0, End: 1, SampleCount: 1})
	assert.ErrorIs(t, err, fracdiff.ErrNumeric)

	_, err = Sample(FunctionSin, nil, fracdiff.Domain{Start: 1, End: 0, SampleCount: 10})
	assert.ErrorIs(t, err, fracdiff.ErrNumeric)
}

func TestIDs(t *testing.T) {
	ids := IDs()
	assert.EqualValues(t, []string{
		FunctionCos, FunctionGaussian, FunctionMonomial,
		FunctionRecip, FunctionSin, FunctionStep,
	}, ids)
}

func TestAnalyticMonomial(t *testing.T) {
	// d^0.5/dx^0.5 x = 2 sqrt(x/pi), i.e. (2/sqrt(pi)) x^0.5.
	c, p, err := AnalyticMonomialDifferintegral(1, 1, 0.5)
	assert.Nil(t, err)
	assert.InDelta(t, 2/math.Sqrt(math.Pi), c, 1e-12)
	assert.InDelta(t, 0.5, p, 1e-12)

	// Integer order reduces to ordinary calculus.
	c, p, err = AnalyticMonomialDifferintegral(1, 3, 2)
	assert.Nil(t, err)
	assert.InDelta(t, 6, c, 1e-12)
	assert.InDelta(t, 1, p, 1e-12)

	// Integration: ∫ x^2 = x^3/3.
	c, p, err = AnalyticMonomialDifferintegral(1, 2, -1)
	assert.Nil(t, err)
	assert.InDelta(t, 1.0/3, c, 1e-12)
	assert.InDelta(t, 3, p, 1e-12)

	// Both powers negative integers: the gamma form blows up but the
	// repeated ordinary derivative does not.
	c, p, err = AnalyticMonomialDifferintegral(1, -2, 1)
	assert.Nil(t, err)
	assert.InDelta(t, -2, c, 1e-12)
	assert.InDelta(t, -3, p, 1e-12)

	// Exactly one negative integer: reported as the zero function.
	c, p, err = AnalyticMonomialDifferintegral(1, -1, 0.5)
	assert.Nil(t, err)
	assert.InDelta(t, 0, c, 1e-12)
	assert.InDelta(t, 0, p, 1e-12)

	_, _, err = AnalyticMonomialDifferintegral(1, math.NaN(), 0.5)
	assert.ErrorIs(t, err, fracdiff.ErrNumeric)
}

func TestAnalyticAgainstNumeric(t *testing.T) {
	// GL numerics against the closed form for f(x)=x^2, order 0.5, on a
	// domain starting at 0 so the causal history is complete.
	d := fracdiff.Domain{Start: 0, End: 4, SampleCount: 800}

	sf, err := Sample(FunctionMonomial, Params{ParamConst: 1, ParamPower: 2}, d)
	assert.Nil(t, err)

	ws, err := fracdiff.Weights(0.5, d.SampleCount)
	assert.Nil(t, err)

	rs, err := fracdiff.Evaluate(sf, ws, 0.5)
	assert.Nil(t, err)

	c, p, err := AnalyticMonomialDifferintegral(1, 2, 0.5)
	assert.Nil(t, err)

	// First-order accurate scheme; compare away from the left edge with
	// a tolerance scaled to the value.
	for idx := d.SampleCount / 4; idx < d.SampleCount; idx++ {
		expected := c * math.Pow(sf.Xs[idx], p)
		assert.InDelta(t, expected, rs[idx], 0.05*(1+math.Abs(expected)))
	}
}
