package fracdiff

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightsOrder2(t *testing.T) {
	ws, err := Weights(2, 5)
	assert.Nil(t, err)
	assert.EqualValues(t, 5, len(ws))

	expected := []float64{1, -2, 1, 0, 0}
	for idx := range expected {
		assert.InDelta(t, expected[idx], ws[idx], 1e-9)
	}
}

func TestWeightsOrderZero(t *testing.T) {
	ws, err := Weights(0, 8)
	assert.Nil(t, err)

	assert.InDelta(t, 1, ws[0], 1e-12)

	for idx := 1; idx < len(ws); idx++ {
		assert.InDelta(t, 0, ws[idx], 1e-12)
	}
}

func TestWeightsAgainstGamma(t *testing.T) {
	// (-1)^k * C(order, k) via gamma, small k only: the direct form is
	// the one that degrades for large lags.
	order := 0.5

	ws, err := Weights(order, 8)
	assert.Nil(t, err)

	sign := 1.0

	for k := 0; k < len(ws); k++ {
		direct := sign * math.Gamma(order+1) / (math.Gamma(float64(k)+1) * math.Gamma(order-float64(k)+1))
		assert.InDelta(t, direct, ws[k], 1e-12)

		sign = -sign
	}
}

func TestWeightsBadInputs(t *testing.T) {
	_, err := Weights(math.NaN(), 5)
	assert.ErrorIs(t, err, ErrNumeric)

	_, err = Weights(math.Inf(1), 5)
	assert.ErrorIs(t, err, ErrNumeric)

	_, err = Weights(1, 0)
	assert.ErrorIs(t, err, ErrNumeric)

	_, err = Weights(1, -3)
	assert.ErrorIs(t, err, ErrNumeric)
}

func TestWeightSourceReuse(t *testing.T) {
	src := NewWeightSource()

	ws1, err := src.Weights(0.7, 100)
	assert.Nil(t, err)

	ws2, err := src.Weights(0.7, 100)
	assert.Nil(t, err)

	assert.True(t, &ws1[0] == &ws2[0])

	ws3, err := src.Weights(0.7, 101)
	assert.Nil(t, err)
	assert.EqualValues(t, 101, len(ws3))
	assert.False(t, &ws1[0] == &ws3[0])

	_, err = src.Weights(math.NaN(), 10)
	assert.ErrorIs(t, err, ErrNumeric)
}
