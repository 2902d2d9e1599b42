package main

import (
	"testing"

	"github.com/sgostarter/libfraccalc/funclib"
	"github.com/stretchr/testify/assert"
)

func TestReprMonomial(t *testing.T) {
	assert.EqualValues(t, "0", reprMonomial(0, 2))
	assert.EqualValues(t, "1", reprMonomial(1, 0))
	assert.EqualValues(t, "x", reprMonomial(1, 1))
	assert.EqualValues(t, "3", reprMonomial(3, 0))
	assert.EqualValues(t, "x^2", reprMonomial(1, 2))
	assert.EqualValues(t, "2.5 x^1.5", reprMonomial(2.5, 1.5))
}

func TestLabels(t *testing.T) {
	ps := funclib.Params{funclib.ParamConst: 1.0, funclib.ParamPower: 1.0}

	assert.EqualValues(t, "f(x) = x", fLabel(funclib.FunctionMonomial, ps))
	assert.EqualValues(t, "f(x) = sin(x)", fLabel(funclib.FunctionSin, nil))

	assert.EqualValues(t, "g(x) = f(x) = x", gLabel(funclib.FunctionMonomial, ps, 0))
	assert.EqualValues(t, "g(x) = d/dx f(x) = 1", gLabel(funclib.FunctionMonomial, ps, 1))
	assert.EqualValues(t, "g(x) = int f(x) dx = 0.5 x^2", gLabel(funclib.FunctionMonomial, ps, -1))
	assert.EqualValues(t, "g(x) = d^0.5/dx^0.5 f(x)", gLabel(funclib.FunctionSin, nil, 0.5))
}
