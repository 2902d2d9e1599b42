package main

import (
	"fmt"

	"github.com/sgostarter/libfraccalc/funclib"
)

func reprMonomial(c, power float64) string {
	if c == 0 {
		return "0"
	}

	if c == 1 && power == 0 {
		return "1"
	}

	var constStr string
	if c != 1 {
		constStr = fmt.Sprintf("%.4g", c)
	}

	var powerStr string

	switch power {
	case 0:
	case 1:
		powerStr = "x"
	default:
		powerStr = fmt.Sprintf("x^%.4g", power)
	}

	if constStr != "" && powerStr != "" {
		return constStr + " " + powerStr
	}

	return constStr + powerStr
}

func fLabel(functionID string, ps funclib.Params) string {
	if functionID == funclib.FunctionMonomial {
		return "f(x) = " + reprMonomial(ps.Float(funclib.ParamConst, 1), ps.Float(funclib.ParamPower, 1))
	}

	return "f(x) = " + functionID + "(x)"
}

func gLabel(functionID string, ps funclib.Params, order float64) string {
	var dStr string

	switch order {
	case 0:
		dStr = "f(x)"
	case 1:
		dStr = "d/dx f(x)"
	case -1:
		dStr = "int f(x) dx"
	default:
		dStr = fmt.Sprintf("d^%.4g/dx^%.4g f(x)", order, order)
	}

	if functionID == funclib.FunctionMonomial {
		c, p, err := funclib.AnalyticMonomialDifferintegral(
			ps.Float(funclib.ParamConst, 1), ps.Float(funclib.ParamPower, 1), order)
		if err == nil {
			return "g(x) = " + dStr + " = " + reprMonomial(c, p)
		}
	}

	return "g(x) = " + dStr
}
