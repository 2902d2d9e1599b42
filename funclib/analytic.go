package funclib

import (
	"fmt"
	"math"

	"github.com/sgostarter/libfraccalc/fracdiff"
)

func isNegativeInteger(x float64) bool {
	return x == math.Trunc(x) && x < 0
}

// AnalyticMonomialDifferintegral differintegrates c*x^power `order`
// times in closed form and returns the new coefficient and power:
//
//	d^a/dx^a x^k = Γ(k+1)/Γ(k-a+1) * x^(k-a)
//
// When both power and power-order are negative integers the gamma form
// is undefined but the ordinary repeated derivative/antiderivative is
// not, so that path is taken instead (order is necessarily an integer
// there). When exactly one of them is a negative integer the result is
// reported as the zero function; that is wrong for antiderivatives of
// negative powers (∫x^-1 is ln x), so callers should keep power
// non-negative where exactness matters.
func AnalyticMonomialDifferintegral(c, power, order float64) (newConst, newPower float64, err error) {
	if math.IsNaN(c) || math.IsInf(c, 0) ||
		math.IsNaN(power) || math.IsInf(power, 0) ||
		math.IsNaN(order) || math.IsInf(order, 0) {
		err = fmt.Errorf("%w: monomial c=%v power=%v order=%v", fracdiff.ErrNumeric, c, power, order)

		return
	}

	if isNegativeInteger(power) && isNegativeInteger(power-order) {
		newConst, newPower = c, power

		if order >= 0 {
			for i := 0; i < int(order); i++ {
				newConst *= newPower
				newPower--
			}
		} else {
			for i := 0; i < -int(order); i++ {
				newConst /= newPower + 1
				newPower++
			}
		}

		return
	}

	if isNegativeInteger(power) || isNegativeInteger(power-order) {
		return
	}

	newConst = c * math.Gamma(power+1) / math.Gamma(power-order+1)
	newPower = power - order

	return
}
