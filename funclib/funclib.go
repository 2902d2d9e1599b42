package funclib

import (
	"fmt"
	"math"
	"sort"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libfraccalc/fracdiff"
	"github.com/spf13/cast"
)

// Params carries per-function knobs (e.g. the monomial's const and
// power). Values are decoded with cast, so ints, floats and numeric
// strings all work.
type Params map[string]interface{}

func (ps Params) Float(key string, def float64) float64 {
	if ps == nil {
		return def
	}

	i, ok := ps[key]
	if !ok {
		return def
	}

	v, err := cast.ToFloat64E(i)
	if err != nil {
		return def
	}

	return v
}

type EvalFunc func(x float64, ps Params) float64

var builtins = map[string]EvalFunc{
	FunctionSin: func(x float64, _ Params) float64 {
		return math.Sin(x)
	},
	FunctionCos: func(x float64, _ Params) float64 {
		return math.Cos(x)
	},
	FunctionGaussian: func(x float64, _ Params) float64 {
		return math.Exp(-x * x)
	},
	FunctionStep: func(x float64, _ Params) float64 {
		if x < 0 {
			return 0
		}

		return 1
	},
	FunctionRecip: func(x float64, _ Params) float64 {
		return 1 / x
	},
	FunctionMonomial: func(x float64, ps Params) float64 {
		return ps.Float(ParamConst, 1) * math.Pow(x, ps.Float(ParamPower, 1))
	},
}

const (
	FunctionSin      = "sin"
	FunctionCos      = "cos"
	FunctionGaussian = "gaussian"
	FunctionStep     = "step"
	FunctionRecip    = "recip"
	FunctionMonomial = "monomial"

	ParamConst = "const"
	ParamPower = "power"
)

// IDs lists the known function identifiers, sorted.
func IDs() []string {
	ids := make([]string, 0, len(builtins))

	for id := range builtins {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// Sample tabulates the identified function over the domain.
// Deterministic for identical inputs. A function undefined anywhere in
// the domain (pole, negative base with fractional power) rejects the
// whole configuration with fracdiff.ErrDomain.
func Sample(functionID string, ps Params, d fracdiff.Domain) (sf fracdiff.SampledFunction, err error) {
	if err = d.Validate(); err != nil {
		return
	}

	fn, ok := builtins[functionID]
	if !ok {
		err = fmt.Errorf("%w: function %q: %w", fracdiff.ErrDomain, functionID, commerr.ErrNotFound)

		return
	}

	xs := d.Xs()
	ys := make([]float64, len(xs))

	for idx, x := range xs {
		y := fn(x, ps)

		if math.IsNaN(y) || math.IsInf(y, 0) {
			err = fmt.Errorf("%w: %q undefined at x=%v", fracdiff.ErrDomain, functionID, x)

			return
		}

		ys[idx] = y
	}

	sf = fracdiff.SampledFunction{
		Domain: d,
		Xs:     xs,
		Ys:     ys,
	}

	return
}
