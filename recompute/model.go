package recompute

import (
	"github.com/sgostarter/libfraccalc/fracdiff"
	"github.com/sgostarter/libfraccalc/funclib"
)

type Params struct {
	FunctionID     string          `yaml:"functionID"`
	FunctionParams funclib.Params  `yaml:"functionParams,omitempty"`
	Order          float64         `yaml:"order"`
	Domain         fracdiff.Domain `yaml:"domain"`
}

// Frame pairs a result with its abscissas, ready for line-plot
// rendering. Seq orders frames by request freshness.
type Frame struct {
	Seq       uint64
	RequestID string
	Params    Params
	Xs        []float64
	Ys        []float64
}

type ParamOption func(p *Params)

func OrderOption(order float64) ParamOption {
	return func(p *Params) {
		p.Order = order
	}
}

func FunctionOption(functionID string, functionParams funclib.Params) ParamOption {
	return func(p *Params) {
		p.FunctionID = functionID
		p.FunctionParams = functionParams
	}
}

func DomainOption(d fracdiff.Domain) ParamOption {
	return func(p *Params) {
		p.Domain = d
	}
}
