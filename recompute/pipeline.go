package recompute

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libfraccalc/fracdiff"
	"github.com/sgostarter/libfraccalc/funclib"
	"github.com/spf13/cast"
)

// NewPipeline builds the default sample/weights/evaluate pipeline.
// Sampled functions and weight sequences are cached so that order-only
// slider motion skips resampling and revisited orders reuse their
// weights.
func NewPipeline(logger l.Wrapper) Pipeline {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	cacheDuration := time.Minute

	return &pipelineImpl{
		logger:        logger.WithFields(l.StringField(l.ClsKey, "pipelineImpl")),
		weights:       fracdiff.NewWeightSource(),
		cachedSamples: cache.New(cacheDuration, cacheDuration),
	}
}

type pipelineImpl struct {
	logger l.Wrapper

	weights       fracdiff.WeightSource
	cachedSamples *cache.Cache
}

func (impl *pipelineImpl) genSampleKey(p Params) string {
	key := p.FunctionID + "|" +
		strconv.FormatFloat(p.Domain.Start, 'x', -1, 64) + "|" +
		strconv.FormatFloat(p.Domain.End, 'x', -1, 64) + "|" +
		strconv.Itoa(p.Domain.SampleCount)

	for _, paramKey := range []string{funclib.ParamConst, funclib.ParamPower} {
		if i, ok := p.FunctionParams[paramKey]; ok {
			key += "|" + paramKey + "=" + cast.ToString(i)
		}
	}

	return key
}

func (impl *pipelineImpl) sample(p Params) (sf fracdiff.SampledFunction, err error) {
	key := impl.genSampleKey(p)

	if i, ok := impl.cachedSamples.Get(key); ok {
		if sf, ok = i.(fracdiff.SampledFunction); ok {
			return
		}
	}

	sf, err = funclib.Sample(p.FunctionID, p.FunctionParams, p.Domain)
	if err != nil {
		return
	}

	impl.cachedSamples.Set(key, sf, cache.DefaultExpiration)

	return
}

func (impl *pipelineImpl) Compute(p Params) (xs, ys []float64, err error) {
	sf, err := impl.sample(p)
	if err != nil {
		return
	}

	ws, err := impl.weights.Weights(p.Order, p.Domain.SampleCount)
	if err != nil {
		return
	}

	rs, err := fracdiff.Evaluate(sf, ws, p.Order)
	if err != nil {
		return
	}

	xs = sf.Xs
	ys = rs

	return
}
