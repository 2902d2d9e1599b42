package fracdiff

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

// Weights returns the Grünwald–Letnikov coefficients for the given
// order: w_0 = 1, w_k = w_{k-1} * (k-1-order) / k. The recurrence keeps
// the error bounded for lags in the hundreds, where evaluating the
// generalized binomial coefficient through gamma functions does not.
func Weights(order float64, length int) (ws WeightSequence, err error) {
	if length < 1 {
		err = fmt.Errorf("%w: weight length %d", ErrNumeric, length)

		return
	}

	if math.IsNaN(order) || math.IsInf(order, 0) {
		err = fmt.Errorf("%w: order %v", ErrNumeric, order)

		return
	}

	ws = make(WeightSequence, length)
	ws[0] = 1

	for k := 1; k < length; k++ {
		ws[k] = ws[k-1] * (float64(k) - 1 - order) / float64(k)
	}

	return
}

// WeightSource hands out GL weight sequences. Sequences are shared
// between callers and must not be mutated.
type WeightSource interface {
	Weights(order float64, length int) (WeightSequence, error)
}

func NewWeightSource() WeightSource {
	cacheDuration := time.Minute

	return &cachedWeightSource{
		cached: cache.New(cacheDuration, cacheDuration),
	}
}

type cachedWeightSource struct {
	cached *cache.Cache
}

func (impl *cachedWeightSource) genCachedKey(order float64, length int) string {
	return strconv.FormatUint(math.Float64bits(order), 36) + ":" + strconv.Itoa(length)
}

func (impl *cachedWeightSource) Weights(order float64, length int) (ws WeightSequence, err error) {
	key := impl.genCachedKey(order, length)

	if i, ok := impl.cached.Get(key); ok {
		if ws, ok = i.(WeightSequence); ok {
			return
		}
	}

	ws, err = Weights(order, length)
	if err != nil {
		return
	}

	impl.cached.Set(key, ws, cache.DefaultExpiration)

	return
}
