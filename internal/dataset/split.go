package dataset

import (
	"fmt"

	"github.com/robotomize/plinko/internal/errs"
	"github.com/valyala/fastrand"
)

type SplitOption func(*splitOptions)

type splitOptions struct {
	rng *fastrand.RNG
}

// WithSeed makes the shuffle reproducible. Seed 0 leaves seeding to the runtime.
func WithSeed(seed uint32) SplitOption {
	return func(o *splitOptions) {
		o.rng = &fastrand.RNG{}
		o.rng.Seed(seed)
	}
}

// WithRNG shuffles with r. r must not be used concurrently.
func WithRNG(r *fastrand.RNG) SplitOption {
	return func(o *splitOptions) {
		if r != nil {
			o.rng = r
		}
	}
}

// Split shuffles a copy of data and returns its first testCount records as the test set
// and the rest as the training set.
func Split(data Dataset, testCount int, opts ...SplitOption) (Dataset, Dataset, error) {
	if testCount < 0 || testCount > len(data) {
		return nil, nil, errs.InvalidArgument(
			"testCount", testCount, fmt.Sprintf("0 <= testCount <= %d", len(data)),
		)
	}
	o := splitOptions{rng: &fastrand.RNG{}}
	for _, f := range opts {
		f(&o)
	}
	shuffled := data.Copy()
	shuffle(shuffled, o.rng)

	test := make(Dataset, testCount)
	copy(test, shuffled[:testCount])
	training := make(Dataset, len(shuffled)-testCount)
	copy(training, shuffled[testCount:])

	return test, training, nil
}

// Fisher-Yates.
func shuffle(d Dataset, rng *fastrand.RNG) {
	for i := len(d) - 1; i > 0; i-- {
		j := int(rng.Uint32n(uint32(i + 1)))
		d[i], d[j] = d[j], d[i]
	}
}
