package evaluate

import (
	"context"
	"fmt"

	"github.com/robotomize/plinko/internal/dataset"
	"github.com/robotomize/plinko/internal/errs"
	"github.com/robotomize/plinko/internal/predictor/knn"
)

type SweepResult struct {
	Reports      []Report `json:"reports"`
	BestK        int      `json:"bestK"`
	BestAccuracy float64  `json:"bestAccuracy"`
}

// Sweep evaluates every k against the same split and reports the most accurate one.
// The smaller k wins when accuracies are equal.
func Sweep(ctx context.Context, data dataset.Dataset, testSetSize int, ks []int, opts ...Option) (*SweepResult, error) {
	o := newOptions(opts)
	if len(ks) == 0 {
		return nil, errs.InvalidArgument("ks", ks, "at least one k")
	}
	if testSetSize < 1 {
		return nil, errs.InvalidArgument("testSetSize", testSetSize, "testSetSize > 0")
	}
	testSet, trainingSet, err := dataset.Split(data, testSetSize, o.splitOpts...)
	if err != nil {
		return nil, fmt.Errorf("unable to split dataset: %w", err)
	}
	for _, k := range ks {
		if err := knn.Validate(trainingSet, k); err != nil {
			return nil, fmt.Errorf("unable to sweep: %w", err)
		}
	}

	result := &SweepResult{Reports: make([]Report, 0, len(ks))}
	for i, k := range ks {
		r, err := report(ctx, testSet, trainingSet, k, o.concurrency)
		if err != nil {
			return nil, fmt.Errorf("unable to evaluate k %d: %w", k, err)
		}
		result.Reports = append(result.Reports, *r)
		if i == 0 || r.Accuracy > result.BestAccuracy || (r.Accuracy == result.BestAccuracy && k < result.BestK) {
			result.BestK, result.BestAccuracy = k, r.Accuracy
		}
	}
	return result, nil
}
