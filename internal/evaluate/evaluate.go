package evaluate

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/robotomize/plinko/internal/dataset"
	"github.com/robotomize/plinko/internal/errs"
	"github.com/robotomize/plinko/internal/logging"
	"github.com/robotomize/plinko/internal/predictor/knn"
	"github.com/valyala/fastrand"
	"golang.org/x/sync/errgroup"
)

type Option func(*options)

type options struct {
	concurrency int
	splitOpts   []dataset.SplitOption
}

// WithConcurrency bounds the number of predictions running at once.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

func WithSeed(seed uint32) Option {
	return func(o *options) {
		o.splitOpts = append(o.splitOpts, dataset.WithSeed(seed))
	}
}

func WithRNG(r *fastrand.RNG) Option {
	return func(o *options) {
		o.splitOpts = append(o.splitOpts, dataset.WithRNG(r))
	}
}

func newOptions(opts []Option) options {
	o := options{concurrency: runtime.NumCPU()}
	for _, f := range opts {
		f(&o)
	}
	return o
}

type Report struct {
	K               int     `json:"k"`
	TestSetSize     int     `json:"testSetSize"`
	TrainingSetSize int     `json:"trainingSetSize"`
	Correct         int     `json:"correct"`
	Accuracy        float64 `json:"accuracy"`
}

// Evaluate holds out testSetSize random records, predicts each of them from the rest
// and returns the share of correct predictions.
func Evaluate(ctx context.Context, data dataset.Dataset, testSetSize, k int, opts ...Option) (float64, error) {
	report, err := EvaluateReport(ctx, data, testSetSize, k, opts...)
	if err != nil {
		return 0, err
	}
	return report.Accuracy, nil
}

func EvaluateReport(ctx context.Context, data dataset.Dataset, testSetSize, k int, opts ...Option) (*Report, error) {
	o := newOptions(opts)
	if testSetSize < 1 {
		return nil, errs.InvalidArgument("testSetSize", testSetSize, "testSetSize > 0")
	}
	testSet, trainingSet, err := dataset.Split(data, testSetSize, o.splitOpts...)
	if err != nil {
		return nil, fmt.Errorf("unable to split dataset: %w", err)
	}
	if err := knn.Validate(trainingSet, k); err != nil {
		return nil, fmt.Errorf("unable to evaluate: %w", err)
	}

	return report(ctx, testSet, trainingSet, k, o.concurrency)
}

func report(ctx context.Context, testSet, trainingSet dataset.Dataset, k, concurrency int) (*Report, error) {
	logger := logging.FromContext(ctx)
	correct, err := score(ctx, testSet, trainingSet, k, concurrency)
	if err != nil {
		return nil, err
	}
	r := &Report{
		K:               k,
		TestSetSize:     len(testSet),
		TrainingSetSize: len(trainingSet),
		Correct:         correct,
		Accuracy:        float64(correct) / float64(len(testSet)),
	}
	logger.Debugw("evaluated",
		"k", r.K, "test", r.TestSetSize, "training", r.TrainingSetSize, "accuracy", r.Accuracy)
	return r, nil
}

// score counts the test records whose label is predicted correctly.
func score(ctx context.Context, testSet, trainingSet dataset.Dataset, k, concurrency int) (int, error) {
	var correct int64
	errGrp, ctx := errgroup.WithContext(ctx)
	errGrp.SetLimit(concurrency)
	for _, record := range testSet {
		record := record
		errGrp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			label, err := knn.Predict(trainingSet, record.DropWidth, k)
			if err != nil {
				return fmt.Errorf("predict %v: %w", record.DropWidth, err)
			}
			if label == record.BoxLabel {
				atomic.AddInt64(&correct, 1)
			}
			return nil
		})
	}
	if err := errGrp.Wait(); err != nil {
		return 0, err
	}
	return int(correct), nil
}
