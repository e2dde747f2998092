package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	plinko "github.com/robotomize/plinko/internal/config"
	"github.com/robotomize/plinko/internal/dataset"
	"github.com/robotomize/plinko/internal/evaluate"
	"github.com/robotomize/plinko/internal/logging"
	"github.com/robotomize/plinko/internal/setup"
	"github.com/robotomize/plinko/internal/shutdown"
)

func main() {
	ctx, done := shutdown.New()
	logger := logging.FromContext(ctx)
	if err := run(ctx); err != nil {
		done()
		logger.Fatal(err)
	}

	defer done()
}

func run(ctx context.Context) error {
	config := plinko.AnalysisConfig{}
	if err := envconfig.Process("", &config); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}
	logger := logging.NewLogger(config.LogLevel, true)
	defer logger.Sync()
	ctx = logging.WithLogger(ctx, logger)

	data := dataset.Reference()
	if config.DatasetFile != "" {
		records, err := dataset.LoadFile(config.DatasetFile)
		if err != nil {
			return fmt.Errorf("dataset.LoadFile: %w", err)
		}
		data = records
	}
	k := config.Predictor.K

	provideFn, err := setup.ProvidePredictorFor(config.PredictConfig())
	if err != nil {
		return fmt.Errorf("setup.ProvidePredictorFor: %w", err)
	}
	p, err := provideFn(k)
	if err != nil {
		return fmt.Errorf("predictor: %w", err)
	}
	p.Build(data...)
	conclusion, err := p.Predict(config.Query)
	if err != nil {
		return fmt.Errorf("predict: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "prediction for drop width %v: box %d (%d of %d votes)\n",
		conclusion.Query, conclusion.Label, conclusion.Votes, conclusion.K)

	opts := []evaluate.Option{evaluate.WithSeed(config.Seed), evaluate.WithConcurrency(config.Concurrency)}
	report, err := evaluate.EvaluateReport(ctx, data, config.TestSetSize, k, opts...)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "accuracy k=%d: %v (%d of %d)\n",
		report.K, report.Accuracy, report.Correct, report.TestSetSize)

	var ks []int
	for i := 1; i <= len(data)-config.TestSetSize; i++ {
		ks = append(ks, i)
	}
	result, err := evaluate.Sweep(ctx, data, config.TestSetSize, ks, opts...)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	for _, r := range result.Reports {
		_, _ = fmt.Fprintf(os.Stdout, "  k=%d accuracy %v\n", r.K, r.Accuracy)
	}
	_, _ = fmt.Fprintf(os.Stdout, "best k=%d accuracy %v\n", result.BestK, result.BestAccuracy)

	return nil
}
