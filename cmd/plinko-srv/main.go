package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/robotomize/plinko/internal/buildinfo"
	plinko "github.com/robotomize/plinko/internal/config"
	"github.com/robotomize/plinko/internal/dataset"
	"github.com/robotomize/plinko/internal/logging"
	"github.com/robotomize/plinko/internal/predict"
	"github.com/robotomize/plinko/internal/server"
	"github.com/robotomize/plinko/internal/setup"
	"github.com/robotomize/plinko/internal/shutdown"
)

func main() {
	_, _ = fmt.Fprint(os.Stdout, buildinfo.Graffiti)
	_, _ = fmt.Fprintf(
		os.Stdout,
		"%s: %s, %s\n",
		buildinfo.Info.Name(),
		buildinfo.Info.Time(),
		buildinfo.Info.Tag(),
	)

	ctx, done := shutdown.New()
	logger := logging.FromContext(ctx)
	if err := run(ctx); err != nil {
		done()
		logger.Fatal(err)
	}

	defer done()
}

func run(ctx context.Context) error {
	config := plinko.Config{}
	env, err := setup.Setup(ctx, &config)
	if err != nil {
		return fmt.Errorf("setup.Setup: %w", err)
	}
	defer env.Close(ctx)

	logger := logging.NewLogger(config.LogLevel, config.DevLogs)
	defer logger.Sync()
	ctx = logging.WithLogger(ctx, logger)

	if config.DatasetFile != "" {
		records, err := dataset.LoadFile(config.DatasetFile)
		if err != nil {
			return fmt.Errorf("dataset.LoadFile: %w", err)
		}
		entry, err := env.Datasets().Store(ctx, config.DatasetName, records)
		if err != nil {
			return fmt.Errorf("datasets.Store: %w", err)
		}
		logger.Infow("dataset loaded", "name", entry.Name, "id", entry.ID, "records", len(entry.Records))
	}

	srv, err := server.New(config.SrvAddr)
	if err != nil {
		return fmt.Errorf("sever.New: %w", err)
	}

	mux := http.NewServeMux()

	predictHandler, err := predict.NewHandler(&config.Predict, env.Datasets(), env.ProvidePredictor(), env.Metrics())
	if err != nil {
		return fmt.Errorf("predict.NewHandler: %w", err)
	}
	evaluateHandler, err := predict.NewEvaluateHandler(&config.Predict, env.Datasets(), env.Metrics())
	if err != nil {
		return fmt.Errorf("predict.NewEvaluateHandler: %w", err)
	}
	sweepHandler, err := predict.NewSweepHandler(&config.Predict, env.Datasets(), env.Metrics())
	if err != nil {
		return fmt.Errorf("predict.NewSweepHandler: %w", err)
	}
	datasetsHandler, err := predict.NewDatasetsHandler(&config.Predict, env.Datasets())
	if err != nil {
		return fmt.Errorf("predict.NewDatasetsHandler: %w", err)
	}

	mux.Handle("/predict", predictHandler)
	mux.Handle("/evaluate", evaluateHandler)
	mux.Handle("/sweep", sweepHandler)
	mux.Handle("/datasets", datasetsHandler)
	mux.Handle("/health", server.HandleHealth(ctx))
	mux.Handle("/metrics", env.Metrics().Handler())

	logger.Infof("listening on %s", srv.Addr())
	return srv.ServeHTTPHandler(ctx, mux)
}
