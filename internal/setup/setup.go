package setup

import (
	"context"
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/robotomize/plinko/internal/database"
	"github.com/robotomize/plinko/internal/logging"
	"github.com/robotomize/plinko/internal/metrics"
	"github.com/robotomize/plinko/internal/predictor"
	"github.com/robotomize/plinko/internal/predictor/knn"
	"github.com/robotomize/plinko/internal/srvenv"
)

type PredictorConfigProvider interface {
	PredictConfig() *predictor.Config
	PredictType() predictor.AlgType
}

type DatabaseConfigProvider interface {
	DatabaseConfig() *database.Config
}

// Setup fills config from the environment and builds the dependencies it asks for.
func Setup(ctx context.Context, config interface{}) (*srvenv.SrvEnv, error) {
	logger := logging.FromContext(ctx)
	serverEnvOpts := []srvenv.Option{srvenv.WithMetrics(metrics.New())}
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}

	if dbConfigProvider, ok := config.(DatabaseConfigProvider); ok {
		logger.Info("Configuring db")
		db, err := database.NewFromEnv(ctx, dbConfigProvider.DatabaseConfig())
		if err != nil {
			return nil, fmt.Errorf("unable to connect to database: %w", err)
		}
		serverEnvOpts = append(serverEnvOpts, srvenv.WithDatabase(db))
	}

	if predictConfigProvider, ok := config.(PredictorConfigProvider); ok {
		logger.Info("Configuring predictor")
		provideFn, err := ProvidePredictorFor(predictConfigProvider.PredictConfig())
		if err != nil {
			return nil, fmt.Errorf("unable create predictor provide function: %w", err)
		}
		serverEnvOpts = append(serverEnvOpts, srvenv.WithPredictor(provideFn))
	}

	return srvenv.New(serverEnvOpts...), nil
}

func ProvidePredictorFor(cfg *predictor.Config) (predictor.ProvideFn, error) {
	switch cfg.PredictorType() {
	case predictor.AlgTypeKNN:
		return func(k int) (predictor.Predictor, error) {
			c, err := knn.New(knn.WithK(k))
			if err != nil {
				return nil, fmt.Errorf("unable create knn instance: %w", err)
			}
			return c, nil
		}, nil
	default:
		return nil, fmt.Errorf("unknown predictor type: %s", cfg.PredictorType())
	}
}
