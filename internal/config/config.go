package plinko

import (
	"github.com/robotomize/plinko/internal/database"
	"github.com/robotomize/plinko/internal/predict"
	"github.com/robotomize/plinko/internal/predictor"
	"github.com/robotomize/plinko/internal/setup"
)

var (
	_ setup.PredictorConfigProvider = (*Config)(nil)
	_ setup.DatabaseConfigProvider  = (*Config)(nil)
)

type Config struct {
	SrvAddr     string  `envconfig:"PLINKO_ADDR" default:":8787"`
	LogLevel    string  `envconfig:"PLINKO_LOG_LEVEL" default:"info"`
	DevLogs     bool    `envconfig:"PLINKO_DEV_LOGS" default:"false"`
	DatasetFile string  `envconfig:"PLINKO_DATASET_FILE"`
	DatasetName string  `envconfig:"PLINKO_DATASET_NAME" default:"default"`
	Seed        uint32  `envconfig:"PLINKO_SEED" default:"0"`
	Query       float64 `envconfig:"PLINKO_QUERY" default:"300"`
	Predict     predict.Config
	Database    database.Config
	Predictor   predictor.Config
}

func (c Config) DatabaseConfig() *database.Config {
	return &c.Database
}

func (c Config) PredictType() predictor.AlgType {
	return c.Predictor.Type
}

func (c Config) PredictConfig() *predictor.Config {
	return &c.Predictor
}

// AnalysisConfig drives the one-shot analysis, which needs no dataset store.
type AnalysisConfig struct {
	LogLevel    string  `envconfig:"PLINKO_LOG_LEVEL" default:"info"`
	DatasetFile string  `envconfig:"PLINKO_DATASET_FILE"`
	Seed        uint32  `envconfig:"PLINKO_SEED" default:"0"`
	Query       float64 `envconfig:"PLINKO_QUERY" default:"300"`
	TestSetSize int     `envconfig:"PLINKO_TEST_SET_SIZE" default:"1"`
	Concurrency int     `envconfig:"PLINKO_CONCURRENCY" default:"4"`
	Predictor   predictor.Config
}

func (c AnalysisConfig) PredictType() predictor.AlgType {
	return c.Predictor.Type
}

func (c AnalysisConfig) PredictConfig() *predictor.Config {
	return &c.Predictor
}
