package srvenv

import (
	"context"

	"github.com/robotomize/plinko/internal/database"
	datasetDb "github.com/robotomize/plinko/internal/dataset/database"
	"github.com/robotomize/plinko/internal/metrics"
	"github.com/robotomize/plinko/internal/predictor"
)

type Option func(*SrvEnv) *SrvEnv

func New(opts ...Option) *SrvEnv {
	env := &SrvEnv{}
	for _, f := range opts {
		env = f(env)
	}

	return env
}

type SrvEnv struct {
	database  *database.DB
	datasets  *datasetDb.DB
	predictor predictor.ProvideFn
	metrics   *metrics.Recorder
}

func (s *SrvEnv) ProvidePredictor() predictor.ProvideFn {
	return s.predictor
}

func (s *SrvEnv) Database() *database.DB {
	return s.database
}

func (s *SrvEnv) Datasets() *datasetDb.DB {
	return s.datasets
}

func (s *SrvEnv) Metrics() *metrics.Recorder {
	return s.metrics
}

func WithPredictor(fn predictor.ProvideFn) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.predictor = fn
		return s
	}
}

func WithDatabase(db *database.DB) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.database = db
		s.datasets = datasetDb.New(db)
		return s
	}
}

func WithMetrics(r *metrics.Recorder) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.metrics = r
		return s
	}
}

func (s *SrvEnv) Close(ctx context.Context) error {
	if s == nil {
		return nil
	}

	if s.database != nil {
		return s.database.Close(ctx)
	}
	return nil
}
