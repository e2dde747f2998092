package predict

import "time"

type Config struct {
	RequestTimeout time.Duration `envconfig:"PLINKO_PREDICT_REQUEST_TIMEOUT" default:"30s"`
	MaxQueries     int           `envconfig:"PLINKO_PREDICT_MAX_QUERIES" default:"100"`
	MaxRecords     int           `envconfig:"PLINKO_PREDICT_MAX_RECORDS" default:"100000"`
	DefaultK       int           `envconfig:"PLINKO_K" default:"3"`
	TestSetSize    int           `envconfig:"PLINKO_TEST_SET_SIZE" default:"1"`
	Concurrency    int           `envconfig:"PLINKO_CONCURRENCY" default:"4"`
}
