package predictor

type AlgType string

const (
	AlgTypeKNN AlgType = "KNN"
)

type Config struct {
	Type AlgType `envconfig:"PLINKO_PREDICTOR_TYPE" default:"KNN"`
	K    int     `envconfig:"PLINKO_K" default:"3"`
}

func (c Config) PredictorType() AlgType {
	return c.Type
}
