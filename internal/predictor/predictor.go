package predictor

import (
	"github.com/robotomize/plinko/internal/dataset"
)

// ProvideFn returns a predictor voting among k neighbours.
type ProvideFn func(k int) (Predictor, error)

type Predictor interface {
	Reset()
	Len() int
	Build(data ...dataset.Record)
	Append(data ...dataset.Record)
	Predict(query float64) (*Conclusion, error)
}

// Conclusion is the box a ball dropped at Query is expected to fall into.
type Conclusion struct {
	Query float64 `json:"query"`
	Label int     `json:"label"`
	// Votes is the number of the k nearest neighbours that carry Label.
	Votes int `json:"votes"`
	K     int `json:"k"`
}
