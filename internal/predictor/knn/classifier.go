package knn

import (
	"fmt"
	"sync"

	"github.com/robotomize/plinko/internal/dataset"
	"github.com/robotomize/plinko/internal/errs"
	"github.com/robotomize/plinko/internal/predictor"
)

var _ predictor.Predictor = (*classifier)(nil)

const DefaultK = 3

type Option func(*classifier)

func WithK(k int) Option {
	return func(c *classifier) {
		c.k = k
	}
}

// New returns a predictor holding its own training set.
func New(opts ...Option) (*classifier, error) {
	c := &classifier{k: DefaultK}
	for _, f := range opts {
		f(c)
	}
	if c.k < 1 {
		return nil, errs.InvalidArgument("k", c.k, "k >= 1")
	}
	return c, nil
}

type classifier struct {
	mtx  sync.RWMutex
	k    int
	data dataset.Dataset
}

func (c *classifier) Reset() {
	c.mtx.Lock()
	c.data = nil
	c.mtx.Unlock()
}

func (c *classifier) Len() int {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	return len(c.data)
}

// Build replaces the training set.
func (c *classifier) Build(data ...dataset.Record) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.data = dataset.Dataset(data).Copy()
}

func (c *classifier) Append(data ...dataset.Record) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.data = append(c.data, data...)
}

func (c *classifier) Predict(query float64) (*predictor.Conclusion, error) {
	c.mtx.RLock()
	training := c.data
	c.mtx.RUnlock()

	if err := Validate(training, c.k); err != nil {
		return nil, fmt.Errorf("unable to predict %v: %w", query, err)
	}
	label, votes := Tally(Nearest(Neighbours(training, query), c.k)).Winner()
	return &predictor.Conclusion{Query: query, Label: label, Votes: votes, K: c.k}, nil
}
