package pqueue

import (
	"sort"
)

func WithCap(size uint) Option {
	return func(q *Queue) {
		q.cap = int(size)
	}
}

type Option func(*Queue)

type item struct {
	value interface{}
	prior float64
}

// New returns a priority queue ordered by ascending priority. Items with equal priority
// keep the order they were pushed in.
func New(opts ...Option) *Queue {
	p := &Queue{cap: -1}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type Queue struct {
	cap   int
	items []item
}

func (q *Queue) PopAll() []interface{} {
	pulled := make([]interface{}, len(q.items))
	for i := range q.items {
		pulled[i] = q.items[i].value
	}
	q.items = q.items[:0]
	return pulled
}

// Push inserts val after every item whose priority is not greater than priority.
// A bounded queue drops whatever falls past its capacity.
func (q *Queue) Push(val interface{}, priority float64) {
	idx := sort.Search(len(q.items), func(i int) bool {
		return q.items[i].prior > priority
	})
	if q.cap >= 0 && idx >= q.cap {
		return
	}
	q.items = append(q.items, item{})
	copy(q.items[idx+1:], q.items[idx:])
	q.items[idx] = item{value: val, prior: priority}
	if q.cap >= 0 && len(q.items) > q.cap {
		q.items = q.items[:q.cap]
	}
}

func (q *Queue) Len() int { return len(q.items) }
