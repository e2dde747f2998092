package knn

import (
	"fmt"

	"github.com/robotomize/plinko/internal/dataset"
	"github.com/robotomize/plinko/internal/errs"
	"github.com/robotomize/plinko/internal/geom"
	"github.com/robotomize/plinko/pkg/pqueue"
)

// Neighbour is a training record seen from the query point.
type Neighbour struct {
	Dist  float64
	Label int
}

// Predict returns the majority box label among the k training records nearest to query.
// When several labels share the highest count, the one held by the closest neighbour wins.
func Predict(training dataset.Dataset, query float64, k int) (int, error) {
	if err := Validate(training, k); err != nil {
		return 0, err
	}
	label, _ := Tally(Nearest(Neighbours(training, query), k)).Winner()
	return label, nil
}

func Validate(training dataset.Dataset, k int) error {
	if len(training) == 0 {
		return errs.InvalidArgument("trainingData", "[]", "a non-empty dataset")
	}
	if k < 1 || k > len(training) {
		return errs.InvalidArgument("k", k, fmt.Sprintf("1 <= k <= %d", len(training)))
	}
	return nil
}

// Neighbours pairs every record with its distance to query, keeping the dataset order.
func Neighbours(training dataset.Dataset, query float64) []Neighbour {
	list := make([]Neighbour, len(training))
	for i := range training {
		list[i] = Neighbour{
			Dist:  geom.Distance(training[i].DropWidth, query),
			Label: training[i].BoxLabel,
		}
	}
	return list
}

// Nearest returns the k smallest distances in ascending order. Equal distances keep their input order.
func Nearest(neighbours []Neighbour, k int) []Neighbour {
	if k <= 0 {
		return []Neighbour{}
	}
	pq := pqueue.New(pqueue.WithCap(uint(k)))
	for _, n := range neighbours {
		pq.Push(n, n.Dist)
	}
	nearest := make([]Neighbour, pq.Len())
	for i, item := range pq.PopAll() {
		nearest[i] = item.(Neighbour)
	}
	return nearest
}

// Votes is a label tally that remembers in which order labels were first seen.
type Votes struct {
	counts map[int]int
	order  []int
}

func Tally(neighbours []Neighbour) Votes {
	v := Votes{counts: make(map[int]int, len(neighbours))}
	for _, n := range neighbours {
		if _, ok := v.counts[n.Label]; !ok {
			v.order = append(v.order, n.Label)
		}
		v.counts[n.Label]++
	}
	return v
}

func (v Votes) Count(label int) int {
	return v.counts[label]
}

// Winner returns the most frequent label and its count. Ties go to the label seen first.
func (v Votes) Winner() (int, int) {
	var label, count int
	for _, l := range v.order {
		if c := v.Count(l); c > count {
			label, count = l, c
		}
	}
	return label, count
}
