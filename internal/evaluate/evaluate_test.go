package evaluate

import (
	"context"
	"errors"
	"testing"

	"github.com/robotomize/plinko/internal/dataset"
	"github.com/robotomize/plinko/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clusters returns two well separated groups of ten drops each.
func clusters() dataset.Dataset {
	var d dataset.Dataset
	for i := 0; i < 10; i++ {
		d = append(d, dataset.Record{DropWidth: float64(i), Elasticity: 0.5, BallRadius: 16, BoxLabel: 1})
		d = append(d, dataset.Record{DropWidth: float64(400 + i), Elasticity: 0.5, BallRadius: 16, BoxLabel: 7})
	}
	return d
}

func TestEvaluate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		data        dataset.Dataset
		testSetSize int
		k           int
		expected    float64
	}{
		{name: "clusters_k1", data: clusters(), testSetSize: 4, k: 1, expected: 1},
		{name: "clusters_k5", data: clusters(), testSetSize: 4, k: 5, expected: 1},
		{name: "single_label", data: dataset.Dataset{{BoxLabel: 2}, {DropWidth: 3, BoxLabel: 2}, {DropWidth: 9, BoxLabel: 2}}, testSetSize: 2, k: 1, expected: 1},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got, err := Evaluate(context.Background(), test.data, test.testSetSize, test.k, WithSeed(3))
			require.NoError(t, err)
			assert.Equal(t, test.expected, got)
		})
	}
}

func TestEvaluate_Reference(t *testing.T) {
	t.Parallel()
	for seed := uint32(1); seed < 20; seed++ {
		testSet, _, err := dataset.Split(dataset.Reference(), 1, dataset.WithSeed(seed))
		require.NoError(t, err)
		// the lone label 1 record is outvoted by three label 4 records, every label 4 record is predicted
		expected := 0.0
		if testSet[0].BoxLabel == 4 {
			expected = 1
		}
		got, err := Evaluate(context.Background(), dataset.Reference(), 1, 3, WithSeed(seed))
		require.NoError(t, err)
		assert.Equal(t, expected, got, "seed %d", seed)
	}
}

func TestEvaluate_Bounds(t *testing.T) {
	t.Parallel()
	data := dataset.Dataset{}
	for i := 0; i < 30; i++ {
		data = append(data, dataset.Record{DropWidth: float64(i * 7 % 23), BoxLabel: i % 4})
	}
	for seed := uint32(1); seed < 30; seed++ {
		report, err := EvaluateReport(context.Background(), data, 10, 3, WithSeed(seed))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, report.Accuracy, 0.0)
		assert.LessOrEqual(t, report.Accuracy, 1.0)
		assert.Equal(t, 10, report.TestSetSize)
		assert.Equal(t, 20, report.TrainingSetSize)
		assert.Equal(t, float64(report.Correct)/10, report.Accuracy)
	}
}

func TestEvaluate_ConcurrencyDoesNotChangeResult(t *testing.T) {
	t.Parallel()
	data := dataset.Dataset{}
	for i := 0; i < 60; i++ {
		data = append(data, dataset.Record{DropWidth: float64(i * 13 % 41), BoxLabel: i % 5})
	}
	sequential, err := EvaluateReport(context.Background(), data, 25, 4, WithSeed(11), WithConcurrency(1))
	require.NoError(t, err)
	parallel, err := EvaluateReport(context.Background(), data, 25, 4, WithSeed(11), WithConcurrency(8))
	require.NoError(t, err)
	assert.Equal(t, sequential, parallel)
}

func TestEvaluate_InvalidArgument(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		testSetSize int
		k           int
		param       string
	}{
		{name: "zero_test_set", testSetSize: 0, k: 3, param: "testSetSize"},
		{name: "negative_test_set", testSetSize: -1, k: 3, param: "testSetSize"},
		{name: "test_set_too_large", testSetSize: 5, k: 1, param: "testCount"},
		{name: "no_training_left", testSetSize: 4, k: 1, param: "trainingData"},
		{name: "k_too_large", testSetSize: 2, k: 3, param: "k"},
		{name: "zero_k", testSetSize: 1, k: 0, param: "k"},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := Evaluate(context.Background(), dataset.Reference(), test.testSetSize, test.k)
			require.True(t, errors.Is(err, errs.ErrInvalidArgument), "got %v", err)
			var argErr *errs.ArgumentError
			require.True(t, errors.As(err, &argErr))
			assert.Equal(t, test.param, argErr.Name)
		})
	}
}

func TestEvaluate_Cancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Evaluate(ctx, clusters(), 4, 1, WithSeed(1))
	assert.ErrorIs(t, err, context.Canceled)
}
