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

func TestSweep(t *testing.T) {
	t.Parallel()
	result, err := Sweep(context.Background(), clusters(), 4, []int{5, 3, 1}, WithSeed(5))
	require.NoError(t, err)
	require.Len(t, result.Reports, 3)
	for i, k := range []int{5, 3, 1} {
		assert.Equal(t, k, result.Reports[i].K)
		assert.Equal(t, 1.0, result.Reports[i].Accuracy)
	}
	assert.Equal(t, 1, result.BestK, "smallest k wins a tie")
	assert.Equal(t, 1.0, result.BestAccuracy)
}

func TestSweep_PicksMostAccurate(t *testing.T) {
	t.Parallel()
	// the whole training set outvotes the lone label 1 drop, the nearest neighbour does not
	data := dataset.Dataset{
		{DropWidth: 0, BoxLabel: 1},
		{DropWidth: 1, BoxLabel: 1},
		{DropWidth: 100, BoxLabel: 4},
		{DropWidth: 101, BoxLabel: 4},
		{DropWidth: 102, BoxLabel: 4},
	}
	for seed := uint32(1); seed < 15; seed++ {
		result, err := Sweep(context.Background(), data, 1, []int{1, 4}, WithSeed(seed))
		require.NoError(t, err)
		assert.Equal(t, 1.0, result.Reports[0].Accuracy, "seed %d", seed)
		assert.Equal(t, 1, result.BestK, "seed %d", seed)
	}
}

func TestSweep_InvalidArgument(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		testSetSize int
		ks          []int
		param       string
	}{
		{name: "no_ks", testSetSize: 1, ks: nil, param: "ks"},
		{name: "zero_test_set", testSetSize: 0, ks: []int{1}, param: "testSetSize"},
		{name: "k_too_large", testSetSize: 1, ks: []int{1, 4}, param: "k"},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := Sweep(context.Background(), dataset.Reference(), test.testSetSize, test.ks)
			require.True(t, errors.Is(err, errs.ErrInvalidArgument), "got %v", err)
			var argErr *errs.ArgumentError
			require.True(t, errors.As(err, &argErr))
			assert.Equal(t, test.param, argErr.Name)
		})
	}
}
