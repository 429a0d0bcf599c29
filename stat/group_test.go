package stat

import (
	"context"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeGroups(t *testing.T) {
	groups := []Group{
		{Key: "18-24", Values: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{Key: "25-34", Values: []float64{7}},
		{Key: "35-44", Values: []float64{2, 10}},
	}

	got, err := SummarizeGroups(context.Background(), groups)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "18-24", got[0].Key)
	assert.Equal(t, 10, got[0].N)
	assert.Equal(t, Summary{1, 3.25, 5.5, 7.75, 10}, got[0].Summary)
	assert.Equal(t, "25-34", got[1].Key)
	assert.Equal(t, Summary{7, 7, 7, 7, 7}, got[1].Summary)
	assert.Equal(t, "35-44", got[2].Key)
	assert.Equal(t, 6.0, got[2].Median)
}

func TestSummarizeGroupsEmptyGroup(t *testing.T) {
	groups := []Group{
		{Key: "a", Values: []float64{1}},
		{Key: "empty"},
	}
	_, err := SummarizeGroups(context.Background(), groups)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyInput))
	assert.Contains(t, err.Error(), `"empty"`)
}

func TestSummarizeGroupsInvalidValue(t *testing.T) {
	groups := []Group{{Key: "nan", Values: []float64{1, math.NaN()}}}
	_, err := SummarizeGroups(context.Background(), groups)
	var ive *InvalidValueError
	require.True(t, errors.As(err, &ive), "got %v", err)
	assert.Equal(t, 1, ive.Index)
}

func TestSummarizeGroupsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := SummarizeGroups(ctx, []Group{{Key: "a", Values: []float64{1}}})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSummarizeGroupsNone(t *testing.T) {
	got, err := SummarizeGroups(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMean(t *testing.T) {
	m, err := Mean([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2.5, m)

	_, err = Mean(nil)
	assert.True(t, errors.Is(err, ErrEmptyInput))

	_, err = Mean([]float64{math.Inf(-1)})
	var ive *InvalidValueError
	assert.True(t, errors.As(err, &ive))
}
