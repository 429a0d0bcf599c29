package chart

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdobler/socialchart/stat"
)

func TestAggregate(t *testing.T) {
	posts := readSocialMedia(t)
	byType, byDate, err := Aggregate(posts)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, byType.WriteCSV(&buf))
	assert.Equal(t, `Platform,PostType,AvgLikes
Facebook,Image,80
Facebook,Link,60
Instagram,Image,233.33
Instagram,Video,300
Twitter,Link,10
Twitter,Video,125
`, buf.String())

	buf.Reset()
	require.NoError(t, byDate.WriteCSV(&buf))
	assert.Equal(t, `Date,AvgLikes
2024-09-01,150
2024-09-02,133.33
2024-09-03,152.5
`, buf.String())

	assert.False(t, posts.Has(ColDate), "input frame was modified")
}

func TestAggregateKeepsExistingDate(t *testing.T) {
	posts, err := ReadCSV("posts", strings.NewReader("Platform,PostType,Date,Likes\nA,x,2024-01-02,4\nA,x,2024-01-01,2\n"))
	require.NoError(t, err)
	_, byDate, err := Aggregate(posts)
	require.NoError(t, err)
	dates, _ := byDate.Strings(ColDate)
	assert.Equal(t, []string{"2024-01-01", "2024-01-02"}, dates)
}

func TestStatMean(t *testing.T) {
	df := readSocialMedia(t)
	res, err := StatMean{Keys: []string{"AgeGroup"}, Value: "Likes", Places: -1}.Apply(df)
	require.NoError(t, err)
	assert.Equal(t, []string{"AgeGroup", "Likes"}, res.Names())
	means, err := res.Floats("Likes")
	require.NoError(t, err)
	assert.InDelta(t, 205, means[0], 1e-9)
	assert.InDelta(t, 170, means[1], 1e-9)
	assert.InDelta(t, 130.0/3, means[2], 1e-9)

	_, err = StatMean{Value: "Likes"}.Apply(df)
	assert.Error(t, err)

	_, err = StatMean{Keys: []string{"Platform"}, Value: "PostType"}.Apply(df)
	var pe *ParseError
	assert.True(t, errors.As(err, &pe))
}

func TestStatBoxplot(t *testing.T) {
	df := readSocialMedia(t)
	summaries, err := StatBoxplot{Group: "AgeGroup", Value: "Likes"}.Apply(context.Background(), df)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	// 18-24: 100 120 200 400
	assert.Equal(t, "18-24", summaries[0].Key)
	assert.Equal(t, 4, summaries[0].N)
	assert.Equal(t, stat.Summary{Min: 100, Q1: 115, Median: 160, Q3: 250, Max: 400}, summaries[0].Summary)
}

func TestStatBoxplotEmpty(t *testing.T) {
	df := NewDataFrame("empty", "AgeGroup", "Likes")
	_, err := StatBoxplot{Group: "AgeGroup", Value: "Likes"}.Apply(context.Background(), df)
	assert.True(t, errors.Is(err, stat.ErrEmptyInput), "got %v", err)
}

func TestStatBoxplotNaN(t *testing.T) {
	df, err := ReadCSV("nan", strings.NewReader("g,v\na,1\na,NaN\n"))
	require.NoError(t, err)
	_, err = StatBoxplot{Group: "g", Value: "v"}.Apply(context.Background(), df)
	var ive *stat.InvalidValueError
	assert.True(t, errors.As(err, &ive), "got %v", err)
}

func TestRoundHalfEven(t *testing.T) {
	tests := []struct {
		x      float64
		places int
		want   float64
	}{
		{233.3333333, 2, 233.33},
		{0.125, 2, 0.12},
		{0.375, 2, 0.38},
		{2.5, 0, 2},
		{3.5, 0, 4},
		{-1.005, 1, -1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, RoundHalfEven(tc.x, tc.places), "%g to %d places", tc.x, tc.places)
	}
	assert.True(t, math.IsNaN(RoundHalfEven(math.NaN(), 2)))
	assert.Equal(t, "12.5", FormatFloat(12.5))
	assert.Equal(t, "7", FormatFloat(7))
}
