package chart

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/vdobler/socialchart/stat"
)

// -------------------------------------------------------------------------
// StatMean

// StatMean groups a data frame by Keys and computes the mean of Value
// per group, like a pandas groupby(...).mean().
type StatMean struct {
	Keys   []string
	Value  string
	As     string // Name of the result column, defaults to Value.
	Places int    // Decimal places kept; negative keeps all.
}

// Apply returns a data frame with the columns Keys and As, one row per
// distinct key combination, sorted by the keys.
func (s StatMean) Apply(df *DataFrame) (*DataFrame, error) {
	if len(s.Keys) == 0 {
		return nil, errors.New("StatMean: no keys")
	}
	as := s.As
	if as == "" {
		as = s.Value
	}

	keyCols := make([][]string, len(s.Keys))
	for i, k := range s.Keys {
		col, err := df.column(k)
		if err != nil {
			return nil, err
		}
		keyCols[i] = col
	}
	values, err := df.Floats(s.Value)
	if err != nil {
		return nil, err
	}

	type group struct {
		key    []string
		values []float64
	}
	groups := make(map[string]*group)
	for row := 0; row < df.N; row++ {
		key := make([]string, len(keyCols))
		for i, col := range keyCols {
			key[i] = col[row]
		}
		id := strings.Join(key, "\x00")
		g, ok := groups[id]
		if !ok {
			g = &group{key: key}
			groups[id] = g
		}
		g.values = append(g.values, values[row])
	}

	sorted := make([]*group, 0, len(groups))
	for _, g := range groups {
		sorted = append(sorted, g)
	}
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i].key, sorted[j].key
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})

	result := NewDataFrame(fmt.Sprintf("mean of %s in %s", s.Value, df.Name),
		append(append([]string(nil), s.Keys...), as)...)
	for _, g := range sorted {
		m, err := stat.Mean(g.values)
		if err != nil {
			return nil, errors.Wrapf(err, "mean of %s for %v", s.Value, g.key)
		}
		if s.Places >= 0 {
			m = RoundHalfEven(m, s.Places)
		}
		if err := result.AppendRow(append(g.key, FormatFloat(m))...); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// -------------------------------------------------------------------------
// StatBoxplot

// StatBoxplot computes the five-number summary of Value for every
// category of Group.
type StatBoxplot struct {
	Group string
	Value string
}

// Apply returns one summary per category, sorted by category.
func (s StatBoxplot) Apply(ctx context.Context, df *DataFrame) ([]stat.GroupSummary, error) {
	groups, err := df.Groups(s.Group, s.Value)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, errors.Wrapf(stat.ErrEmptyInput, "%s: boxplot of %s by %s", df.Name, s.Value, s.Group)
	}
	summaries, err := stat.SummarizeGroups(ctx, groups)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: boxplot of %s by %s", df.Name, s.Value, s.Group)
	}
	return summaries, nil
}

// -------------------------------------------------------------------------
// Aggregation of the raw social media data

// Column names of the social media data sets.
const (
	ColPlatform  = "Platform"
	ColPostType  = "PostType"
	ColTimestamp = "PostTimestamp"
	ColLikes     = "Likes"
	ColAgeGroup  = "AgeGroup"
	ColDate      = "Date"
	ColAvgLikes  = "AvgLikes"
)

// Aggregate derives the two summary tables from the raw posts: the
// average likes per platform and post type, and the average likes per
// day. Averages are rounded to two decimals.
func Aggregate(posts *DataFrame) (byType, byDate *DataFrame, err error) {
	byType, err = StatMean{
		Keys:   []string{ColPlatform, ColPostType},
		Value:  ColLikes,
		As:     ColAvgLikes,
		Places: 2,
	}.Apply(posts)
	if err != nil {
		return nil, nil, err
	}

	dated := &DataFrame{
		Name:    posts.Name,
		N:       posts.N,
		names:   posts.Names(),
		columns: make(map[string][]string, len(posts.columns)+1),
	}
	for c, v := range posts.columns {
		dated.columns[c] = v
	}
	if !dated.Has(ColDate) {
		if err := dated.DeriveDate(ColDate, ColTimestamp); err != nil {
			return nil, nil, err
		}
	}
	byDate, err = StatMean{
		Keys:   []string{ColDate},
		Value:  ColLikes,
		As:     ColAvgLikes,
		Places: 2,
	}.Apply(dated)
	if err != nil {
		return nil, nil, err
	}
	return byType, byDate, nil
}
