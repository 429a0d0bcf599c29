package stat

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Group is a set of observations sharing one category, e.g. all like
// counts of one age group.
type Group struct {
	Key    string
	Values []float64
}

// GroupSummary is the summary of one Group.
type GroupSummary struct {
	Key string `json:"key"`
	N   int    `json:"n"`
	Summary
}

// SummarizeGroups computes the summary of every group. Groups are
// summarized concurrently; the result keeps the order of groups.
// The first failure is returned wrapped with the key of its group,
// so errors.Is(err, ErrEmptyInput) still works for an empty group.
func SummarizeGroups(ctx context.Context, groups []Group) ([]GroupSummary, error) {
	result := make([]GroupSummary, len(groups))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, group := range groups {
		i, group := i, group
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := Compute(group.Values)
			if err != nil {
				return errors.Wrapf(err, "group %q", group.Key)
			}
			result[i] = GroupSummary{Key: group.Key, N: len(group.Values), Summary: s}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
