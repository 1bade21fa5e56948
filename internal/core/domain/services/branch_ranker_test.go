package services_test

import (
	"context"
	"errors"
	"testing"

	"geodispatch/internal/core/domain/model/branch"
	"geodispatch/internal/core/domain/model/kernel"
	"geodispatch/internal/core/domain/services"
	"geodispatch/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRouteClient serves canned legs keyed by the destination coordinate
// string and simulates per-leg failures.
type fakeRouteClient struct {
	legs     map[string]ports.RouteLeg
	failWith map[string]error
}

func (f *fakeRouteClient) RouteDistance(_ context.Context, _, destination kernel.Coordinate) (ports.RouteLeg, error) {
	key := destination.String()
	if err, ok := f.failWith[key]; ok {
		return ports.RouteLeg{}, err
	}
	return f.legs[key], nil
}

func mustCoordinate(t *testing.T, lat, lng float64) kernel.Coordinate {
	t.Helper()
	c, err := kernel.NewCoordinate(lat, lng)
	require.NoError(t, err)
	return c
}

func branchAt(t *testing.T, name string, point kernel.Coordinate) *branch.Branch {
	t.Helper()
	b, err := branch.RestoreBranch(kernel.NewUUID(), kernel.NewUUID(), name, name+" address", &point, true)
	require.NoError(t, err)
	return b
}

func branchWithoutCoordinate(t *testing.T, name string) *branch.Branch {
	t.Helper()
	b, err := branch.NewBranch(kernel.NewUUID(), kernel.NewUUID(), name, name+" address", true)
	require.NoError(t, err)
	return b
}

func TestBranchRanker_Rank(t *testing.T) {
	customer := mustCoordinate(t, 41.31, 69.28)

	near := mustCoordinate(t, 41.32, 69.29)
	mid := mustCoordinate(t, 41.35, 69.20)
	far := mustCoordinate(t, 41.40, 69.10)

	t.Run("orders branches by ascending road distance", func(t *testing.T) {
		client := &fakeRouteClient{legs: map[string]ports.RouteLeg{
			near.String(): {DistanceKm: 1.4, DurationMinutes: 6},
			mid.String():  {DistanceKm: 5.8, DurationMinutes: 17},
			far.String():  {DistanceKm: 12.3, DurationMinutes: 28},
		}}
		ranker := services.NewBranchRanker(client)
		branches := []*branch.Branch{
			branchAt(t, "Far", far),
			branchAt(t, "Near", near),
			branchAt(t, "Mid", mid),
		}

		ranking, err := ranker.Rank(context.Background(), customer, branches)

		require.NoError(t, err)
		require.Len(t, ranking.Ranked, 3)
		assert.Equal(t, "Near", ranking.Nearest.Branch.Name())
		assert.InDelta(t, 1.4, ranking.Nearest.DistanceKm, 1e-9)
		assert.Equal(t, "Mid", ranking.Ranked[1].Branch.Name())
		assert.Equal(t, "Far", ranking.Ranked[2].Branch.Name())
	})

	t.Run("skips branches whose route is unavailable", func(t *testing.T) {
		client := &fakeRouteClient{
			legs: map[string]ports.RouteLeg{
				mid.String(): {DistanceKm: 5.8, DurationMinutes: 17},
			},
			failWith: map[string]error{
				near.String(): ports.ErrRouteUnavailable,
			},
		}
		ranker := services.NewBranchRanker(client)
		branches := []*branch.Branch{branchAt(t, "Near", near), branchAt(t, "Mid", mid)}

		ranking, err := ranker.Rank(context.Background(), customer, branches)

		require.NoError(t, err)
		require.Len(t, ranking.Ranked, 1)
		assert.Equal(t, "Mid", ranking.Nearest.Branch.Name())
	})

	t.Run("skips branches without a coordinate", func(t *testing.T) {
		client := &fakeRouteClient{legs: map[string]ports.RouteLeg{
			near.String(): {DistanceKm: 1.4, DurationMinutes: 6},
		}}
		ranker := services.NewBranchRanker(client)
		branches := []*branch.Branch{branchWithoutCoordinate(t, "Pending"), branchAt(t, "Near", near)}

		ranking, err := ranker.Rank(context.Background(), customer, branches)

		require.NoError(t, err)
		require.Len(t, ranking.Ranked, 1)
		assert.Equal(t, "Near", ranking.Nearest.Branch.Name())
	})

	t.Run("fails when no branch remains", func(t *testing.T) {
		client := &fakeRouteClient{failWith: map[string]error{
			near.String(): ports.ErrRouteUnavailable,
		}}
		ranker := services.NewBranchRanker(client)
		branches := []*branch.Branch{branchAt(t, "Near", near), branchWithoutCoordinate(t, "Pending")}

		_, err := ranker.Rank(context.Background(), customer, branches)

		require.ErrorIs(t, err, services.ErrNoBranchReachable)
	})

	t.Run("propagates unexpected provider errors", func(t *testing.T) {
		boom := errors.New("connection refused")
		client := &fakeRouteClient{
			legs:     map[string]ports.RouteLeg{mid.String(): {DistanceKm: 5.8}},
			failWith: map[string]error{near.String(): boom},
		}
		ranker := services.NewBranchRanker(client)
		branches := []*branch.Branch{branchAt(t, "Near", near), branchAt(t, "Mid", mid)}

		_, err := ranker.Rank(context.Background(), customer, branches)

		require.ErrorIs(t, err, boom)
	})

	t.Run("equal distances keep input order", func(t *testing.T) {
		client := &fakeRouteClient{legs: map[string]ports.RouteLeg{
			near.String(): {DistanceKm: 3.0, DurationMinutes: 9},
			mid.String():  {DistanceKm: 3.0, DurationMinutes: 12},
		}}
		ranker := services.NewBranchRanker(client)
		branches := []*branch.Branch{branchAt(t, "First", near), branchAt(t, "Second", mid)}

		ranking, err := ranker.Rank(context.Background(), customer, branches)

		require.NoError(t, err)
		assert.Equal(t, "First", ranking.Nearest.Branch.Name())
	})

	t.Run("rejects zero-value coordinate", func(t *testing.T) {
		ranker := services.NewBranchRanker(&fakeRouteClient{})
		var zero kernel.Coordinate

		_, err := ranker.Rank(context.Background(), zero, nil)

		require.Error(t, err)
	})
}
