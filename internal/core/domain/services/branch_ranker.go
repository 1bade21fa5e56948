package services

import (
	"context"
	"errors"
	"sort"
	"sync"

	"geodispatch/internal/core/domain/model/branch"
	"geodispatch/internal/core/domain/model/kernel"
	"geodispatch/internal/core/ports"
)

// ErrNoBranchReachable is returned when every candidate branch was excluded
// from ranking, either because no branch has a resolved coordinate or because
// the routing provider could not produce a route to any of them.
var ErrNoBranchReachable = errors.New("no branch reachable")

// BranchLeg pairs a branch with the road distance and travel time from the
// customer point to that branch.
type BranchLeg struct {
	Branch          *branch.Branch
	DistanceKm      float64
	DurationMinutes float64
}

// Ranking is the outcome of ranking a branch set against a customer point.
// Ranked holds the reachable branches ordered by ascending distance and
// Nearest is its first element, kept separate because callers almost always
// want only the winner.
type Ranking struct {
	Ranked  []BranchLeg
	Nearest BranchLeg
}

// BranchRanker is a domain service that selects the optimal fulfillment
// branch for a customer point based on minimum real-road distance.
//
// Key responsibilities:
//   - Fanning out route requests for all candidate branches concurrently
//   - Tolerating per-branch routing failures without failing the whole ranking
//   - Producing a stable distance-ordered ranking
//
// Business rules:
//   - Branches without a resolved coordinate are skipped silently
//   - A branch whose route cannot be computed is excluded, not fatal
//   - Ties on distance preserve the input branch order
//   - Ranking fails only when zero branches remain
type BranchRanker struct {
	routes ports.RouteDistanceClient
}

// NewBranchRanker creates a new BranchRanker instance.
//
// Parameters:
//   - routes: Client used to resolve real-road distance for each branch leg
//
// Returns:
//   - BranchRanker: A new instance ready for ranking operations
func NewBranchRanker(routes ports.RouteDistanceClient) BranchRanker {
	return BranchRanker{routes: routes}
}

// Rank computes the road distance from the customer point to every candidate
// branch and returns the branches ordered by ascending distance.
//
// Parameters:
//   - ctx: Context for cancellation of the concurrent route requests
//   - point: The resolved customer coordinate
//   - branches: Candidate branches accepting orders
//
// Returns:
//   - Ranking: Distance-ordered legs with the nearest branch extracted
//   - error: ErrNoBranchReachable when nothing could be ranked, or the first
//     non-routing provider error encountered
//
// Route requests run concurrently, one goroutine per branch. A leg that
// fails with ports.ErrRouteUnavailable is dropped from the ranking; any
// other error aborts the operation because it signals a systemic failure
// rather than a single unreachable branch.
func (r BranchRanker) Rank(ctx context.Context, point kernel.Coordinate, branches []*branch.Branch) (Ranking, error) {
	if err := point.Validate(); err != nil {
		return Ranking{}, err
	}

	type legResult struct {
		index int
		leg   BranchLeg
		err   error
	}

	results := make(chan legResult, len(branches))
	var wg sync.WaitGroup

	for i, b := range branches {
		if !b.HasCoordinate() {
			continue
		}

		wg.Add(1)
		go func(index int, candidate *branch.Branch) {
			defer wg.Done()

			routeLeg, err := r.routes.RouteDistance(ctx, point, *candidate.Coordinate())
			results <- legResult{
				index: index,
				leg: BranchLeg{
					Branch:          candidate,
					DistanceKm:      routeLeg.DistanceKm,
					DurationMinutes: routeLeg.DurationMinutes,
				},
				err: err,
			}
		}(i, b)
	}

	wg.Wait()
	close(results)

	indexed := make([]legResult, 0, len(branches))
	for result := range results {
		if result.err != nil {
			if errors.Is(result.err, ports.ErrRouteUnavailable) {
				continue
			}
			return Ranking{}, result.err
		}
		indexed = append(indexed, result)
	}

	if len(indexed) == 0 {
		return Ranking{}, ErrNoBranchReachable
	}

	// Restore input order first so that equal distances tie-break stably.
	sort.Slice(indexed, func(i, j int) bool { return indexed[i].index < indexed[j].index })

	legs := make([]BranchLeg, 0, len(indexed))
	for _, result := range indexed {
		legs = append(legs, result.leg)
	}
	sort.SliceStable(legs, func(i, j int) bool { return legs[i].DistanceKm < legs[j].DistanceKm })

	return Ranking{Ranked: legs, Nearest: legs[0]}, nil
}
