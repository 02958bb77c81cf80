package geo

import (
	"context"
	"sort"

	"github.com/wanderly-app/wanderly-api/schema"
)

// Located is anything that can be placed on the map.
type Located interface {
	Coordinate() schema.Coordinate
}

// Nearby pairs a candidate with its distance from the query center.
type Nearby[T Located] struct {
	Item       T
	DistanceKm float64
}

// ClampRadius turns a negative radius into zero.
func ClampRadius(radiusKm float64) float64 {
	if radiusKm < 0 {
		return 0
	}
	return radiusKm
}

// FindNearby keeps the candidates within radiusKm of center, ordered by
// ascending distance. Equal distances keep their input order. A limit of zero
// or less returns every match.
func FindNearby[T Located](center schema.Coordinate, radiusKm float64, candidates []T, limit int) []Nearby[T] {
	results := make([]Nearby[T], 0)
	for _, c := range candidates {
		d := DistanceKm(center, c.Coordinate())
		if d <= radiusKm {
			results = append(results, Nearby[T]{Item: c, DistanceKm: d})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// RoutedNearby pairs a candidate with its route estimate from the center.
type RoutedNearby[T Located] struct {
	Item  T
	Route Route
}

// FindNearbyByRoute works like FindNearby but measures each candidate with
// the route estimator instead of the straight-line distance. The first
// estimator error aborts the search.
func FindNearbyByRoute[T Located](ctx context.Context, estimator RouteEstimator, center schema.Coordinate, radiusKm float64, candidates []T, limit int, mode TravelMode) ([]RoutedNearby[T], error) {
	results := make([]RoutedNearby[T], 0)
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		r, err := estimator.Estimate(ctx, center, c.Coordinate(), mode)
		if err != nil {
			return nil, err
		}
		if r.DistanceKm <= radiusKm {
			results = append(results, RoutedNearby[T]{Item: c, Route: r})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Route.DistanceKm < results[j].Route.DistanceKm
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
