package geo

import (
	"context"
	"fmt"

	"github.com/wanderly-app/wanderly-api/external/nominatim"
	"github.com/wanderly-app/wanderly-api/schema"
)

var ErrLocationNotFound = fmt.Errorf("location is not found")

//go:generate mockgen -source=query.go -destination=mocks/searcher.go -package=mocks

// LocationSearcher resolves a free-text place name to a coordinate.
type LocationSearcher interface {
	LookupCoordinate(ctx context.Context, query string) (schema.Coordinate, error)
}

type NominatimSearcher struct {
	client *nominatim.NominatimClient
}

func NewNominatimSearcher(endpoint string) *NominatimSearcher {
	return &NominatimSearcher{
		client: nominatim.New(endpoint),
	}
}

func (n *NominatimSearcher) LookupCoordinate(ctx context.Context, query string) (schema.Coordinate, error) {
	results, err := n.client.Query(ctx, query)
	if err != nil {
		return schema.Coordinate{}, err
	}

	if len(results) == 0 {
		return schema.Coordinate{}, ErrLocationNotFound
	}

	return schema.Coordinate{Lat: results[0].Latitude, Lng: results[0].Longitude}, nil
}
