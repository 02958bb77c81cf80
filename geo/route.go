package geo

import (
	"context"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/wanderly-app/wanderly-api/schema"
)

type TravelMode string

const (
	TravelDriving TravelMode = "driving"
	TravelWalking TravelMode = "walking"
	TravelTransit TravelMode = "transit"
)

func (m TravelMode) Valid() bool {
	return m == TravelDriving || m == TravelWalking || m == TravelTransit
}

// minutesPerKm approximates door-to-door speed for each mode.
var minutesPerKm = map[TravelMode]float64{
	TravelDriving: 2,  // 30 km/h
	TravelWalking: 10, // 6 km/h
	TravelTransit: 3,  // 20 km/h
}

// Route is a travel estimate between two points.
type Route struct {
	DistanceKm      float64    `json:"distanceKm"`
	DurationMinutes float64    `json:"durationMinutes"`
	Mode            TravelMode `json:"mode"`
	Source          string     `json:"source"`
}

//go:generate mockgen -source=route.go -destination=mocks/route.go -package=mocks

// RouteEstimator estimates distance and travel time between two points.
type RouteEstimator interface {
	Estimate(ctx context.Context, from, to schema.Coordinate, mode TravelMode) (Route, error)
}

// HaversineRouteEstimator uses straight-line distance and a fixed speed per mode.
type HaversineRouteEstimator struct{}

func (HaversineRouteEstimator) Estimate(_ context.Context, from, to schema.Coordinate, mode TravelMode) (Route, error) {
	if !mode.Valid() {
		mode = TravelDriving
	}
	km := DistanceKm(from, to)
	return Route{
		DistanceKm:      math.Round(km*10) / 10,
		DurationMinutes: math.Round(km * minutesPerKm[mode]),
		Mode:            mode,
		Source:          "haversine",
	}, nil
}

type distanceMatrixClient interface {
	DistanceMatrix(ctx context.Context, r *maps.DistanceMatrixRequest) (*maps.DistanceMatrixResponse, error)
}

// GoogleRouteEstimator asks the Google distance matrix API and falls back to
// the haversine estimate on any failure.
type GoogleRouteEstimator struct {
	client   distanceMatrixClient
	fallback HaversineRouteEstimator
}

func NewGoogleRouteEstimator(apiKey string) (*GoogleRouteEstimator, error) {
	c, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GoogleRouteEstimator{client: c}, nil
}

func (g *GoogleRouteEstimator) Estimate(ctx context.Context, from, to schema.Coordinate, mode TravelMode) (Route, error) {
	if !mode.Valid() {
		mode = TravelDriving
	}

	route, err := g.query(ctx, from, to, mode)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": "geo",
			"mode":   mode,
			"error":  err,
		}).Warn("distance matrix failed, fall back to haversine")
		return g.fallback.Estimate(ctx, from, to, mode)
	}
	return route, nil
}

func (g *GoogleRouteEstimator) query(ctx context.Context, from, to schema.Coordinate, mode TravelMode) (Route, error) {
	resp, err := g.client.DistanceMatrix(ctx, &maps.DistanceMatrixRequest{
		Origins:      []string{latLngString(from)},
		Destinations: []string{latLngString(to)},
		Mode:         maps.Mode(mode),
	})
	if err != nil {
		return Route{}, err
	}

	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return Route{}, fmt.Errorf("empty distance matrix")
	}

	e := resp.Rows[0].Elements[0]
	if e.Status != "OK" {
		return Route{}, fmt.Errorf("distance matrix element status %s", e.Status)
	}

	return Route{
		DistanceKm:      float64(e.Distance.Meters) / 1000,
		DurationMinutes: e.Duration.Minutes(),
		Mode:            mode,
		Source:          "google",
	}, nil
}

func latLngString(c schema.Coordinate) string {
	return fmt.Sprintf("%f,%f", c.Lat, c.Lng)
}
