package geo

import (
	"math"

	"github.com/wanderly-app/wanderly-api/schema"
)

const (
	// EarthRadiusKm is the mean earth radius used by the haversine formula.
	EarthRadiusKm = 6371.0

	// MilesPerKm converts kilometers to statute miles.
	MilesPerKm = 0.621371
)

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// DistanceKm returns the great-circle distance between a and b in kilometers.
// Inputs are decimal degrees and are not validated.
func DistanceKm(a, b schema.Coordinate) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// KmToMiles is only meant for user facing output; everything internal stays in km.
func KmToMiles(km float64) float64 {
	return km * MilesPerKm
}

// ValidCoordinate reports whether c is a finite point within WGS84 bounds.
func ValidCoordinate(c schema.Coordinate) bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}
