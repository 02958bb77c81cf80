package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wanderly-app/wanderly-api/geo"
	"github.com/wanderly-app/wanderly-api/schema"
)

// parseGeoPosition will parse latitude and longitude from the geo-position
// string, formatted as "lat;lng".
func parseGeoPosition(geoPosition string) (schema.Coordinate, error) {
	positions := strings.Split(geoPosition, ";")

	if len(positions) != 2 {
		return schema.Coordinate{}, fmt.Errorf("invalid geo-position value")
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(positions[0]), 64)
	if err != nil {
		return schema.Coordinate{}, err
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(positions[1]), 64)
	if err != nil {
		return schema.Coordinate{}, err
	}

	c := schema.Coordinate{Lat: lat, Lng: lng}
	if !geo.ValidCoordinate(c) {
		return schema.Coordinate{}, fmt.Errorf("geo-position out of range")
	}
	return c, nil
}

// resolveCenter picks the reference point of a location query: explicit
// coordinates first, then a free-text place, then the Geo-Position header.
// ok is false when none was given.
func (s *Server) resolveCenter(c *gin.Context, lat, lng *float64, place string) (center schema.Coordinate, ok bool, err error) {
	switch {
	case lat != nil || lng != nil:
		if lat == nil || lng == nil {
			return schema.Coordinate{}, true, schema.NewValidationError("lat", "lat and lng are required together")
		}
		center = schema.Coordinate{Lat: *lat, Lng: *lng}
		if !geo.ValidCoordinate(center) {
			return schema.Coordinate{}, true, schema.NewValidationError("lat", "coordinate out of range")
		}
		return center, true, nil

	case strings.TrimSpace(place) != "":
		if s.searcher == nil {
			return schema.Coordinate{}, true, geo.ErrLocationNotFound
		}
		center, err = s.searcher.LookupCoordinate(c.Request.Context(), strings.TrimSpace(place))
		return center, true, err

	case c.GetHeader("Geo-Position") != "":
		center, err = parseGeoPosition(c.GetHeader("Geo-Position"))
		if err != nil {
			return schema.Coordinate{}, true, schema.NewValidationError("Geo-Position", err.Error())
		}
		return center, true, nil
	}

	return schema.Coordinate{}, false, nil
}
