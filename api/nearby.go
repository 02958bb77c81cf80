package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wanderly-app/wanderly-api/geo"
	"github.com/wanderly-app/wanderly-api/schema"
	"github.com/wanderly-app/wanderly-api/store"
)

const (
	nearbyTypeAttraction = "attraction"

	routeNearbyDefaultRadiusKm = 50
	routeNearbyDefaultLimit    = 20
)

type nearbyAttraction struct {
	schema.Attraction
	DistanceKm float64 `json:"distanceKm"`
}

type nearbyQuery struct {
	Lat      *float64 `form:"lat"`
	Lng      *float64 `form:"lng"`
	Place    string   `form:"place"`
	RadiusKm *float64 `form:"radiusKm"`
	Type     string   `form:"type"`
}

// nearby is the API to list attractions within a radius of a point, closest
// first
func (s *Server) nearby(c *gin.Context) {
	var query nearbyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if query.Type != "" && query.Type != nearbyTypeAttraction {
		abortWithEncoding(c, http.StatusBadRequest, errorUnsupportedType)
		return
	}

	center, ok, err := s.resolveCenter(c, query.Lat, query.Lng, query.Place)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !ok {
		abortWithError(c, schema.NewValidationError("lat", "lat and lng or place are required"))
		return
	}

	radius := s.defaultRadiusKm
	if query.RadiusKm != nil {
		radius = *query.RadiusKm
	}
	radius = geo.ClampRadius(radius)

	all, err := s.store.ListAttractions(store.AttractionFilter{})
	if err != nil {
		abortWithError(c, err)
		return
	}

	matches := geo.FindNearby(center, radius, all, s.nearbyLimit)
	result := make([]nearbyAttraction, 0, len(matches))
	for _, m := range matches {
		result = append(result, nearbyAttraction{Attraction: m.Item, DistanceKm: m.DistanceKm})
	}

	c.JSON(http.StatusOK, result)
}

type routeNearbyRequest struct {
	UserLocation *schema.Coordinate `json:"userLocation"`
	Radius       *float64           `json:"radius"`
	Limit        *int               `json:"limit"`
	Mode         geo.TravelMode     `json:"mode"`
}

type routedAttraction struct {
	schema.Attraction
	CalculatedDistance float64 `json:"calculatedDistance"`
	CalculatedDuration float64 `json:"calculatedDuration"`
}

// nearbyByRoute ranks attractions by estimated travel distance rather than
// straight-line distance
func (s *Server) nearbyByRoute(c *gin.Context) {
	var body routeNearbyRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if body.UserLocation == nil || !geo.ValidCoordinate(*body.UserLocation) {
		abortWithError(c, schema.NewValidationError("userLocation", "is required"))
		return
	}

	radius := float64(routeNearbyDefaultRadiusKm)
	if body.Radius != nil {
		radius = geo.ClampRadius(*body.Radius)
	}
	limit := routeNearbyDefaultLimit
	if body.Limit != nil && *body.Limit > 0 {
		limit = *body.Limit
	}
	if body.Mode == "" {
		body.Mode = geo.TravelDriving
	}

	all, err := s.store.ListAttractions(store.AttractionFilter{})
	if err != nil {
		abortWithError(c, err)
		return
	}

	matches, err := geo.FindNearbyByRoute(c.Request.Context(), s.routes, *body.UserLocation, radius, all, limit, body.Mode)
	if err != nil {
		abortWithError(c, err)
		return
	}

	result := make([]routedAttraction, 0, len(matches))
	for _, m := range matches {
		result = append(result, routedAttraction{
			Attraction:         m.Item,
			CalculatedDistance: m.Route.DistanceKm,
			CalculatedDuration: m.Route.DurationMinutes,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"userLocation": body.UserLocation,
		"radius":       radius,
		"count":        len(result),
		"attractions":  result,
	})
}
