package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wanderly-app/wanderly-api/geo"
	"github.com/wanderly-app/wanderly-api/schema"
)

type distanceRequest struct {
	UserLocation *schema.Coordinate `json:"userLocation"`
	Mode         geo.TravelMode     `json:"mode"`
}

type distanceResponse struct {
	AttractionID       string            `json:"attractionId"`
	AttractionName     string            `json:"attractionName"`
	DistanceKm         float64           `json:"distanceKm"`
	DistanceMiles      float64           `json:"distanceMiles"`
	DurationMinutes    float64           `json:"durationMinutes"`
	Mode               geo.TravelMode    `json:"mode"`
	Source             string            `json:"source"`
	UserLocation       schema.Coordinate `json:"userLocation"`
	AttractionLocation schema.Location   `json:"attractionLocation"`
}

// attractionDistance is the API to estimate the trip from the user to one
// attraction. This is the only response that reports miles.
func (s *Server) attractionDistance(c *gin.Context) {
	var body distanceRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	a, err := s.store.GetAttraction(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	if body.UserLocation == nil || !geo.ValidCoordinate(*body.UserLocation) {
		abortWithError(c, schema.NewValidationError("userLocation", "is required"))
		return
	}
	if body.Mode == "" {
		body.Mode = geo.TravelDriving
	}
	if !body.Mode.Valid() {
		abortWithError(c, schema.NewValidationError("mode", "must be one of driving, walking, transit"))
		return
	}

	route, err := s.routes.Estimate(c.Request.Context(), *body.UserLocation, a.Coordinate(), body.Mode)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, distanceResponse{
		AttractionID:       a.ID,
		AttractionName:     a.Name,
		DistanceKm:         route.DistanceKm,
		DistanceMiles:      geo.KmToMiles(route.DistanceKm),
		DurationMinutes:    route.DurationMinutes,
		Mode:               route.Mode,
		Source:             route.Source,
		UserLocation:       *body.UserLocation,
		AttractionLocation: a.Location,
	})
}
