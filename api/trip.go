package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wanderly-app/wanderly-api/planner"
	"github.com/wanderly-app/wanderly-api/schema"
)

// selectedAttractions resolves ids in request order. Every id must exist.
func (s *Server) selectedAttractions(ids []string) ([]schema.Attraction, error) {
	selected := make([]schema.Attraction, 0, len(ids))
	for _, id := range ids {
		a, err := s.store.GetAttraction(id)
		if err != nil {
			return nil, err
		}
		selected = append(selected, a)
	}
	return selected, nil
}

// estimateTrip is the API to price a trip plan before booking
func (s *Server) estimateTrip(c *gin.Context) {
	var body schema.TripEstimateInput
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := schema.Validate(body); err != nil {
		abortWithError(c, err)
		return
	}

	days := 0
	switch {
	case body.Days != nil:
		days = *body.Days
	case body.StartDate != "" && body.EndDate != "":
		d, err := planner.TripDaysBetween(body.StartDate, body.EndDate)
		if err != nil {
			abortWithError(c, schema.NewValidationError("startDate", err.Error()))
			return
		}
		days = d
	}

	mode := body.TransportMode
	if mode == "" {
		mode = schema.TransportMetro
	}

	selected, err := s.selectedAttractions(body.AttractionIDs)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, planner.Estimate(selected, body.Travelers, days, mode, s.perDiem))
}

// checkoutTrip is the API to total a booking with tax and service fee
func (s *Server) checkoutTrip(c *gin.Context) {
	var body schema.CheckoutInput
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := schema.Validate(body); err != nil {
		abortWithError(c, err)
		return
	}

	selected, err := s.selectedAttractions(body.AttractionIDs)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, planner.Checkout(selected, body.Quantity))
}
