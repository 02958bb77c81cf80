package api

import (
	"net/http"

	"github.com/wanderly-app/wanderly-api/planner"
	"github.com/wanderly-app/wanderly-api/schema"
)

func (s *ServerTestSuite) TestEstimateTrip() {
	days := 3
	w := s.do(http.MethodPost, "/api/trips/estimate", schema.TripEstimateInput{
		AttractionIDs: []string{s.attractionID("Red Fort")},
		Travelers:     2,
		Days:          &days,
		TransportMode: schema.TransportCab,
	}, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var e planner.TripEstimate
	s.decode(w, &e)
	s.Equal(500.0, e.BaseCost)
	s.Equal(1250.0, e.TransportCost)
	s.Equal(6000.0, e.AccommodationCost)
	s.Equal(3000.0, e.FoodCost)
	s.Equal(10250.0, e.TotalCost)
	s.Equal(planner.BudgetModerate, e.Budget)
}

func (s *ServerTestSuite) TestEstimateTripFromDates() {
	w := s.do(http.MethodPost, "/api/trips/estimate", schema.TripEstimateInput{
		AttractionIDs: []string{s.attractionID("Red Fort")},
		Travelers:     2,
		StartDate:     "2026-03-01",
		EndDate:       "2026-03-04",
		TransportMode: schema.TransportCab,
	}, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var e planner.TripEstimate
	s.decode(w, &e)
	s.Equal(3, e.Days)
	s.Equal(10250.0, e.TotalCost)
}

func (s *ServerTestSuite) TestEstimateTripDefaults() {
	w := s.do(http.MethodPost, "/api/trips/estimate", schema.TripEstimateInput{
		AttractionIDs: []string{s.attractionID("Red Fort"), s.attractionID("India Gate")},
		Travelers:     1,
	}, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var e planner.TripEstimate
	s.decode(w, &e)
	s.Equal(schema.TransportMetro, e.TransportMode)
	s.Equal(0, e.Days)
	s.Equal(500.0, e.BaseCost)
	s.Equal(0.0, e.AccommodationCost)
}

func (s *ServerTestSuite) TestEstimateTripInvalid() {
	w := s.do(http.MethodPost, "/api/trips/estimate", schema.TripEstimateInput{
		AttractionIDs: []string{"missing"},
		Travelers:     1,
	}, "")
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodPost, "/api/trips/estimate", schema.TripEstimateInput{
		AttractionIDs: []string{s.attractionID("Red Fort")},
		Travelers:     0,
	}, "")
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/trips/estimate", schema.TripEstimateInput{
		AttractionIDs: []string{s.attractionID("Red Fort")},
		Travelers:     1,
		TransportMode: "rocket",
	}, "")
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/trips/estimate", schema.TripEstimateInput{
		AttractionIDs: []string{s.attractionID("Red Fort")},
		Travelers:     1,
		StartDate:     "01/03/2026",
		EndDate:       "2026-03-04",
	}, "")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ServerTestSuite) TestCheckoutTrip() {
	w := s.do(http.MethodPost, "/api/trips/checkout", schema.CheckoutInput{
		AttractionIDs: []string{s.attractionID("Red Fort")},
		Quantity:      2,
	}, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var summary planner.CheckoutSummary
	s.decode(w, &summary)
	s.Require().Len(summary.Items, 1)
	s.Equal(750.0, summary.Items[0].UnitPrice)
	s.Equal(1500.0, summary.Subtotal)
	s.InDelta(270, summary.Tax, 1e-9)
	s.InDelta(75, summary.ServiceFee, 1e-9)
	s.InDelta(1845, summary.Total, 1e-9)

	w = s.do(http.MethodPost, "/api/trips/checkout", schema.CheckoutInput{
		AttractionIDs: []string{s.attractionID("Red Fort")},
	}, "")
	s.Equal(http.StatusBadRequest, w.Code)
}
