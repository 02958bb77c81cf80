package api

import (
	"context"
	"net/http"

	"github.com/golang/mock/gomock"

	"github.com/wanderly-app/wanderly-api/geo"
	"github.com/wanderly-app/wanderly-api/schema"
)

type nearbyResult struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	DistanceKm float64 `json:"distanceKm"`
}

func nearbyNames(results []nearbyResult) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Name)
	}
	return out
}

func (s *ServerTestSuite) TestNearbyByCoordinate() {
	w := s.do(http.MethodGet, "/api/nearby?lat=28.6562&lng=77.2410&radiusKm=10&type=attraction", nil, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var results []nearbyResult
	s.decode(w, &results)
	s.Equal([]string{"Red Fort", "India Gate", "National Museum"}, nearbyNames(results))
	s.Equal(0.0, results[0].DistanceKm)
	s.InDelta(4.9438, results[1].DistanceKm, 1e-3)
	s.InDelta(5.3619, results[2].DistanceKm, 1e-3)
}

func (s *ServerTestSuite) TestNearbyDefaultRadius() {
	w := s.do(http.MethodGet, "/api/nearby?lat=28.6562&lng=77.2410", nil, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var results []nearbyResult
	s.decode(w, &results)
	s.Equal([]string{"Red Fort", "India Gate"}, nearbyNames(results))
}

func (s *ServerTestSuite) TestNearbyNegativeRadius() {
	w := s.do(http.MethodGet, "/api/nearby?lat=28.6562&lng=77.2410&radiusKm=-4", nil, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var results []nearbyResult
	s.decode(w, &results)
	s.Equal([]string{"Red Fort"}, nearbyNames(results))
}

func (s *ServerTestSuite) TestNearbyByPlace() {
	s.mockSearcher.EXPECT().
		LookupCoordinate(gomock.Any(), "Agra").
		Return(schema.Coordinate{Lat: tajMahal.Lat, Lng: tajMahal.Lng}, nil)

	w := s.do(http.MethodGet, "/api/nearby?place=Agra&radiusKm=200", nil, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var results []nearbyResult
	s.decode(w, &results)
	s.Equal([]string{"Taj Mahal", "India Gate", "National Museum", "Red Fort"}, nearbyNames(results))
}

func (s *ServerTestSuite) TestNearbyUnknownPlace() {
	s.mockSearcher.EXPECT().
		LookupCoordinate(gomock.Any(), "Atlantis").
		Return(schema.Coordinate{}, geo.ErrLocationNotFound)

	w := s.do(http.MethodGet, "/api/nearby?place=Atlantis", nil, "")
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(errorUnknownPlace.Code, s.errorCode(w))
}

func (s *ServerTestSuite) TestNearbyGeoPositionHeader() {
	req := s.newRequest(http.MethodGet, "/api/nearby?radiusKm=10", nil, "")
	req.Header.Set("Geo-Position", "28.6562;77.2410")

	w := s.serve(req)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var results []nearbyResult
	s.decode(w, &results)
	s.Len(results, 3)
}

func (s *ServerTestSuite) TestNearbyInvalidRequest() {
	w := s.do(http.MethodGet, "/api/nearby", nil, "")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(errorInvalidParameters.Code, s.errorCode(w))

	w = s.do(http.MethodGet, "/api/nearby?lat=28.6562", nil, "")
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/nearby?lat=128&lng=77", nil, "")
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/nearby?lat=28.6562&lng=77.2410&type=hotel", nil, "")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(errorUnsupportedType.Code, s.errorCode(w))
}

func (s *ServerTestSuite) TestNearbyByRoute() {
	s.mockRoutes.EXPECT().
		Estimate(gomock.Any(), gomock.Any(), gomock.Any(), geo.TravelDriving).
		DoAndReturn(func(ctx context.Context, from, to schema.Coordinate, mode geo.TravelMode) (geo.Route, error) {
			return geo.HaversineRouteEstimator{}.Estimate(ctx, from, to, mode)
		}).
		Times(4)

	w := s.do(http.MethodPost, "/api/attractions/nearby", map[string]interface{}{
		"userLocation": schema.Coordinate{Lat: redFort.Lat, Lng: redFort.Lng},
		"radius":       10,
		"limit":        2,
	}, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Radius      float64 `json:"radius"`
		Count       int     `json:"count"`
		Attractions []struct {
			Name               string  `json:"name"`
			CalculatedDistance float64 `json:"calculatedDistance"`
			CalculatedDuration float64 `json:"calculatedDuration"`
		} `json:"attractions"`
	}
	s.decode(w, &resp)
	s.Equal(10.0, resp.Radius)
	s.Equal(2, resp.Count)
	s.Equal("Red Fort", resp.Attractions[0].Name)
	s.Equal("India Gate", resp.Attractions[1].Name)
	s.Equal(4.9, resp.Attractions[1].CalculatedDistance)
	s.Equal(10.0, resp.Attractions[1].CalculatedDuration)
}

func (s *ServerTestSuite) TestNearbyByRouteRequiresLocation() {
	w := s.do(http.MethodPost, "/api/attractions/nearby", map[string]interface{}{"radius": 10}, "")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(errorInvalidParameters.Code, s.errorCode(w))
}

func (s *ServerTestSuite) TestAttractionDistance() {
	id := s.attractionID("India Gate")
	from := schema.Coordinate{Lat: redFort.Lat, Lng: redFort.Lng}

	s.mockRoutes.EXPECT().
		Estimate(gomock.Any(), from, schema.Coordinate{Lat: indiaGate.Lat, Lng: indiaGate.Lng}, geo.TravelWalking).
		Return(geo.Route{DistanceKm: 10, DurationMinutes: 20, Mode: geo.TravelWalking, Source: "google"}, nil)

	w := s.do(http.MethodPost, "/api/attractions/"+id+"/distance", distanceRequest{UserLocation: &from, Mode: geo.TravelWalking}, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp distanceResponse
	s.decode(w, &resp)
	s.Equal(id, resp.AttractionID)
	s.Equal("India Gate", resp.AttractionName)
	s.Equal(10.0, resp.DistanceKm)
	s.InDelta(6.21371, resp.DistanceMiles, 1e-5)
	s.Equal(20.0, resp.DurationMinutes)
	s.Equal("google", resp.Source)
	s.Equal(indiaGate, resp.AttractionLocation)
}

func (s *ServerTestSuite) TestAttractionDistanceInvalid() {
	id := s.attractionID("India Gate")
	from := schema.Coordinate{Lat: redFort.Lat, Lng: redFort.Lng}

	w := s.do(http.MethodPost, "/api/attractions/"+id+"/distance", distanceRequest{UserLocation: &from, Mode: "flying"}, "")
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/attractions/"+id+"/distance", distanceRequest{}, "")
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/attractions/missing/distance", distanceRequest{UserLocation: &from}, "")
	s.Equal(http.StatusNotFound, w.Code)
}
