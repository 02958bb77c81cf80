package api

import (
	"net/http"

	"github.com/wanderly-app/wanderly-api/schema"
)

func (s *ServerTestSuite) TestListAttractions() {
	w := s.do(http.MethodGet, "/api/attractions", nil, "")
	s.Equal(http.StatusOK, w.Code)

	var list []schema.Attraction
	s.decode(w, &list)
	s.Len(list, 4)
	s.Equal("Red Fort", list[0].Name)
	s.Equal(4.75, list[0].AverageRating)
	s.Equal(2, list[0].ReviewCount)
}

func (s *ServerTestSuite) TestListAttractionsFilters() {
	var list []schema.Attraction

	w := s.do(http.MethodGet, "/api/attractions?category=museum", nil, "")
	s.Equal(http.StatusOK, w.Code)
	s.decode(w, &list)
	s.Len(list, 1)
	s.Equal("National Museum", list[0].Name)

	w = s.do(http.MethodGet, "/api/attractions?category=museum,historic&price=free", nil, "")
	s.decode(w, &list)
	s.Len(list, 1)
	s.Equal("India Gate", list[0].Name)

	w = s.do(http.MethodGet, "/api/attractions?q=agra", nil, "")
	s.decode(w, &list)
	s.Len(list, 1)
	s.Equal("Taj Mahal", list[0].Name)

	w = s.do(http.MethodGet, "/api/attractions?minRating=4", nil, "")
	s.decode(w, &list)
	s.Len(list, 1)

	w = s.do(http.MethodGet, "/api/attractions?category=all", nil, "")
	s.decode(w, &list)
	s.Len(list, 4)
}

func (s *ServerTestSuite) TestListAttractionsInvalidFilter() {
	w := s.do(http.MethodGet, "/api/attractions?category=beach", nil, "")
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/attractions?minRating=9", nil, "")
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/attractions?minRating=high", nil, "")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ServerTestSuite) TestGetAttraction() {
	id := s.attractionID("India Gate")

	w := s.do(http.MethodGet, "/api/attractions/"+id, nil, "")
	s.Equal(http.StatusOK, w.Code)

	var a schema.Attraction
	s.decode(w, &a)
	s.Equal(id, a.ID)
	s.Equal(schema.PriceFree, a.Price)

	w = s.do(http.MethodGet, "/api/attractions/missing", nil, "")
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(errorUnknownAttraction.Code, s.errorCode(w))
}

func (s *ServerTestSuite) TestAttractionWritesRequireAdmin() {
	input := schema.AttractionInput{
		Name:        "Lodhi Garden",
		Category:    schema.CategoryNature,
		Description: "City park",
		Location:    &schema.Location{Lat: 28.5931, Lng: 77.2197, Address: "Lodhi Road"},
		Price:       schema.PriceFree,
	}

	w := s.do(http.MethodPost, "/api/attractions", input, "")
	s.Equal(http.StatusUnauthorized, w.Code)

	_, userToken := s.registerUser("visitor")
	w = s.do(http.MethodPost, "/api/attractions", input, userToken)
	s.Equal(http.StatusForbidden, w.Code)
	s.Equal(errorPermissionDenied.Code, s.errorCode(w))

	id := s.attractionID("India Gate")
	w = s.do(http.MethodDelete, "/api/attractions/"+id, nil, userToken)
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *ServerTestSuite) TestAttractionAdminLifecycle() {
	w := s.do(http.MethodPost, "/api/attractions", schema.AttractionInput{
		Name:        "Lodhi Garden",
		Category:    schema.CategoryNature,
		Description: "City park",
		Location:    &schema.Location{Lat: 28.5931, Lng: 77.2197, Address: "Lodhi Road"},
		Images:      []string{"https://example.com/lodhi.jpg"},
		Price:       schema.PriceFree,
		Amenities:   []string{"Walking Trails"},
	}, s.adminToken)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var created schema.Attraction
	s.decode(w, &created)
	s.NotEmpty(created.ID)
	s.Equal(0, created.ReviewCount)

	w = s.do(http.MethodPut, "/api/attractions/"+created.ID, map[string]interface{}{
		"description": "Ninety acre city park",
		"amenities":   []string{"Restrooms"},
	}, s.adminToken)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var updated schema.Attraction
	s.decode(w, &updated)
	s.Equal("Lodhi Garden", updated.Name)
	s.Equal("Ninety acre city park", updated.Description)
	s.Equal([]string{"Restrooms"}, updated.Amenities)
	s.Equal([]string{"https://example.com/lodhi.jpg"}, updated.Images)

	w = s.do(http.MethodPut, "/api/attractions/"+created.ID, map[string]interface{}{"price": "$$$$"}, s.adminToken)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodDelete, "/api/attractions/"+created.ID, nil, s.adminToken)
	s.Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/attractions/"+created.ID, nil, "")
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodDelete, "/api/attractions/"+created.ID, nil, s.adminToken)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ServerTestSuite) TestCreateAttractionInvalid() {
	w := s.do(http.MethodPost, "/api/attractions", map[string]interface{}{
		"name":     "No category",
		"location": map[string]float64{"lat": 10, "lng": 10},
	}, s.adminToken)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(errorInvalidParameters.Code, s.errorCode(w))
}
