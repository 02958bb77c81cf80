package api

import (
	"net/http"
)

type categoriesResponse struct {
	Categories     []labeledValue `json:"categories"`
	Prices         []labeledValue `json:"prices"`
	TransportModes []labeledValue `json:"transportModes"`
}

func (s *ServerTestSuite) TestCategories() {
	w := s.do(http.MethodGet, "/api/categories", nil, "")
	s.Require().Equal(http.StatusOK, w.Code)

	var resp categoriesResponse
	s.decode(w, &resp)
	s.Len(resp.Categories, 6)
	s.Equal(labeledValue{Value: "historic", Label: "Historic Sites"}, resp.Categories[4])
	s.Equal(labeledValue{Value: "free", Label: "Free"}, resp.Prices[0])
	s.Len(resp.TransportModes, 5)
}

func (s *ServerTestSuite) TestCategoriesLocalized() {
	w := s.do(http.MethodGet, "/api/categories?lang=hi_IN", nil, "")
	s.Require().Equal(http.StatusOK, w.Code)

	var resp categoriesResponse
	s.decode(w, &resp)
	s.Equal("ऐतिहासिक स्थल", resp.Categories[4].Label)
	s.Equal("बस", resp.TransportModes[1].Label)

	w = s.do(http.MethodGet, "/api/categories?lang=fr", nil, "")
	s.decode(w, &resp)
	s.Equal("Historic Sites", resp.Categories[4].Label)
}
