package api

import (
	"net/http"

	"github.com/wanderly-app/wanderly-api/schema"
)

func (s *ServerTestSuite) TestReviewsByAttraction() {
	id := s.attractionID("Red Fort")

	w := s.do(http.MethodGet, "/api/reviews/"+id, nil, "")
	s.Require().Equal(http.StatusOK, w.Code)

	var reviews []schema.Review
	s.decode(w, &reviews)
	s.Len(reviews, 2)

	w = s.do(http.MethodGet, "/api/reviews/"+s.attractionID("India Gate"), nil, "")
	s.Equal("[]", w.Body.String())
}

func (s *ServerTestSuite) TestCreateReviewUpdatesRating() {
	userID, token := s.registerUser("meera")
	id := s.attractionID("Red Fort")

	w := s.do(http.MethodPost, "/api/reviews", schema.ReviewInput{AttractionID: id, Rating: 3, Comment: "Crowded"}, token)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var review schema.Review
	s.decode(w, &review)
	s.Equal(userID, review.UserID)
	s.Equal(id, review.AttractionID)

	w = s.do(http.MethodGet, "/api/attractions/"+id, nil, "")
	var a schema.Attraction
	s.decode(w, &a)
	s.Equal(3, a.ReviewCount)
	s.InDelta(12.5/3, a.AverageRating, 1e-9)

	w = s.do(http.MethodGet, "/api/users/"+userID+"/reviews", nil, "")
	var reviews []schema.Review
	s.decode(w, &reviews)
	s.Len(reviews, 1)
}

func (s *ServerTestSuite) TestCreateReviewInvalid() {
	_, token := s.registerUser("meera")
	id := s.attractionID("Red Fort")

	w := s.do(http.MethodPost, "/api/reviews", schema.ReviewInput{AttractionID: id, Rating: 3, Comment: "Crowded"}, "")
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/api/reviews", schema.ReviewInput{AttractionID: id, Rating: 6, Comment: "Too good"}, token)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(errorInvalidParameters.Code, s.errorCode(w))

	w = s.do(http.MethodPost, "/api/reviews", schema.ReviewInput{AttractionID: "missing", Rating: 4, Comment: "Where?"}, token)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(errorUnknownAttraction.Code, s.errorCode(w))

	w = s.do(http.MethodGet, "/api/attractions/"+id, nil, "")
	var a schema.Attraction
	s.decode(w, &a)
	s.Equal(2, a.ReviewCount)
}
