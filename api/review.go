package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wanderly-app/wanderly-api/schema"
)

func (s *Server) reviewsByAttraction(c *gin.Context) {
	reviews, err := s.store.ReviewsByAttraction(c.Param("attractionId"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

func (s *Server) reviewsByUser(c *gin.Context) {
	reviews, err := s.store.ReviewsByUser(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// createReview is the API to review an attraction as the signed in user. The
// attraction's rating is refreshed before the response is sent.
func (s *Server) createReview(c *gin.Context) {
	var body schema.ReviewInput
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if _, err := s.store.GetAttraction(body.AttractionID); err != nil {
		abortWithError(c, err)
		return
	}

	review, err := s.store.CreateReview(principalFrom(c).ID, body)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}
