package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wanderly-app/wanderly-api/schema"
	"github.com/wanderly-app/wanderly-api/store"
)

type attractionQuery struct {
	Query      string   `form:"q" json:"q"`
	Place      string   `form:"place" json:"place"`
	Categories []string `form:"category" json:"category" validate:"omitempty,dive,category"`
	Price      string   `form:"price" json:"price" validate:"omitempty,pricetier"`
	MinRating  float64  `form:"minRating" json:"minRating" validate:"gte=0,lte=5"`
}

// filter turns the query into a store filter. Categories may be repeated or
// comma separated.
func (q attractionQuery) filter() store.AttractionFilter {
	f := store.AttractionFilter{
		Query:     q.Query,
		Place:     q.Place,
		Price:     schema.PriceTier(q.Price),
		MinRating: q.MinRating,
	}
	for _, c := range q.Categories {
		f.Categories = append(f.Categories, schema.Category(c))
	}
	return f
}

func splitCommaValues(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" && part != "all" {
				out = append(out, part)
			}
		}
	}
	return out
}

func (s *Server) listAttractions(c *gin.Context) {
	var query attractionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	query.Categories = splitCommaValues(query.Categories)

	if err := schema.Validate(query); err != nil {
		abortWithError(c, err)
		return
	}

	attractions, err := s.store.ListAttractions(query.filter())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, attractions)
}

func (s *Server) getAttraction(c *gin.Context) {
	a, err := s.store.GetAttraction(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, a)
}

func (s *Server) createAttraction(c *gin.Context) {
	var body schema.AttractionInput
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	a, err := s.store.CreateAttraction(body)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, a)
}

func (s *Server) updateAttraction(c *gin.Context) {
	var body schema.AttractionPatch
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	a, err := s.store.UpdateAttraction(c.Param("id"), body)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, a)
}

func (s *Server) deleteAttraction(c *gin.Context) {
	if err := s.store.DeleteAttraction(c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
