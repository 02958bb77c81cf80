package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) listFavorites(c *gin.Context) {
	attractions, err := s.store.FavoritesByUser(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, attractions)
}

func (s *Server) addFavorite(c *gin.Context) {
	var body struct {
		AttractionID string `json:"attractionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	favorites, err := s.store.AddFavorite(c.Param("id"), body.AttractionID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

func (s *Server) removeFavorite(c *gin.Context) {
	favorites, err := s.store.RemoveFavorite(c.Param("id"), c.Param("attractionId"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}
