package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// reseed drops every entity and reloads the seed dataset
func (s *Server) reseed(c *gin.Context) {
	if err := s.store.Reseed(); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	log.Warn("catalog reseeded")
	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
