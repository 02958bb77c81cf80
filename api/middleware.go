package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wanderly-app/wanderly-api/schema"
)

const principalKey = "principal"

// authenticate requires a valid bearer token and stores the caller on the
// context.
func (s *Server) authenticate(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		abortWithEncoding(c, http.StatusUnauthorized, errorInvalidToken)
		return
	}

	principal, err := s.tokens.Verify(strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")))
	if err != nil {
		abortWithEncoding(c, http.StatusUnauthorized, errorInvalidToken, err)
		return
	}

	c.Set(principalKey, principal)
	c.Next()
}

func (s *Server) requireAdmin(c *gin.Context) {
	if !principalFrom(c).IsAdmin() {
		abortWithEncoding(c, http.StatusForbidden, errorPermissionDenied)
		return
	}
	c.Next()
}

// requireSelf lets the caller through only when the :id route parameter is
// its own account.
func (s *Server) requireSelf(c *gin.Context) {
	if principalFrom(c).ID != c.Param("id") {
		abortWithEncoding(c, http.StatusForbidden, errorPermissionDenied)
		return
	}
	c.Next()
}

func (s *Server) requireDevTools(c *gin.Context) {
	if !s.devTools {
		abortWithEncoding(c, http.StatusForbidden, errorDevToolsDisabled)
		return
	}
	c.Next()
}

func principalFrom(c *gin.Context) schema.Principal {
	p, ok := c.Get(principalKey)
	if !ok {
		return schema.Principal{}
	}
	principal, _ := p.(schema.Principal)
	return principal
}
