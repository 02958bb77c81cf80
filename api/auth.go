package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wanderly-app/wanderly-api/schema"
)

type authResponse struct {
	User  schema.AccountView `json:"user"`
	Token string             `json:"token"`
}

// register is the API to create a user account and sign it in
func (s *Server) register(c *gin.Context) {
	var params schema.AccountInput
	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	account, err := s.store.CreateAccount(params)
	if err != nil {
		abortWithError(c, err)
		return
	}

	s.respondWithToken(c, http.StatusCreated, account)
}

// login is the API to exchange credentials for a token
func (s *Server) login(c *gin.Context) {
	var params schema.Credentials
	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	account, err := s.store.Authenticate(params)
	if err != nil {
		abortWithError(c, err)
		return
	}

	s.respondWithToken(c, http.StatusOK, account)
}

func (s *Server) respondWithToken(c *gin.Context, status int, account schema.Account) {
	token, err := s.tokens.Issue(account)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(status, authResponse{User: account.View(), Token: token})
}

// me is the API to query the signed in account
func (s *Server) me(c *gin.Context) {
	account, err := s.store.GetAccount(principalFrom(c).ID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, account.View())
}
