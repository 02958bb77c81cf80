package api

import (
	"net/http"

	"github.com/wanderly-app/wanderly-api/schema"
)

func (s *ServerTestSuite) TestRegister() {
	w := s.do(http.MethodPost, "/api/auth/register", schema.AccountInput{
		Username: "priya",
		Email:    "priya@example.com",
		Password: "secret1",
	}, "")
	s.Equal(http.StatusCreated, w.Code)

	var resp authResponse
	s.decode(w, &resp)
	s.NotEmpty(resp.Token)
	s.Equal("priya", resp.User.Username)
	s.Equal(schema.RoleUser, resp.User.Role)
	s.Equal([]string{}, resp.User.Favorites)
	s.NotContains(w.Body.String(), "secret1")
	s.NotContains(w.Body.String(), "password")
}

func (s *ServerTestSuite) TestRegisterDuplicateEmail() {
	s.registerUser("priya")

	w := s.do(http.MethodPost, "/api/auth/register", schema.AccountInput{
		Username: "someone-else",
		Email:    "priya@example.com",
		Password: "secret1",
	}, "")
	s.Equal(http.StatusConflict, w.Code)
	s.Equal(errorAccountTaken.Code, s.errorCode(w))
}

func (s *ServerTestSuite) TestRegisterInvalid() {
	w := s.do(http.MethodPost, "/api/auth/register", schema.AccountInput{Username: "x", Email: "bad", Password: "1"}, "")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(errorInvalidParameters.Code, s.errorCode(w))

	w = s.do(http.MethodPost, "/api/auth/register", "not an object", "")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(errorCannotParseRequest.Code, s.errorCode(w))
}

func (s *ServerTestSuite) TestLoginWrongPassword() {
	w := s.do(http.MethodPost, "/api/auth/login", schema.Credentials{Email: testAdminEmail, Password: "nope"}, "")
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal(errorInvalidCredentials.Code, s.errorCode(w))
}

func (s *ServerTestSuite) TestMe() {
	id, token := s.registerUser("arjun")

	w := s.do(http.MethodGet, "/api/auth/me", nil, token)
	s.Equal(http.StatusOK, w.Code)

	var view schema.AccountView
	s.decode(w, &view)
	s.Equal(id, view.ID)
	s.Equal("arjun@example.com", view.Email)
}

func (s *ServerTestSuite) TestMeRequiresToken() {
	w := s.do(http.MethodGet, "/api/auth/me", nil, "")
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal(errorInvalidToken.Code, s.errorCode(w))

	w = s.do(http.MethodGet, "/api/auth/me", nil, "garbage")
	s.Equal(http.StatusUnauthorized, w.Code)
}
