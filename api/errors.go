package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wanderly-app/wanderly-api/geo"
	"github.com/wanderly-app/wanderly-api/store"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	errorInternalServer     = ErrorResponse{Code: 999, Message: "internal server error"}
	errorInvalidParameters  = ErrorResponse{Code: 1000, Message: "invalid parameters"}
	errorCannotParseRequest = ErrorResponse{Code: 1001, Message: "cannot parse request"}
	errorInvalidToken       = ErrorResponse{Code: 1002, Message: "invalid or missing token"}
	errorPermissionDenied   = ErrorResponse{Code: 1003, Message: "permission denied"}
	errorInvalidCredentials = ErrorResponse{Code: 1004, Message: "invalid credentials"}
	errorAccountTaken       = ErrorResponse{Code: 1010, Message: "account already exists"}
	errorUnknownAccount     = ErrorResponse{Code: 1011, Message: "unknown account"}
	errorUnknownAttraction  = ErrorResponse{Code: 1020, Message: "unknown attraction"}
	errorUnknownPlace       = ErrorResponse{Code: 1021, Message: "unknown place"}
	errorUnsupportedType    = ErrorResponse{Code: 1022, Message: "unsupported type"}
	errorDevToolsDisabled   = ErrorResponse{Code: 1030, Message: "developer tools are disabled"}
	errorNotFound           = ErrorResponse{Code: 1040, Message: "not found"}
	errorConflict           = ErrorResponse{Code: 1041, Message: "conflict"}
)

// abortWithEncoding aborts the request with the given status and error body.
// The optional errors are attached to the context for the request logger.
func abortWithEncoding(c *gin.Context, httpCode int, resp ErrorResponse, errs ...error) {
	for _, err := range errs {
		if err != nil {
			_ = c.Error(err)
		}
	}

	body := gin.H{"error": resp}
	if len(errs) > 0 && errs[0] != nil && httpCode < http.StatusInternalServerError {
		body["detail"] = errs[0].Error()
	}
	c.AbortWithStatusJSON(httpCode, body)
}

// abortWithError maps the store error kinds onto http statuses.
func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrAttractionNotFound):
		abortWithEncoding(c, http.StatusNotFound, errorUnknownAttraction, err)
	case errors.Is(err, store.ErrUserNotFound):
		abortWithEncoding(c, http.StatusNotFound, errorUnknownAccount, err)
	case errors.Is(err, geo.ErrLocationNotFound):
		abortWithEncoding(c, http.StatusNotFound, errorUnknownPlace, err)
	case errors.Is(err, store.ErrNotFound):
		abortWithEncoding(c, http.StatusNotFound, errorNotFound, err)
	case errors.Is(err, store.ErrEmailTaken), errors.Is(err, store.ErrUsernameTaken):
		abortWithEncoding(c, http.StatusConflict, errorAccountTaken, err)
	case errors.Is(err, store.ErrConflict):
		abortWithEncoding(c, http.StatusConflict, errorConflict, err)
	case errors.Is(err, store.ErrValidation):
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
	case errors.Is(err, store.ErrInvalidCredentials):
		abortWithEncoding(c, http.StatusUnauthorized, errorInvalidCredentials, err)
	case errors.Is(err, store.ErrUnauthorized):
		abortWithEncoding(c, http.StatusUnauthorized, errorInvalidToken, err)
	case errors.Is(err, store.ErrForbidden):
		abortWithEncoding(c, http.StatusForbidden, errorPermissionDenied, err)
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}
