package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/celerix-dev/gamingtech-store/internal/common"
	"github.com/celerix-dev/gamingtech-store/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Client-facing messages. They are part of the wire contract.
const (
	MsgInvalidBody         = "Invalid request body"
	MsgMissingFields       = "All fields are required"
	MsgPasswordTooShort    = "Password must be at least 6 characters long"
	MsgPasswordTooLong     = "Password must be at most 72 bytes long"
	MsgMissingCredentials  = "Email and password are required"
	MsgMissingComponents   = "All components are required"
	MsgNegativePrice       = "Component prices must not be negative"
	MsgInvalidCredentials  = "Invalid email or password"
	MsgMissingToken        = "No token provided"
	MsgInvalidToken        = "Invalid token"
	MsgEmailTaken          = "User with this email already exists"
	MsgProductNotFound     = "Product not found"
	MsgComponentNotFound   = "Component type not found"
	MsgRouteNotFound       = "API route not found"
	MsgInternalServerError = "Internal server error"
)

type errorMapping struct {
	err     error
	status  int
	message string
}

// Specific errors first, then their parents as catch-alls.
var errorTable = []errorMapping{
	{common.ErrInvalidBody, http.StatusBadRequest, MsgInvalidBody},
	{common.ErrMissingFields, http.StatusBadRequest, MsgMissingFields},
	{common.ErrPasswordTooShort, http.StatusBadRequest, MsgPasswordTooShort},
	{common.ErrPasswordTooLong, http.StatusBadRequest, MsgPasswordTooLong},
	{common.ErrMissingCredentials, http.StatusBadRequest, MsgMissingCredentials},
	{common.ErrMissingComponents, http.StatusBadRequest, MsgMissingComponents},
	{common.ErrNegativePrice, http.StatusBadRequest, MsgNegativePrice},
	{common.ErrInvalidCredentials, http.StatusUnauthorized, MsgInvalidCredentials},
	{common.ErrMissingToken, http.StatusUnauthorized, MsgMissingToken},
	{common.ErrInvalidToken, http.StatusUnauthorized, MsgInvalidToken},
	{common.ErrEmailTaken, http.StatusConflict, MsgEmailTaken},
	{common.ErrProductNotFound, http.StatusNotFound, MsgProductNotFound},
	{common.ErrComponentTypeNotFound, http.StatusNotFound, MsgComponentNotFound},

	{common.ErrValidation, http.StatusBadRequest, MsgInvalidBody},
	{common.ErrUnauthorized, http.StatusUnauthorized, MsgInvalidCredentials},
	{common.ErrConflict, http.StatusConflict, "Conflict"},
	{common.ErrNotFound, http.StatusNotFound, "Not found"},
}

// StatusOf maps an error to its HTTP status and client message. Unknown
// errors are internal and their text is never exposed.
func StatusOf(err error) (int, string) {
	for _, m := range errorTable {
		if errors.Is(err, m.err) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, MsgInternalServerError
}

func respondError(c *gin.Context, logger logging.Logger, err error) {
	status, msg := StatusOf(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "err", err)
	}
	c.AbortWithStatusJSON(status, gin.H{"message": msg})
}

// bindJSON decodes the body into dst. A body that fails its binding rules or
// is empty yields missing; anything undecodable yields common.ErrInvalidBody.
func bindJSON(c *gin.Context, dst any, missing error) error {
	err := c.ShouldBindJSON(dst)
	var verrs validator.ValidationErrors
	switch {
	case err == nil:
		return nil
	case errors.As(err, &verrs), errors.Is(err, io.EOF):
		return missing
	default:
		return common.ErrInvalidBody
	}
}
