package handler

import (
	"net/http"

	"balance_gateway/pkg/backend"
	"balance_gateway/pkg/service"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Error struct {
	Message string `json:"message"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	logrus.WithFields(logrus.Fields{
		"path":   c.Request.URL.Path,
		"status": statusCode,
	}).Error(message)
	c.AbortWithStatusJSON(statusCode, Error{Message: message})
}

func wrapOkJSON(c *gin.Context, response any) {
	c.JSON(http.StatusOK, response)
}

// statusFor maps a function error onto the status the gateway answers with.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrUnknownFunction):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, backend.ErrBackendRequest), errors.Is(err, backend.ErrMalformedResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
