package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MobeenM17/SuswearGProject/internal/api/middleware"
	apperr "github.com/MobeenM17/SuswearGProject/pkg/errors"
	"github.com/MobeenM17/SuswearGProject/pkg/response"
)

// MustGetUserID reads the user id the session middleware injected.
// On failure a 401 is written and the caller should return.
func MustGetUserID(c *gin.Context) (int, bool) {
	v, exists := c.Get(middleware.KeyUserID)
	if !exists {
		response.Unauthorized(c, 10002, "not signed in")
		return 0, false
	}
	id, ok := v.(int)
	if !ok || id <= 0 {
		response.Unauthorized(c, 10002, "not signed in")
		return 0, false
	}
	return id, true
}

// MustGetRole reads the session role
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.KeyRole)
	if !exists {
		response.Unauthorized(c, 10002, "not signed in")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not signed in")
		return "", false
	}
	return s, true
}

// errorCodes business codes per error kind
var errorCodes = map[apperr.Kind]int{
	apperr.Validation:    10001,
	apperr.Unauthorized:  10002,
	apperr.Forbidden:     10003,
	apperr.NotFound:      10006,
	apperr.Conflict:      10007,
	apperr.Unprocessable: 10008,
}

// handleError writes the response for a service error.
// Classified errors keep their message; anything else is logged and hidden.
func handleError(c *gin.Context, logger *zap.Logger, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.Internal {
		logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Error(c, kind.Status(), errorCodes[kind], apperr.MessageOf(err, "request failed"))
}

// respondBindError maps a binding failure to 400, or 413 for an oversized body
func respondBindError(c *gin.Context, err error) {
	if isTooLarge(err) {
		response.Error(c, http.StatusRequestEntityTooLarge, 10005, "request body too large")
		return
	}
	response.ErrorWithDetails(c, http.StatusBadRequest, 10001, "invalid request", err.Error())
}

func isTooLarge(err error) bool {
	var tooLarge *http.MaxBytesError
	return errors.As(err, &tooLarge)
}
