package handler

import (
	"errors"
	"net/http"
	"strconv"

	"esports-api/internal/transport/apimsg"
	"esports-api/internal/transport/httpdto"
	esports_errors "esports-api/pkg/errors"
	"esports-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

func respondSuccess[T any](c *gin.Context, data T) {
	c.JSON(http.StatusOK, httpdto.Success(data))
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, httpdto.Error(message))
}

// respondConditional writes data with 200 when ok holds and message with
// failStatus otherwise.
func respondConditional[T any](c *gin.Context, ok bool, data T, failStatus int, message string) {
	status := http.StatusOK
	if !ok {
		status = failStatus
	}
	c.JSON(status, httpdto.Conditional(ok, data, message))
}

// idParam parses the integer path parameter name. On failure it writes the
// invalid identifier response and returns false.
func idParam(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, apimsg.InvalidIdentifier(name, raw))
		return 0, false
	}
	return id, true
}

// respondServiceError maps a service error onto a status and catalog message.
// resource and id describe what a not found error refers to. Unexpected
// errors are attached to the context for the error middleware to log.
func respondServiceError(c *gin.Context, l *logger.Logger, err error, game, resource string, id int64) {
	switch {
	case errors.Is(err, esports_errors.ErrNotFound):
		respondError(c, http.StatusNotFound, apimsg.ResourceNotFound(resource, strconv.FormatInt(id, 10)))
	case errors.Is(err, esports_errors.ErrUnsupportedGame):
		respondError(c, http.StatusNotFound, apimsg.EndpointNotSupported(c.Request.URL.Path, ""))
	case errors.Is(err, esports_errors.ErrUnsupportedEndpoint):
		respondError(c, http.StatusNotFound, apimsg.EndpointNotSupported(c.Request.URL.Path, game))
	default:
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, httpdto.DefaultErrorMessage)
		return
	}
	if l != nil {
		l.WithContext(c.Request.Context()).Debugf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
}
