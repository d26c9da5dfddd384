package middleware

import (
	"net/http"

	"esports-api/internal/transport/httpdto"
	"esports-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler logs errors attached with c.Error and turns them into an
// error envelope when the handler has not written a body itself. Client
// errors are logged as warnings.
func ErrorHandler(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := c.Writer.Status()
		if !c.Writer.Written() && status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}
		if l != nil {
			reqLogger := l.WithContext(c.Request.Context())
			if status >= http.StatusInternalServerError {
				reqLogger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			} else {
				reqLogger.Warnf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			}
		}
		if c.Writer.Written() {
			return
		}
		c.JSON(status, httpdto.Error(httpdto.DefaultErrorMessage))
	}
}

// Recovery converts a panic into a 500 error envelope.
func Recovery(l *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		if l != nil {
			l.WithContext(c.Request.Context()).Errorf("panic recovered: %v", recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, httpdto.Error(httpdto.DefaultErrorMessage))
	})
}
