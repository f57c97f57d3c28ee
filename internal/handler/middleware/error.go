package middleware

import (
	"log/slog"
	"net/http"

	"cellar-market/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

var internalError = httperr.Response{
	Status: http.StatusInternalServerError,
	Error:  httperr.Body{Message: "Internal server error", Code: "internal"},
}

// ErrorHandler writes the last public error if the handler left the response
// unwritten.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(internalError.Status, internalError)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"error", rec,
					"request_id", GetRequestID(c),
					"method", c.Request.Method,
					"path", c.Request.URL.Path)
				c.AbortWithStatusJSON(internalError.Status, internalError)
			}
		}()
		c.Next()
	}
}
