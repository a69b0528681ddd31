package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every unhandled failure.
type ErrorResponse struct {
	Message string `json:"message"`
}

// AbortWithError attaches err for Errors to log and render, and stops the
// handler chain.
func AbortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// Errors renders errors that handlers attached with c.Error as a 500. The
// cause is logged, never sent to the client.
func Errors(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		logger.Error("request failed",
			zap.String("request_id", GetRequestID(c.Request.Context())),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(c.Errors.Last().Err),
		)

		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal Server Error"})
		}
	}
}
