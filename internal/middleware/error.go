package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "appraisal/internal/errors"
	"appraisal/internal/logger"
)

// ErrorHandler returns a Gin middleware that converts errors set on the Gin
// context into consistent JSON error responses. Binding errors become
// INVALID_INPUT, AppErrors keep their code and message, and anything else is
// logged and reported as a generic internal error. Responses already written
// by a handler are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		// Process the last error (most relevant in a middleware chain)
		last := c.Errors.Last()
		log := logger.FromContext(c.Request.Context())

		if last.IsType(gin.ErrorTypeBind) {
			render(c, apperrors.WithMessage(apperrors.ErrInvalidInput, last.Error()))
			return
		}

		var appErr *apperrors.AppError
		if errors.As(last.Err, &appErr) {
			if appErr.Internal != nil {
				log.Errorw("app error",
					"code", appErr.Code,
					"message", appErr.Message,
					"internal", appErr.Internal.Error(),
					"path", c.Request.URL.Path,
				)
			}
			render(c, appErr)
			return
		}

		// Unexpected error: log full details, return generic message
		log.Errorw("unexpected error",
			"error", last.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		render(c, apperrors.ErrInternalServer)
	}
}

func render(c *gin.Context, err *apperrors.AppError) {
	c.JSON(err.StatusCode, gin.H{
		"error": gin.H{
			"code":    err.Code,
			"message": err.Message,
		},
	})
}
