package middleware

import (
	"errors"
	"net/http"

	"portfolio-contact-backend/internal/delivery/http/response"
	"portfolio-contact-backend/pkg/apperror"
	"portfolio-contact-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error appended to the context. Raw error text is only
// included when exposeDetails is set (non-production).
func ErrorHandler(exposeDetails bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.Internal(err)
		}

		if appErr.Code >= http.StatusInternalServerError {
			logger.Log.ErrorContext(c.Request.Context(), appErr.Message,
				"error", appErr.Err,
				"path", c.Request.URL.Path,
				"request_id", c.GetString("RequestID"),
			)
		}

		if len(appErr.Details) > 0 {
			response.ValidationError(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		response.Error(c, appErr.Code, appErr.Message, detail(appErr.Err, exposeDetails))
	}
}

// Recovery turns panics into the generic internal error response.
func Recovery(exposeDetails bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Log.ErrorContext(c.Request.Context(), "Unhandled error",
			"panic", recovered,
			"path", c.Request.URL.Path,
			"request_id", c.GetString("RequestID"),
		)

		var errText interface{}
		if exposeDetails {
			errText = panicText(recovered)
		}
		response.Error(c, http.StatusInternalServerError, "Internal server error", errText)
		c.Abort()
	})
}

func detail(err error, exposeDetails bool) interface{} {
	if !exposeDetails || err == nil {
		return nil
	}
	return err.Error()
}

func panicText(recovered any) string {
	switch v := recovered.(type) {
	case error:
		return v.Error()
	case string:
		return v
	default:
		return "unexpected panic"
	}
}
