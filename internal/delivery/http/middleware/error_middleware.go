package middleware

import (
	"errors"
	"net/http"

	"resume-parser-api/internal/delivery/http/response"
	"resume-parser-api/internal/domain"
	"resume-parser-api/pkg/apperror"
	"resume-parser-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			var detail *response.Detail
			if appErr.Kind != apperror.KindUnknown {
				detail = &response.Detail{Kind: string(appErr.Kind)}
			}
			response.Error(c, appErr.Code, appErr.Message, detail)
			return
		}

		// Never expose internal error details to clients
		logger.Log.Error("Internal Server Error",
			"error", err,
			"request_id", c.GetString(string(domain.KeyRequestID)),
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
