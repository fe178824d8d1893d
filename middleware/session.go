package middleware

import (
	"net/http"

	"aliccedress/apperror"
	"aliccedress/models"

	"github.com/gin-gonic/gin"
)

type sessionChecker interface {
	IsLoggedIn() bool
}

// SessionRequired rejects the request unless a profile is logged in.
func SessionRequired(session sessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.IsLoggedIn() {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: apperror.ErrNotLoggedIn.Message(),
				Error:   string(apperror.CodeUnauthorized),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
