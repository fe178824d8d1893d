package controllers

import (
	"net/http"

	"aliccedress/apperror"
	"aliccedress/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, models.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// respondError writes the error envelope for err. Errors without an
// apperror code are reported as internal errors and logged.
func respondError(c *gin.Context, err error) {
	typed := apperror.As(err)
	if typed == nil {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled error")
		meta := apperror.MetadataFor(apperror.CodeInternal)
		c.JSON(meta.HTTPStatus, models.ErrorResponse{
			Success: false,
			Message: meta.PublicMessage,
			Error:   string(apperror.CodeInternal),
		})
		return
	}

	meta := apperror.MetadataFor(typed.Code())
	if meta.HTTPStatus >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}

	resp := models.ErrorResponse{
		Success: false,
		Message: typed.Message(),
		Error:   string(typed.Code()),
	}
	if meta.DetailsAllowed {
		resp.Details = typed.Details()
	}
	c.JSON(meta.HTTPStatus, resp)
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Message: "Invalid request",
		Error:   err.Error(),
	})
}
