package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"portfolio-backend/internal/apperrors"
	"portfolio-backend/internal/models"
)

// ErrorBody maps err onto the status code and JSON body sent to clients.
// Internal failures keep their detail in the message field only.
func ErrorBody(err error) (int, models.ErrorResponse) {
	status := apperrors.StatusCode(err)
	if status == http.StatusInternalServerError {
		return status, models.ErrorResponse{
			Error:   "internal server error",
			Message: apperrors.Describe(err),
		}
	}

	resp := models.ErrorResponse{Error: apperrors.Describe(err)}
	if fields := apperrors.FieldsOf(err); len(fields) > 0 {
		resp.Fields = fields
	}
	return status, resp
}

func RespondError(c *gin.Context, err error) {
	status, body := ErrorBody(err)
	if status >= http.StatusInternalServerError {
		log.Printf("Error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, body)
}

func AbortWithError(c *gin.Context, err error) {
	RespondError(c, err)
	c.Abort()
}
