package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// bindJSON decodes the request body into payload. On failure it writes
// a 400 response carrying field-level detail when the failure came
// from binding validation, and reports false.
func bindJSON(c *gin.Context, payload interface{}) bool {
	err := c.ShouldBindJSON(payload)
	if err == nil {
		return true
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make(map[string]string, len(validationErrs))
		for _, fieldErr := range validationErrs {
			fields[fieldErr.Field()] = validationMessage(fieldErr)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "fields": fields})
		return false
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
	return false
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fieldErr.Param()
	default:
		return "is invalid"
	}
}

// idParam parses the numeric id path parameter, answering 400 itself
// when the value is not a positive integer.
func idParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return 0, false
	}
	return uint(id), true
}

func badRequestField(c *gin.Context, field, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":  "invalid_request",
		"fields": map[string]string{field: message},
	})
}

func notFound(c *gin.Context, token string) {
	c.JSON(http.StatusNotFound, gin.H{"error": token})
}

// serverError hides store internals behind a generic token and logs
// the cause with the request id.
func (h *httpHandler) serverError(c *gin.Context, operation string, err error) {
	h.logger.Error("request failed",
		zap.String("operation", operation),
		zap.String("request_id", c.GetString(requestIDContextKey)),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
}
