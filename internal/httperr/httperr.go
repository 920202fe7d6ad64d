package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// From maps a business error to the right HTTP status by its code family.
// Anything that is not a BusinessError becomes a 500.
func From(c *gin.Context, err error, message string) {
	code := BusinessCode(err)
	switch code {
	case "":
		Internal(c, "internal_error", message)
	case "slot_taken", "barber_day_off", "service_in_use", "invalid_transition", "already_rated":
		Conflict(c, code, message)
	case "booking_not_found", "barber_not_found", "service_not_found":
		NotFound(c, code, message)
	case "forbidden":
		Forbidden(c, code, message)
	default:
		BadRequest(c, code, message)
	}
}
