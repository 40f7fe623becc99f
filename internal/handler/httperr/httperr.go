package httperr

import (
	"github.com/gin-gonic/gin"
)

// Stable machine-readable error codes surfaced to clients.
const (
	CodeInvalidDate           = "INVALID_DATE"
	CodeOutsideBusinessHours  = "OUTSIDE_BUSINESS_HOURS"
	CodeDateRequired          = "DATE_REQUIRED"
	CodePetNotFound           = "PET_NOT_FOUND"
	CodeAppointmentNotFound   = "APPOINTMENT_NOT_FOUND"
	CodeTimeSlotUnavailable   = "TIME_SLOT_UNAVAILABLE"
	CodeCannotDeleteConfirmed = "CANNOT_DELETE_CONFIRMED"
	CodeUserAlreadyExists     = "USER_ALREADY_EXISTS"
	CodeInvalidCredentials    = "INVALID_CREDENTIALS"
	CodeNotAuthenticated      = "NOT_AUTHENTICATED"
	CodeValidationError       = "VALIDATION_ERROR"
	CodeRateLimited           = "RATE_LIMITED"
	CodeInternalError         = "INTERNAL_ERROR"
)

type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Code   string `json:"code"`
}

// AbortWithCode writes the error payload and records the original error on
// the gin context for the logging middleware.
func AbortWithCode(c *gin.Context, status int, code, msg string, err error) {
	resp := Response{Status: status, Error: msg, Code: code}

	if err != nil {
		_ = c.Error(gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	}
	c.AbortWithStatusJSON(status, resp)
}
