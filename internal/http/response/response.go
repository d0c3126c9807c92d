package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/apierr"
)

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorEnvelope struct {
	Success bool     `json:"success"`
	Error   APIError `json:"error"`
}

type SuccessEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// OK writes {"success":true,"data":...}.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, SuccessEnvelope{Success: true, Data: data})
}

// OKEmpty writes a bare {"success":true}, used by delete.
func OKEmpty(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessEnvelope{Success: true})
}

// Fail maps a service error to the wire. Persistence faults and other
// unrecognized errors become 500 INTERNAL with a generic message; no
// internal detail crosses the boundary for those.
func Fail(c *gin.Context, err error) {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, ErrorEnvelope{
			Success: false,
			Error:   APIError{Code: apiErr.Code, Message: apiErr.Error()},
		})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorEnvelope{
		Success: false,
		Error:   APIError{Code: apierr.CodeInternal, Message: "internal error"},
	})
}

// FailValidation is for binding errors raised before any service runs.
func FailValidation(c *gin.Context, err error) {
	msg := "invalid request"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(http.StatusBadRequest, ErrorEnvelope{
		Success: false,
		Error:   APIError{Code: apierr.CodeValidation, Message: msg},
	})
}
