package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is the uniform error body: {"error": "..."} plus optional
// details when the server runs in development mode.
type HTTPError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, HTTPError{Error: message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Unavailable(c *gin.Context, message string) {
	Write(c, http.StatusServiceUnavailable, message)
}

// Internal writes a 500 with a generic message. The underlying error is
// attached as details only outside release mode.
func Internal(c *gin.Context, message string, err error) {
	body := HTTPError{Error: message}
	if err != nil && gin.Mode() != gin.ReleaseMode {
		body.Details = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}

// ===============================
// Business errors
// ===============================

// BusinessError carries a stable code through the use-case layer so that
// handlers can map domain rejections to 4xx responses.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
