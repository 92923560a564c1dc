// Package httperr shapes the error body every failed request returns.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the public error payload. Status travels out-of-band as the
// HTTP status code; Detail carries optional structured context such as
// validation output.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError writes the error body and aborts the chain. The underlying
// err is recorded on the context so the error middleware can log the cause
// behind the public message.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
