package httperr

import (
	"github.com/gin-gonic/gin"
)

// Body is the JSON error envelope returned by every endpoint.
type Body struct {
	Message string `json:"message"`
	// Code is stable across releases; Message is for humans.
	Code string `json:"code,omitempty"`
}

type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
	Detail any  `json:"detail,omitempty"`
}

// AbortWithError records err on the context for the logging middleware and
// writes the envelope.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	AbortWithCode(c, status, err, "", msg, detail)
}

func AbortWithCode(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		panic("httperr: abort without an underlying error")
	}

	resp := Response{
		Status: status,
		Error:  Body{Message: msg, Code: code},
		Detail: detail,
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
