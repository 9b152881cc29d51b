package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code: 0,
		Msg:  "ok",
		Data: data,
	})
}

// Created is used by endpoints that create a resource (favorites toggle,
// property/review create) and need a 201 on the wire.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{
		Code: 0,
		Msg:  "ok",
		Data: data,
	})
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Fail(c *gin.Context, code int, msg string) {
	httpStatus := code
	if httpStatus < 400 || httpStatus > 599 {
		httpStatus = http.StatusOK
	}
	c.JSON(httpStatus, Response{
		Code: code,
		Msg:  msg,
	})
}
