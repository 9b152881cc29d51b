package context

import (
	"errors"
	"net/http"

	"Immob/pkg/log"
	"Immob/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID  = "user_id"
	CtxEmail   = "email"
	CtxIsAdmin = "is_admin"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// Nothing to do when the handler already wrote a response.
			if c.Writer.Written() {
				return
			}
			var be *response.BizError
			if errors.As(err, &be) {
				response.Fail(c, be.Code, be.Msg)
				return
			}
			log.L.Error("unhandled handler error",
				zap.String("path", c.FullPath()), zap.Error(err))
			msg := "internal server error"
			if gin.IsDebugging() {
				msg = err.Error()
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: 500,
				Msg:  msg,
			})
		}
	}
}

func GetUserID(c *gin.Context) (int64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id missing from context")
	}

	uid, ok := v.(int64)
	if !ok {
		return 0, errors.New("user_id has unexpected type")
	}

	return uid, nil
}

func IsAdmin(c *gin.Context) bool {
	v, ok := c.Get(CtxIsAdmin)
	if !ok {
		return false
	}
	admin, _ := v.(bool)
	return admin
}
