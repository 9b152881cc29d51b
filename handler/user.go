package handler

import (
	"net/http"
	"time"

	"Immob/config"
	"Immob/middleware"
	"Immob/pkg/context"
	"Immob/pkg/response"
	"Immob/service"
	"Immob/types"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (h *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), time.Duration(h.Config.Jwt.AccessExpire)*time.Minute)
	g := r.Group("/api/users")
	g.Use(authorize)
	g.GET("/me", context.Wrap(h.Me))
	g.PATCH("/me", context.Wrap(h.UpdateMe))
}

func (h *User) Me(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	profile, err := h.UserService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}

func (h *User) UpdateMe(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.UserService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}
