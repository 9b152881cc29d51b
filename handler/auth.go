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
	"github.com/redis/go-redis/v9"
)

type Auth struct {
	Config      *config.Config
	Redis       *redis.Client
	AuthService service.IAuthService
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/api/auth")
	g.POST("/register", context.Wrap(h.Register))
	g.POST("/login",
		middleware.RateLimit(h.Redis, "login", 10, time.Hour, middleware.ByIP),
		context.Wrap(h.Login))
	g.POST("/refresh", context.Wrap(h.Refresh))
	g.POST("/logout",
		middleware.RateLimit(h.Redis, "logout", 20, time.Hour, middleware.ByIP),
		context.Wrap(h.Logout))
	g.POST("/password-reset",
		middleware.RateLimit(h.Redis, "password_reset", 3, time.Hour, middleware.ByIP),
		context.Wrap(h.PasswordReset))
	g.POST("/password-reset/confirm",
		middleware.RateLimit(h.Redis, "password_reset_confirm", 10, time.Hour, middleware.ByIP),
		context.Wrap(h.PasswordResetConfirm))
}

func (h *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	user, err := h.AuthService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Created(c, types.NewUserInfo(user))
	return nil
}

func (h *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.AuthService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Auth) Refresh(c *gin.Context) error {
	var req types.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	pair, err := h.AuthService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		return err
	}
	response.Success(c, pair)
	return nil
}

func (h *Auth) Logout(c *gin.Context) error {
	var req types.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.AuthService.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		return err
	}
	response.Success(c, gin.H{"message": "logged out"})
	return nil
}

func (h *Auth) PasswordReset(c *gin.Context) error {
	var req types.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.AuthService.PasswordReset(c.Request.Context(), req.Email); err != nil {
		return err
	}
	// Same answer whether or not the email exists.
	response.Success(c, gin.H{"message": "if the email is registered, a reset link has been sent"})
	return nil
}

func (h *Auth) PasswordResetConfirm(c *gin.Context) error {
	var req types.PasswordResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.AuthService.PasswordResetConfirm(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		return err
	}
	response.Success(c, gin.H{"message": "password has been reset"})
	return nil
}
