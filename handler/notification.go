package handler

import (
	"net/http"
	"strconv"
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

type Notification struct {
	Config              *config.Config
	Redis               *redis.Client
	NotificationService service.INotificationService
}

func (h *Notification) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), time.Duration(h.Config.Jwt.AccessExpire)*time.Minute)
	throttle := middleware.RateLimit(h.Redis, "notifications", 30, time.Hour, middleware.ByUser)

	g := r.Group("/api/notifications")
	g.Use(authorize, throttle)
	g.GET("", context.Wrap(h.List))
	g.GET("/unread-count", context.Wrap(h.UnreadCount))
	g.POST("", context.Wrap(h.Create))
	g.POST("/mark-read", context.Wrap(h.MarkRead))
	g.POST("/mark-all-read", context.Wrap(h.MarkAllRead))
	g.GET("/:id", context.Wrap(h.Get))
	g.DELETE("/:id", context.Wrap(h.Delete))
}

func (h *Notification) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	var q types.NotificationListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.NotificationService.List(c.Request.Context(), userID, &q)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// Get also marks the notification read; retrieval is the read receipt.
func (h *Notification) Get(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid notification id")
	}

	item, err := h.NotificationService.Get(c.Request.Context(), userID, id)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}

func (h *Notification) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	var req types.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	item, err := h.NotificationService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Created(c, item)
	return nil
}

func (h *Notification) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid notification id")
	}

	if err := h.NotificationService.Delete(c.Request.Context(), userID, id); err != nil {
		return err
	}
	response.NoContent(c)
	return nil
}

func (h *Notification) MarkRead(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	var req types.MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.NotificationService.MarkRead(c.Request.Context(), userID, req.NotificationIDs)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Notification) MarkAllRead(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	resp, err := h.NotificationService.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Notification) UnreadCount(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	resp, err := h.NotificationService.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
