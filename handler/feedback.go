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
)

type Feedback struct {
	Config          *config.Config
	FeedbackService service.IFeedbackService
}

func (h *Feedback) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	accessExpire := time.Duration(h.Config.Jwt.AccessExpire) * time.Minute
	authorize := middleware.Auth(secret, accessExpire)

	g := r.Group("/api/feedback")
	// Anonymous submissions are allowed, so creation only attaches identity
	// when a token happens to be present.
	g.POST("", middleware.OptionalAuth(secret), context.Wrap(h.Create))
	g.GET("", authorize, context.Wrap(h.List))
	g.POST("/:id/respond", authorize, middleware.AdminOnly(), context.Wrap(h.Respond))
}

func (h *Feedback) Create(c *gin.Context) error {
	var req types.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	userID, _ := context.GetUserID(c)
	item, err := h.FeedbackService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Created(c, item)
	return nil
}

func (h *Feedback) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	resp, err := h.FeedbackService.List(c.Request.Context(), userID, context.IsAdmin(c))
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Feedback) Respond(c *gin.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid feedback id")
	}

	var req types.RespondFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	item, err := h.FeedbackService.Respond(c.Request.Context(), id, req.Response)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}
