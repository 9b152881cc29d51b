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

type Review struct {
	Config        *config.Config
	ReviewService service.IReviewService
}

func (h *Review) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), time.Duration(h.Config.Jwt.AccessExpire)*time.Minute)

	g := r.Group("/api/reviews")
	g.GET("", context.Wrap(h.List))
	g.GET("/property/:property_id/stats", context.Wrap(h.PropertyStats))

	g.POST("", authorize, context.Wrap(h.Create))
	g.GET("/mine", authorize, context.Wrap(h.MyReviews))
	g.PATCH("/:id", authorize, context.Wrap(h.Update))
	g.DELETE("/:id", authorize, context.Wrap(h.Delete))
	g.POST("/:id/like", authorize, context.Wrap(h.ToggleLike))
}

func (h *Review) List(c *gin.Context) error {
	var q types.ReviewListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.ReviewService.List(c.Request.Context(), &q, c.Request.URL.Query())
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Review) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	var req types.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	item, err := h.ReviewService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Created(c, item)
	return nil
}

func (h *Review) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	var req types.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	item, err := h.ReviewService.Update(c.Request.Context(), userID, context.IsAdmin(c), c.Param("id"), &req)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}

func (h *Review) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	if err := h.ReviewService.Delete(c.Request.Context(), userID, context.IsAdmin(c), c.Param("id")); err != nil {
		return err
	}
	response.NoContent(c)
	return nil
}

func (h *Review) ToggleLike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	resp, err := h.ReviewService.ToggleLike(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Review) MyReviews(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	resp, err := h.ReviewService.MyReviews(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Review) PropertyStats(c *gin.Context) error {
	resp, err := h.ReviewService.PropertyStats(c.Request.Context(), c.Param("property_id"))
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
