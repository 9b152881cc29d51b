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

type Favorite struct {
	Config          *config.Config
	FavoriteService service.IFavoriteService
}

func (h *Favorite) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), time.Duration(h.Config.Jwt.AccessExpire)*time.Minute)
	g := r.Group("/api/favorites")
	g.Use(authorize)
	g.GET("", context.Wrap(h.List))
	g.POST("/toggle", context.Wrap(h.Toggle))
	g.GET("/check/:property_id", context.Wrap(h.Check))
	g.DELETE("/:id", context.Wrap(h.Delete))
}

// Toggle answers 201 when the toggle added the favorite and 200 when it
// removed one.
func (h *Favorite) Toggle(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	var req types.ToggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.FavoriteService.Toggle(c.Request.Context(), userID, req.PropertyID)
	if err != nil {
		return err
	}
	if resp.IsFavorited {
		response.Created(c, resp)
	} else {
		response.Success(c, resp)
	}
	return nil
}

func (h *Favorite) Check(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	resp, err := h.FavoriteService.Check(c.Request.Context(), userID, c.Param("property_id"))
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Favorite) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	resp, err := h.FavoriteService.List(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Favorite) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	favoriteID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid favorite id")
	}

	if err := h.FavoriteService.Delete(c.Request.Context(), userID, favoriteID); err != nil {
		return err
	}
	response.NoContent(c)
	return nil
}
