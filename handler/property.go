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

type Property struct {
	Config          *config.Config
	PropertyService service.IPropertyService
}

func (h *Property) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	accessExpire := time.Duration(h.Config.Jwt.AccessExpire) * time.Minute
	authorize := middleware.Auth(secret, accessExpire)

	g := r.Group("/api/properties")
	g.GET("", middleware.OptionalAuth(secret), context.Wrap(h.List))
	g.GET("/featured", context.Wrap(h.Featured))
	g.GET("/stats", context.Wrap(h.Stats))
	g.GET("/categories", context.Wrap(h.Categories))
	g.GET("/search-suggestions", context.Wrap(h.SearchSuggestions))
	g.GET("/:id", context.Wrap(h.Get))

	g.POST("", authorize, context.Wrap(h.Create))
	g.PATCH("/:id", authorize, context.Wrap(h.Update))
	g.DELETE("/:id", authorize, context.Wrap(h.Delete))
	g.POST("/:id/images", authorize, context.Wrap(h.UploadImage))
}

// List is public; an authenticated caller searching with q also gets the
// query recorded into their search history.
func (h *Property) List(c *gin.Context) error {
	var q types.PropertyListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	userID, _ := context.GetUserID(c)
	resp, err := h.PropertyService.List(c.Request.Context(), &q, c.Request.URL.Query(), userID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Property) Get(c *gin.Context) error {
	resp, err := h.PropertyService.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Property) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	var req types.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	item, err := h.PropertyService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Created(c, item)
	return nil
}

func (h *Property) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	var req types.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	item, err := h.PropertyService.Update(c.Request.Context(), userID, context.IsAdmin(c), c.Param("id"), &req)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}

func (h *Property) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	if err := h.PropertyService.Delete(c.Request.Context(), userID, context.IsAdmin(c), c.Param("id")); err != nil {
		return err
	}
	response.NoContent(c)
	return nil
}

func (h *Property) Featured(c *gin.Context) error {
	resp, err := h.PropertyService.Featured(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Property) Stats(c *gin.Context) error {
	resp, err := h.PropertyService.Stats(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Property) Categories(c *gin.Context) error {
	resp, err := h.PropertyService.Categories(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Property) SearchSuggestions(c *gin.Context) error {
	resp, err := h.PropertyService.SearchSuggestions(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Property) UploadImage(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not authenticated")
	}

	var req types.UploadImageRequest
	if err := c.ShouldBind(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	header, err := c.FormFile("image")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "image file is required")
	}

	img, err := h.PropertyService.UploadImage(c.Request.Context(), userID, context.IsAdmin(c), c.Param("id"), &req, header)
	if err != nil {
		return err
	}
	response.Created(c, &types.UploadImageResponse{Image: img})
	return nil
}
