package handler

import (
	"errors"
	"net/http"

	"techvault/internal/http-api/middleware"
	"techvault/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

func (h *FavoriteHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/resources/:id/favorite", h.Toggle)
	router.GET("/favorites", h.List)
}

// Toggle flips the caller's favorite state for a resource.
// POST /api/resources/:id/favorite
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resource ID"})
		return
	}

	resp, err := h.favoriteService.Toggle(c.Request.Context(), middleware.CurrentUserID(c), resourceID)
	if err != nil {
		if errors.Is(err, service.ErrResourceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// List returns the caller's favorited resources.
// GET /api/favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	items, err := h.favoriteService.ListResources(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}
