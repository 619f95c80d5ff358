package handler

import (
	"errors"
	"net/http"

	"techvault/internal/http-api/dto"
	"techvault/internal/http-api/middleware"
	"techvault/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// RegisterRoutes registers rating routes under /resources. There is no
// DELETE route: ratings can only be created or re-scored, never removed.
func (h *RatingHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/resources/:id/rate", h.Rate)
	router.GET("/resources/:id/rate/me", h.GetUserRating)
}

// Rate sets the caller's 1-5 score for a resource and returns the fresh
// aggregates.
// POST /api/resources/:id/rate
func (h *RatingHandler) Rate(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resource ID"})
		return
	}

	var req dto.RateResourceDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "value must be an integer between 1 and 5"})
		return
	}

	resp, err := h.ratingService.SetRating(c.Request.Context(), middleware.CurrentUserID(c), resourceID, req.Value)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrResourceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidScore):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetUserRating returns the caller's own score for a resource.
// GET /api/resources/:id/rate/me
func (h *RatingHandler) GetUserRating(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resource ID"})
		return
	}

	score, err := h.ratingService.GetUserRating(c.Request.Context(), middleware.CurrentUserID(c), resourceID)
	if err != nil {
		if errors.Is(err, service.ErrRatingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_rating": score})
}
