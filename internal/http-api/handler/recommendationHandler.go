package handler

import (
	"errors"
	"net/http"
	"strconv"

	"techvault/internal/http-api/middleware"
	"techvault/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	recommendationService service.RecommendationService
	resourceService       service.ResourceService
}

func NewRecommendationHandler(
	recommendationService service.RecommendationService,
	resourceService service.ResourceService,
) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: recommendationService,
		resourceService:       resourceService,
	}
}

func (h *RecommendationHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/recommendations", h.Recommend)
	router.GET("/team-favorites", h.TeamFavorites)
}

// Recommend returns the hybrid newest+popular list for the caller.
// GET /api/recommendations?limit=N
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := h.recommendationService.Recommend(c.Request.Context(), middleware.CurrentUserID(c), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// TeamFavorites returns the caller's team's resources with at least one
// perfect score.
// GET /api/team-favorites?limit=N
func (h *RecommendationHandler) TeamFavorites(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	items, err := h.resourceService.ListTeamFavorites(c.Request.Context(), user, limit)
	if err != nil {
		if errors.Is(err, service.ErrNoTeam) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}
