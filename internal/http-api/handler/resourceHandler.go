package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"techvault/internal/http-api/dto"
	"techvault/internal/http-api/middleware"
	"techvault/internal/http-api/models"
	"techvault/internal/http-api/repository"
	"techvault/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ResourceHandler struct {
	resourceService service.ResourceService
}

func NewResourceHandler(resourceService service.ResourceService) *ResourceHandler {
	return &ResourceHandler{resourceService: resourceService}
}

// RegisterRoutes registers resource CRUD and search routes. Reads are
// public with optional identity (for is_favorite annotation), writes
// require auth.
func (h *ResourceHandler) RegisterRoutes(router *gin.RouterGroup, optionalAuth, requireAuth gin.HandlerFunc) {
	resources := router.Group("/resources")
	{
		resources.GET("", optionalAuth, h.List)
		resources.GET("/:id", optionalAuth, h.Get)
		resources.POST("", requireAuth, h.Create)
		resources.PATCH("/:id", requireAuth, h.Update)
	}
}

// List is the vault search.
// GET /api/resources?search=&team_id=&skill_level_id=&mentor_id=&technology_id=&resource_type=&limit=&offset=
func (h *ResourceHandler) List(c *gin.Context) {
	filters := repository.ResourceFilters{
		Search: strings.TrimSpace(c.Query("search")),
	}

	for param, target := range map[string]**uuid.UUID{
		"team_id":        &filters.TeamID,
		"skill_level_id": &filters.SkillLevelID,
		"mentor_id":      &filters.MentorID,
		"technology_id":  &filters.TechnologyID,
	} {
		if raw := c.Query(param); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
				return
			}
			*target = &id
		}
	}

	if raw := c.Query("resource_type"); raw != "" {
		if !models.ValidResourceType(raw) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resource_type"})
			return
		}
		rt := models.ResourceType(raw)
		filters.ResourceType = &rt
	}

	filters.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	filters.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := h.resourceService.ListFiltered(c.Request.Context(), filters, middleware.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get returns one resource with per-caller annotations.
// GET /api/resources/:id
func (h *ResourceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resource ID"})
		return
	}

	resp, err := h.resourceService.GetByID(c.Request.Context(), id, middleware.CurrentUserID(c))
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

// Create uploads a new resource.
// POST /api/resources
func (h *ResourceHandler) Create(c *gin.Context) {
	var req dto.CreateResourceDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.resourceService.Create(c.Request.Context(), middleware.CurrentUserID(c), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Update patches an existing resource.
// PATCH /api/resources/:id
func (h *ResourceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resource ID"})
		return
	}

	var req dto.UpdateResourceDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.resourceService.Update(c.Request.Context(), id, &req)
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
