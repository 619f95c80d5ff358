package handler

import (
	"errors"
	"net/http"

	"techvault/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReferenceHandler struct {
	referenceService service.ReferenceService
}

func NewReferenceHandler(referenceService service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{referenceService: referenceService}
}

// RegisterRoutes registers public read-only reference data routes.
func (h *ReferenceHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/technologies", h.ListTechnologies)
	router.GET("/technologies/:id", h.GetTechnology)
	router.GET("/mentors", h.ListMentors)
	router.GET("/mentors/:id", h.GetMentor)
	router.GET("/teams", h.ListTeams)
	router.GET("/teams/:id", h.GetTeam)
	router.GET("/skill-levels", h.ListSkillLevels)
	router.GET("/skill-levels/:id", h.GetSkillLevel)
}

func (h *ReferenceHandler) ListTechnologies(c *gin.Context) {
	items, err := h.referenceService.ListTechnologies(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ReferenceHandler) GetTechnology(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.referenceService.GetTechnology(c.Request.Context(), id)
	if err != nil {
		respondReferenceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ReferenceHandler) ListMentors(c *gin.Context) {
	items, err := h.referenceService.ListMentors(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ReferenceHandler) GetMentor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.referenceService.GetMentor(c.Request.Context(), id)
	if err != nil {
		respondReferenceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ReferenceHandler) ListTeams(c *gin.Context) {
	items, err := h.referenceService.ListTeams(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ReferenceHandler) GetTeam(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.referenceService.GetTeam(c.Request.Context(), id)
	if err != nil {
		respondReferenceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ReferenceHandler) ListSkillLevels(c *gin.Context) {
	items, err := h.referenceService.ListSkillLevels(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ReferenceHandler) GetSkillLevel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.referenceService.GetSkillLevel(c.Request.Context(), id)
	if err != nil {
		respondReferenceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ID"})
		return uuid.Nil, false
	}
	return id, true
}

func respondReferenceError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrReferenceNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
