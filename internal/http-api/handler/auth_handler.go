package handler

import (
	"errors"
	"net/http"

	"techvault/internal/http-api/dto"
	"techvault/internal/http-api/middleware"
	"techvault/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes registers auth routes. The /me route goes through the
// optional-auth middleware supplied by the caller.
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup, optionalAuth gin.HandlerFunc) {
	auth := router.Group("/auth")
	{
		auth.POST("/telegram", h.LoginWithTelegram)
		auth.GET("/me", optionalAuth, h.Me)
	}
}

// LoginWithTelegram validates a Telegram Login Widget payload and issues a JWT.
// POST /api/auth/telegram
func (h *AuthHandler) LoginWithTelegram(c *gin.Context) {
	var req dto.TelegramLoginDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authService.LoginWithTelegram(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAuthNotConfigured):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidLoginHash):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me returns the current user, or null when unauthenticated.
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToUserResponse(user))
}
