package middleware

import (
	"net/http"
	"strings"

	"techvault/internal/http-api/models"
	"techvault/internal/http-api/repository"
	"techvault/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// Context keys set for downstream handlers.
	ContextUserKey   = "user"
	ContextUserIDKey = "userID"
)

// AuthMiddleware authenticates API requests from the Authorization header
// (format: "Bearer <token>") and loads the account into the request context.
// The core services never re-validate credentials; a request that reaches
// them always carries a resolved user.
func AuthMiddleware(authService service.AuthService, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := bearerUserID(c, authService)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid authorization header"})
			c.Abort()
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the user when a valid token is present and
// silently continues anonymous otherwise. Used on public read routes that
// annotate responses with is_favorite / user_rating.
func OptionalAuthMiddleware(authService service.AuthService, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := bearerUserID(c, authService); ok {
			if user, err := userRepo.FindByID(c.Request.Context(), userID); err == nil {
				c.Set(ContextUserKey, user)
				c.Set(ContextUserIDKey, userID)
			}
		}
		c.Next()
	}
}

func bearerUserID(c *gin.Context, authService service.AuthService) (uuid.UUID, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return uuid.Nil, false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return uuid.Nil, false
	}
	userID, err := authService.ValidateToken(parts[1])
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

// CurrentUser returns the authenticated user from the context, or nil on
// anonymous requests.
func CurrentUser(c *gin.Context) *models.User {
	v, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

// CurrentUserID returns the authenticated user id, or uuid.Nil.
func CurrentUserID(c *gin.Context) uuid.UUID {
	v, exists := c.Get(ContextUserIDKey)
	if !exists {
		return uuid.Nil
	}
	id, _ := v.(uuid.UUID)
	return id
}
