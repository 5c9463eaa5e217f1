package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/MAGNO9/SchoolTrack/internal/domain/user"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type UserReader interface {
	FindAuthorized(ctx context.Context, id uuid.UUID) (user.AuthorizedUser, error)
}

type AuthMiddleware struct {
	tokens TokenValidator
	users  UserReader
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
	ctxUserKey     = "auth_user"
)

func NewAuthMiddleware(tokens TokenValidator, users UserReader) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// RequireAuth resolves the bearer credential to an active account and
// stores it in the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		u, err := m.users.FindAuthorized(c.Request.Context(), claims.UserID)
		if err != nil || !u.IsActive {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Unknown or inactive user",
			})
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, u.ID)
		c.Set(ctxUserRoleKey, u.Role)
		c.Set(ctxUserKey, u)
		c.Set("jwt_claims", map[string]any{
			"user_id": u.ID.String(),
			"role":    string(u.Role),
		})
		c.Next()
	}
}

// RequireRole allows only the listed roles; must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
		c.Abort()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}

// CurrentUser returns the authenticated account stored by RequireAuth.
func CurrentUser(c *gin.Context) (user.AuthorizedUser, bool) {
	v, exists := c.Get(ctxUserKey)
	if !exists {
		return user.AuthorizedUser{}, false
	}

	u, ok := v.(user.AuthorizedUser)
	return u, ok
}
