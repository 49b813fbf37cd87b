package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vital-be/apperrors"
	"vital-be/models"
	authUtils "vital-be/utils"
)

const (
	// AuthCookie carries the session token for browser clients.
	AuthCookie = "auth_token"

	userIDKey    = "user_id"
	authorityKey = "authority"
)

// AuthorityLoader resolves the authority behind a user id.
type AuthorityLoader interface {
	Get(ctx context.Context, uid string) (*models.Authority, error)
}

// AuthMiddleware accepts a bearer token or the auth cookie, loads the authority and stores
// both on the context. Any failure is a 401.
func AuthMiddleware(tokens *authUtils.Tokens, authorities AuthorityLoader, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No authorization token provided"})
			return
		}

		userID, err := tokens.ParseToken(tokenString)
		if err != nil {
			logger.Debug("token validation failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization token"})
			return
		}

		authority, err := authorities.Get(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, context.Canceled) || apperrors.IsKind(err, apperrors.KindBackendUnavailable) {
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "could not load account", "retryable": true})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		c.Set(userIDKey, userID)
		c.Set(authorityKey, authority)
		c.Next()
	}
}

// RequireRoles rejects authorities that are unverified or hold none of roles.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		authority := CurrentAuthority(c)
		for _, role := range roles {
			if authority.Acts(role) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not allowed for your role or account is not verified"})
	}
}

// CurrentAuthority returns the authority set by AuthMiddleware, or nil.
func CurrentAuthority(c *gin.Context) *models.Authority {
	v, ok := c.Get(authorityKey)
	if !ok {
		return nil
	}
	a, _ := v.(*models.Authority)
	return a
}

// CurrentUserID returns the token subject set by AuthMiddleware.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func bearerToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := c.Cookie(AuthCookie); err == nil {
		return cookie
	}
	return ""
}
