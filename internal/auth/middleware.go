package auth

import (
	"context"
	"net/http"
	"strings"

	apperrors "pickup-sports-backend/internal/errors"
	"pickup-sports-backend/internal/logger"
	"pickup-sports-backend/internal/permission"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

var errInvalidHeader = apperrors.NewAuthenticationError("invalid authorization header format")

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth rejects requests without a valid bearer token
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, apperrors.ErrAuthenticationRequired)
			return
		}

		tokenString, ok := bearerToken(authHeader)
		if !ok {
			abortUnauthorized(c, errInvalidHeader)
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			logger.FromGin(c).WithError(err).Info("Rejected bearer token")
			abortUnauthorized(c, apperrors.ErrInvalidToken)
			return
		}

		setActor(c, claims)
		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid token is present and
// lets anonymous requests through otherwise
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Next()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.Next()
			return
		}

		setActor(c, claims)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		return "", false
	}
	return token, true
}

func abortUnauthorized(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
}

func setActor(c *gin.Context, claims *AuthClaims) {
	c.Set(actorKey, &permission.Actor{ID: claims.UserID, IsSuperuser: claims.IsSuperuser})
	c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), logger.UserIDKey, claims.UserID))
}

// ActorFromContext returns the authenticated caller, or nil for anonymous requests
func ActorFromContext(c *gin.Context) *permission.Actor {
	v, exists := c.Get(actorKey)
	if !exists {
		return nil
	}
	actor, _ := v.(*permission.Actor)
	return actor
}
