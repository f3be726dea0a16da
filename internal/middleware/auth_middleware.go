package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/takeuforward/portal/internal/pkg/apperrors"
	"github.com/takeuforward/portal/internal/pkg/auth"
)

// Context keys set by RequireAuth
const (
	UserIDKey = "userID"
	EmailKey  = "email"
)

// AuthMiddleware authenticates requests by session token
type AuthMiddleware struct {
	jwtService *auth.JWTService
	cookieName string
}

// NewAuthMiddleware creates a new AuthMiddleware. Tokens are read from the
// Authorization header first and then from the session cookie.
func NewAuthMiddleware(jwtService *auth.JWTService, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		cookieName: cookieName,
	}
}

// RequireAuth rejects requests without a valid session token
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := m.token(c)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		c.Set(UserIDKey, claims.UserID())
		c.Set(EmailKey, claims.Email)
		c.Next()
	}
}

func (m *AuthMiddleware) token(c *gin.Context) (string, error) {
	if header := c.GetHeader("Authorization"); header != "" {
		return auth.ExtractBearerToken(header)
	}
	if m.cookieName != "" {
		if cookie, err := c.Cookie(m.cookieName); err == nil && cookie != "" {
			return cookie, nil
		}
	}
	return "", apperrors.ErrUnauthorized
}

// CurrentUserID returns the authenticated user id, or "" outside RequireAuth
func CurrentUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
