package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"campus-reservation/internal/domain/user"
	"campus-reservation/internal/handler/httperr"
	"campus-reservation/internal/pkg/cookie"
	"campus-reservation/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const ctxStudentIDKey = "student_id"

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, jwt.ErrInvalidToken, "Access token required", nil)
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		id, err := user.NewStudentID(claims.StudentID)
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxStudentIDKey, id)
		c.Next()
	}
}

// cookie first, then the Authorization header
func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func SetStudentID(c *gin.Context, id user.StudentID) {
	c.Set(ctxStudentIDKey, id)
}

func GetStudentID(c *gin.Context) (user.StudentID, bool) {
	v, exists := c.Get(ctxStudentIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(user.StudentID)
	return id, ok
}
