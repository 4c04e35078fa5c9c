package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/quickway/travels_backoffice/internal/core/domain"
	"github.com/quickway/travels_backoffice/internal/utils"
)

// AuthMiddleware creates a Gin middleware handler that validates session tokens.
// Missing or invalid tokens are rejected with 401, inactive accounts with 403.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized access"})
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Unauthorized access"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		principal := claims.Principal()
		if err := domain.RequireActive(principal); err != nil {
			logger.Warn("Inactive account rejected", slog.String("user_email", principal.Email))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account is inactive"})
			return
		}

		enrichedLogger := logger.With(
			slog.String("user_email", principal.Email),
			slog.String("role", string(principal.Role)),
			slog.String("office_id", principal.OfficeID),
		)

		ctx := WithPrincipal(c.Request.Context(), principal)
		ctx = WithLogger(ctx, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(principalCtxKey), principal)
		c.Set(string(loggerCtxKey), enrichedLogger)

		c.Next()
	}
}

// RequireRoles rejects authenticated callers whose role is not listed. It must run after AuthMiddleware.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipalFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized access"})
			return
		}
		if err := domain.RequireRole(principal, roles...); err != nil {
			GetLoggerFromCtx(c.Request.Context()).Warn("Role not permitted for route",
				slog.String("role", string(principal.Role)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
			return
		}
		c.Next()
	}
}
