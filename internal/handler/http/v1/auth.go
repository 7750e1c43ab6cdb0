package v1

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/safety_scoring_system/internal/config"
	"github.com/shenikar/safety_scoring_system/internal/models"
	"github.com/shenikar/safety_scoring_system/pkg/requestcontext"
	"github.com/sirupsen/logrus"
)

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
)

// APIKeyAuthMiddleware - middleware для аутентификации по API-ключу
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			// Проверяем также заголовок Authorization: Bearer
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "API key required"})
			return
		}

		isValid := false
		for _, key := range cfg.APIKeys {
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1 {
				isValid = true
				break
			}
		}

		if !isValid {
			log.WithField("path", c.FullPath()).Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid API key"})
			return
		}

		c.Next()
	}
}

// IdentityMiddleware переносит участника из заголовков шлюза в контекст запроса.
// Без X-User-ID запрос анонимный; роль по умолчанию - user.
func IdentityMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(headerUserID))
		if userID == "" {
			c.Next()
			return
		}

		role := models.Role(strings.ToLower(strings.TrimSpace(c.GetHeader(headerUserRole))))
		switch role {
		case "":
			role = models.RoleUser
		case models.RoleUser, models.RoleAdmin, models.RoleNGO:
		default:
			log.WithField("role", role).Warn("Unknown actor role in request")
			c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "unknown user role"})
			return
		}

		ctx := requestcontext.WithActor(c.Request.Context(), models.Actor{ID: userID, Role: role})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
