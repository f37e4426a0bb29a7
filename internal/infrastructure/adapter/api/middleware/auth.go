package middleware

import (
	"net/http"
	"strings"

	"github.com/nsokolova/prediction-service/internal/domain/entity"
	domainerr "github.com/nsokolova/prediction-service/internal/domain/error"
	"github.com/nsokolova/prediction-service/internal/domain/usecase/auth"
	"github.com/nsokolova/prediction-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// CurrentUserKey is the Gin context key holding the authenticated user
const CurrentUserKey = "current_user"

// BearerAuth verifies the Authorization header and loads the current user
// into the request context. Failures answer 401 with a WWW-Authenticate hint.
func BearerAuth(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthorized(c, "Missing or malformed Authorization header")
			return
		}

		user, err := authService.CurrentUser(c.Request.Context(), token)
		if err != nil {
			unauthorized(c, "Could not validate credentials")
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by BearerAuth
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	value, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*entity.User)
	return user, ok
}

func extractBearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		return "", false
	}
	return token, true
}

func unauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidToken),
		Message: message,
	})
}
