package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vending-server/internal/domain/character"
	"vending-server/internal/pkg/jwt"
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const (
	ctxCharacterKey = "character_id"
	ctxClaimsKey    = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			c.Abort()
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			c.Abort()
			return
		}

		id := claims.CharacterID()
		SetCharacterID(c, id)
		c.Set(ctxClaimsKey, map[string]any{
			"character": id.String(),
		})
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// SetCharacterID is used by RequireAuth and by tests that stub it out.
func SetCharacterID(c *gin.Context, id character.ID) {
	c.Set(ctxCharacterKey, id)
}

func GetCharacterID(c *gin.Context) (character.ID, bool) {
	v, exists := c.Get(ctxCharacterKey)
	if !exists {
		return character.ID{}, false
	}
	id, ok := v.(character.ID)
	return id, ok && !id.IsZero()
}
