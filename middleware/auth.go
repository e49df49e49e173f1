package middleware

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/classboard/classboard-be/model"
	"github.com/gin-gonic/gin"
)

const PRINCIPAL_KEY = "principal"

type AuthConfig struct {
	// SessionNotRequired lets anonymous requests through with no principal
	// set; read-only routes use this
	SessionNotRequired bool
}

// Auth verifies the Bearer id token and derives the acting principal from
// the token claims. The identity provider owns roles and display names; the
// engine only consumes them.
func Auth(authClient *auth.Client, config *AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") || len(header) < 8 {
			if config.SessionNotRequired {
				return
			}
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "no authorization header",
			})
			c.Abort()
			return
		}
		token, err := authClient.VerifyIDToken(c, header[7:])
		if err != nil {
			if config.SessionNotRequired {
				return
			}
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "invalid token",
			})
			c.Abort()
			return
		}
		c.Set(PRINCIPAL_KEY, principalFromToken(token))
	}
}

func principalFromToken(token *auth.Token) *model.Principal {
	role := model.RoleParent
	if claim, ok := token.Claims["role"].(string); ok && model.Role(claim).Valid() {
		role = model.Role(claim)
	}
	name, _ := token.Claims["name"].(string)
	return &model.Principal{
		Id:          token.UID,
		Role:        role,
		DisplayName: name,
	}
}

// GetPrincipalMaybe returns the principal or nil for anonymous requests.
func GetPrincipalMaybe(c *gin.Context) *model.Principal {
	principal, ok := c.Get(PRINCIPAL_KEY)
	if !ok {
		return nil
	}
	return principal.(*model.Principal)
}
