package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gallegosdmz/pos-front-sub000/internal/apierror"
)

const TokenKey = "auth_token"

// BearerAuth requires an `Authorization: Bearer` header on every protected
// route and stashes the raw token in the context. The token is opaque here:
// the upstream POS API is the sole authority on it, this service only
// forwards it verbatim.
func BearerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Authentication required"))
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Authentication required"))
			return
		}

		c.Set(TokenKey, token)
		c.Next()
	}
}

// GetToken retrieves the bearer token stored by BearerAuth.
func GetToken(c *gin.Context) string {
	return c.GetString(TokenKey)
}
