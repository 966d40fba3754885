package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zarjin/FaceBook-Clone/auth"
)

// UserIDKey is the gin context key under which RequireAuth binds the
// authenticated user's id.
const UserIDKey = "userID"

// RequireAuth is the single authorization gate: it reads the session cookie,
// verifies the token, and binds the embedded user id into the request
// context. There are no roles; authenticated is the only distinction.
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("token")
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		userID, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
