package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jhaabhishek9/Nutrifitnes/utils"
)

// SessionCookie carries the session token for browser clients. API clients
// may send the same token as a Bearer header instead.
const SessionCookie = "session_token"

// Auth validates the session and puts the caller's id into the context as
// "userID". Handlers behind it must take identity from there, never from the
// request body.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "You must be logged in"})
			return
		}

		claims, err := utils.ParseJWT(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired session"})
			return
		}

		id, ok := claims["userId"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid session claims"})
			return
		}

		c.Set("userID", uint(id))
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}
