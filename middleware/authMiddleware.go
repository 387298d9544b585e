package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kisahtegar/foodly-app-sub000/helpers"
)

// Authentication verifies the bearer token and stores the principal in the
// request context. Handlers read it with c.GetString and pass it explicitly
// into service calls.
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientToken := c.Request.Header.Get("Authorization")
		clientToken = strings.TrimPrefix(clientToken, "Bearer ")
		if clientToken == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"status": false, "message": "authorization token required"})
			c.Abort()
			return
		}

		claims, msg := helpers.ValidateToken(clientToken)
		if msg != "" {
			c.JSON(http.StatusUnauthorized, gin.H{"status": false, "message": msg})
			c.Abort()
			return
		}

		c.Set("email", claims.Email)
		c.Set("name", claims.Name)
		c.Set("uid", claims.Uid)
		c.Set("userType", claims.UserType)
		c.Next()
	}
}

// Authorization restricts a route to the given roles. Admin passes every
// guard.
func Authorization(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userType := c.GetString("userType")
		if userType == "Admin" {
			c.Next()
			return
		}
		for _, role := range roles {
			if userType == role {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"status": false, "message": "you are not allowed to access this resource"})
		c.Abort()
	}
}
