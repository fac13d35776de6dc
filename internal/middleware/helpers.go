// internal/middleware/helpers.go
package middleware

import "github.com/gin-gonic/gin"

// GetUsername gets the authenticated username from context.
func GetUsername(c *gin.Context) (string, bool) {
	v, exists := c.Get("username")
	if !exists {
		return "", false
	}
	username, ok := v.(string)
	return username, ok
}

// GetRole gets the authenticated role from context.
func GetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		return "", false
	}
	role, ok := v.(string)
	return role, ok
}
