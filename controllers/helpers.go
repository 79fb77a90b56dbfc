package controllers

import (
	"github.com/gin-gonic/gin"
)

// currentUserID returns the authenticated principal id set by the auth
// middleware, or 0 when the request is anonymous.
func currentUserID(c *gin.Context) uint {
	value, exists := c.Get("userID")
	if !exists {
		return 0
	}
	userID, ok := value.(uint)
	if !ok {
		return 0
	}
	return userID
}
