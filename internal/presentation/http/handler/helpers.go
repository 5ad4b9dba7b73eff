package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionIDHeader identifies a register's cart session. Each till sends a
// stable value so concurrent registers get independent carts.
const SessionIDHeader = "X-Session-ID"

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserName extracts the user name from the Gin context
func GetUserName(c *gin.Context) string {
	name, exists := c.Get("user_name")
	if !exists {
		return ""
	}
	return name.(string)
}

// GetUserRole extracts the user role from the Gin context
func GetUserRole(c *gin.Context) string {
	role, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	return role.(string)
}

// GetSessionID resolves the cart session key for the request. Falls back to
// the authenticated user's ID so a till without the header still works.
func GetSessionID(c *gin.Context) string {
	if sid := c.GetHeader(SessionIDHeader); sid != "" {
		return sid
	}
	if userID := GetUserID(c); userID != nil {
		return userID.String()
	}
	return "default"
}
