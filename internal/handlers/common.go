// internal/handlers/common.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/drivegear/autoparts-backend/internal/utils"
)

// userIDFromContext resolves the authenticated user's ID set by the auth
// middleware.
func userIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

// optionalUserID returns a pointer for guest-capable endpoints: nil when
// the request is anonymous.
func optionalUserID(c *gin.Context) *uuid.UUID {
	userID, ok := userIDFromContext(c)
	if !ok {
		return nil
	}
	return &userID
}
