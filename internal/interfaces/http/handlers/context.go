package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vitrine-app/vitrine/internal/shared/constants"
)

// CurrentUserID returns the authenticated user's ID from the request
// context, or 0 when the caller is anonymous.
func CurrentUserID(c *gin.Context) uint {
	v, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return 0
	}
	userID, ok := v.(uint)
	if !ok {
		return 0
	}
	return userID
}
