package handlers

import (
	"net/http"
	"strings"

	"legalaid-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// userIDKey is the gin context key holding the authenticated user ID
const userIDKey = "userID"

// AuthRequired validates the Bearer session token and stores the resolved
// user ID on the request context.
func AuthRequired(accountService *service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Missing bearer token",
				},
			})
			return
		}

		userID, err := accountService.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Session is invalid or expired",
				},
			})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// currentUserID returns the authenticated user ID set by AuthRequired, or
// uuid.Nil when the request is unauthenticated.
func currentUserID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
