// Package identity resolves the acting user for a request. The upstream
// gateway authenticates callers and forwards their id in the
// X-Sharer-User-Id header; this service trusts that header.
package identity

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderUserID is the header the gateway uses to identify the caller.
const HeaderUserID = "X-Sharer-User-Id"

const contextUserIDKey = "sharerUserID"

// Required rejects requests that carry no valid X-Sharer-User-Id header and
// stores the id in the Gin context for later handlers.
func Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderUserID)
		if id == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "missing " + HeaderUserID + " header",
			})
			return
		}

		if _, err := uuid.Parse(id); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "invalid " + HeaderUserID + " header",
			})
			return
		}

		c.Set(contextUserIDKey, id)
		c.Next()
	}
}
