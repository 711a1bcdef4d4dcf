package identity

import "github.com/gin-gonic/gin"

// UserID returns the acting user's id or an empty string when the request
// did not pass the Required middleware.
func UserID(c *gin.Context) string {
	if v, ok := c.Get(contextUserIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
