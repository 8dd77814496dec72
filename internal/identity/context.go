package identity

import "github.com/gin-gonic/gin"

const contextKey = "callerID"

// CallerID returns the caller id set by Required, or empty string.
func CallerID(c *gin.Context) string {
	if v, ok := c.Get(contextKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
