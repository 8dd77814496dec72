package identity

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderUserID is the header the edge tier uses to convey the caller.
const HeaderUserID = "X-Sharer-User-Id"

// Required is a Gin middleware that reads the caller id from the
// X-Sharer-User-Id header. Whether the user actually exists is the services'
// concern; the middleware only enforces presence and shape.
func Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderUserID)
		if id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
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

		c.Set(contextKey, id)
		c.Next()
	}
}
