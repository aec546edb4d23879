package middleware

import "github.com/gin-gonic/gin"

// APIVersion stamps every response with the version of the JSON field lists.
func APIVersion(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-API-Version", version)
		c.Next()
	}
}
