package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/internal/database"
)

// BindCollection resolves the route's resource name to a live collection
// handle and injects it into the context for the handler. Routes behind it
// never run against an absent store connection: resolution failure aborts the
// request with 503 instead of passing through.
func BindCollection(resolver *database.Resolver, resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		col, err := resolver.Resolve(resource)
		if err != nil {
			log.Printf("[RESOLVE] [ERROR] %s: %v", resource, err)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "database unavailable"})
			return
		}

		if err := resolver.Ready(c.Request.Context()); err != nil {
			log.Printf("[RESOLVE] [ERROR] store not ready for %s: %v", resource, err)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "database unavailable"})
			return
		}

		c.Set("collection", col)
		c.Next()
	}
}
