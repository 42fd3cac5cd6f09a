package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Printf("[%s] panic recovered: %v", route, r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// writeJSON renders every response body with three-space indentation, the
// format the storefront front-end was built against.
func writeJSON(c *gin.Context, status int, payload interface{}) {
	body, err := json.MarshalIndent(payload, "", "   ")
	if err != nil {
		log.Println("[RESPONSE] encode error:", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Data(status, "application/json; charset=utf-8", body)
}

func respondWithError(c *gin.Context, status int, route string, message string) {
	log.Printf("[%s] returning error %d: %s", route, status, message)
	c.Abort()
	writeJSON(c, status, gin.H{"error": message})
}

// boundCollection fetches the handle placed in the context by the collection
// middleware. A missing or mistyped handle means the route was wired without
// the middleware, which is a programming error, not a client one.
func boundCollection(c *gin.Context, route string) (*mongo.Collection, bool) {
	value, exists := c.Get("collection")
	if !exists {
		respondWithError(c, http.StatusInternalServerError, route, "internal server error")
		return nil, false
	}
	col, ok := value.(*mongo.Collection)
	if !ok {
		respondWithError(c, http.StatusInternalServerError, route, "internal server error")
		return nil, false
	}
	return col, true
}

// buildSetPatch copies the merge-patch body, dropping _id and any caller
// supplied protected fields so a patch can never rewrite document identity.
func buildSetPatch(patch bson.M, protected ...string) bson.M {
	clean := bson.M{}
	for key, value := range patch {
		if key == "_id" {
			continue
		}
		skip := false
		for _, name := range protected {
			if key == name {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		clean[key] = value
	}
	return clean
}
