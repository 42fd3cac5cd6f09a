package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func GetLessons() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /lessons"
		defer handlePanic(c, route)

		col, ok := boundCollection(c, route)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cursor, err := col.Find(ctx, bson.M{})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		// Documents are schemaless beyond the fields handlers write, so the
		// list is returned raw rather than squeezed through a struct.
		lessons := make([]bson.M, 0)
		if err := cursor.All(ctx, &lessons); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		log.Printf("[%s] returning %d lessons", route, len(lessons))
		writeJSON(c, http.StatusOK, lessons)
	}
}

// UpdateByID applies a merge-patch to the document with the given id in the
// bound collection. Mounted for both the lessons and programs routes.
func UpdateByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.Request.Method + " " + c.FullPath()
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var patch bson.M
		if err := c.ShouldBindJSON(&patch); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		fields := buildSetPatch(patch)
		if len(fields) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "empty update")
			return
		}

		col, ok := boundCollection(c, route)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if result.MatchedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "not found")
			return
		}

		log.Printf("[%s] updated %s (%d modified)", route, id.Hex(), result.ModifiedCount)
		writeJSON(c, http.StatusOK, gin.H{
			"matchedCount":  result.MatchedCount,
			"modifiedCount": result.ModifiedCount,
		})
	}
}
