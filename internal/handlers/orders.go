package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/internal/models"
)

/* =========================
   REQUEST DTOs
========================= */

// Deployments disagree on the quantity field name, so all observed variants
// are accepted and normalized on ingestion.
type createOrderLessonRequest struct {
	LessonID     string `json:"lessonID"`
	ID           string `json:"id"`
	Availability *int   `json:"availability"`
	Spaces       *int   `json:"spaces"`
	Quantity     *int   `json:"requestedQuantity"`
}

type createOrderRequest struct {
	Name       string                     `json:"name"`
	Phone      string                     `json:"phone"`
	Lessons    []createOrderLessonRequest `json:"lessons" binding:"required"`
	TotalPrice float64                    `json:"totalPrice"`
}

/* =========================
   CREATE ORDER
========================= */

func CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /order"
		defer handlePanic(c, route)

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		order, err := buildOrderFromRequest(req)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		col, ok := boundCollection(c, route)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		number, err := nextOrderNumber(ctx, col)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		order.OrderNumber = number

		res, err := col.InsertOne(ctx, order)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		insertedID := ""
		if id, ok := res.InsertedID.(primitive.ObjectID); ok {
			insertedID = id.Hex()
		}

		log.Printf("[%s] order %d created", route, order.OrderNumber)
		writeJSON(c, http.StatusCreated, gin.H{
			"insertedId":  insertedID,
			"orderNumber": order.OrderNumber,
		})
	}
}

/* =========================
   GET ORDERS
========================= */

func GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders"
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

		orders := make([]bson.M, 0)
		if err := cursor.All(ctx, &orders); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		log.Printf("[%s] returning %d orders", route, len(orders))
		writeJSON(c, http.StatusOK, orders)
	}
}

/* =========================
   UPDATE ORDER BY NUMBER
========================= */

func UpdateOrderByNumber() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /order/:orderNo"
		defer handlePanic(c, route)

		// A non-numeric order number can never match a document; report it
		// as not found without a store round-trip.
		number, err := strconv.Atoi(c.Param("orderNo"))
		if err != nil {
			respondWithError(c, http.StatusNotFound, route, "order not found")
			return
		}

		var patch bson.M
		if err := c.ShouldBindJSON(&patch); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		fields := buildSetPatch(patch, "orderNumber")
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

		result, err := col.UpdateOne(ctx, bson.M{"orderNumber": number}, bson.M{"$set": fields})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if result.MatchedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "order not found")
			return
		}

		log.Printf("[%s] updated order %d (%d modified)", route, number, result.ModifiedCount)
		writeJSON(c, http.StatusOK, gin.H{
			"matchedCount":  result.MatchedCount,
			"modifiedCount": result.ModifiedCount,
		})
	}
}

/* =========================
   BUILD ORDER
========================= */

func buildOrderFromRequest(req createOrderRequest) (models.Order, error) {
	if len(req.Lessons) == 0 {
		return models.Order{}, errors.New("at least one lesson is required")
	}

	lines := make([]models.OrderLine, 0, len(req.Lessons))
	for _, lesson := range req.Lessons {
		id := strings.TrimSpace(lesson.LessonID)
		if id == "" {
			id = strings.TrimSpace(lesson.ID)
		}
		if id == "" {
			return models.Order{}, errors.New("lesson id is required")
		}

		quantity := 0
		switch {
		case lesson.Quantity != nil:
			quantity = *lesson.Quantity
		case lesson.Spaces != nil:
			quantity = *lesson.Spaces
		case lesson.Availability != nil:
			quantity = *lesson.Availability
		}
		if quantity <= 0 {
			return models.Order{}, errors.New("quantity must be greater than zero")
		}

		lines = append(lines, models.OrderLine{
			LessonID: id,
			Quantity: quantity,
		})
	}

	// Total price is stored exactly as submitted; this system never
	// recomputes it from lesson prices.
	order := models.Order{
		Name:       strings.TrimSpace(req.Name),
		Phone:      strings.TrimSpace(req.Phone),
		Lessons:    lines,
		TotalPrice: req.TotalPrice,
		CreatedAt:  time.Now(),
	}

	return order, nil
}

func nextOrderNumber(ctx context.Context, col *mongo.Collection) (int, error) {
	var last struct {
		OrderNumber int `bson:"orderNumber"`
	}

	opts := options.FindOne().
		SetSort(bson.D{{Key: "orderNumber", Value: -1}}).
		SetProjection(bson.M{"orderNumber": 1})

	err := col.FindOne(ctx, bson.M{"orderNumber": bson.M{"$exists": true}}, opts).Decode(&last)
	if err == mongo.ErrNoDocuments {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}

	return last.OrderNumber + 1, nil
}
