package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureOrderIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("orders").Indexes()

	orderNumberIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "orderNumber", Value: 1}},
		Options: options.Index().
			SetName("orderNumber_unique").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{
				"orderNumber": bson.M{
					"$exists": true,
				},
			}),
	}

	log.Println("EnsureOrderIndexes: creating orderNumber_unique index")
	_, err := indexes.CreateOne(ctx, orderNumberIndex)
	if err != nil {
		log.Println("EnsureOrderIndexes: orderNumber index error:", err)
		return err
	}
	log.Println("EnsureOrderIndexes: orderNumber_unique index created")
	return nil
}
