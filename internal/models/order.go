package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderLine is one booked lesson within an order. Lesson ids are stored as
// submitted; nothing cross-checks them against the lessons collection.
type OrderLine struct {
	LessonID string `bson:"lessonID" json:"lessonID"`
	Quantity int    `bson:"requestedQuantity" json:"requestedQuantity"`
}

// Order defines the persisted order document. OrderNumber is assigned
// sequentially at creation and is the identity used by the update-by-number
// endpoint.
type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderNumber int                `bson:"orderNumber" json:"orderNumber"`
	Name        string             `bson:"name" json:"name"`
	Phone       string             `bson:"phone" json:"phone"`
	Lessons     []OrderLine        `bson:"lessons" json:"lessons"`
	TotalPrice  float64            `bson:"totalPrice" json:"totalPrice"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
