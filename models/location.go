package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LocationPing is an append-only record of where a user was on a tour.
// Pings are never updated or deleted.
type LocationPing struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    string             `json:"user_id" bson:"user_id"`
	TourID    string             `json:"tour_id" bson:"tour_id"`
	Location  GeoPoint           `json:"location" bson:"location"`
	Timestamp time.Time          `json:"timestamp" bson:"timestamp"`
}
