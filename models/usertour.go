package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Enrollment statuses.
const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// UserTour links a user to a tour they are tracking. At most one enrollment
// should exist per (user, tour) pair; this is enforced by a lookup before
// insert, so two concurrent enroll calls can still race and create a
// duplicate.
type UserTour struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID      string             `json:"user_id" bson:"user_id"`
	TourID      string             `json:"tour_id" bson:"tour_id"`
	Status      string             `json:"status" bson:"status"` // not_started, in_progress, completed
	Progress    int                `json:"progress" bson:"progress"`
	StartedAt   time.Time          `json:"started_at" bson:"started_at"`
	CompletedAt *time.Time         `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
}
