package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tour difficulty levels.
const (
	DifficultyEasy     = "easy"
	DifficultyModerate = "moderate"
	DifficultyHard     = "hard"
)

type GeoPoint struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// PointOfInterest is a single stop within a tour. Order defines the display
// and traversal sequence; callers are responsible for keeping orders unique
// and ascending within one tour.
type PointOfInterest struct {
	ID          string   `json:"id" bson:"id"`
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description" bson:"description"`
	Location    GeoPoint `json:"location" bson:"location"`
	Image       string   `json:"image,omitempty" bson:"image,omitempty"`
	AudioURL    string   `json:"audio_url,omitempty" bson:"audio_url,omitempty"`
	Order       int      `json:"order" bson:"order"`
}

type Tour struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name"`
	Description      string             `json:"description" bson:"description"`
	Difficulty       string             `json:"difficulty" bson:"difficulty"` // easy, moderate, hard
	Duration         string             `json:"duration" bson:"duration"`     // e.g. "2-3 hours"
	Distance         string             `json:"distance" bson:"distance"`     // e.g. "5 km"
	Category         string             `json:"category" bson:"category"`     // walking, cycling, mixed
	Image            string             `json:"image,omitempty" bson:"image,omitempty"`
	PointsOfInterest []PointOfInterest  `json:"points_of_interest" bson:"points_of_interest"`
	Rating           float64            `json:"rating" bson:"rating"`
	ReviewsCount     int                `json:"reviews_count" bson:"reviews_count"`
	CreatedAt        time.Time          `json:"created_at" bson:"created_at"`
}

// TourSummary is the listing shape: a tour without its points of interest.
type TourSummary struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Description  string             `json:"description" bson:"description"`
	Difficulty   string             `json:"difficulty" bson:"difficulty"`
	Duration     string             `json:"duration" bson:"duration"`
	Distance     string             `json:"distance" bson:"distance"`
	Category     string             `json:"category" bson:"category"`
	Image        string             `json:"image,omitempty" bson:"image,omitempty"`
	Rating       float64            `json:"rating" bson:"rating"`
	ReviewsCount int                `json:"reviews_count" bson:"reviews_count"`
}

func ValidDifficulty(d string) bool {
	return d == DifficultyEasy || d == DifficultyModerate || d == DifficultyHard
}
