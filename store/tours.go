package store

import (
	"context"
	"errors"
	"fmt"

	"wayfarer/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TourStore struct {
	col *mongo.Collection
}

func NewTourStore(col *mongo.Collection) *TourStore {
	return &TourStore{col: col}
}

// List returns at most 100 tour summaries in storage insertion order.
// An empty category or "all" leaves the listing unfiltered.
func (s *TourStore) List(ctx context.Context, category string) ([]models.TourSummary, error) {
	filter := bson.M{}
	if category != "" && category != "all" {
		filter["category"] = category
	}

	cursor, err := s.col.Find(ctx, filter, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, fmt.Errorf("list tours: %w", err)
	}
	defer cursor.Close(ctx)

	tours := []models.TourSummary{}
	if err := cursor.All(ctx, &tours); err != nil {
		return nil, fmt.Errorf("decode tours: %w", err)
	}
	return tours, nil
}

func (s *TourStore) FindByID(ctx context.Context, id string) (*models.Tour, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var tour models.Tour
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&tour)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find tour by id: %w", err)
	}
	return &tour, nil
}

func (s *TourStore) Insert(ctx context.Context, tour *models.Tour) (string, error) {
	res, err := s.col.InsertOne(ctx, tour)
	if err != nil {
		return "", fmt.Errorf("insert tour: %w", err)
	}
	tour.ID = res.InsertedID.(primitive.ObjectID)
	return tour.ID.Hex(), nil
}

func (s *TourStore) Count(ctx context.Context) (int64, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count tours: %w", err)
	}
	return count, nil
}

// InsertMany is used by the development seed route only.
func (s *TourStore) InsertMany(ctx context.Context, tours []models.Tour) (int, error) {
	docs := make([]interface{}, len(tours))
	for i := range tours {
		docs[i] = tours[i]
	}
	res, err := s.col.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert tours: %w", err)
	}
	return len(res.InsertedIDs), nil
}
