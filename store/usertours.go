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

type UserTourStore struct {
	col *mongo.Collection
}

func NewUserTourStore(col *mongo.Collection) *UserTourStore {
	return &UserTourStore{col: col}
}

func (s *UserTourStore) FindByUserAndTour(ctx context.Context, userID, tourID string) (*models.UserTour, error) {
	var enrollment models.UserTour
	err := s.col.FindOne(ctx, bson.M{"user_id": userID, "tour_id": tourID}).Decode(&enrollment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find enrollment: %w", err)
	}
	return &enrollment, nil
}

func (s *UserTourStore) ListByUser(ctx context.Context, userID string) ([]models.UserTour, error) {
	cursor, err := s.col.Find(ctx, bson.M{"user_id": userID}, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	defer cursor.Close(ctx)

	enrollments := []models.UserTour{}
	if err := cursor.All(ctx, &enrollments); err != nil {
		return nil, fmt.Errorf("decode enrollments: %w", err)
	}
	return enrollments, nil
}

func (s *UserTourStore) Insert(ctx context.Context, enrollment *models.UserTour) (string, error) {
	res, err := s.col.InsertOne(ctx, enrollment)
	if err != nil {
		return "", fmt.Errorf("insert enrollment: %w", err)
	}
	enrollment.ID = res.InsertedID.(primitive.ObjectID)
	return enrollment.ID.Hex(), nil
}
