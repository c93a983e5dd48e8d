package store

import (
	"context"
	"fmt"

	"wayfarer/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// LocationStore is append-only: pings are inserted and never read back
// through this service.
type LocationStore struct {
	col *mongo.Collection
}

func NewLocationStore(col *mongo.Collection) *LocationStore {
	return &LocationStore{col: col}
}

func (s *LocationStore) Insert(ctx context.Context, ping *models.LocationPing) (string, error) {
	res, err := s.col.InsertOne(ctx, ping)
	if err != nil {
		return "", fmt.Errorf("insert location ping: %w", err)
	}
	ping.ID = res.InsertedID.(primitive.ObjectID)
	return ping.ID.Hex(), nil
}
