package store

import (
	"context"
	"errors"
	"fmt"

	"wayfarer/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserStore struct {
	col *mongo.Collection
}

func NewUserStore(col *mongo.Collection) *UserStore {
	return &UserStore{col: col}
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (s *UserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var user models.User
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

// Insert stores the user and fills in its generated identifier.
func (s *UserStore) Insert(ctx context.Context, user *models.User) (string, error) {
	res, err := s.col.InsertOne(ctx, user)
	if err != nil {
		return "", fmt.Errorf("insert user: %w", err)
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return user.ID.Hex(), nil
}
