package db

import (
	"context"
	"fmt"

	"wayfarer/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Database wraps the MongoDB client and the collections the service uses.
// The connection is established once at startup and closed at shutdown.
type Database struct {
	Client          *mongo.Client
	Users           *mongo.Collection
	Tours           *mongo.Collection
	UserTours       *mongo.Collection
	LocationHistory *mongo.Collection
}

func Connect(ctx context.Context, cfg *config.Config) (*Database, error) {
	clientOptions := options.Client().ApplyURI(cfg.MongoURI)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}

	database := client.Database(cfg.DBName)
	return &Database{
		Client:          client,
		Users:           database.Collection("users"),
		Tours:           database.Collection("tours"),
		UserTours:       database.Collection("user_tours"),
		LocationHistory: database.Collection("location_history"),
	}, nil
}

func (d *Database) Close(ctx context.Context) error {
	return d.Client.Disconnect(ctx)
}
