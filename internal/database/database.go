package database

import (
	"context"
	"fmt"
	"time"

	"github.com/atomtask/core/internal/config"
	"github.com/atomtask/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 5 * time.Second

// Connect opens a MongoDB connection, verifies it and ensures indexes.
func Connect(ctx context.Context, cfg *config.AppConfig) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	db := client.Database(cfg.MongoDB)
	if err := ensureIndexes(ctx, db); err != nil {
		return nil, fmt.Errorf("index bootstrap failed: %w", err)
	}
	return db, nil
}

// Disconnect closes the underlying client connection.
func Disconnect(ctx context.Context, db *mongo.Database) error {
	return db.Client().Disconnect(ctx)
}

// ensureIndexes creates the indexes the repositories rely on. The unique
// email index is what makes registration safe against concurrent
// check-then-create races.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	users := db.Collection(models.UserModel{}.CollectionName())
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	tokens := db.Collection(models.AccessTokenModel{}.CollectionName())
	if _, err := tokens.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "expiresAt", Value: 1}},
	}); err != nil {
		return err
	}

	tasks := db.Collection(models.TaskModel{}.CollectionName())
	if _, err := tasks.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	}); err != nil {
		return err
	}
	return nil
}
