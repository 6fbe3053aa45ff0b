package token

import (
	"context"
	"errors"
	"time"

	"github.com/atomtask/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository returns a Repository backed by the accessTokens
// collection. The token id is the document _id, so lookups are point reads.
func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{coll: db.Collection(models.AccessTokenModel{}.CollectionName())}
}

func (r *mongoRepository) Create(ctx context.Context, t *models.AccessTokenModel) error {
	_, err := r.coll.InsertOne(ctx, t)
	return err
}

func (r *mongoRepository) FindValid(ctx context.Context, id string, now time.Time) (*models.AccessTokenModel, error) {
	var t models.AccessTokenModel
	err := r.coll.FindOne(ctx, bson.M{
		"_id":       id,
		"revoked":   false,
		"expiresAt": bson.M{"$gt": now},
	}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *mongoRepository) Revoke(ctx context.Context, id string) error {
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"revoked": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrTokenNotFound
	}
	return nil
}

func (r *mongoRepository) DeleteInactiveBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"$or": bson.A{
		bson.M{"expiresAt": bson.M{"$lt": cutoff}},
		bson.M{"revoked": true},
	}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
