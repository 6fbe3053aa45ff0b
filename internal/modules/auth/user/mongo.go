package user

import (
	"context"
	"errors"

	"github.com/atomtask/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository returns a Repository backed by the users collection.
// Uniqueness of the email field is guaranteed by the index created at startup.
func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{coll: db.Collection(models.UserModel{}.CollectionName())}
}

func (r *mongoRepository) FindByEmail(ctx context.Context, email string) (*models.UserModel, error) {
	var u models.UserModel
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *mongoRepository) Create(ctx context.Context, u *models.UserModel) error {
	_, err := r.coll.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return errEmailTaken
	}
	return err
}
