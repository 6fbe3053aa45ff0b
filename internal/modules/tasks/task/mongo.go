package task

import (
	"context"
	"errors"

	"github.com/atomtask/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository returns a Repository backed by the tasks collection.
func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{coll: db.Collection(models.TaskModel{}.CollectionName())}
}

func (r *mongoRepository) GetAll(ctx context.Context) ([]models.TaskModel, error) {
	cur, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var tasks []models.TaskModel
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id string) (*models.TaskModel, error) {
	var t models.TaskModel
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *mongoRepository) Create(ctx context.Context, t *models.TaskModel) error {
	_, err := r.coll.InsertOne(ctx, t)
	return err
}

func (r *mongoRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errTaskNotFound
	}
	return nil
}

func (r *mongoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errTaskNotFound
	}
	return nil
}
