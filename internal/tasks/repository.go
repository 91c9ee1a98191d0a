package tasks

import (
	"context"
	"time"

	"github.com/taskhive/taskhive-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository provides task persistence operations.
type Repository interface {
	Create(ctx context.Context, t *models.Task) (*models.Task, error)
	ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Task, error)
}

// MongoRepository implements Repository on a Mongo collection.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, t *models.Task) (*models.Task, error) {
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, t)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		t.ID = oid
	}
	return t, nil
}

func (r *MongoRepository) ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Task, error) {
	if len(ids) == 0 {
		return []models.Task{}, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []models.Task{}
	for cur.Next(ctx) {
		var t models.Task
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, cur.Err()
}
