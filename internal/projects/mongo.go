package projects

import (
	"context"
	"time"

	"github.com/taskhive/taskhive-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository implements Repository on a Mongo collection.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.TaskIDs == nil {
		p.TaskIDs = []primitive.ObjectID{}
	}
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return p, nil
}

func (r *MongoRepository) List(ctx context.Context) ([]*models.Project, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*models.Project{}
	for cur.Next(ctx) {
		var p models.Project
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, cur.Err()
}

func (r *MongoRepository) Get(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var p models.Project
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *MongoRepository) Update(ctx context.Context, id primitive.ObjectID, title, description string) (*models.Project, error) {
	set := bson.M{"title": title, "description": description, "updatedAt": time.Now().UTC()}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.Project
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Delete removes the project if present. Deleting an unknown id is not an
// error; the endpoint reports success either way.
func (r *MongoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *MongoRepository) AttachTask(ctx context.Context, projectID, taskID primitive.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": projectID}, bson.M{"$push": bson.M{"tasks": taskID}})
	return err
}
