package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task is a single unit of work belonging to exactly one project.
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	ProjectID   primitive.ObjectID `bson:"project" json:"project"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
