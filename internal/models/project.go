package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project groups tasks under a title/description and an optional cover image.
// TaskIDs holds the references as stored; Tasks is filled in ("populated")
// when a project is read through the service layer and is never persisted.
type Project struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description" json:"description"`
	ImgURL      string               `bson:"imgUrl,omitempty" json:"imgUrl,omitempty"`
	TaskIDs     []primitive.ObjectID `bson:"tasks" json:"-"`
	Tasks       []Task               `bson:"-" json:"tasks"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}
