package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Page is an editable content page addressed by slug.
type Page struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug    string             `bson:"slug" json:"slug"`
	Title   string             `bson:"title" json:"title"`
	Content string             `bson:"content" json:"content"` // HTML
	Meta    SEOMeta            `bson:"meta,omitempty" json:"meta,omitempty"`

	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// SEOMeta is the search and social metadata attached to a document.
type SEOMeta struct {
	Title       string              `bson:"title,omitempty" json:"title,omitempty"`
	Description string              `bson:"description,omitempty" json:"description,omitempty"`
	ImageID     *primitive.ObjectID `bson:"image_id,omitempty" json:"image_id,omitempty"`
}
