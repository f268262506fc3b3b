package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Redirect sends an old path to a new location. To is either a custom URL
// or a reference to a document by collection kind and slug.
type Redirect struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	From string             `bson:"from" json:"from"`
	To   RedirectTarget     `bson:"to" json:"to"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// RedirectTarget is the destination of a Redirect. URL wins when set.
type RedirectTarget struct {
	URL  string `bson:"url,omitempty" json:"url,omitempty"`
	Kind string `bson:"kind,omitempty" json:"kind,omitempty"`
	Slug string `bson:"slug,omitempty" json:"slug,omitempty"`
}
