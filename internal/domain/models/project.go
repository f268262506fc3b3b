package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is a case study listed under /projects. It shares the post layout
// and can carry a video asset and links to related projects.
type Project struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title  string             `bson:"title" json:"title"`
	Slug   string             `bson:"slug" json:"slug"`
	Status string             `bson:"status" json:"status"`

	HeroImageID  *primitive.ObjectID  `bson:"hero_image_id,omitempty" json:"hero_image_id,omitempty"`
	VideoAssetID *primitive.ObjectID  `bson:"video_asset_id,omitempty" json:"video_asset_id,omitempty"`
	Content      RichText             `bson:"content,omitempty" json:"content,omitempty"`
	Categories   []string             `bson:"categories,omitempty" json:"categories,omitempty"`
	RelatedIDs   []primitive.ObjectID `bson:"related_ids,omitempty" json:"related_ids,omitempty"`
	Meta         SEOMeta              `bson:"meta,omitempty" json:"meta,omitempty"`

	PublishedAt *time.Time `bson:"published_at,omitempty" json:"published_at,omitempty"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
