package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Publication states shared by pages and watch entries.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Watch is a talk, interview or other video shown on the watch pages.
type Watch struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title  string             `bson:"title" json:"title"`
	Slug   string             `bson:"slug" json:"slug"`
	Status string             `bson:"status" json:"status"`

	// VideoURL is either a hosted player link (YouTube, Vimeo) or a direct
	// video file.
	VideoURL    string              `bson:"video_url" json:"video_url"`
	ThumbnailID *primitive.ObjectID `bson:"thumbnail_id,omitempty" json:"thumbnail_id,omitempty"`
	Description RichText            `bson:"description,omitempty" json:"description,omitempty"`
	Meta        SEOMeta             `bson:"meta,omitempty" json:"meta,omitempty"`

	PublishedAt *time.Time `bson:"published_at,omitempty" json:"published_at,omitempty"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
