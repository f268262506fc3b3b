package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document categories used to filter documents on the front end.
const (
	DocCategoryBook     = "book"
	DocCategoryArticle  = "article"
	DocCategoryPressKit = "press-kit"
	DocCategorySlides   = "slides"
	DocCategoryResume   = "resume"
	DocCategoryOther    = "other"
)

// DocumentCategories lists every valid category in display order.
var DocumentCategories = []string{
	DocCategoryBook,
	DocCategoryArticle,
	DocCategoryPressKit,
	DocCategorySlides,
	DocCategoryResume,
	DocCategoryOther,
}

// IsValidDocumentCategory reports whether c is a known category.
func IsValidDocumentCategory(c string) bool {
	for _, v := range DocumentCategories {
		if v == c {
			return true
		}
	}
	return false
}

// Document is an uploaded PDF.
type Document struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Category    string             `bson:"category" json:"category"`

	AllowDownload    bool   `bson:"allow_download" json:"allow_download"`
	ExternalEmbedURL string `bson:"external_embed_url,omitempty" json:"external_embed_url,omitempty"`

	Filename string `bson:"filename" json:"filename"`
	MimeType string `bson:"mime_type" json:"mime_type"`
	Filesize int64  `bson:"filesize" json:"filesize"`
	URL      string `bson:"url,omitempty" json:"url,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
