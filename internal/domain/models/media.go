package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Media types, derived from the uploaded file's MIME type.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
	MediaTypeAudio = "audio"
)

// Named image variants generated on upload.
const (
	SizeThumbnail = "thumbnail"
	SizeSquare    = "square"
	SizeSmall     = "small"
	SizeMedium    = "medium"
	SizeLarge     = "large"
	SizeXLarge    = "xlarge"
	SizeOG        = "og"
)

// Media is an uploaded image, video or audio file.
type Media struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Alt       string             `bson:"alt,omitempty" json:"alt,omitempty"`
	MediaType string             `bson:"media_type" json:"media_type"`

	Filename string `bson:"filename" json:"filename"`
	MimeType string `bson:"mime_type" json:"mime_type"`
	Filesize int64  `bson:"filesize" json:"filesize"`
	URL      string `bson:"url,omitempty" json:"url,omitempty"`
	Width    int    `bson:"width,omitempty" json:"width,omitempty"`
	Height   int    `bson:"height,omitempty" json:"height,omitempty"`

	Sizes map[string]MediaSize `bson:"sizes,omitempty" json:"sizes,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// MediaSize is one generated variant of an image.
type MediaSize struct {
	URL      string `bson:"url,omitempty" json:"url,omitempty"`
	Filename string `bson:"filename,omitempty" json:"filename,omitempty"`
	MimeType string `bson:"mime_type,omitempty" json:"mime_type,omitempty"`
	Filesize int64  `bson:"filesize,omitempty" json:"filesize,omitempty"`
	Width    int    `bson:"width,omitempty" json:"width,omitempty"`
	Height   int    `bson:"height,omitempty" json:"height,omitempty"`
}

// MediaTypeFromMime maps a MIME type to a media type, or "" when the type is
// not one the media collection accepts.
func MediaTypeFromMime(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return MediaTypeImage
	case strings.HasPrefix(mimeType, "video/"):
		return MediaTypeVideo
	case strings.HasPrefix(mimeType, "audio/"):
		return MediaTypeAudio
	}
	return ""
}
