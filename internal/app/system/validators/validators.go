// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	"github.com/dalemusser/folio/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureAll creates the content collections (if missing) and attaches
// JSON-Schema validators. On servers that don't support collMod/validators
// (e.g. some DocumentDB versions), we log and skip.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	existing, listErr := db.ListCollectionNames(ctx, bson.M{})
	have := make(map[string]bool, len(existing))
	for _, n := range existing {
		have[n] = true
	}

	ensure := func(coll string, schema bson.M) {
		if listErr != nil || !have[coll] {
			if err := createCollection(ctx, db, coll); err != nil {
				problems = append(problems, coll+": "+err.Error())
				return
			}
		}
		if err := setValidator(ctx, db, coll, schema); err != nil {
			if isUnsupported(err) {
				zap.L().Info("validator skipped (unsupported)", zap.String("collection", coll))
				return
			}
			problems = append(problems, coll+": "+err.Error())
		}
	}

	ensure("pages", pagesSchema())
	ensure("media", mediaSchema())
	ensure("documents", documentsSchema())
	ensure("watch", watchSchema())
	ensure("posts", articleSchema())
	ensure("projects", articleSchema())
	ensure("redirects", redirectsSchema())

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func createCollection(ctx context.Context, db *mongo.Database, name string) error {
	if err := db.CreateCollection(ctx, name); err != nil {
		// Lost a race with another instance or a prior run.
		if isNamespaceExistsErr(err) {
			return nil
		}
		zap.L().Warn("createCollection failed", zap.String("collection", name), zap.Error(err))
		return err
	}
	zap.L().Info("created collection", zap.String("collection", name))
	return nil
}

func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	return db.RunCommand(ctx, cmd).Err()
}

/* ------------------------- error helpers ------------------------- */

func commandError(err error) (mongo.CommandError, bool) {
	var ce mongo.CommandError
	ok := errors.As(err, &ce)
	return ce, ok
}

func isNamespaceExistsErr(err error) bool {
	if ce, ok := commandError(err); ok && ce.Code == 48 {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "already exists") || strings.Contains(s, "namespace exists")
}

// isUnsupported matches "no such command" (59) and "not implemented" (115).
func isUnsupported(err error) bool {
	if ce, ok := commandError(err); ok && (ce.Code == 59 || ce.Code == 115) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "no such command") ||
		strings.Contains(s, "not implemented") ||
		strings.Contains(s, "not supported")
}

/* ------------------------- JSON-Schema docs ---------------------- */

var nonBlank = bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"}

func pagesSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"slug"},
			"properties": bson.M{
				"slug":    nonBlank,
				"title":   bson.M{"bsonType": "string"},
				"content": bson.M{"bsonType": "string"},
			},
		},
	}
}

func mediaSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"filename", "mime_type", "media_type"},
			"properties": bson.M{
				"filename":   nonBlank,
				"mime_type":  nonBlank,
				"media_type": bson.M{"enum": bson.A{models.MediaTypeImage, models.MediaTypeVideo, models.MediaTypeAudio}},
				"filesize":   bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
				"url":        bson.M{"bsonType": "string"},
			},
		},
	}
}

func documentsSchema() bson.M {
	categories := bson.A{}
	for _, c := range models.DocumentCategories {
		categories = append(categories, c)
	}
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"title", "filename", "category"},
			"properties": bson.M{
				"title":    nonBlank,
				"filename": nonBlank,
				"category": bson.M{"enum": categories},
				"url":      bson.M{"bsonType": "string"},
			},
		},
	}
}

func watchSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"title", "slug", "status"},
			"properties": bson.M{
				"title":     nonBlank,
				"slug":      nonBlank,
				"status":    bson.M{"enum": bson.A{models.StatusDraft, models.StatusPublished}},
				"video_url": bson.M{"bsonType": "string"},
			},
		},
	}
}

// articleSchema is shared by posts and projects. Upserts write nil slices as
// null, so list fields accept null.
func articleSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"title", "slug", "status"},
			"properties": bson.M{
				"title":       nonBlank,
				"slug":        nonBlank,
				"status":      bson.M{"enum": bson.A{models.StatusDraft, models.StatusPublished}},
				"categories":  bson.M{"bsonType": bson.A{"array", "null"}, "items": bson.M{"bsonType": "string"}},
				"related_ids": bson.M{"bsonType": bson.A{"array", "null"}, "items": bson.M{"bsonType": "objectId"}},
			},
		},
	}
}

func redirectsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"from", "to"},
			"properties": bson.M{
				"from": bson.M{"bsonType": "string", "pattern": "^/"},
				"to":   bson.M{"bsonType": "object"},
			},
		},
	}
}
