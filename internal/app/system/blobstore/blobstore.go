// Package blobstore opens the file store for uploaded media and documents.
//
// Every backend satisfies waffle's storage.Store. Local development keeps
// files on disk through storage.Local; production uses R2, Cloudflare's
// S3-compatible bucket, through the minio-backed R2 type in this package.
package blobstore

import (
	"errors"
	"strings"

	"github.com/dalemusser/waffle/pantry/storage"
)

// NewLocal returns a disk-backed store rooted at dir, creating it if needed.
// URL always returns "" so local files are only reachable through the file
// proxy.
func NewLocal(dir string) (*storage.Local, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("blobstore: local root is required")
	}
	return storage.NewLocal(storage.LocalConfig{BasePath: dir})
}

// CleanKey normalizes a requested filename into a storage path. It returns
// storage.ErrInvalidPath for empty keys and keys that try to leave the root.
func CleanKey(key string) (string, error) {
	key = strings.TrimSpace(strings.ReplaceAll(key, "\\", "/"))
	if key == "" {
		return "", storage.ErrInvalidPath
	}
	if err := storage.ValidatePath(key); err != nil {
		return "", err
	}
	p := storage.NormalizePath(key)
	if p == "" || p == "." || p == "/" {
		return "", storage.ErrInvalidPath
	}
	return p, nil
}
