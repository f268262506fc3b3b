// internal/app/bootstrap/storage.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/folio/internal/app/system/blobstore"
	"github.com/dalemusser/folio/internal/app/system/mediaurl"
	"github.com/dalemusser/waffle/pantry/storage"
	"go.uber.org/zap"
)

func (c AppConfig) r2Config() blobstore.R2Config {
	return blobstore.R2Config{
		Endpoint:        c.R2Endpoint,
		AccountID:       c.R2AccountID,
		Bucket:          c.R2Bucket,
		AccessKeyID:     c.R2AccessKeyID,
		SecretAccessKey: c.R2SecretAccessKey,
		Region:          c.R2Region,
		PathStyle:       c.R2ForcePathStyle,
		PublicBaseURL:   c.R2PublicHostname,
	}
}

// r2Enabled reports whether object storage is both requested and fully
// configured.
func (c AppConfig) r2Enabled() bool {
	return c.UseR2Storage && c.r2Config().Configured()
}

// MediaMode derives the read toggles from the storage configuration.
func (c AppConfig) MediaMode() mediaurl.Mode {
	return mediaurl.ModeFromFlags(c.r2Enabled(), c.R2PublicReads, c.UseMediaProxy)
}

// newBlobStore opens the configured backend. Its Backend() name is what
// logs and /health report.
func newBlobStore(c AppConfig) (storage.Store, error) {
	if c.r2Enabled() {
		s, err := blobstore.NewR2(c.r2Config())
		if err != nil {
			return nil, fmt.Errorf("r2 storage: %w", err)
		}
		return s, nil
	}
	l, err := blobstore.NewLocal(c.MediaDir)
	if err != nil {
		return nil, fmt.Errorf("local storage: %w", err)
	}
	return l, nil
}

// logStorageMode records which media path the process will take.
func logStorageMode(c AppConfig, logger *zap.Logger) {
	mode := c.MediaMode()
	logger.Info("media storage mode",
		zap.Bool("r2Enabled", c.r2Enabled()),
		zap.Bool("r2EnvConfigured", c.r2Config().Configured()),
		zap.Bool("r2DirectURLs", mode.DirectReads),
		zap.Bool("forceMediaProxy", mode.ForceProxyReads),
		zap.String("publicHostname", c.R2PublicHostname),
	)
}
