// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"

	"github.com/dalemusser/folio/internal/app/system/seed"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	logStorageMode(appCfg, logger)

	if !appCfg.Seed {
		return nil
	}
	return runSeed(ctx, coreCfg.Env, appCfg, deps, logger)
}

// runSeed loads the sample content. A refusal in prod is logged and does
// not stop the server.
func runSeed(ctx context.Context, env string, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Transfer())
	defer cancel()

	res, err := seed.Run(ctx, deps.MongoDatabase, deps.Blobs, seed.Options{
		Env:         env,
		AllowInProd: appCfg.AllowSeedInProd,
	}, logger)
	if errors.Is(err, seed.ErrRefusedInProd) {
		logger.Warn("seed skipped: set allow_seed_in_prod to seed a production database")
		return nil
	}
	if err != nil {
		logger.Error("seed failed", zap.Error(err))
		return err
	}
	if !res.Skipped {
		logger.Info("seeded sample content", zap.String("media_id", res.MediaID))
	}
	return nil
}
