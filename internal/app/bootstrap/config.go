// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"os"
	"strings"

	"github.com/dalemusser/folio/internal/app/system/mediaurl"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for folio.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, server_url, etc.
//   - Environment variables: FOLIO_MONGO_URI, FOLIO_SERVER_URL, etc.
//   - Command-line flags: --mongo_uri, --server_url, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "folio", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 5, Desc: "MongoDB min connection pool size (default: 5)"},

	{Name: "server_url", Default: "", Desc: "Canonical public origin; blank falls back to platform URLs"},
	{Name: "site_name", Default: "Folio", Desc: "Brand appended to page titles"},
	{Name: "trust_proxy_headers", Default: false, Desc: "Honour X-Forwarded-Host/Proto from a fronting reverse proxy"},

	// Media storage
	{Name: "use_r2_storage", Default: false, Desc: "Store media in R2/S3 instead of media_dir"},
	{Name: "r2_public_reads", Default: false, Desc: "Objects are publicly readable at r2_public_hostname"},
	{Name: "use_media_proxy", Default: false, Desc: "Force every media and document read through the file endpoints"},
	{Name: "r2_bucket", Default: "", Desc: "R2/S3 bucket name"},
	{Name: "r2_account_id", Default: "", Desc: "Cloudflare account id (derives the R2 endpoint)"},
	{Name: "r2_access_key_id", Default: "", Desc: "R2/S3 access key id"},
	{Name: "r2_secret_access_key", Default: "", Desc: "R2/S3 secret access key"},
	{Name: "r2_endpoint", Default: "", Desc: "Explicit S3 endpoint; overrides the account endpoint"},
	{Name: "r2_region", Default: "auto", Desc: "S3 region"},
	{Name: "r2_public_hostname", Default: "", Desc: "Public bucket hostname for direct reads"},
	{Name: "r2_force_path_style", Default: true, Desc: "Use path-style bucket addressing"},
	{Name: "media_dir", Default: "./media", Desc: "Local media directory when object storage is off"},

	{Name: "subscribe_url", Default: "", Desc: "Newsletter provider subscribe endpoint"},

	{Name: "seed", Default: false, Desc: "Load sample content on startup when the site is empty"},
	{Name: "allow_seed_in_prod", Default: false, Desc: "Permit seeding when env is prod"},
}

// Platform variables set by hosting providers. They are not prefixed, so
// they are read directly rather than through appConfigKeys.
const (
	envURL            = "URL"
	envDeployPrimeURL = "DEPLOY_PRIME_URL"
	envPagesURL       = "CF_PAGES_URL"
	envProductionURL  = "VERCEL_PROJECT_PRODUCTION_URL"
	envPublicServer   = "NEXT_PUBLIC_SERVER_URL"
)

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges .env files, config files,
// FOLIO_* environment variables and flags with precedence
// flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "FOLIO", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		ServerURL: strings.TrimRight(appValues.String("server_url"), "/"),
		SiteName:  appValues.String("site_name"),

		TrustProxyHeaders: appValues.Bool("trust_proxy_headers"),

		UseR2Storage:      appValues.Bool("use_r2_storage"),
		R2PublicReads:     appValues.Bool("r2_public_reads"),
		UseMediaProxy:     appValues.Bool("use_media_proxy"),
		R2Bucket:          appValues.String("r2_bucket"),
		R2AccountID:       appValues.String("r2_account_id"),
		R2AccessKeyID:     appValues.String("r2_access_key_id"),
		R2SecretAccessKey: appValues.String("r2_secret_access_key"),
		R2Endpoint:        appValues.String("r2_endpoint"),
		R2Region:          appValues.String("r2_region"),
		R2PublicHostname:  appValues.String("r2_public_hostname"),
		R2ForcePathStyle:  appValues.Bool("r2_force_path_style"),
		MediaDir:          appValues.String("media_dir"),

		SubscribeURL: appValues.String("subscribe_url"),

		Seed:            appValues.Bool("seed"),
		AllowSeedInProd: appValues.Bool("allow_seed_in_prod"),
	}
	appCfg.Platform = platformEnv(os.Getenv, appCfg.ServerURL)
	appCfg.Platform.TrustForwarded = appCfg.TrustProxyHeaders

	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeouts overridden from environment", zap.Int("count", n), zap.Any("timeouts", timeouts.Current()))
	}

	return coreCfg, appCfg, nil
}

// platformEnv snapshots the hosting platform URLs. An explicit server_url
// wins over the public server variable.
func platformEnv(getenv func(string) string, serverURL string) mediaurl.Env {
	if serverURL == "" {
		serverURL = strings.TrimSpace(getenv(envPublicServer))
	}
	return mediaurl.Env{
		ServerURL:      serverURL,
		URL:            strings.TrimSpace(getenv(envURL)),
		DeployPrimeURL: strings.TrimSpace(getenv(envDeployPrimeURL)),
		PagesURL:       strings.TrimSpace(getenv(envPagesURL)),
		ProductionURL:  strings.TrimSpace(getenv(envProductionURL)),
	}
}

// ValidateConfig performs app-specific config validation.
//
// The MongoDB URI and any configured public URLs are checked here so a bad
// value fails startup instead of the first request.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.MongoDatabase == "" {
		return fmt.Errorf("mongo_database is required")
	}

	for name, v := range map[string]string{
		"server_url":    appCfg.ServerURL,
		"subscribe_url": appCfg.SubscribeURL,
		"r2_endpoint":   absoluteOrEmpty(appCfg.R2Endpoint),
	} {
		if v != "" && !urlutil.IsValidAbsHTTPURL(v) {
			return fmt.Errorf("%s must be an absolute http(s) URL, got %q", name, v)
		}
	}

	if appCfg.UseR2Storage && !appCfg.r2Config().Configured() {
		logger.Warn("use_r2_storage is set but R2 credentials are incomplete; falling back to local media",
			zap.Bool("bucket", appCfg.R2Bucket != ""),
			zap.Bool("access_key", appCfg.R2AccessKeyID != ""),
			zap.Bool("secret", appCfg.R2SecretAccessKey != ""),
			zap.Bool("endpoint_or_account", appCfg.R2Endpoint != "" || appCfg.R2AccountID != ""))
	}
	if appCfg.R2PublicReads && appCfg.R2PublicHostname == "" {
		logger.Warn("r2_public_reads is set without r2_public_hostname; file endpoints will stream instead of redirecting")
	}
	if appCfg.MaxPoolBelowMin() {
		return fmt.Errorf("mongo_max_pool_size (%d) is below mongo_min_pool_size (%d)", appCfg.MongoMaxPoolSize, appCfg.MongoMinPoolSize)
	}

	return nil
}

// MaxPoolBelowMin reports an inverted pool size range. Zero max means the
// driver default.
func (c AppConfig) MaxPoolBelowMin() bool {
	return c.MongoMaxPoolSize != 0 && c.MongoMaxPoolSize < c.MongoMinPoolSize
}

// absoluteOrEmpty returns endpoints given with a scheme; bare hosts are
// accepted as is and skip the URL check.
func absoluteOrEmpty(endpoint string) string {
	if strings.Contains(endpoint, "://") {
		return endpoint
	}
	return ""
}
