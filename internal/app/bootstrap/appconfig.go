// internal/app/bootstrap/appconfig.go
package bootstrap

import "github.com/dalemusser/folio/internal/app/system/mediaurl"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers the
// framework side (ports, TLS, logging, CORS); AppConfig is everything that
// belongs to the site itself.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Public site identity
	ServerURL string // Canonical public origin (e.g., https://folio.example.com)
	SiteName  string // Brand appended to page titles

	// TrustProxyHeaders honours X-Forwarded-Host/Proto when deriving request
	// origins. Leave off unless a proxy that rewrites them fronts the app.
	TrustProxyHeaders bool

	// Media storage toggles
	UseR2Storage  bool // Store media in R2/S3 instead of the local media directory
	R2PublicReads bool // Objects are publicly readable at R2PublicHostname
	UseMediaProxy bool // Force every read through /api/<collection>/file/

	// R2/S3 connection (only used when UseR2Storage is set)
	R2Bucket          string
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2Endpoint        string // Overrides the account endpoint (MinIO, other S3 providers)
	R2Region          string
	R2PublicHostname  string // Public bucket host (e.g., pub-xxxx.r2.dev or media.example.com)
	R2ForcePathStyle  bool

	// Local storage
	MediaDir string // Directory used when object storage is off

	// Newsletter
	SubscribeURL string // Provider form endpoint; empty disables /api/subscribe

	// Seeding
	Seed            bool // Load sample content on startup when the site is empty
	AllowSeedInProd bool

	// Platform deployment URLs, read once at startup.
	Platform mediaurl.Env
}
