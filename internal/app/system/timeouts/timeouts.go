// Package timeouts provides centralized timeout values for handler operations.
//
// Handlers wrap database reads, blob store reads and outbound HTTP calls in
// context.WithTimeout using these values. Configure or ConfigureFromEnv may
// override them at startup; otherwise the defaults apply.
//
// Which one to use:
//   - Ping: health checks and connectivity verification
//   - Short: single-document reads (page by slug, media by id)
//   - Medium: list queries and seed writes
//   - Upstream: outbound HTTP (newsletter provider); primary-document
//     fetches fall back to a 404 when it expires
//   - Transfer: streaming a file out of the blob store
package timeouts

import (
	"context"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing     = 2 * time.Second
	DefaultShort    = 5 * time.Second
	DefaultMedium   = 10 * time.Second
	DefaultUpstream = 5 * time.Second
	DefaultTransfer = 60 * time.Second
)

var mu sync.RWMutex

var (
	ping     = DefaultPing
	short    = DefaultShort
	medium   = DefaultMedium
	upstream = DefaultUpstream
	transfer = DefaultTransfer
)

func get(d *time.Duration) time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return *d
}

// Ping returns the timeout for health checks.
func Ping() time.Duration { return get(&ping) }

// Short returns the timeout for single-document reads.
func Short() time.Duration { return get(&short) }

// Medium returns the timeout for list queries and moderate writes.
func Medium() time.Duration { return get(&medium) }

// Upstream returns the timeout for calls to external HTTP services.
func Upstream() time.Duration { return get(&upstream) }

// Transfer returns the timeout for streaming a stored file to a client.
func Transfer() time.Duration { return get(&transfer) }

// Config holds timeout configuration values.
// Zero values are ignored (defaults are kept).
type Config struct {
	Ping     time.Duration
	Short    time.Duration
	Medium   time.Duration
	Upstream time.Duration
	Transfer time.Duration
}

func (c Config) apply() {
	set := func(dst *time.Duration, v time.Duration) {
		if v > 0 {
			*dst = v
		}
	}
	set(&ping, c.Ping)
	set(&short, c.Short)
	set(&medium, c.Medium)
	set(&upstream, c.Upstream)
	set(&transfer, c.Transfer)
}

// Configure sets custom timeout values. Call it during startup before
// handlers are registered.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	cfg.apply()
}

// Reset restores all timeouts to their default values.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping, short, medium, upstream, transfer = DefaultPing, DefaultShort, DefaultMedium, DefaultUpstream, DefaultTransfer
}

// ConfigureFromEnv reads TIMEOUT_PING, TIMEOUT_SHORT, TIMEOUT_MEDIUM,
// TIMEOUT_UPSTREAM and TIMEOUT_TRANSFER (Go duration strings such as "5s").
// Unset or invalid values are skipped. Returns how many were applied.
func ConfigureFromEnv() int {
	vars := []struct {
		name string
		dst  *time.Duration
	}{
		{"TIMEOUT_PING", &ping},
		{"TIMEOUT_SHORT", &short},
		{"TIMEOUT_MEDIUM", &medium},
		{"TIMEOUT_UPSTREAM", &upstream},
		{"TIMEOUT_TRANSFER", &transfer},
	}

	mu.Lock()
	defer mu.Unlock()
	configured := 0
	for _, v := range vars {
		raw := os.Getenv(v.name)
		if raw == "" {
			continue
		}
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			*v.dst = d
			configured++
		}
	}
	return configured
}

// Current returns the current timeout configuration, for startup logging.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{Ping: ping, Short: short, Medium: medium, Upstream: upstream, Transfer: transfer}
}

// WithTimeout creates a context with timeout and returns a cancel function that
// logs a warning if the deadline was hit.
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Upstream(), h.Log, "newsletter subscribe")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
