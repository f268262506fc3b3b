// internal/app/system/limits/limits.go
package limits

// Request body size limits for JSON endpoints.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxSubscribeBody caps the newsletter signup payload.
	MaxSubscribeBody = 4 << 10 // 4 KB

	// MaxUpstreamDrain is how much of an upstream response body is read
	// before the connection is released.
	MaxUpstreamDrain = 64 << 10 // 64 KB
)
