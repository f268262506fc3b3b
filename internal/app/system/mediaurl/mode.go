package mediaurl

// Mode is the set of read toggles that governs resolution for the life of
// the process. Build it once from configuration and pass it by value.
type Mode struct {
	// ForceProxyReads routes every media and document read through the
	// application's /api/<collection>/file/ endpoints.
	ForceProxyReads bool

	// DirectReads serves bytes straight from the object store's public URL.
	// It does not change path rewriting; it tells the file endpoints to
	// redirect instead of streaming and keeps cache tags off storage hosts.
	DirectReads bool
}

// ModeFromFlags derives a Mode from the raw storage toggles.
//
// Direct reads are on when public reads are explicitly enabled, or when
// object storage is in use and proxy reads are not forced.
func ModeFromFlags(useObjectStorage, publicReads, forceProxy bool) Mode {
	return Mode{
		ForceProxyReads: forceProxy,
		DirectReads:     publicReads || (useObjectStorage && !forceProxy),
	}
}
