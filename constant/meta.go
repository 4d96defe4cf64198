// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Instasnap is the canonical application identifier used for filesystem paths and CLI branding.
	Instasnap = "instasnap"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is the default HTTP User-Agent string used for network requests to Instagram endpoints.
	UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// FallbackUserAgent is the minimal browser identification sent to the GraphQL
	// fallback endpoint. Some endpoints reject requests without it.
	FallbackUserAgent = "Mozilla/5.0"
)

// Build metadata, overridden at release time via -ldflags.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
