// Package instagram implements the URL-to-media resolution pipeline.
package instagram

import (
	"fmt"

	"github.com/samber/mo"
)

// ExtractionError reports a URL whose shape matches no known identifier pattern.
type ExtractionError struct {
	What string // "shortcode" or "username"
	URL  string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("Could not extract %s from URL", e.What)
}

// ProviderError reports a failed primary metadata fetch.
//
// AlternateEndpoint is populated by the provider adapter when the upstream
// failure surfaced a graphql/query URL it attempted and rejected; the
// orchestrator branches on this field rather than on the message text.
type ProviderError struct {
	Shortcode         string
	AlternateEndpoint mo.Option[string]
	Err               error
}

// Error returns the raw upstream failure message, which propagates unchanged
// into the result envelope when no fallback is available.
func (e *ProviderError) Error() string {
	return e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// FallbackError reports a failure inside the fallback request itself, as
// opposed to the fallback yielding no result.
type FallbackError struct {
	Err error
}

func (e *FallbackError) Error() string {
	return fmt.Sprintf("Failed fallback: %s", e.Err)
}

func (e *FallbackError) Unwrap() error {
	return e.Err
}
