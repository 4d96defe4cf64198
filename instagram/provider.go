// Package instagram implements the URL-to-media resolution pipeline.
package instagram

import (
	"context"

	"github.com/instasnap-cli/instasnap/media"
)

// Provider supplies full post metadata for a shortcode.
//
// Implementations return the deeply nested post node on success. On failure
// they return a *ProviderError; adapters wrapping upstream sources that
// surface an alternate graphql/query endpoint inside their failure text must
// set ProviderError.AlternateEndpoint explicitly, so callers never have to
// pattern-match error messages.
type Provider interface {
	// Name returns the unique identifier for the metadata provider.
	Name() string

	// PostNode retrieves the full metadata node for a post or reel shortcode.
	PostNode(ctx context.Context, shortcode string) (*media.Node, error)
}
