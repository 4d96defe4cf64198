// Package instagram implements the URL-to-media resolution pipeline.
package instagram

import (
	"context"
	"errors"
	"fmt"

	"github.com/instasnap-cli/instasnap/log"
	"github.com/instasnap-cli/instasnap/media"
)

// resolvePost resolves a post or reel URL into a result envelope.
//
// The primary fetch goes through the provider. When it fails with a
// ProviderError carrying an alternate endpoint, the fallback path runs once;
// a fallback that yields nothing falls through to the original failure
// message, while a fallback that itself breaks surfaces with the
// distinguishing "Failed fallback" prefix.
func resolvePost(ctx context.Context, provider Provider, rawURL string) *media.Result {
	shortcode, err := ExtractShortcode(rawURL)
	if err != nil {
		return media.Failure(err.Error())
	}

	node, err := provider.PostNode(ctx, shortcode)
	if err == nil {
		return assemble(node, shortcode)
	}

	log.Warnf("primary fetch failed for %s: %v", shortcode, err)

	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		if endpoint, ok := providerErr.AlternateEndpoint.Get(); ok {
			result, fallbackErr := resolveFallback(ctx, rawURL, endpoint)
			if fallbackErr != nil {
				return media.Failure((&FallbackError{Err: fallbackErr}).Error())
			}
			if result != nil {
				return result
			}
			// No fallback result available: report the original failure.
		}
	}

	return media.Failure(err.Error())
}

// assemble expands a post node into descriptors and wraps them in a success envelope.
func assemble(node *media.Node, tag string) *media.Result {
	return media.Success(
		fmt.Sprintf("Downloaded post/reel %s", tag),
		node.Username(),
		media.Flatten(node),
	)
}
