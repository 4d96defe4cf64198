// Package instagram implements the URL-to-media resolution pipeline.
//
// A post/reel URL resolves through identifier extraction, a primary metadata
// fetch and, when the primary fetch surfaces an alternate graphql/query
// endpoint, a single direct fallback request. Raw post metadata, including
// carousels, normalizes into a flat ordered list of media descriptors.
package instagram

import (
	"context"
	"strings"

	"github.com/instasnap-cli/instasnap/media"
)

// operation classifies a URL by its path shape.
type operation int

const (
	opPost operation = iota
	opStories
	opProfile
	opUnknown
)

// unsupported maps permanently unsupported operations to their result
// messages. These branches never attempt network calls.
var unsupported = map[operation]string{
	opStories: "Stories download is not supported",
	opProfile: "Profile download is not supported",
	opUnknown: "Unsupported URL format",
}

// classify inspects the query-stripped URL and selects the matching branch,
// in priority order: post/reel, stories, profile, unrecognized.
func classify(url string) operation {
	switch {
	case strings.Contains(url, "instagram.com/p/") || strings.Contains(url, "instagram.com/reel/"):
		return opPost
	case strings.Contains(url, "instagram.com/stories/"):
		return opStories
	case usernamePattern.MatchString(url):
		return opProfile
	default:
		return opUnknown
	}
}

// Resolve is the top-level entry point: it classifies the input URL and
// dispatches to the matching resolver, always returning a structured envelope.
func Resolve(ctx context.Context, provider Provider, rawURL string) *media.Result {
	op := classify(NormalizeURL(rawURL))
	if op == opPost {
		return resolvePost(ctx, provider, rawURL)
	}
	return media.Failure(unsupported[op])
}
