// Package instagram implements the URL-to-media resolution pipeline.
package instagram

import (
	"regexp"
	"strings"
)

var (
	// Post/reel path segment, terminated at the next slash or query.
	shortcodePattern = regexp.MustCompile(`instagram\.com/(?:p|reel)/([^/?]+)`)

	// Percent-encoded `"shortcode":"<id>"` fragment embedded in a GraphQL request URL.
	encodedShortcodePattern = regexp.MustCompile(`shortcode%22%3A%22([^%]+)%22`)

	// First path segment after the host, skipping a leading stories segment.
	usernamePattern = regexp.MustCompile(`instagram\.com/(?:stories/)?([^/?]+)`)

	// An https URL whose path includes graphql/query, terminated at the first
	// quote or whitespace. Matched against upstream failure text.
	endpointPattern = regexp.MustCompile(`(https://[^"'\s]+graphql/query[^"'\s]+)`)
)

// NormalizeURL strips the query string, everything from the first '?' onward.
func NormalizeURL(rawURL string) string {
	normalized, _, _ := strings.Cut(rawURL, "?")
	return normalized
}

// ExtractShortcode derives the stable content identifier from a post/reel URL.
// It first tries the /p/ and /reel/ path patterns, then the percent-encoded
// GraphQL fragment form used when the identifier is embedded in a request URL.
func ExtractShortcode(rawURL string) (string, error) {
	if match := shortcodePattern.FindStringSubmatch(rawURL); match != nil {
		return match[1], nil
	}

	if match := encodedShortcodePattern.FindStringSubmatch(rawURL); match != nil {
		return match[1], nil
	}

	return "", &ExtractionError{What: "shortcode", URL: rawURL}
}

// ExtractUsername derives the actor identifier from a profile or stories URL.
func ExtractUsername(rawURL string) (string, error) {
	if match := usernamePattern.FindStringSubmatch(rawURL); match != nil {
		return match[1], nil
	}

	return "", &ExtractionError{What: "username", URL: rawURL}
}

// extractEndpoint pulls an embedded graphql/query URL out of upstream failure
// text, verbatim. Returns "" when no such URL is present.
func extractEndpoint(detail string) string {
	if match := endpointPattern.FindStringSubmatch(detail); match != nil {
		return match[1]
	}
	return ""
}
