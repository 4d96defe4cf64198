// Package instagram implements the URL-to-media resolution pipeline.
package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/instasnap-cli/instasnap/log"
	"github.com/instasnap-cli/instasnap/media"
	"github.com/instasnap-cli/instasnap/network"
	"github.com/samber/mo"
)

// postEndpoint is the web query endpoint serving full post metadata.
const postEndpoint = "https://www.instagram.com/p/%s/?__a=1&__d=dis"

// webProvider fetches post metadata from Instagram's public web endpoint.
//
// The endpoint rejects Go's native TLS stack, so requests go through the
// browser-fingerprint client. When the endpoint refuses a request it often
// embeds the lower-level graphql/query URL it consulted inside the response
// body; the adapter lifts that URL into ProviderError.AlternateEndpoint.
type webProvider struct{}

// NewWebProvider returns the default metadata provider.
func NewWebProvider() Provider {
	return &webProvider{}
}

func (webProvider) Name() string {
	return "instagram-web"
}

// postPayload mirrors the subset of the web response the resolver consumes.
type postPayload struct {
	Graphql struct {
		ShortcodeMedia *media.Node `json:"shortcode_media"`
	} `json:"graphql"`
}

func (p *webProvider) PostNode(ctx context.Context, shortcode string) (*media.Node, error) {
	url := fmt.Sprintf(postEndpoint, shortcode)

	body, status, err := network.BrowserGet(ctx, url, nil)
	if err != nil {
		return nil, p.fail(shortcode, "", err)
	}

	if status != http.StatusOK {
		log.Warnf("post endpoint returned %d for %s", status, shortcode)
		return nil, p.fail(shortcode, string(body),
			fmt.Errorf("fetching post %s: HTTP %d: %s", shortcode, status, body))
	}

	var payload postPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, p.fail(shortcode, string(body),
			fmt.Errorf("fetching post %s: unexpected response shape", shortcode))
	}

	if payload.Graphql.ShortcodeMedia == nil {
		return nil, p.fail(shortcode, string(body),
			fmt.Errorf("fetching post %s: no media in response", shortcode))
	}

	return payload.Graphql.ShortcodeMedia, nil
}

// fail wraps an upstream failure, lifting any embedded graphql/query endpoint
// out of the failure detail into the structured field.
func (webProvider) fail(shortcode, detail string, err error) *ProviderError {
	endpoint := extractEndpoint(detail)
	if endpoint == "" {
		endpoint = extractEndpoint(err.Error())
	}

	alternate := mo.None[string]()
	if endpoint != "" {
		log.Infof("upstream failure for %s surfaced alternate endpoint", shortcode)
		alternate = mo.Some(endpoint)
	}

	return &ProviderError{
		Shortcode:         shortcode,
		AlternateEndpoint: alternate,
		Err:               err,
	}
}
