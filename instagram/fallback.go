// Package instagram implements the URL-to-media resolution pipeline.
package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/instasnap-cli/instasnap/constant"
	"github.com/instasnap-cli/instasnap/key"
	"github.com/instasnap-cli/instasnap/log"
	"github.com/instasnap-cli/instasnap/media"
	"github.com/instasnap-cli/instasnap/network"
	"github.com/spf13/viper"
)

// fallbackPayload accommodates both known response schemas: the newer
// xdt_shortcode_media key and the older shortcode_media one.
type fallbackPayload struct {
	Data *struct {
		XdtShortcodeMedia *media.Node `json:"xdt_shortcode_media"`
		ShortcodeMedia    *media.Node `json:"shortcode_media"`
	} `json:"data"`
}

// node returns the post node under whichever schema key is present,
// preferring the newer one, or nil when neither matched.
func (p *fallbackPayload) node() *media.Node {
	if p.Data == nil {
		return nil
	}
	if p.Data.XdtShortcodeMedia != nil {
		return p.Data.XdtShortcodeMedia
	}
	return p.Data.ShortcodeMedia
}

// resolveFallback issues a direct request to the alternate graphql/query
// endpoint surfaced by a primary-fetch failure.
//
// A (nil, nil) return means no fallback result is available and the caller
// must fall through to the original provider failure. The endpoint is an
// unmediated network call, so the request carries a bounded timeout.
func resolveFallback(ctx context.Context, rawURL, endpoint string) (*media.Result, error) {
	// The shortcode must be re-derivable from the original URL on its own.
	shortcode, err := ExtractShortcode(rawURL)
	if err != nil {
		return nil, err
	}

	log.Infof("attempting graphql fallback for %s", shortcode)

	timeout := viper.GetDuration(key.FallbackTimeout)
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", constant.FallbackUserAgent)

	resp, err := network.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var payload fallbackPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode fallback response: %w", err)
	}

	node := payload.node()
	if node == nil {
		log.Info("fallback response matched neither known schema")
		return nil, nil
	}

	return assemble(node, shortcode+" via GraphQL"), nil
}
