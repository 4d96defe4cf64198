// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"encoding/json"
	"io"

	"github.com/instasnap-cli/instasnap/media"
)

// Output is the structured envelope written in JSON mode.
type Output struct {
	// URL is the input URL as entered.
	URL string `json:"url"`
	// Result is the resolution envelope, after picker filtering.
	Result *media.Result `json:"result"`
}

func writeJson(out io.Writer, url string, result *media.Result) error {
	return json.NewEncoder(out).Encode(&Output{
		URL:    url,
		Result: result,
	})
}
