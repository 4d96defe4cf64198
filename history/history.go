// Package history provides the implementation for tracking and persisting completed downloads.
package history

import (
	"time"

	"github.com/instasnap-cli/instasnap/filesystem"
	"github.com/instasnap-cli/instasnap/key"
	"github.com/instasnap-cli/instasnap/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// SavedDownload is one completed resolution with the files it produced.
type SavedDownload struct {
	Shortcode    string    `json:"shortcode"`
	URL          string    `json:"url"`
	Username     string    `json:"username"`
	Files        []string  `json:"files"`
	DownloadedAt time.Time `json:"downloaded_at"`
}

// cacher provides an abstracted, disk-backed registry for download records.
var cacher = gache.New[map[string]*SavedDownload](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of download records from the persistent store.
func Get() (map[string]*SavedDownload, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*SavedDownload), nil
	}
	return cached, nil
}

// Save persists a completed download to the history registry, keyed by
// shortcode. Re-downloading the same post replaces its record.
func Save(record *SavedDownload) error {
	if !viper.GetBool(key.HistorySaveOnDownload) {
		return nil
	}

	saved, err := Get()
	if err != nil {
		return err
	}

	if record.DownloadedAt.IsZero() {
		record.DownloadedAt = time.Now()
	}
	saved[record.Shortcode] = record

	return cacher.Set(saved)
}

// SuggestURLs returns previously resolved URLs fuzzy-matching a partial
// input, most recent first. Used by the interactive prompt.
func SuggestURLs(partial string) []string {
	if !viper.GetBool(key.PromptShowURLSuggestions) {
		return []string{}
	}

	saved, err := Get()
	if err != nil {
		return []string{}
	}

	records := lo.Filter(lo.Values(saved), func(r *SavedDownload, _ int) bool {
		return partial == "" || fuzzy.Match(partial, r.URL)
	})

	slices.SortFunc(records, func(a, b *SavedDownload) int {
		return b.DownloadedAt.Compare(a.DownloadedAt)
	})

	return lo.Map(records, func(r *SavedDownload, _ int) string {
		return r.URL
	})
}
