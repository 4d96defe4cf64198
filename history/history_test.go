package history

import (
	"testing"
	"time"

	"github.com/instasnap-cli/instasnap/filesystem"
	"github.com/instasnap-cli/instasnap/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given a completed download", t, func() {
		viper.Set(key.HistorySaveOnDownload, true)
		viper.Set(key.PromptShowURLSuggestions, true)

		record := &SavedDownload{
			Shortcode:    "Cxyz123",
			URL:          "https://instagram.com/p/Cxyz123",
			Username:     "alice",
			Files:        []string{"/downloads/alice_1_0.jpg"},
			DownloadedAt: time.Now(),
		}

		Convey("Save then Get round-trips the record", func() {
			So(Save(record), ShouldBeNil)

			saved, err := Get()
			So(err, ShouldBeNil)
			So(saved, ShouldContainKey, "Cxyz123")
			So(saved["Cxyz123"].Username, ShouldEqual, "alice")
		})

		Convey("Saving the same shortcode replaces the record", func() {
			So(Save(record), ShouldBeNil)

			updated := *record
			updated.Files = []string{"a", "b"}
			So(Save(&updated), ShouldBeNil)

			saved, _ := Get()
			So(saved["Cxyz123"].Files, ShouldHaveLength, 2)
		})

		Convey("Save is a no-op when history is disabled", func() {
			viper.Set(key.HistorySaveOnDownload, false)
			So(Save(&SavedDownload{Shortcode: "Skipped"}), ShouldBeNil)

			saved, _ := Get()
			So(saved, ShouldNotContainKey, "Skipped")
		})

		Convey("SuggestURLs fuzzy-matches recorded URLs", func() {
			So(Save(record), ShouldBeNil)

			So(SuggestURLs("Cxyz"), ShouldContain, "https://instagram.com/p/Cxyz123")
			So(SuggestURLs(""), ShouldNotBeEmpty)
			So(SuggestURLs("zzz-no-such-url"), ShouldBeEmpty)
		})

		Convey("SuggestURLs is empty when suggestions are disabled", func() {
			So(Save(record), ShouldBeNil)
			viper.Set(key.PromptShowURLSuggestions, false)
			So(SuggestURLs("Cxyz"), ShouldBeEmpty)
		})
	})
}
