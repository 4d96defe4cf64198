package instagram

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalizeURL(t *testing.T) {
	Convey("NormalizeURL", t, func() {
		So(NormalizeURL("https://instagram.com/p/abc?igsh=1&x=2"), ShouldEqual, "https://instagram.com/p/abc")
		So(NormalizeURL("https://instagram.com/p/abc"), ShouldEqual, "https://instagram.com/p/abc")
		So(NormalizeURL(""), ShouldEqual, "")
	})
}

func TestExtractShortcode(t *testing.T) {
	Convey("ExtractShortcode", t, func() {
		Convey("Matches post URLs", func() {
			id, err := ExtractShortcode("https://www.instagram.com/p/Cxyz123/")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "Cxyz123")
		})

		Convey("Matches reel URLs", func() {
			id, err := ExtractShortcode("https://instagram.com/reel/DEf4_5a")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "DEf4_5a")
		})

		Convey("Stops at the query string", func() {
			id, err := ExtractShortcode("https://instagram.com/p/Cxyz123?igsh=42")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "Cxyz123")
		})

		Convey("Matches the percent-encoded GraphQL fragment", func() {
			url := "https://www.instagram.com/graphql/query?variables=%7B%22shortcode%22%3A%22Cabc999%22%7D"
			id, err := ExtractShortcode(url)
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "Cabc999")
		})

		Convey("Fails when neither pattern matches", func() {
			_, err := ExtractShortcode("https://instagram.com/someuser")
			So(err, ShouldNotBeNil)
			So(err, ShouldHaveSameTypeAs, &ExtractionError{})
			So(err.Error(), ShouldEqual, "Could not extract shortcode from URL")
		})
	})
}

func TestExtractUsername(t *testing.T) {
	Convey("ExtractUsername", t, func() {
		Convey("Matches the first path segment", func() {
			name, err := ExtractUsername("https://instagram.com/someuser")
			So(err, ShouldBeNil)
			So(name, ShouldEqual, "someuser")
		})

		Convey("Skips a leading stories segment", func() {
			name, err := ExtractUsername("https://instagram.com/stories/someuser/123")
			So(err, ShouldBeNil)
			So(name, ShouldEqual, "someuser")
		})

		Convey("Fails without a path segment", func() {
			_, err := ExtractUsername("https://example.com/")
			So(err, ShouldNotBeNil)
			So(err, ShouldHaveSameTypeAs, &ExtractionError{})
		})
	})
}

func TestExtractEndpoint(t *testing.T) {
	Convey("extractEndpoint", t, func() {
		Convey("Pulls an embedded graphql/query URL verbatim", func() {
			detail := `JSON Query to graphql/query: 401 Unauthorized - "fail" when accessing https://www.instagram.com/graphql/query?doc_id=8845758582&variables=%7B%7D [retrying]`
			So(extractEndpoint(detail), ShouldEqual,
				"https://www.instagram.com/graphql/query?doc_id=8845758582&variables=%7B%7D")
		})

		Convey("Terminates at the first quote", func() {
			detail := `error at "https://x.test/graphql/query?a=1" something`
			So(extractEndpoint(detail), ShouldEqual, "https://x.test/graphql/query?a=1")
		})

		Convey("Returns empty without a graphql/query URL", func() {
			So(extractEndpoint("plain 404 not found"), ShouldBeEmpty)
			So(extractEndpoint("https://x.test/other/path?a=1"), ShouldBeEmpty)
		})
	})
}
