package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/instasnap-cli/instasnap/instagram"
	"github.com/instasnap-cli/instasnap/media"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

type stubProvider struct {
	node *media.Node
	err  error
}

func (stubProvider) Name() string { return "stub" }

func (s stubProvider) PostNode(ctx context.Context, shortcode string) (*media.Node, error) {
	return s.node, s.err
}

func postNode() *media.Node {
	return &media.Node{
		Owner:            &media.Owner{Username: "alice"},
		DisplayResources: []media.Variant{{Src: "cover", Width: 640, Height: 640}},
	}
}

func descriptors() []*media.Descriptor {
	return []*media.Descriptor{
		{Kind: media.Image, URL: "img-1"},
		{Kind: media.Video, URL: "vid-1"},
		{Kind: media.Image, URL: "img-2"},
	}
}

func TestParsePicker(t *testing.T) {
	Convey("ParsePicker", t, func() {
		input := descriptors()

		pick := func(description string) []*media.Descriptor {
			picker, err := ParsePicker(description)
			So(err, ShouldBeNil)
			return picker(input)
		}

		Convey("all keeps everything", func() {
			So(pick("all"), ShouldHaveLength, 3)
		})

		Convey("first and last take one element", func() {
			So(pick("first")[0].URL, ShouldEqual, "img-1")
			So(pick("last")[0].URL, ShouldEqual, "img-2")
		})

		Convey("images and videos filter by kind", func() {
			So(pick("images"), ShouldHaveLength, 2)
			So(pick("videos"), ShouldHaveLength, 1)
			So(pick("videos")[0].URL, ShouldEqual, "vid-1")
		})

		Convey("A numeric picker selects by index", func() {
			So(pick("1")[0].URL, ShouldEqual, "vid-1")
			So(pick("9"), ShouldBeEmpty)
		})

		Convey("Unknown descriptions fail", func() {
			_, err := ParsePicker("everything")
			So(err, ShouldNotBeNil)
			_, err = ParsePicker("-3")
			So(err, ShouldNotBeNil)
		})

		Convey("first and last tolerate empty input", func() {
			picker, _ := ParsePicker("first")
			So(picker(nil), ShouldBeEmpty)
			picker, _ = ParsePicker("last")
			So(picker(nil), ShouldBeEmpty)
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Given a stub provider", t, func() {
		provider := stubProvider{node: postNode()}

		Convey("JSON mode writes the envelope", func() {
			var out bytes.Buffer
			err := Run(&Options{
				Out:      &out,
				Provider: provider,
				URL:      "https://instagram.com/p/Cxyz123",
				Json:     true,
			})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(out.Bytes(), &output), ShouldBeNil)
			So(output.URL, ShouldEqual, "https://instagram.com/p/Cxyz123")
			So(output.Result.Status, ShouldEqual, media.StatusSuccess)
			So(output.Result.Username, ShouldEqual, "alice")
			So(output.Result.Data, ShouldHaveLength, 1)
		})

		Convey("Plain mode prints asset URLs", func() {
			var out bytes.Buffer
			err := Run(&Options{
				Out:      &out,
				Provider: provider,
				URL:      "https://instagram.com/p/Cxyz123",
			})
			So(err, ShouldBeNil)
			So(out.String(), ShouldEqual, "cover\n")
		})

		Convey("A picker narrows the JSON output", func() {
			var out bytes.Buffer
			picker, _ := ParsePicker("videos")
			err := Run(&Options{
				Out:      &out,
				Provider: provider,
				URL:      "https://instagram.com/p/Cxyz123",
				Json:     true,
				Picker:   mo.Some(picker),
			})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(out.Bytes(), &output), ShouldBeNil)
			So(output.Result.Data, ShouldBeEmpty)
		})

		Convey("Plain mode surfaces resolution errors", func() {
			failing := stubProvider{err: &instagram.ProviderError{Err: errors.New("boom")}}

			var out bytes.Buffer
			err := Run(&Options{
				Out:      &out,
				Provider: failing,
				URL:      "https://instagram.com/p/Cxyz123",
			})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "boom")
		})

		Convey("JSON mode reports errors inside the envelope", func() {
			var out bytes.Buffer
			err := Run(&Options{
				Out:      &out,
				Provider: provider,
				URL:      "https://instagram.com/stories/someuser/1",
				Json:     true,
			})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(out.Bytes(), &output), ShouldBeNil)
			So(output.Result.Status, ShouldEqual, media.StatusError)
			So(output.Result.Message, ShouldEqual, "Stories download is not supported")
		})
	})
}
