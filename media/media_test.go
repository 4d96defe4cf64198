package media

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func variants() []Variant {
	return []Variant{
		{Src: "a", Width: 100, Height: 100},
		{Src: "b", Width: 400, Height: 400},
		{Src: "c", Width: 800, Height: 800},
	}
}

func TestDescriptors(t *testing.T) {
	Convey("Given a node with three resolution variants", t, func() {
		node := &Node{DisplayResources: variants()}

		Convey("An image node picks smallest preview and largest asset", func() {
			descriptors := node.Descriptors()
			So(descriptors, ShouldHaveLength, 1)

			d := descriptors[0]
			So(d.Preview, ShouldEqual, "a")
			So(d.URL, ShouldEqual, "c")
			So(d.Width, ShouldEqual, 800)
			So(d.Height, ShouldEqual, 800)
			So(d.Kind, ShouldEqual, Image)
		})

		Convey("A video node keeps dimensions but uses the stream URL", func() {
			node.IsVideo = true
			node.VideoURL = "v.mp4"

			d := node.Descriptors()[0]
			So(d.URL, ShouldEqual, "v.mp4")
			So(d.Kind, ShouldEqual, Video)
			So(d.Width, ShouldEqual, 800)
			So(d.Height, ShouldEqual, 800)
		})

		Convey("A video flag without a stream URL falls back to the largest variant", func() {
			node.IsVideo = true

			d := node.Descriptors()[0]
			So(d.URL, ShouldEqual, "c")
			So(d.Kind, ShouldEqual, Video)
		})

		Convey("Equal heights resolve to the first occurrence", func() {
			node.DisplayResources = []Variant{
				{Src: "x", Width: 500, Height: 500},
				{Src: "y", Width: 500, Height: 500},
			}

			d := node.Descriptors()[0]
			So(d.Preview, ShouldEqual, "x")
			So(d.URL, ShouldEqual, "x")
		})
	})

	Convey("A node without resolution variants yields no descriptor", t, func() {
		So((&Node{}).Descriptors(), ShouldBeEmpty)
	})
}

func TestFlatten(t *testing.T) {
	Convey("Given a carousel with three children", t, func() {
		carousel := &Node{
			Owner: &Owner{Username: "alice"},
			Sidecar: &sidecar{Edges: []sidecarEdge{
				{Node: &Node{DisplayResources: []Variant{{Src: "one", Height: 10}}}},
				{Node: &Node{DisplayResources: []Variant{{Src: "two", Height: 20}}}},
				{Node: &Node{DisplayResources: []Variant{{Src: "three", Height: 30}}}},
			}},
		}

		Convey("Flatten preserves child order", func() {
			descriptors := Flatten(carousel)
			So(descriptors, ShouldHaveLength, 3)
			So(descriptors[0].URL, ShouldEqual, "one")
			So(descriptors[1].URL, ShouldEqual, "two")
			So(descriptors[2].URL, ShouldEqual, "three")
		})

		Convey("Children without variants are skipped silently", func() {
			carousel.Sidecar.Edges[1].Node = &Node{}
			So(Flatten(carousel), ShouldHaveLength, 2)
		})

		Convey("Username comes from the top-level node", func() {
			So(carousel.Username(), ShouldEqual, "alice")
		})
	})

	Convey("A single node flattens to its own descriptors", t, func() {
		node := &Node{DisplayResources: variants()}
		So(Flatten(node), ShouldHaveLength, 1)
	})

	Convey("A node without an owner reports the sentinel username", t, func() {
		So((&Node{}).Username(), ShouldEqual, UnknownUsername)
	})
}

func TestSelectedFile(t *testing.T) {
	Convey("NewSelectedFile", t, func() {
		image := &Descriptor{Kind: Image, URL: "http://cdn/img"}
		video := &Descriptor{Kind: Video, URL: "http://cdn/vid"}

		Convey("Builds image tuples with jpg and image mime", func() {
			f := NewSelectedFile(image, "alice", 1700000000, 0)
			So(f.Filename, ShouldEqual, "alice_1700000000_0.jpg")
			So(f.Mime, ShouldEqual, "image/jpeg")
			So(f.URL, ShouldEqual, "http://cdn/img")
		})

		Convey("Builds video tuples with mp4 and video mime", func() {
			f := NewSelectedFile(video, "alice", 1700000000, 2)
			So(f.Filename, ShouldEqual, "alice_1700000000_2.mp4")
			So(f.Mime, ShouldEqual, "video/mp4")
		})

		Convey("Sanitizes hostile usernames", func() {
			f := NewSelectedFile(image, "a/b c", 1, 0)
			So(f.Filename, ShouldEqual, "a_b_c_1_0.jpg")
		})
	})
}
