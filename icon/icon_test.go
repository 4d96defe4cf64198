package icon

import (
	"testing"

	"github.com/instasnap-cli/instasnap/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given a registered icon", t, func() {
		target := Download

		Convey("It renders correctly for each variant", func() {
			for _, variant := range AvailableVariants() {
				Convey("variant="+variant, func() {
					viper.Set(key.IconsVariant, variant)
					result := Get(target)
					So(result, ShouldNotBeEmpty)
				})
			}
		})

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			result := Get(target)
			So(result, ShouldBeEmpty)
		})
	})
}

func TestForKind(t *testing.T) {
	Convey("Given the plain variant", t, func() {
		viper.Set(key.IconsVariant, plain)

		Convey("Videos get the video icon", func() {
			So(ForKind("video"), ShouldEqual, Get(Video))
		})

		Convey("Everything else gets the image icon", func() {
			So(ForKind("image"), ShouldEqual, Get(Image))
		})
	})
}
