package config

import (
	"testing"

	"github.com/instasnap-cli/instasnap/filesystem"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				val := viper.Get(name)
				So(val, ShouldNotBeNil)
			}
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("downloads.concurrency")
			So(result, ShouldEqual, "downloads_concurrency")
		})

		Convey("Env names carry the application prefix", func() {
			field := Default["downloads.concurrency"]
			So(field.Env(), ShouldEqual, "INSTASNAP_DOWNLOADS_CONCURRENCY")
		})
	})
}
