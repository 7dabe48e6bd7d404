package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/stormychel/YouTubePlayerKit/filesystem"
	"github.com/stormychel/YouTubePlayerKit/key"
)

func TestSetup(t *testing.T) {
	Convey("Setup", t, func() {
		viper.Reset()
		filesystem.SetMemMapFs()

		So(Setup(), ShouldBeNil)

		Convey("applies the factory defaults", func() {
			So(viper.GetString(key.PlayerScriptObject), ShouldEqual, "player")
			So(viper.GetInt(key.PlayerPollInterval), ShouldBeGreaterThan, 0)
		})

		Convey("accepts a dotted script object path", func() {
			viper.Set(key.PlayerScriptObject, "window.ytplayer")
			So(validate(), ShouldBeNil)
		})

		Convey("rejects a script object name that is not a property path", func() {
			viper.Set(key.PlayerScriptObject, "player; doEvil()")
			So(validate(), ShouldNotBeNil)
		})

		Convey("rejects a non-positive poll interval", func() {
			viper.Set(key.PlayerPollInterval, 0)
			So(validate(), ShouldNotBeNil)
		})

		Convey("rejects a negative recents limit", func() {
			viper.Set(key.RecentsLimit, -1)
			So(validate(), ShouldNotBeNil)
		})

		Convey("rejects an unknown log level", func() {
			viper.Set(key.LogsLevel, "loud")
			So(validate(), ShouldNotBeNil)
		})
	})
}
