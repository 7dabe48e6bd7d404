package recent

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/stormychel/YouTubePlayerKit/filesystem"
	"github.com/stormychel/YouTubePlayerKit/key"
)

func setup() {
	filesystem.SetMemMapFs()
	viper.Set(key.RecentsWrite, true)
	viper.Set(key.RecentsSuggestions, true)
	viper.Set(key.RecentsLimit, 50)
}

func TestRememberAndList(t *testing.T) {
	Convey("remembered ids list most recent first", t, func() {
		setup()
		So(Forget(), ShouldBeNil)

		So(Remember("first"), ShouldBeNil)
		So(Remember("second"), ShouldBeNil)
		So(Remember("third"), ShouldBeNil)

		ids, err := List()
		So(err, ShouldBeNil)
		So(ids, ShouldResemble, []string{"third", "second", "first"})

		Convey("replaying an id moves it to the front", func() {
			So(Remember("first"), ShouldBeNil)

			ids, err := List()
			So(err, ShouldBeNil)
			So(ids[0], ShouldEqual, "first")
		})
	})
}

func TestListLimit(t *testing.T) {
	Convey("the list honors the configured limit", t, func() {
		setup()
		So(Forget(), ShouldBeNil)
		viper.Set(key.RecentsLimit, 2)

		So(Remember("a"), ShouldBeNil)
		So(Remember("b"), ShouldBeNil)
		So(Remember("c"), ShouldBeNil)

		ids, err := List()
		So(err, ShouldBeNil)
		So(ids, ShouldHaveLength, 2)
	})
}

func TestDisabledWrite(t *testing.T) {
	Convey("with writing disabled, nothing is remembered", t, func() {
		setup()
		So(Forget(), ShouldBeNil)
		viper.Set(key.RecentsWrite, false)

		So(Remember("ghost"), ShouldBeNil)

		ids, err := List()
		So(err, ShouldBeNil)
		So(ids, ShouldBeEmpty)
	})
}

func TestSuggestions(t *testing.T) {
	Convey("suggestions", t, func() {
		setup()
		So(Forget(), ShouldBeNil)

		So(Remember("dQw4w9WgXcQ"), ShouldBeNil)
		So(Remember("abc123"), ShouldBeNil)

		Convey("fuzzy-match remembered ids", func() {
			So(Suggest("abc").MustGet(), ShouldEqual, "abc123")
			So(SuggestMany("dQw"), ShouldContain, "dQw4w9WgXcQ")
		})

		Convey("return None for strangers", func() {
			So(Suggest("zzzzzz").IsAbsent(), ShouldBeTrue)
		})

		Convey("are silent when disabled", func() {
			viper.Set(key.RecentsSuggestions, false)
			So(SuggestMany("abc"), ShouldBeEmpty)
		})
	})
}
