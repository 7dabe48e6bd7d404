package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		Convey("orders by numeric segments", func() {
			So(Compare("1.2.3", "1.2.2"), ShouldBeGreaterThan, 0)
			So(Compare("1.2.3", "1.3.0"), ShouldBeLessThan, 0)
			So(Compare("2.0.0", "1.9.9"), ShouldBeGreaterThan, 0)
			So(Compare("0.1.0", "0.1.0"), ShouldEqual, 0)
		})

		Convey("treats missing segments as zero", func() {
			So(Compare("1.2", "1.2.0"), ShouldEqual, 0)
			So(Compare("1.2.1", "1.2"), ShouldBeGreaterThan, 0)
		})

		Convey("ignores a leading v", func() {
			So(Compare("v1.0.0", "1.0.0"), ShouldEqual, 0)
		})
	})
}
