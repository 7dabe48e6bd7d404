package convert

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stormychel/YouTubePlayerKit/jsvalue"
)

func TestPrimitives(t *testing.T) {
	Convey("primitive converters", t, func() {
		Convey("accept their shape", func() {
			b, err := Bool()(jsvalue.Bool(true))
			So(err, ShouldBeNil)
			So(b, ShouldBeTrue)

			n, err := Float()(jsvalue.Number(1.5))
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 1.5)

			i, err := Int()(jsvalue.Number(42))
			So(err, ShouldBeNil)
			So(i, ShouldEqual, 42)

			s, err := String()(jsvalue.String("hey"))
			So(err, ShouldBeNil)
			So(s, ShouldEqual, "hey")
		})

		Convey("reject anything else with a shape error", func() {
			_, err := Bool()(jsvalue.Number(1))
			convErr, ok := err.(*Error)
			So(ok, ShouldBeTrue)
			So(convErr.Expected, ShouldEqual, "bool")
			So(convErr.Got, ShouldEqual, jsvalue.KindNumber)
		})

		Convey("Void accepts everything, null included", func() {
			_, err := Void()(jsvalue.Null())
			So(err, ShouldBeNil)
			_, err = Void()(jsvalue.String("whatever"))
			So(err, ShouldBeNil)
		})
	})
}

func TestSlices(t *testing.T) {
	Convey("slice converters", t, func() {
		Convey("preserve order", func() {
			xs, err := StringSlice()(jsvalue.Array(jsvalue.String("a"), jsvalue.String("b"), jsvalue.String("c")))
			So(err, ShouldBeNil)
			So(xs, ShouldResemble, []string{"a", "b", "c"})

			ns, err := FloatSlice()(jsvalue.Array(jsvalue.Number(0.25), jsvalue.Number(1)))
			So(err, ShouldBeNil)
			So(ns, ShouldResemble, []float64{0.25, 1})
		})

		Convey("name the offending element", func() {
			_, err := StringSlice()(jsvalue.Array(jsvalue.String("a"), jsvalue.Number(2)))
			convErr, ok := err.(*Error)
			So(ok, ShouldBeTrue)
			So(convErr.Field, ShouldEqual, "[1]")
		})
	})
}

func TestMap(t *testing.T) {
	Convey("Map", t, func() {
		Convey("applies the transform after success", func() {
			double := Map(Int(), func(n int) int { return n * 2 })
			n, err := double(jsvalue.Number(21))
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 42)
		})

		Convey("short-circuits without invoking the transform", func() {
			invoked := false
			c := Map(Int(), func(n int) int {
				invoked = true
				return n
			})
			_, err := c(jsvalue.String("not a number"))
			So(err, ShouldNotBeNil)
			So(invoked, ShouldBeFalse)
		})
	})
}

func TestOptional(t *testing.T) {
	Convey("Optional", t, func() {
		Convey("maps null to None", func() {
			opt, err := Optional(String())(jsvalue.Null())
			So(err, ShouldBeNil)
			So(opt.IsAbsent(), ShouldBeTrue)
		})

		Convey("wraps present values in Some", func() {
			opt, err := Optional(String())(jsvalue.String("id"))
			So(err, ShouldBeNil)
			So(opt.MustGet(), ShouldEqual, "id")
		})

		Convey("still rejects wrong shapes", func() {
			_, err := Optional(String())(jsvalue.Number(1))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestDecode(t *testing.T) {
	type info struct {
		Title    string  `json:"title"`
		Duration float64 `json:"duration"`
	}

	Convey("Decode", t, func() {
		Convey("fills a struct from an object", func() {
			v, err := jsvalue.Parse([]byte(`{"title": "t", "duration": 3, "unknown": true}`))
			So(err, ShouldBeNil)

			decoded, err := Decode[info]()(v)
			So(err, ShouldBeNil)
			So(decoded.Title, ShouldEqual, "t")
			So(decoded.Duration, ShouldEqual, 3)
		})

		Convey("requires an object", func() {
			_, err := Decode[info]()(jsvalue.Number(1))
			convErr, ok := err.(*Error)
			So(ok, ShouldBeTrue)
			So(convErr.Expected, ShouldEqual, "object")
		})

		Convey("names the first field that does not fit", func() {
			v, err := jsvalue.Parse([]byte(`{"title": "t", "duration": "long"}`))
			So(err, ShouldBeNil)

			_, err = Decode[info]()(v)
			convErr, ok := err.(*Error)
			So(ok, ShouldBeTrue)
			So(convErr.Field, ShouldContainSubstring, "duration")
		})
	})
}
